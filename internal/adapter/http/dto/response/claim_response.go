package response

import (
	"time"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase"
)

type LineItemResponse struct {
	Index            int    `json:"index"`
	Code             string `json:"code"`
	Label            string `json:"label"`
	Quantity         int    `json:"quantity"`
	UnitPrice        int64  `json:"unit_price"`
	Amount           int64  `json:"amount"`
	Reimbursable     bool   `json:"reimbursable"`
	CoverageOverride *int   `json:"coverage_override,omitempty"`
}

type PaymentModeResponse struct {
	Kind         string `json:"kind"`
	Code         string `json:"code"`
	CoverageRate int    `json:"coverage_rate"`
}

// StatusResponse pairs the canonical status with the label of the claim's workflow.
type StatusResponse struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Reason string `json:"reason,omitempty"`
}

type ClaimResponse struct {
	ID                 string              `json:"id"`
	Workflow           string              `json:"workflow"`
	BeneficiaryRef     string              `json:"beneficiary_ref"`
	ProviderRef        string              `json:"provider_ref"`
	AffectionCode      string              `json:"affection_code"`
	PrestationType     string              `json:"prestation_type"`
	Items              []LineItemResponse  `json:"items"`
	TotalAmount        int64               `json:"total_amount"`
	PaymentMode        PaymentModeResponse `json:"payment_mode"`
	Status             StatusResponse      `json:"status"`
	AllowedTransitions []string            `json:"allowed_transitions"`
	Observations       string              `json:"observations,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	LastModifiedAt     time.Time           `json:"last_modified_at"`
	Version            int64               `json:"version"`
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for i, it := range items {
		out = append(out, LineItemResponse{
			Index:            i,
			Code:             it.Code,
			Label:            it.Label,
			Quantity:         it.Quantity,
			UnitPrice:        int64(it.UnitPrice),
			Amount:           int64(it.Amount()),
			Reimbursable:     it.Reimbursable,
			CoverageOverride: it.CoverageOverride,
		})
	}
	return out
}

func FromPaymentMode(m entities.PaymentMode) PaymentModeResponse {
	// kinds are validated before they are stored
	code, _ := entities.PaymentModeCode(m.Kind)
	return PaymentModeResponse{Kind: string(m.Kind), Code: code, CoverageRate: m.CoverageRate}
}

func FromClaim(c entities.Claim) ClaimResponse {
	label, err := entities.StatusLabel(c.Workflow, c.Status.Kind)
	if err != nil {
		label = string(c.Status.Kind)
	}

	allowed := []string{}
	for _, k := range entities.AllowedTransitions(c.Status.Kind) {
		allowed = append(allowed, string(k))
	}

	return ClaimResponse{
		ID:                 c.ID,
		Workflow:           string(c.Workflow),
		BeneficiaryRef:     c.BeneficiaryRef,
		ProviderRef:        c.ProviderRef,
		AffectionCode:      c.AffectionCode,
		PrestationType:     string(c.PrestationType),
		Items:              FromLineItems(c.Items),
		TotalAmount:        int64(c.TotalAmount),
		PaymentMode:        FromPaymentMode(c.PaymentMode),
		Status:             StatusResponse{Kind: string(c.Status.Kind), Label: label, Reason: c.Status.Reason},
		AllowedTransitions: allowed,
		Observations:       c.Observations,
		CreatedAt:          c.CreatedAt,
		LastModifiedAt:     c.LastModifiedAt,
		Version:            c.Version,
	}
}

type ClaimListResponse struct {
	Items    []ClaimResponse `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

func FromClaimPage(p usecase.ClaimPage) ClaimListResponse {
	items := make([]ClaimResponse, 0, len(p.Items))
	for _, c := range p.Items {
		items = append(items, FromClaim(c))
	}
	return ClaimListResponse{Items: items, Total: p.Total, Page: p.Page, PageSize: p.PageSize}
}

type CoverageResponse struct {
	ClaimID          string `json:"claim_id"`
	TotalAmount      int64  `json:"total_amount"`
	CoveredAmount    int64  `json:"covered_amount"`
	PatientRemainder int64  `json:"patient_remainder"`
}

func FromCoverage(claimID string, cov entities.Coverage) CoverageResponse {
	return CoverageResponse{
		ClaimID:          claimID,
		TotalAmount:      int64(cov.TotalAmount),
		CoveredAmount:    int64(cov.CoveredAmount),
		PatientRemainder: int64(cov.PatientRemainder),
	}
}
