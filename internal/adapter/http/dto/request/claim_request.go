package request

import (
	"strings"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase"
)

// PaymentModeRequest accepts the canonical kind (free, third_party_payer, direct_pay)
// or the legacy single-letter code (G, T, D).
type PaymentModeRequest struct {
	Kind         string `json:"kind" binding:"required"`
	CoverageRate *int   `json:"coverage_rate"`
}

func (r PaymentModeRequest) ToPaymentMode() (entities.PaymentMode, error) {
	kind, err := ParsePaymentModeKind(r.Kind)
	if err != nil {
		return entities.PaymentMode{}, entities.NewValidationError(entities.FieldError{Field: "payment_mode", Message: "unknown payment mode"})
	}

	if kind == entities.PaymentModeThirdPartyPayer {
		if r.CoverageRate == nil {
			return entities.PaymentMode{}, entities.NewValidationError(entities.FieldError{Field: "coverage_rate", Message: "is required for third_party_payer"})
		}
		return entities.ThirdPartyPayerMode(*r.CoverageRate)
	}

	mode := entities.PaymentMode{Kind: kind}
	if r.CoverageRate != nil {
		mode.CoverageRate = *r.CoverageRate
	}
	if err := mode.Validate(); err != nil {
		return entities.PaymentMode{}, err
	}
	return mode, nil
}

// ParsePaymentModeKind maps a canonical kind or a legacy code to its kind.
func ParsePaymentModeKind(s string) (entities.PaymentModeKind, error) {
	s = strings.TrimSpace(s)
	if k := entities.PaymentModeKind(strings.ToLower(s)); k.IsValid() {
		return k, nil
	}
	return entities.ParsePaymentModeCode(s)
}

type LineItemRequest struct {
	Code             string `json:"code"`
	Label            string `json:"label"`
	Quantity         int    `json:"quantity"`
	UnitPrice        *int64 `json:"unit_price"`
	Reimbursable     *bool  `json:"reimbursable"`
	CoverageOverride *int   `json:"coverage_override"`
}

func (r LineItemRequest) ToInput() usecase.LineItemInput {
	in := usecase.LineItemInput{
		Code:             r.Code,
		Label:            r.Label,
		Quantity:         r.Quantity,
		Reimbursable:     r.Reimbursable,
		CoverageOverride: r.CoverageOverride,
	}
	if r.UnitPrice != nil {
		p := entities.Money(*r.UnitPrice)
		in.UnitPrice = &p
	}
	return in
}

// CreateClaimRequest is the body of POST /v1/claims.
type CreateClaimRequest struct {
	Workflow       string              `json:"workflow"`
	BeneficiaryRef string              `json:"beneficiary_ref"`
	ProviderRef    string              `json:"provider_ref"`
	AffectionCode  string              `json:"affection_code"`
	PrestationType string              `json:"prestation_type"`
	Observations   string              `json:"observations"`
	PaymentMode    *PaymentModeRequest `json:"payment_mode"`
	Items          []LineItemRequest   `json:"items"`
}

// ToDraft leaves required-field checks to the registry so that every missing field is
// reported at once.
func (r CreateClaimRequest) ToDraft() (usecase.ClaimDraft, error) {
	draft := usecase.ClaimDraft{
		Workflow:       entities.Workflow(strings.ToLower(strings.TrimSpace(r.Workflow))),
		BeneficiaryRef: r.BeneficiaryRef,
		ProviderRef:    r.ProviderRef,
		AffectionCode:  r.AffectionCode,
		PrestationType: entities.PrestationType(r.PrestationType),
		Observations:   r.Observations,
	}
	if r.PaymentMode != nil {
		mode, err := r.PaymentMode.ToPaymentMode()
		if err != nil {
			return usecase.ClaimDraft{}, err
		}
		draft.PaymentMode = &mode
	}
	for _, it := range r.Items {
		draft.Items = append(draft.Items, it.ToInput())
	}
	return draft, nil
}

// AddItemRequest is the body of POST /v1/claims/:id/items.
type AddItemRequest struct {
	Version int64 `json:"version"`
	LineItemRequest
}

// UpdateItemRequest is the body of PATCH /v1/claims/:id/items/:index. Omitted fields are kept.
type UpdateItemRequest struct {
	Version               int64   `json:"version"`
	Code                  *string `json:"code"`
	Label                 *string `json:"label"`
	Quantity              *int    `json:"quantity"`
	UnitPrice             *int64  `json:"unit_price"`
	Reimbursable          *bool   `json:"reimbursable"`
	CoverageOverride      *int    `json:"coverage_override"`
	ClearCoverageOverride bool    `json:"clear_coverage_override"`
}

func (r UpdateItemRequest) ToPatch() entities.LineItemPatch {
	patch := entities.LineItemPatch{
		Code:                  r.Code,
		Label:                 r.Label,
		Quantity:              r.Quantity,
		Reimbursable:          r.Reimbursable,
		CoverageOverride:      r.CoverageOverride,
		ClearCoverageOverride: r.ClearCoverageOverride,
	}
	if r.UnitPrice != nil {
		p := entities.Money(*r.UnitPrice)
		patch.UnitPrice = &p
	}
	return patch
}

// VersionedRequest carries only the expected version, e.g. for item removal.
type VersionedRequest struct {
	Version int64 `json:"version"`
}

// SetPaymentModeRequest is the body of PUT /v1/claims/:id/payment-mode.
type SetPaymentModeRequest struct {
	Version int64 `json:"version"`
	PaymentModeRequest
}

// TransitionRequest is the body of POST /v1/claims/:id/transitions. To accepts the
// canonical status or any workflow label.
type TransitionRequest struct {
	Version int64  `json:"version"`
	To      string `json:"to" binding:"required"`
	Reason  string `json:"reason"`
}

func (r TransitionRequest) Target() (entities.StatusKind, error) {
	return ParseStatus(r.To)
}

var workflows = []entities.Workflow{
	entities.WorkflowPriorAuthorization,
	entities.WorkflowEvacuation,
	entities.WorkflowBillingDispute,
}

// ParseStatus resolves a canonical status or a label of any workflow.
func ParseStatus(s string) (entities.StatusKind, error) {
	var err error
	for _, w := range workflows {
		var k entities.StatusKind
		if k, err = entities.ParseStatus(w, s); err == nil {
			return k, nil
		}
	}
	return "", err
}
