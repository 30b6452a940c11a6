package repository

import (
	"fmt"

	"claims_service/internal/domain/entities"
)

// lineItemRecord is the stored shape of a line item, shared by the claim items and the
// settlement snapshot.
type lineItemRecord struct {
	Code             string `dynamodbav:"code" json:"code"`
	Label            string `dynamodbav:"label" json:"label"`
	Quantity         int    `dynamodbav:"quantity" json:"quantity"`
	UnitPrice        int64  `dynamodbav:"unit_price" json:"unit_price"`
	Reimbursable     bool   `dynamodbav:"reimbursable" json:"reimbursable"`
	CoverageOverride *int   `dynamodbav:"coverage_override,omitempty" json:"coverage_override,omitempty"`
}

func toLineItemRecords(items []entities.LineItem) []lineItemRecord {
	out := make([]lineItemRecord, 0, len(items))
	for _, it := range entities.CloneItems(items) {
		out = append(out, lineItemRecord{
			Code:             it.Code,
			Label:            it.Label,
			Quantity:         it.Quantity,
			UnitPrice:        int64(it.UnitPrice),
			Reimbursable:     it.Reimbursable,
			CoverageOverride: it.CoverageOverride,
		})
	}
	return out
}

func fromLineItemRecords(recs []lineItemRecord) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(recs))
	for _, r := range recs {
		out = append(out, entities.LineItem{
			Code:             r.Code,
			Label:            r.Label,
			Quantity:         r.Quantity,
			UnitPrice:        entities.Money(r.UnitPrice),
			Reimbursable:     r.Reimbursable,
			CoverageOverride: r.CoverageOverride,
		})
	}
	return out
}

// Payment modes are persisted with their legacy single-letter code.
func encodePaymentMode(m entities.PaymentMode) (string, int, error) {
	code, err := entities.PaymentModeCode(m.Kind)
	if err != nil {
		return "", 0, err
	}
	return code, m.CoverageRate, nil
}

func decodePaymentMode(code string, rate int) (entities.PaymentMode, error) {
	kind, err := entities.ParsePaymentModeCode(code)
	if err != nil {
		return entities.PaymentMode{}, err
	}
	if kind != entities.PaymentModeThirdPartyPayer {
		rate = 0
	}
	return entities.PaymentMode{Kind: kind, CoverageRate: rate}, nil
}

// decodeStatus rejects stored workflow and status values outside the closed sets, so a
// corrupted record never loads as an open claim.
func decodeStatus(workflow, status, reason string) (entities.Workflow, entities.Status, error) {
	w := entities.Workflow(workflow)
	if !w.IsValid() {
		return "", entities.Status{}, fmt.Errorf("%w: workflow %q", entities.ErrUnknownWireCode, workflow)
	}
	k := entities.StatusKind(status)
	if !k.IsValid() {
		return "", entities.Status{}, fmt.Errorf("%w: status %q", entities.ErrUnknownWireCode, status)
	}
	return w, entities.Status{Kind: k, Reason: reason}, nil
}
