package entities

import (
	"fmt"
	"time"
)

// Settlement is the frozen financial outcome of an executed claim.
//
// Storage model (DynamoDB):
//   - PK: claim_id, written with attribute_not_exists so a claim settles once.
//
// A settlement is never updated; corrections go through a new claim.
type Settlement struct {
	ClaimID          string      `json:"claim_id"`
	TotalAmount      Money       `json:"total_amount"`
	CoveredAmount    Money       `json:"covered_amount"`
	PatientRemainder Money       `json:"patient_remainder"`
	PaymentMode      PaymentMode `json:"payment_mode"`
	FinalizedAt      time.Time   `json:"finalized_at"`
	ItemsSnapshot    []LineItem  `json:"items_snapshot"`
}

// NewSettlement snapshots an executed claim. FinalizedAt keeps microsecond precision,
// the finest every record store can hold.
func NewSettlement(c Claim, now time.Time) (Settlement, error) {
	if c.Status.Kind != StatusExecuted {
		return Settlement{}, fmt.Errorf("%w: status is %s", ErrNotFinalizable, c.Status.Kind)
	}
	if c.TotalAmount != SumItems(c.Items) {
		return Settlement{}, fmt.Errorf("%w: stored total %d differs from items", ErrArithmeticInvariant, c.TotalAmount)
	}
	cov, err := ClaimCoverage(c)
	if err != nil {
		return Settlement{}, err
	}
	return Settlement{
		ClaimID:          c.ID,
		TotalAmount:      cov.TotalAmount,
		CoveredAmount:    cov.CoveredAmount,
		PatientRemainder: cov.PatientRemainder,
		PaymentMode:      c.PaymentMode,
		FinalizedAt:      now.UTC().Truncate(time.Microsecond),
		ItemsSnapshot:    CloneItems(c.Items),
	}, nil
}
