package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Coverage is the insurer/patient split of a claim total.
type Coverage struct {
	TotalAmount      Money `json:"total_amount"`
	CoveredAmount    Money `json:"covered_amount"`
	PatientRemainder Money `json:"patient_remainder"`
}

// EffectiveRate resolves the rate applied to item: its override, else the claim rate.
// Modes other than third-party payer carry no rate and resolve to 0.
func EffectiveRate(item LineItem, mode PaymentMode) int {
	if item.CoverageOverride != nil {
		return *item.CoverageOverride
	}
	if mode.Kind == PaymentModeThirdPartyPayer {
		return mode.CoverageRate
	}
	return 0
}

// ComputeCoverage splits total according to mode. It has no side effects.
//
// Under third-party payer the covered amount is Σ quantity × unit price × rate / 100 over
// reimbursable items, rounded half-up to the smallest unit once on the aggregate.
func ComputeCoverage(total Money, mode PaymentMode, items []LineItem) (Coverage, error) {
	if total < 0 {
		return Coverage{}, fmt.Errorf("%w: negative total %d", ErrArithmeticInvariant, total)
	}
	if err := mode.Validate(); err != nil {
		return Coverage{}, err
	}

	var covered Money
	switch mode.Kind {
	case PaymentModeFree:
		covered = total
	case PaymentModeDirectPay:
		covered = 0
	case PaymentModeThirdPartyPayer:
		sum := decimal.Zero
		for _, it := range items {
			if !it.Reimbursable {
				continue
			}
			rate := EffectiveRate(it, mode)
			if !IsValidCoverageRate(rate) {
				return Coverage{}, fmt.Errorf("%w: item %s rate %d", ErrArithmeticInvariant, it.Code, rate)
			}
			sum = sum.Add(decimal.NewFromInt(int64(it.Amount())).Mul(decimal.NewFromInt(int64(rate))))
		}
		covered = Money(sum.Div(hundred).Round(0).IntPart())
	}

	remainder := total - covered
	if covered < 0 || remainder < 0 {
		return Coverage{}, fmt.Errorf("%w: covered %d exceeds total %d", ErrArithmeticInvariant, covered, total)
	}
	return Coverage{TotalAmount: total, CoveredAmount: covered, PatientRemainder: remainder}, nil
}

// ClaimCoverage runs the calculator on the claim's current state.
func ClaimCoverage(c Claim) (Coverage, error) {
	return ComputeCoverage(c.TotalAmount, c.PaymentMode, c.Items)
}

// MajorUnits converts a minor-unit amount into a decimal in major units, given the
// currency exponent (0 for XOF, 2 for EUR).
func MajorUnits(m Money, exponent int32) decimal.Decimal {
	return decimal.New(int64(m), -exponent)
}
