package entities

import (
	"math"
	"time"
)

// LineItemPatch carries the fields to change on an existing item. Nil fields are kept.
type LineItemPatch struct {
	Code                  *string
	Label                 *string
	Quantity              *int
	UnitPrice             *Money
	Reimbursable          *bool
	CoverageOverride      *int
	ClearCoverageOverride bool
}

// ValidateItem checks the per-item constraints enforced by every ledger mutator.
func ValidateItem(item LineItem) error {
	if item.Quantity <= 0 {
		return itemError(ErrInvalidItem, "quantity must be positive, got %d", item.Quantity)
	}
	if item.UnitPrice < 0 {
		return itemError(ErrInvalidItem, "unit price must not be negative, got %d", item.UnitPrice)
	}
	if item.CoverageOverride != nil && !IsValidCoverageRate(*item.CoverageOverride) {
		return itemError(ErrInvalidItem, "coverage override must be between 0 and 100, got %d", *item.CoverageOverride)
	}
	if _, ok := item.checkedAmount(); !ok {
		return itemError(ErrInvalidItem, "amount of %d × %d overflows", item.Quantity, item.UnitPrice)
	}
	return nil
}

// ValidateTotal rejects item lists whose total does not fit in Money.
func ValidateTotal(items []LineItem) error {
	var total Money
	for _, it := range items {
		amount, ok := it.checkedAmount()
		if !ok || amount > math.MaxInt64-total {
			return itemError(ErrInvalidItem, "claim total overflows")
		}
		total += amount
	}
	return nil
}

// SumItems folds quantity × unit price over every item.
func SumItems(items []LineItem) Money {
	var total Money
	for _, it := range items {
		total += it.Amount()
	}
	return total
}

// RecomputeTotal rebuilds TotalAmount from the items. It is always a full fold, never a
// running adjustment.
func (c *Claim) RecomputeTotal() {
	c.TotalAmount = SumItems(c.Items)
}

// AddItem appends item to the claim.
func AddItem(c *Claim, item LineItem, now time.Time) error {
	if c.IsLocked() {
		return ErrClaimLocked
	}
	if err := ValidateItem(item); err != nil {
		return err
	}
	items := append(CloneItems(c.Items), item.clone())
	if err := ValidateTotal(items); err != nil {
		return err
	}
	c.Items = items
	c.touch(now)
	return nil
}

// UpdateItem applies patch to the item at index.
func UpdateItem(c *Claim, index int, patch LineItemPatch, now time.Time) error {
	if c.IsLocked() {
		return ErrClaimLocked
	}
	if index < 0 || index >= len(c.Items) {
		return itemError(ErrIndexOutOfRange, "index %d, %d items", index, len(c.Items))
	}

	updated := c.Items[index].clone()
	if patch.Code != nil {
		updated.Code = *patch.Code
	}
	if patch.Label != nil {
		updated.Label = *patch.Label
	}
	if patch.Quantity != nil {
		updated.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		updated.UnitPrice = *patch.UnitPrice
	}
	if patch.Reimbursable != nil {
		updated.Reimbursable = *patch.Reimbursable
	}
	if patch.ClearCoverageOverride {
		updated.CoverageOverride = nil
	} else if patch.CoverageOverride != nil {
		v := *patch.CoverageOverride
		updated.CoverageOverride = &v
	}
	if err := ValidateItem(updated); err != nil {
		return err
	}
	items := CloneItems(c.Items)
	items[index] = updated
	if err := ValidateTotal(items); err != nil {
		return err
	}

	c.Items = items
	c.touch(now)
	return nil
}

// RemoveItem deletes the item at index, keeping the order of the others.
func RemoveItem(c *Claim, index int, now time.Time) error {
	if c.IsLocked() {
		return ErrClaimLocked
	}
	if index < 0 || index >= len(c.Items) {
		return itemError(ErrIndexOutOfRange, "index %d, %d items", index, len(c.Items))
	}
	items := make([]LineItem, 0, len(c.Items)-1)
	items = append(items, c.Items[:index]...)
	items = append(items, c.Items[index+1:]...)
	c.Items = items
	c.touch(now)
	return nil
}

// SetPaymentMode replaces the claim payment mode. The previous mode is discarded whole,
// so switching between free and third-party payer never leaves both in place.
func SetPaymentMode(c *Claim, mode PaymentMode, now time.Time) error {
	if c.IsLocked() {
		return ErrClaimLocked
	}
	if err := mode.Validate(); err != nil {
		return err
	}
	c.PaymentMode = mode
	c.touch(now)
	return nil
}

func (c *Claim) touch(now time.Time) {
	c.RecomputeTotal()
	c.Version++
	c.LastModifiedAt = now
}
