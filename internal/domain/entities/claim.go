package entities

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// Money is an amount in the smallest unit of the claim currency.
type Money int64

// StatusKind is the lifecycle position of a claim.
//
// Domain notes:
//   - pending and approved are the only mutable states.
//   - rejected, executed and cancelled are terminal.
type StatusKind string

const (
	StatusPending   StatusKind = "pending"
	StatusApproved  StatusKind = "approved"
	StatusRejected  StatusKind = "rejected"
	StatusExecuted  StatusKind = "executed"
	StatusCancelled StatusKind = "cancelled"
)

var validStatusKinds = map[StatusKind]struct{}{
	StatusPending:   {},
	StatusApproved:  {},
	StatusRejected:  {},
	StatusExecuted:  {},
	StatusCancelled: {},
}

// IsValid reports whether k is one of the closed set of statuses.
func (k StatusKind) IsValid() bool {
	_, ok := validStatusKinds[k]
	return ok
}

// IsTerminal reports whether no further mutation is permitted from k.
func (k StatusKind) IsTerminal() bool {
	return k == StatusRejected || k == StatusExecuted || k == StatusCancelled
}

// Status is the claim status. Reason is only carried by rejected and cancelled.
type Status struct {
	Kind   StatusKind `json:"kind"`
	Reason string     `json:"reason,omitempty"`
}

func PendingStatus() Status { return Status{Kind: StatusPending} }

// PaymentModeKind selects how the claim total is split between insurer and patient.
type PaymentModeKind string

const (
	PaymentModeFree            PaymentModeKind = "free"
	PaymentModeThirdPartyPayer PaymentModeKind = "third_party_payer"
	PaymentModeDirectPay       PaymentModeKind = "direct_pay"
)

var validPaymentModeKinds = map[PaymentModeKind]struct{}{
	PaymentModeFree:            {},
	PaymentModeThirdPartyPayer: {},
	PaymentModeDirectPay:       {},
}

func (k PaymentModeKind) IsValid() bool {
	_, ok := validPaymentModeKinds[k]
	return ok
}

// PaymentMode is a single tagged value: a claim holds exactly one mode, so free and
// third-party payer can never coexist. CoverageRate is meaningful for third_party_payer only.
type PaymentMode struct {
	Kind         PaymentModeKind `json:"kind"`
	CoverageRate int             `json:"coverage_rate,omitempty"`
}

func FreeMode() PaymentMode      { return PaymentMode{Kind: PaymentModeFree} }
func DirectPayMode() PaymentMode { return PaymentMode{Kind: PaymentModeDirectPay} }

// ThirdPartyPayerMode builds a third-party payer mode, rejecting rates outside [0, 100].
func ThirdPartyPayerMode(rate int) (PaymentMode, error) {
	if !IsValidCoverageRate(rate) {
		return PaymentMode{}, NewValidationError(FieldError{Field: "coverage_rate", Message: "must be between 0 and 100"})
	}
	return PaymentMode{Kind: PaymentModeThirdPartyPayer, CoverageRate: rate}, nil
}

// Validate checks the tagged value is well formed.
func (m PaymentMode) Validate() error {
	if !m.Kind.IsValid() {
		return NewValidationError(FieldError{Field: "payment_mode", Message: "unknown payment mode"})
	}
	if m.Kind != PaymentModeThirdPartyPayer && m.CoverageRate != 0 {
		return NewValidationError(FieldError{Field: "coverage_rate", Message: "only allowed for third_party_payer"})
	}
	if !IsValidCoverageRate(m.CoverageRate) {
		return NewValidationError(FieldError{Field: "coverage_rate", Message: "must be between 0 and 100"})
	}
	return nil
}

func IsValidCoverageRate(rate int) bool {
	return rate >= 0 && rate <= 100
}

// Workflow names the product module a claim belongs to. The three workflows share the
// same lifecycle and differ only in their status vocabulary.
type Workflow string

const (
	WorkflowPriorAuthorization Workflow = "prior_authorization"
	WorkflowEvacuation         Workflow = "evacuation"
	WorkflowBillingDispute     Workflow = "billing_dispute"
)

func (w Workflow) IsValid() bool {
	_, ok := workflowVocabularies[w]
	return ok
}

// AffectionCodeUnknown is stored when the condition has not been classified.
const AffectionCodeUnknown = "UNKNOWN"

// PrestationType classifies the kind of care. The set is a registry rather than a
// hard-coded enum so deployments can extend it.
type PrestationType string

var (
	prestationTypesMu sync.RWMutex
	prestationTypes   = map[PrestationType]struct{}{
		"consultation":    {},
		"pharmacy":        {},
		"biology":         {},
		"imaging":         {},
		"hospitalization": {},
		"surgery":         {},
		"rehabilitation":  {},
		"dental":          {},
		"optical":         {},
		"evacuation":      {},
	}
)

// RegisterPrestationType adds t to the accepted prestation types.
func RegisterPrestationType(t PrestationType) {
	t = PrestationType(strings.ToLower(strings.TrimSpace(string(t))))
	if t == "" {
		return
	}
	prestationTypesMu.Lock()
	defer prestationTypesMu.Unlock()
	prestationTypes[t] = struct{}{}
}

func IsValidPrestationType(t PrestationType) bool {
	prestationTypesMu.RLock()
	defer prestationTypesMu.RUnlock()
	_, ok := prestationTypes[t]
	return ok
}

// PrestationTypes returns the registered types, sorted.
func PrestationTypes() []PrestationType {
	prestationTypesMu.RLock()
	defer prestationTypesMu.RUnlock()
	out := make([]PrestationType, 0, len(prestationTypes))
	for t := range prestationTypes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LineItem is one billable act or product of a claim.
type LineItem struct {
	Code         string `json:"code"`
	Label        string `json:"label"`
	Quantity     int    `json:"quantity"`
	UnitPrice    Money  `json:"unit_price"`
	Reimbursable bool   `json:"reimbursable"`
	// CoverageOverride replaces the claim-level rate for this item when set.
	CoverageOverride *int `json:"coverage_override,omitempty"`
}

// Amount is quantity × unit price.
func (li LineItem) Amount() Money {
	return Money(li.Quantity) * li.UnitPrice
}

// checkedAmount is Amount for validated items; ok is false when the product leaves int64.
func (li LineItem) checkedAmount() (Money, bool) {
	if li.Quantity > 0 && li.UnitPrice > Money(math.MaxInt64/int64(li.Quantity)) {
		return 0, false
	}
	return li.Amount(), true
}

func (li LineItem) clone() LineItem {
	out := li
	if li.CoverageOverride != nil {
		v := *li.CoverageOverride
		out.CoverageOverride = &v
	}
	return out
}

// Claim is the aggregate for a care-episode request.
//
// Storage model:
//   - PK: id
//   - version drives optimistic concurrency; every accepted mutation increments it.
//
// TotalAmount is derived from Items by the ledger and is never set independently.
type Claim struct {
	ID             string         `json:"id"`
	Workflow       Workflow       `json:"workflow"`
	BeneficiaryRef string         `json:"beneficiary_ref"`
	ProviderRef    string         `json:"provider_ref"`
	AffectionCode  string         `json:"affection_code"`
	PrestationType PrestationType `json:"prestation_type"`
	Items          []LineItem     `json:"items"`
	TotalAmount    Money          `json:"total_amount"`
	PaymentMode    PaymentMode    `json:"payment_mode"`
	Status         Status         `json:"status"`
	Observations   string         `json:"observations,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	LastModifiedAt time.Time      `json:"last_modified_at"`
	Version        int64          `json:"version"`
}

// Clone returns a deep copy so callers can apply a mutation without touching the original.
func (c Claim) Clone() Claim {
	out := c
	out.Items = CloneItems(c.Items)
	return out
}

// IsLocked reports whether the claim reached a terminal status.
func (c Claim) IsLocked() bool {
	return c.Status.Kind.IsTerminal()
}

// CloneItems deep-copies an item list.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}

// BeneficiaryInfo is what the beneficiary directory returns for a reference.
type BeneficiaryInfo struct {
	Ref      string `json:"ref"`
	FullName string `json:"full_name"`
	PolicyNo string `json:"policy_no,omitempty"`
	Active   bool   `json:"active"`
}

// ProviderInfo is what the provider directory returns for a reference.
type ProviderInfo struct {
	Ref  string `json:"ref"`
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

// CatalogEntry is a priced act or product from the price catalog.
type CatalogEntry struct {
	Code         string `json:"code"`
	Label        string `json:"label"`
	UnitPrice    Money  `json:"unit_price"`
	Reimbursable bool   `json:"reimbursable"`
}

// ClaimFilter narrows a claim listing. Zero values are ignored.
type ClaimFilter struct {
	Status         StatusKind
	CreatedFrom    time.Time
	CreatedTo      time.Time
	ProviderRef    string
	BeneficiaryRef string
	Search         string
	PaymentMode    PaymentModeKind
	Workflow       Workflow
	PrestationType PrestationType
}

// Normalize drops values that are empty or outside their closed set so that an
// unknown filter never turns into an error or an empty result.
func (f ClaimFilter) Normalize() ClaimFilter {
	out := ClaimFilter{
		CreatedFrom:    f.CreatedFrom,
		CreatedTo:      f.CreatedTo,
		ProviderRef:    strings.TrimSpace(f.ProviderRef),
		BeneficiaryRef: strings.TrimSpace(f.BeneficiaryRef),
		Search:         strings.ToLower(strings.TrimSpace(f.Search)),
	}
	if f.Status.IsValid() {
		out.Status = f.Status
	}
	if f.PaymentMode.IsValid() {
		out.PaymentMode = f.PaymentMode
	}
	if f.Workflow.IsValid() {
		out.Workflow = f.Workflow
	}
	if IsValidPrestationType(f.PrestationType) {
		out.PrestationType = f.PrestationType
	}
	if !out.CreatedFrom.IsZero() && !out.CreatedTo.IsZero() && out.CreatedTo.Before(out.CreatedFrom) {
		out.CreatedFrom, out.CreatedTo = time.Time{}, time.Time{}
	}
	return out
}

// Matches reports whether c satisfies every non-zero criterion of a normalized filter.
func (f ClaimFilter) Matches(c Claim) bool {
	if f.Status != "" && c.Status.Kind != f.Status {
		return false
	}
	if !f.CreatedFrom.IsZero() && c.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedTo.IsZero() && c.CreatedAt.After(f.CreatedTo) {
		return false
	}
	if f.ProviderRef != "" && c.ProviderRef != f.ProviderRef {
		return false
	}
	if f.BeneficiaryRef != "" && c.BeneficiaryRef != f.BeneficiaryRef {
		return false
	}
	if f.PaymentMode != "" && c.PaymentMode.Kind != f.PaymentMode {
		return false
	}
	if f.Workflow != "" && c.Workflow != f.Workflow {
		return false
	}
	if f.PrestationType != "" && c.PrestationType != f.PrestationType {
		return false
	}
	if f.Search != "" && !strings.Contains(SearchText(c), f.Search) {
		return false
	}
	return true
}

// SearchText is the lowercase haystack used by free-text search.
func SearchText(c Claim) string {
	parts := []string{c.ID, c.BeneficiaryRef, c.ProviderRef, c.AffectionCode, string(c.PrestationType), c.Observations}
	for _, it := range c.Items {
		parts = append(parts, it.Code, it.Label)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
