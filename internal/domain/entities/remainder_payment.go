package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the provider outcome of a patient-remainder payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentStatusFromProvider maps a Mercado Pago status onto ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}

// RemainderPayment records the collection of a settlement's patient remainder.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (claim_id-index): claim_id
//
// Amount always comes from the settlement; the provider payload is kept raw for audit.
type RemainderPayment struct {
	ID         string                 `json:"id"`
	ClaimID    string                 `json:"claim_id"`
	Amount     Money                  `json:"amount"`
	Date       time.Time              `json:"date"`
	Status     PaymentStatus          `json:"status"`
	PayloadRaw json.RawMessage        `json:"payload_raw,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}
