package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the provider used to collect a patient remainder (e.g. Mercado Pago).
//
// The provider response payload is returned raw so it can be persisted for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
