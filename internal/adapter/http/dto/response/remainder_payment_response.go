package response

import (
	"time"

	"claims_service/internal/domain/entities"
)

type RemainderPaymentResponse struct {
	ID      string    `json:"id"`
	ClaimID string    `json:"claim_id"`
	Amount  int64     `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromRemainderPayment(p entities.RemainderPayment) RemainderPaymentResponse {
	return RemainderPaymentResponse{
		ID:           p.ID,
		ClaimID:      p.ClaimID,
		Amount:       int64(p.Amount),
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.PayloadRaw),
		MPPayload:    p.Payload,
	}
}

func FromRemainderPayments(ps []entities.RemainderPayment) []RemainderPaymentResponse {
	out := make([]RemainderPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromRemainderPayment(p))
	}
	return out
}
