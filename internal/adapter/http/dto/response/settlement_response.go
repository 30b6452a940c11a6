package response

import (
	"time"

	"claims_service/internal/domain/entities"
)

type SettlementResponse struct {
	ClaimID          string              `json:"claim_id"`
	TotalAmount      int64               `json:"total_amount"`
	CoveredAmount    int64               `json:"covered_amount"`
	PatientRemainder int64               `json:"patient_remainder"`
	PaymentMode      PaymentModeResponse `json:"payment_mode"`
	FinalizedAt      time.Time           `json:"finalized_at"`
	Items            []LineItemResponse  `json:"items"`
}

func FromSettlement(s entities.Settlement) SettlementResponse {
	return SettlementResponse{
		ClaimID:          s.ClaimID,
		TotalAmount:      int64(s.TotalAmount),
		CoveredAmount:    int64(s.CoveredAmount),
		PatientRemainder: int64(s.PatientRemainder),
		PaymentMode:      FromPaymentMode(s.PaymentMode),
		FinalizedAt:      s.FinalizedAt,
		Items:            FromLineItems(s.ItemsSnapshot),
	}
}
