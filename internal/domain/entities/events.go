package entities

import "time"

type ClaimEventType string

const (
	EventClaimCreated            ClaimEventType = "claim.created"
	EventClaimItemsChanged       ClaimEventType = "claim.items_changed"
	EventClaimPaymentModeChanged ClaimEventType = "claim.payment_mode_changed"
	EventClaimTransitioned       ClaimEventType = "claim.transitioned"
	EventSettlementFinalized     ClaimEventType = "settlement.finalized"
)

// ClaimEvent is published after a claim mutation has been persisted.
type ClaimEvent struct {
	Type        ClaimEventType `json:"type"`
	ClaimID     string         `json:"claim_id"`
	Workflow    Workflow       `json:"workflow"`
	Version     int64          `json:"version"`
	Status      StatusKind     `json:"status"`
	Reason      string         `json:"reason,omitempty"`
	TotalAmount Money          `json:"total_amount"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

func NewClaimEvent(t ClaimEventType, c Claim) ClaimEvent {
	return ClaimEvent{
		Type:        t,
		ClaimID:     c.ID,
		Workflow:    c.Workflow,
		Version:     c.Version,
		Status:      c.Status.Kind,
		Reason:      c.Status.Reason,
		TotalAmount: c.TotalAmount,
		OccurredAt:  c.LastModifiedAt,
	}
}
