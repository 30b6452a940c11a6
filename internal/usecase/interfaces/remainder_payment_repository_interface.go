package interfaces

import (
	"context"

	"claims_service/internal/domain/entities"
)

// IRemainderPaymentRepository abstracts persistence for RemainderPayment.

type IRemainderPaymentRepository interface {
	Create(ctx context.Context, p entities.RemainderPayment) (entities.RemainderPayment, error)
	GetByID(ctx context.Context, id string) (entities.RemainderPayment, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.RemainderPayment, error)
}
