package interfaces

import (
	"context"

	"claims_service/internal/domain/entities"
)

// ISettlementRepository stores settlements keyed by claim id. Settlements are insert-only.

type ISettlementRepository interface {
	// CreateIfAbsent stores s unless a settlement already exists for the claim, in which
	// case the stored one is returned with created=false.
	CreateIfAbsent(ctx context.Context, s entities.Settlement) (stored entities.Settlement, created bool, err error)
	GetByClaimID(ctx context.Context, claimID string) (entities.Settlement, error)
}
