package interfaces

import (
	"context"

	"claims_service/internal/domain/entities"
)

// IClaimRepository is the record store behind the claim registry.
//
// The registry relies on it to:
//   - create a claim (fails if the id already exists)
//   - load a claim by id (zero Claim when missing)
//   - save a mutated claim only if the stored version still equals expectedVersion,
//     otherwise return entities.ErrConcurrentModification
//   - query claims with a normalized filter, returning one page and the total count

type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	Save(ctx context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error)
	Query(ctx context.Context, filter entities.ClaimFilter, page, pageSize int) ([]entities.Claim, int, error)
}
