package interfaces

import (
	"context"

	"claims_service/internal/domain/entities"
)

// Read-only master data consumed by the registry. Implementations return the matching
// entities.Err*NotFound error for unknown references instead of an empty value.

type IBeneficiaryDirectory interface {
	Resolve(ctx context.Context, ref string) (entities.BeneficiaryInfo, error)
}

type IProviderDirectory interface {
	Resolve(ctx context.Context, ref string) (entities.ProviderInfo, error)
}

type IPriceCatalog interface {
	PriceOf(ctx context.Context, code string) (entities.CatalogEntry, error)
}
