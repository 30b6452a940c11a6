package interfaces

import (
	"context"

	"claims_service/internal/domain/entities"
)

// IEventPublisher announces persisted claim mutations (e.g. on RabbitMQ).
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.ClaimEvent) error
}
