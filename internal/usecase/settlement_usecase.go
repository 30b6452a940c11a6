package usecase

import (
	"context"
	"strings"
	"time"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ISettlementUseCase records the immutable financial outcome of executed claims.
//
// Finalize is idempotent: once a settlement exists for a claim, every later call
// returns that same record.

type ISettlementUseCase interface {
	Finalize(ctx context.Context, claimID string) (entities.Settlement, error)
	GetByClaimID(ctx context.Context, claimID string) (entities.Settlement, error)
}

type SettlementUseCase struct {
	repo      interfaces.ISettlementRepository
	claimRepo interfaces.IClaimRepository
	publisher interfaces.IEventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(repo interfaces.ISettlementRepository, claimRepo interfaces.IClaimRepository, publisher interfaces.IEventPublisher, logger *zap.Logger) *SettlementUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettlementUseCase{
		repo:      repo,
		claimRepo: claimRepo,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *SettlementUseCase) Finalize(ctx context.Context, claimID string) (entities.Settlement, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.Settlement{}, ErrInvalidClaimID
	}

	existing, err := u.repo.GetByClaimID(ctx, claimID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if existing.ClaimID != "" {
		return existing, nil
	}

	c, err := u.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if c.ID == "" {
		return entities.Settlement{}, entities.ErrClaimNotFound
	}

	s, err := entities.NewSettlement(c, u.now())
	if err != nil {
		u.logger.Info("[settlement][usecase] claim not finalizable",
			zap.String("claim_id", claimID),
			zap.String("status", string(c.Status.Kind)),
			zap.Error(err),
		)
		return entities.Settlement{}, err
	}

	stored, created, err := u.repo.CreateIfAbsent(ctx, s)
	if err != nil {
		u.logger.Error("[settlement][usecase] store failed", zap.String("claim_id", claimID), zap.Error(err))
		return entities.Settlement{}, err
	}
	if !created {
		u.logger.Info("[settlement][usecase] settlement already recorded", zap.String("claim_id", claimID))
		return stored, nil
	}

	u.logger.Info("[settlement][usecase] settlement recorded",
		zap.String("claim_id", claimID),
		zap.Int64("total_amount", int64(stored.TotalAmount)),
		zap.Int64("covered_amount", int64(stored.CoveredAmount)),
		zap.Int64("patient_remainder", int64(stored.PatientRemainder)),
	)
	if u.publisher != nil {
		ev := entities.NewClaimEvent(entities.EventSettlementFinalized, c)
		ev.OccurredAt = stored.FinalizedAt
		if err := u.publisher.Publish(ctx, ev); err != nil {
			u.logger.Warn("[settlement][usecase] event publish failed", zap.String("claim_id", claimID), zap.Error(err))
		}
	}
	return stored, nil
}

func (u *SettlementUseCase) GetByClaimID(ctx context.Context, claimID string) (entities.Settlement, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.Settlement{}, ErrInvalidClaimID
	}

	s, err := u.repo.GetByClaimID(ctx, claimID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if s.ClaimID == "" {
		return entities.Settlement{}, entities.ErrSettlementNotFound
	}
	return s, nil
}
