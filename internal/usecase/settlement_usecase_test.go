package usecase

import (
	"context"
	"errors"
	"testing"

	"claims_service/internal/adapter/persistence/repository"
	"claims_service/internal/domain/entities"
	mock_interfaces "claims_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func executedClaim() entities.Claim {
	c := pendingClaim(4)
	c.Items = []entities.LineItem{{Code: "A", Quantity: 2, UnitPrice: 5000, Reimbursable: true}}
	c.PaymentMode = entities.PaymentMode{Kind: entities.PaymentModeThirdPartyPayer, CoverageRate: 80}
	c.Status = entities.Status{Kind: entities.StatusExecuted}
	c.RecomputeTotal()
	return c
}

func TestSettlementUseCase_Finalize(t *testing.T) {
	t.Run("invalid claim id", func(t *testing.T) {
		uc := NewSettlementUseCase(nil, nil, nil, nil)
		_, err := uc.Finalize(context.Background(), " ")
		if !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("claim not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		claims := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewSettlementUseCase(repo, claims, nil, nil)

		repo.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(entities.Settlement{}, nil)
		claims.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Claim{}, nil)

		_, err := uc.Finalize(context.Background(), "c-1")
		if !errors.Is(err, entities.ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("not executed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		claims := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewSettlementUseCase(repo, claims, nil, nil)

		c := executedClaim()
		c.Status = entities.Status{Kind: entities.StatusApproved}
		repo.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(entities.Settlement{}, nil)
		claims.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)

		_, err := uc.Finalize(context.Background(), "c-1")
		if !errors.Is(err, entities.ErrNotFinalizable) {
			t.Fatalf("expected ErrNotFinalizable, got %v", err)
		}
	})

	t.Run("existing settlement is returned untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		claims := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewSettlementUseCase(repo, claims, nil, nil)

		stored := entities.Settlement{ClaimID: "c-1", TotalAmount: 10000, CoveredAmount: 8000, PatientRemainder: 2000}
		repo.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(stored, nil)

		res, err := uc.Finalize(context.Background(), "c-1")
		if err != nil || res.CoveredAmount != 8000 {
			t.Fatalf("expected stored settlement, got %+v err=%v", res, err)
		}
	})

	t.Run("lost race returns winner without publishing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		claims := mock_interfaces.NewMockIClaimRepository(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewSettlementUseCase(repo, claims, pub, nil)

		winner := entities.Settlement{ClaimID: "c-1", TotalAmount: 10000, CoveredAmount: 8000, PatientRemainder: 2000}
		repo.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(entities.Settlement{}, nil)
		claims.EXPECT().GetByID(gomock.Any(), "c-1").Return(executedClaim(), nil)
		repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(winner, false, nil)

		res, err := uc.Finalize(context.Background(), "c-1")
		if err != nil || res.ClaimID != "c-1" {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("records and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		claims := mock_interfaces.NewMockIClaimRepository(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewSettlementUseCase(repo, claims, pub, nil)
		uc.now = fixedClock

		repo.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(entities.Settlement{}, nil)
		claims.EXPECT().GetByID(gomock.Any(), "c-1").Return(executedClaim(), nil)
		repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.AssignableToTypeOf(entities.Settlement{})).DoAndReturn(
			func(_ context.Context, s entities.Settlement) (entities.Settlement, bool, error) {
				if s.TotalAmount != 10000 || s.CoveredAmount != 8000 || s.PatientRemainder != 2000 {
					t.Fatalf("unexpected settlement: %+v", s)
				}
				if !s.FinalizedAt.Equal(fixedNow) || len(s.ItemsSnapshot) != 1 {
					t.Fatalf("unexpected settlement: %+v", s)
				}
				return s, true, nil
			},
		)
		pub.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(entities.ClaimEvent{})).DoAndReturn(
			func(_ context.Context, ev entities.ClaimEvent) error {
				if ev.Type != entities.EventSettlementFinalized || !ev.OccurredAt.Equal(fixedNow) {
					t.Fatalf("unexpected event %+v", ev)
				}
				return nil
			},
		)

		if _, err := uc.Finalize(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSettlementUseCase_FinalizeIsIdempotent(t *testing.T) {
	store := repository.NewMemoryStore()
	c := executedClaim()
	if _, err := store.Claims().Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := NewSettlementUseCase(store.Settlements(), store.Claims(), nil, nil)

	first, err := uc.Finalize(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Finalize(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.FinalizedAt.Equal(second.FinalizedAt) || first.CoveredAmount != second.CoveredAmount || first.PatientRemainder != second.PatientRemainder {
		t.Fatalf("expected identical settlements, got %+v and %+v", first, second)
	}

	got, err := uc.GetByClaimID(context.Background(), c.ID)
	if err != nil || got.ClaimID != c.ID {
		t.Fatalf("unexpected settlement %+v err=%v", got, err)
	}
	if _, err := uc.GetByClaimID(context.Background(), "other"); !errors.Is(err, entities.ErrSettlementNotFound) {
		t.Fatalf("expected ErrSettlementNotFound, got %v", err)
	}
}
