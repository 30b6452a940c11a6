package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"claims_service/internal/domain/entities"
	mock_interfaces "claims_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func settlementWithRemainder(remainder entities.Money) entities.Settlement {
	return entities.Settlement{
		ClaimID:          "c-1",
		TotalAmount:      10000,
		CoveredAmount:    10000 - remainder,
		PatientRemainder: remainder,
	}
}

func TestRemainderPaymentUseCase_Collect(t *testing.T) {
	cfg := RemainderPaymentConfig{CurrencyExponent: 2, AccessToken: "TEST-123"}

	t.Run("invalid claim id", func(t *testing.T) {
		uc := NewRemainderPaymentUseCase(nil, nil, nil, cfg, nil)
		_, err := uc.Collect(context.Background(), "   ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewRemainderPaymentUseCase(nil, nil, nil, cfg, nil)
		_, err := uc.Collect(context.Background(), "c-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewRemainderPaymentUseCase(nil, nil, nil, cfg, nil)
		_, err := uc.Collect(context.Background(), "c-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("settlement not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settlements := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRemainderPaymentUseCase(nil, settlements, gw, cfg, nil)

		settlements.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(entities.Settlement{}, nil)

		_, err := uc.Collect(context.Background(), "c-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, entities.ErrSettlementNotFound) {
			t.Fatalf("expected ErrSettlementNotFound, got %v", err)
		}
	})

	t.Run("nothing to collect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settlements := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRemainderPaymentUseCase(nil, settlements, gw, cfg, nil)

		settlements.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(settlementWithRemainder(0), nil)

		_, err := uc.Collect(context.Background(), "c-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrNothingToCollect) {
			t.Fatalf("expected ErrNothingToCollect, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settlements := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRemainderPaymentUseCase(nil, settlements, gw, cfg, nil)

		settlements.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(settlementWithRemainder(2000), nil)

		_, err := uc.Collect(context.Background(), "c-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway error is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settlements := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRemainderPaymentUseCase(nil, settlements, gw, cfg, nil)

		settlements.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(settlementWithRemainder(2000), nil)
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"message":"Customer not found","code":2002}`))

		_, err := uc.Collect(context.Background(), "c-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayCustomerNotFound) {
			t.Fatalf("expected ErrPaymentGatewayCustomerNotFound, got %v", err)
		}
	})

	t.Run("amount comes from the settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRemainderPaymentRepository(ctrl)
		settlements := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRemainderPaymentUseCase(repo, settlements, gw, cfg, nil)

		settlements.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(settlementWithRemainder(2050), nil)
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if m["transaction_amount"] != 20.5 {
					t.Fatalf("expected transaction_amount 20.5, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "c-1" {
					t.Fatalf("expected external_reference c-1, got %v", m["external_reference"])
				}
				payer, _ := m["payer"].(map[string]any)
				if payer["email"] != "test_user_br@testuser.com" {
					t.Fatalf("expected sandbox payer email, got %v", payer)
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RemainderPayment{})).DoAndReturn(
			func(_ context.Context, p entities.RemainderPayment) (entities.RemainderPayment, error) {
				return p, nil
			},
		)

		res, err := uc.Collect(context.Background(), "c-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-1" || res.Amount != 2050 || res.Status != entities.PaymentStatusApproved || res.Payload["id"] != "mp-1" {
			t.Fatalf("unexpected payment: %+v", res)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRemainderPaymentRepository(ctrl)
		settlements := mock_interfaces.NewMockISettlementRepository(ctrl)
		uc := NewRemainderPaymentUseCase(repo, settlements, nil, RemainderPaymentConfig{MockMode: true, CurrencyExponent: 2}, nil)

		settlements.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(settlementWithRemainder(500), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.RemainderPayment) (entities.RemainderPayment, error) {
				return p, nil
			},
		)

		res, err := uc.Collect(context.Background(), "c-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" || res.Status != entities.PaymentStatusApproved || res.Payload["transaction_amount"] != 5.0 {
			t.Fatalf("unexpected payment: %+v", res)
		}
	})
}

func TestRemainderPaymentUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRemainderPaymentRepository(ctrl)
	uc := NewRemainderPaymentUseCase(repo, nil, nil, RemainderPaymentConfig{}, nil)

	if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
		t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.RemainderPayment{}, nil)
	if _, err := uc.GetByID(context.Background(), "p-1"); !errors.Is(err, ErrRemainderPaymentNotFound) {
		t.Fatalf("expected ErrRemainderPaymentNotFound, got %v", err)
	}

	repo.EXPECT().ListByClaimID(gomock.Any(), "c-1").Return([]entities.RemainderPayment{{ID: "p-1"}}, nil)
	list, err := uc.ListByClaimID(context.Background(), " c-1 ")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list %+v err=%v", list, err)
	}
}
