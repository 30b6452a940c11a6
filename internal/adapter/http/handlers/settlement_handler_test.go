package handlers

import (
	"net/http"
	"testing"
	"time"

	"claims_service/internal/adapter/http/handlers/mocks"
	"claims_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSettlementHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SettlementHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/claims/:id/settlement", h.Finalize)
		r.GET("/v1/claims/:id/settlement", h.GetSettlement)
		return r
	}

	t.Run("not finalizable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		r := newRouter(NewSettlementHandler(uc, nil))

		uc.EXPECT().Finalize(gomock.Any(), "c-1").Return(entities.Settlement{}, entities.ErrNotFinalizable)

		w := doJSON(r, http.MethodPost, "/v1/claims/c-1/settlement", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("finalize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		r := newRouter(NewSettlementHandler(uc, nil))

		uc.EXPECT().Finalize(gomock.Any(), "c-1").Return(entities.Settlement{
			ClaimID:          "c-1",
			TotalAmount:      10000,
			CoveredAmount:    8000,
			PatientRemainder: 2000,
			PaymentMode:      entities.PaymentMode{Kind: entities.PaymentModeThirdPartyPayer, CoverageRate: 80},
			FinalizedAt:      time.Now().UTC(),
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/claims/c-1/settlement", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		r := newRouter(NewSettlementHandler(uc, nil))

		uc.EXPECT().GetByClaimID(gomock.Any(), "c-1").Return(entities.Settlement{}, entities.ErrSettlementNotFound)

		w := doJSON(r, http.MethodGet, "/v1/claims/c-1/settlement", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
