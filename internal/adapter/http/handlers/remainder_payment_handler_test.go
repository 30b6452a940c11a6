package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claims_service/internal/adapter/http/handlers/mocks"
	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(h *RemainderPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/settlements/:claim_id/payments", h.CollectRemainder)
	r.GET("/v1/settlements/:claim_id/payments", h.ListPayments)
	r.GET("/v1/payments/:id", h.GetPayment)
	return r
}

func TestRemainderPaymentHandler_CollectRemainder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("body read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRemainderPaymentUseCase(ctrl)
		r := newPaymentRouter(NewRemainderPaymentHandler(uc, nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/settlements/c-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRemainderPaymentUseCase(ctrl)
		r := newPaymentRouter(NewRemainderPaymentHandler(uc, nil))

		uc.EXPECT().Collect(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.RemainderPayment, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return entities.RemainderPayment{ID: "mp-1", ClaimID: "c-1", Amount: 2000, Date: time.Now().UTC(), Status: entities.PaymentStatusApproved}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/settlements/c-1/payments", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrInvalidMPPayload:               http.StatusBadRequest,
			usecase.ErrPaymentGatewayUnauthorized:     http.StatusUnauthorized,
			usecase.ErrPaymentGatewayNotConfigured:    http.StatusServiceUnavailable,
			usecase.ErrNothingToCollect:               http.StatusConflict,
			entities.ErrSettlementNotFound:            http.StatusNotFound,
			usecase.ErrPaymentGatewayCustomerNotFound: http.StatusBadRequest,
			errors.New("boom"):                        http.StatusInternalServerError,
		}
		for err, want := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIRemainderPaymentUseCase(ctrl)
			r := newPaymentRouter(NewRemainderPaymentHandler(uc, nil))

			uc.EXPECT().Collect(gomock.Any(), "c-1", gomock.Any()).Return(entities.RemainderPayment{}, err)

			w := doJSON(r, http.MethodPost, "/v1/settlements/c-1/payments", `{"payment_method_id":"pix"}`)
			if w.Code != want {
				t.Fatalf("%v: expected %d, got %d", err, want, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestRemainderPaymentHandler_Read(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRemainderPaymentUseCase(ctrl)
	r := newPaymentRouter(NewRemainderPaymentHandler(uc, nil))

	uc.EXPECT().ListByClaimID(gomock.Any(), "c-1").Return(nil, nil)
	w := doJSON(r, http.MethodGet, "/v1/settlements/c-1/payments", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.RemainderPayment{}, usecase.ErrRemainderPaymentNotFound)
	w = doJSON(r, http.MethodGet, "/v1/payments/p-9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
