package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "claims_service/internal/adapter/http/dto/response"
	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase"
	"claims_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RemainderPaymentHandler collects the patient remainder of a settlement.
type RemainderPaymentHandler struct {
	usecase usecase.IRemainderPaymentUseCase
	log     *zap.Logger
}

func NewRemainderPaymentHandler(uc usecase.IRemainderPaymentUseCase, log *zap.Logger) *RemainderPaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RemainderPaymentHandler{usecase: uc, log: log}
}

// CollectRemainder accepts a Mercado Pago payment body, raw or wrapped in {"mp_payload": ...}.
// The amount is always taken from the settlement.
func (h *RemainderPaymentHandler) CollectRemainder(c *gin.Context) {
	claimID := c.Param("claim_id")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Collect(c.Request.Context(), claimID, mpPayload)
	if err != nil {
		h.log.Info("[payment][handler] collect failed", zap.String("claim_id", claimID), zap.Error(err))
		writeError(c, mapRemainderPaymentError(err))
		return
	}
	h.log.Info("[payment][handler] collect success",
		zap.String("claim_id", claimID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)

	c.JSON(http.StatusCreated, response.FromRemainderPayment(created))
}

func (h *RemainderPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByClaimID(c.Request.Context(), c.Param("claim_id"))
	if err != nil {
		writeError(c, mapRemainderPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromRemainderPayments(payments))
}

func (h *RemainderPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRemainderPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromRemainderPayment(p))
}

// readMPPayload unwraps the optional mp_payload envelope. Invalid JSON is passed through
// untouched; the use case decides whether it is acceptable.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if strings.TrimSpace(string(wrapped)) == "null" {
				return nil, nil
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapRemainderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrSettlementNotFound):
		return pkg.NewDomainErrorSimple("SETTLEMENT_NOT_FOUND", "Settlement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToCollect):
		return pkg.NewDomainErrorSimple("NOTHING_TO_COLLECT", "Settlement has no patient remainder", http.StatusConflict)
	case errors.Is(err, usecase.ErrRemainderPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
