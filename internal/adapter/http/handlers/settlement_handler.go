package handlers

import (
	"net/http"

	response "claims_service/internal/adapter/http/dto/response"
	"claims_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettlementHandler handles finalization and lookup of claim settlements.
type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
	log     *zap.Logger
}

func NewSettlementHandler(uc usecase.ISettlementUseCase, log *zap.Logger) *SettlementHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettlementHandler{usecase: uc, log: log}
}

// Finalize is idempotent: repeating it returns the settlement recorded first.
func (h *SettlementHandler) Finalize(c *gin.Context) {
	id := c.Param("id")
	s, err := h.usecase.Finalize(c.Request.Context(), id)
	if err != nil {
		appErr := mapClaimError(err)
		h.log.Info("[settlement][handler] finalize failed", zap.String("claim_id", id), zap.String("code", appErr.Code), zap.Error(err))
		writeError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.FromSettlement(s))
}

func (h *SettlementHandler) GetSettlement(c *gin.Context) {
	id := c.Param("id")
	s, err := h.usecase.GetByClaimID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapClaimError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSettlement(s))
}
