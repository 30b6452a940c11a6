package handlers

import (
	"errors"
	"io"
	"net/http"

	request "claims_service/internal/adapter/http/dto/request"
	response "claims_service/internal/adapter/http/dto/response"
	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClaimHandler exposes the claim registry under /v1/claims.
type ClaimHandler struct {
	usecase usecase.IClaimUseCase
	log     *zap.Logger
}

func NewClaimHandler(uc usecase.IClaimUseCase, log *zap.Logger) *ClaimHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClaimHandler{usecase: uc, log: log}
}

func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var payload request.CreateClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	draft, err := payload.ToDraft()
	if err != nil {
		writeError(c, mapClaimError(err))
		return
	}

	claim, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}

	setETag(c, claim.Version)
	c.JSON(http.StatusCreated, response.FromClaim(claim))
}

func (h *ClaimHandler) ListClaims(c *gin.Context) {
	var q request.ClaimListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	page, pageSize := q.Pagination()
	res, err := h.usecase.List(c.Request.Context(), q.Filter(), page, pageSize)
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}

	c.JSON(http.StatusOK, response.FromClaimPage(res))
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id := c.Param("id")
	claim, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}

	setETag(c, claim.Version)
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *ClaimHandler) GetCoverage(c *gin.Context) {
	id := c.Param("id")
	cov, err := h.usecase.Coverage(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "coverage", id, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCoverage(id, cov))
}

func (h *ClaimHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	claim, err := h.usecase.AddItem(c.Request.Context(), id, expectedVersion(c, payload.Version), payload.ToInput())
	h.respond(c, "add-item", id, claim, err)
}

func (h *ClaimHandler) UpdateItem(c *gin.Context) {
	idx, ok := itemIndex(c)
	if !ok {
		writeError(c, errInvalidIndex)
		return
	}
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	claim, err := h.usecase.UpdateItem(c.Request.Context(), id, expectedVersion(c, payload.Version), idx, payload.ToPatch())
	h.respond(c, "update-item", id, claim, err)
}

func (h *ClaimHandler) RemoveItem(c *gin.Context) {
	idx, ok := itemIndex(c)
	if !ok {
		writeError(c, errInvalidIndex)
		return
	}
	// the body is optional: If-Match or ?version= work as well
	var payload request.VersionedRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	claim, err := h.usecase.RemoveItem(c.Request.Context(), id, expectedVersion(c, payload.Version), idx)
	h.respond(c, "remove-item", id, claim, err)
}

func (h *ClaimHandler) SetPaymentMode(c *gin.Context) {
	var payload request.SetPaymentModeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	mode, err := payload.ToPaymentMode()
	if err != nil {
		writeError(c, mapClaimError(err))
		return
	}

	id := c.Param("id")
	claim, err := h.usecase.SetPaymentMode(c.Request.Context(), id, expectedVersion(c, payload.Version), mode)
	h.respond(c, "set-payment-mode", id, claim, err)
}

func (h *ClaimHandler) TransitionClaim(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	to, err := payload.Target()
	if err != nil {
		writeError(c, mapClaimError(entities.NewValidationError(entities.FieldError{Field: "to", Message: "unknown status"})))
		return
	}

	id := c.Param("id")
	claim, err := h.usecase.Transition(c.Request.Context(), id, expectedVersion(c, payload.Version), to, payload.Reason)
	h.respond(c, "transition", id, claim, err)
}

func (h *ClaimHandler) respond(c *gin.Context, op, id string, claim entities.Claim, err error) {
	if err != nil {
		h.fail(c, op, id, err)
		return
	}
	setETag(c, claim.Version)
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *ClaimHandler) fail(c *gin.Context, op, id string, err error) {
	appErr := mapClaimError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[claim][handler] "+op+" failed", zap.String("claim_id", id), zap.Error(err))
	} else {
		h.log.Info("[claim][handler] "+op+" rejected", zap.String("claim_id", id), zap.String("code", appErr.Code))
	}
	writeError(c, appErr)
}
