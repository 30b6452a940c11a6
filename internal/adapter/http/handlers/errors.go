package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase"
	"claims_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidIndex   = pkg.NewDomainErrorSimple("INVALID_ITEM_INDEX", "Item index must be a non-negative integer", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapClaimError translates registry, ledger, workflow and settlement errors.
func mapClaimError(err error) *pkg.AppError {
	var verr *entities.ValidationError
	var terr *entities.TransitionError

	switch {
	case errors.As(err, &verr):
		details := make([]pkg.ErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, pkg.ErrorDetail{Field: f.Field, Message: f.Message})
		}
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusBadRequest).WithDetails(details...)
	case errors.As(err, &terr):
		appErr := pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusUnprocessableEntity)
		return appErr.WithDetails(pkg.ErrorDetail{Field: "to", Message: string(terr.From) + " -> " + string(terr.To)})
	case errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrCatalogMissing), errors.Is(err, entities.ErrUnknownWireCode):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidItem):
		return pkg.NewDomainError("INVALID_ITEM", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrIndexOutOfRange):
		return pkg.NewDomainError("ITEM_INDEX_OUT_OF_RANGE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrSettlementNotFound):
		return pkg.NewDomainErrorSimple("SETTLEMENT_NOT_FOUND", "Settlement not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrBeneficiaryNotFound):
		return pkg.NewDomainErrorSimple("UNKNOWN_BENEFICIARY", "Beneficiary reference not found", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("UNKNOWN_PROVIDER", "Provider reference not found", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATALOG_CODE", "Code not found in the price catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Claim was modified by another request; reload and retry", http.StatusConflict)
	case errors.Is(err, entities.ErrClaimLocked):
		return pkg.NewDomainErrorSimple("CLAIM_LOCKED", "Claim is in a terminal status", http.StatusConflict)
	case errors.Is(err, entities.ErrNotFinalizable):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FINALIZABLE", "Only executed claims can be settled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// expectedVersion prefers the body version and falls back to the If-Match header
// (a quoted or weak ETag). Zero means absent; the registry rejects it.
func expectedVersion(c *gin.Context, bodyVersion int64) int64 {
	if bodyVersion != 0 {
		return bodyVersion
	}
	tag := strings.TrimSpace(c.GetHeader("If-Match"))
	tag = strings.TrimPrefix(tag, "W/")
	tag = strings.Trim(tag, `"`)
	if tag == "" {
		tag = c.Query("version")
	}
	v, err := strconv.ParseInt(tag, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func itemIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

func setETag(c *gin.Context, version int64) {
	c.Header("ETag", `"`+strconv.FormatInt(version, 10)+`"`)
}
