package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims      = "/claims"
	PathSettlements = "/settlements"
	PathPayments    = "/payments"
)

func addClaimRoutes(rg *gin.RouterGroup, h Handlers) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", h.Claims.CreateClaim)
		claims.GET("", h.Claims.ListClaims)
		claims.GET("/:id", h.Claims.GetClaim)
		claims.GET("/:id/coverage", h.Claims.GetCoverage)

		// mutations take the expected version from the body, If-Match or ?version=
		claims.POST("/:id/items", h.Claims.AddItem)
		claims.PATCH("/:id/items/:index", h.Claims.UpdateItem)
		claims.DELETE("/:id/items/:index", h.Claims.RemoveItem)
		claims.PUT("/:id/payment-mode", h.Claims.SetPaymentMode)
		claims.POST("/:id/transitions", h.Claims.TransitionClaim)

		claims.POST("/:id/settlement", h.Settlements.Finalize)
		claims.GET("/:id/settlement", h.Settlements.GetSettlement)
	}

	settlements := rg.Group(PathSettlements)
	{
		settlements.POST("/:claim_id/payments", h.Payments.CollectRemainder)
		settlements.GET("/:claim_id/payments", h.Payments.ListPayments)
	}

	rg.GET(PathPayments+"/:id", h.Payments.GetPayment)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
