package routes

import (
	"github.com/gin-gonic/gin"

	"nestcare/handlers"
)

// RegisterSubscriptionRoutes registers the subscription endpoints.
func RegisterSubscriptionRoutes(r *gin.Engine, h *handlers.SubscriptionHandler) {
	subs := r.Group("/api/subscriptions")
	{
		subs.POST("", h.Create)
		subs.GET("/:id", h.GetByID)
		subs.POST("/:id/cancel", h.Cancel)
	}

	r.GET("/api/customers/:customerID/subscriptions", h.ListByCustomer)
}
