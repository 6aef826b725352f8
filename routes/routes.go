package routes

import (
	"github.com/gin-gonic/gin"

	"nestcare/handlers"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Wizard       *handlers.WizardHandler
	Catalog      *handlers.CatalogHandler
	Subscription *handlers.SubscriptionHandler
}

// RegisterRoutes registers all endpoints.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	r.GET("/health", handlers.HealthCheck)

	RegisterWizardRoutes(r, h.Wizard)
	RegisterCatalogRoutes(r, h.Catalog)
	RegisterSubscriptionRoutes(r, h.Subscription)
}
