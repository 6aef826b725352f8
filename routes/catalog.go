package routes

import (
	"github.com/gin-gonic/gin"

	"nestcare/handlers"
)

// RegisterCatalogRoutes registers the service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.CatalogHandler) {
	services := r.Group("/api/services")
	{
		services.GET("", h.ListServices)
		services.GET("/:id", h.GetServiceByID)
	}
}
