package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestcare/utils"
)

// HealthCheck handles GET /health, returning the latest health snapshot.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
