package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestcare/models"
	"nestcare/services/subscription"
)

// SubscriptionHandler exposes stored subscriptions.
type SubscriptionHandler struct {
	SubscriptionSvc subscription.SubscriptionService
	Logger          *zap.Logger
}

func NewSubscriptionHandler(svc subscription.SubscriptionService, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{SubscriptionSvc: svc, Logger: logger}
}

// Create handles POST /api/subscriptions. The request runs through the same
// adapter validation as the wizard's confirm step.
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var input struct {
		CustomerID string                   `json:"customerId" binding:"required"`
		Terms      models.PlanTerms         `json:"terms" binding:"required"`
		Services   []models.SelectedService `json:"services" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	req, err := subscription.BuildRequest(input.CustomerID, input.Terms, input.Services)
	if err != nil {
		var validationErr *subscription.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": validationErr.Message,
				"field": validationErr.Field,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.SubscriptionSvc.Create(c.Request.Context(), *req)
	if err != nil {
		h.Logger.Error("Create: subscription creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subscription"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetByID handles GET /api/subscriptions/:id.
func (h *SubscriptionHandler) GetByID(c *gin.Context) {
	sub, err := h.SubscriptionSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		var notFound *subscription.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("GetByID: failed to fetch subscription", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch subscription"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListByCustomer handles GET /api/customers/:customerID/subscriptions.
func (h *SubscriptionHandler) ListByCustomer(c *gin.Context) {
	subs, err := h.SubscriptionSvc.ListByCustomer(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		h.Logger.Error("ListByCustomer: failed to list subscriptions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list subscriptions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Cancel handles POST /api/subscriptions/:id/cancel.
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	if err := h.SubscriptionSvc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		var notFound *subscription.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Cancel: failed to cancel subscription", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
