package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nestcare/models"
	"nestcare/services/subscription"
	"nestcare/services/wizard"
)

// WizardHandler exposes the subscription-configuration wizard over HTTP.
type WizardHandler struct {
	WizardSvc wizard.WizardService
	Logger    *zap.Logger
}

func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{WizardSvc: svc, Logger: logger}
}

// StartSession handles POST /api/wizard/session.
func (h *WizardHandler) StartSession(c *gin.Context) {
	var input struct {
		CustomerID string `json:"customerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, services, err := h.WizardSvc.StartSession(input.CustomerID)
	if err != nil {
		h.respondError(c, err, "failed to start wizard session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":  session,
		"services": services,
	})
}

// GetSession handles GET /api/wizard/session/:sessionID.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.WizardSvc.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err, "failed to fetch wizard session")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// CancelSession handles DELETE /api/wizard/session/:sessionID.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.WizardSvc.CancelSession(c.Param("sessionID")); err != nil {
		h.respondError(c, err, "failed to cancel wizard session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// SelectService handles POST /api/wizard/session/:sessionID/service.
func (h *WizardHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.SelectService(c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.respondError(c, err, "failed to select service")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// SelectOption handles POST /api/wizard/session/:sessionID/option.
func (h *WizardHandler) SelectOption(c *gin.Context) {
	var input struct {
		OptionID string `json:"optionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.SelectOption(c.Param("sessionID"), input.OptionID)
	if err != nil {
		h.respondError(c, err, "failed to select option")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// ToggleScheduleDay handles POST /api/wizard/session/:sessionID/schedule/day.
func (h *WizardHandler) ToggleScheduleDay(c *gin.Context) {
	var input struct {
		Day models.Weekday `json:"day" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.ToggleScheduleDay(c.Param("sessionID"), input.Day)
	if err != nil {
		h.respondError(c, err, "failed to toggle schedule day")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// SetTimeSlot handles POST /api/wizard/session/:sessionID/schedule/slot.
func (h *WizardHandler) SetTimeSlot(c *gin.Context) {
	var input struct {
		Slot models.TimeSlot `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.SetTimeSlot(c.Param("sessionID"), input.Slot)
	if err != nil {
		h.respondError(c, err, "failed to set time slot")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// AdjustRoomQuantity handles POST /api/wizard/session/:sessionID/rooms.
func (h *WizardHandler) AdjustRoomQuantity(c *gin.Context) {
	var input struct {
		Room string `json:"room" binding:"required"`
		// Zero is a valid no-op delta, so no required binding here.
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.AdjustRoomQuantity(c.Param("sessionID"), input.Room, input.Delta)
	if err != nil {
		h.respondError(c, err, "failed to adjust room quantity")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// AdjustBagCount handles POST /api/wizard/session/:sessionID/bags.
func (h *WizardHandler) AdjustBagCount(c *gin.Context) {
	var input struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.AdjustBagCount(c.Param("sessionID"), input.Delta)
	if err != nil {
		h.respondError(c, err, "failed to adjust bag count")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// AdjustMealCount handles POST /api/wizard/session/:sessionID/meals.
func (h *WizardHandler) AdjustMealCount(c *gin.Context) {
	var input struct {
		Day   models.Weekday `json:"day" binding:"required"`
		Delta int            `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.AdjustMealCount(c.Param("sessionID"), input.Day, input.Delta)
	if err != nil {
		h.respondError(c, err, "failed to adjust meal count")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// SetPropertyType handles POST /api/wizard/session/:sessionID/property.
func (h *WizardHandler) SetPropertyType(c *gin.Context) {
	var input struct {
		PropertyType models.PropertyType `json:"propertyType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.SetPropertyType(c.Param("sessionID"), input.PropertyType)
	if err != nil {
		h.respondError(c, err, "failed to set property type")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// SetLaundryType handles POST /api/wizard/session/:sessionID/laundry-type.
func (h *WizardHandler) SetLaundryType(c *gin.Context) {
	var input struct {
		LaundryType models.LaundryType `json:"laundryType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.SetLaundryType(c.Param("sessionID"), input.LaundryType)
	if err != nil {
		h.respondError(c, err, "failed to set laundry type")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// SetMealType handles POST /api/wizard/session/:sessionID/meal-type.
func (h *WizardHandler) SetMealType(c *gin.Context) {
	var input struct {
		MealType models.MealType `json:"mealType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.SetMealType(c.Param("sessionID"), input.MealType)
	if err != nil {
		h.respondError(c, err, "failed to set meal type")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// SetPestControlDetails handles POST /api/wizard/session/:sessionID/treatment.
func (h *WizardHandler) SetPestControlDetails(c *gin.Context) {
	var input struct {
		TreatmentType string   `json:"treatmentType" binding:"required"`
		Severity      string   `json:"severity"`
		TargetAreas   []string `json:"targetAreas"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.SetPestControlDetails(c.Param("sessionID"), input.TreatmentType, input.Severity, input.TargetAreas)
	if err != nil {
		h.respondError(c, err, "failed to set treatment details")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// SetPlanTerms handles POST /api/wizard/session/:sessionID/terms.
func (h *WizardHandler) SetPlanTerms(c *gin.Context) {
	var input models.PlanTerms
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.SetPlanTerms(c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err, "failed to set plan terms")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// RequestStep handles POST /api/wizard/session/:sessionID/step.
func (h *WizardHandler) RequestStep(c *gin.Context) {
	var input struct {
		Step models.WizardStep `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.WizardSvc.RequestStep(c.Param("sessionID"), input.Step)
	if err != nil {
		h.respondError(c, err, "failed to change step")
		return
	}
	c.JSON(http.StatusOK, h.sessionView(session))
}

// Confirm handles POST /api/wizard/session/:sessionID/confirm.
func (h *WizardHandler) Confirm(c *gin.Context) {
	created, err := h.WizardSvc.Confirm(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err, "failed to submit subscription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": created})
}

// sessionView decorates the session with per-step reachability so the
// progress indicator and the step gate derive from the same predicate.
func (h *WizardHandler) sessionView(session *models.WizardSession) gin.H {
	if session == nil {
		return gin.H{}
	}
	return gin.H{
		"session": session,
		"accessibleSteps": gin.H{
			string(models.StepServiceSelect): wizard.IsStepAccessible(session, models.StepServiceSelect),
			string(models.StepOptionSelect):  wizard.IsStepAccessible(session, models.StepOptionSelect),
			string(models.StepDetails):       wizard.IsStepAccessible(session, models.StepDetails),
			string(models.StepReview):        wizard.IsStepAccessible(session, models.StepReview),
		},
	}
}

func (h *WizardHandler) respondError(c *gin.Context, err error, msg string) {
	var sessionErr *wizard.SessionError
	var configErr *wizard.ConfigError
	var validationErr *subscription.ValidationError

	switch {
	case errors.As(err, &sessionErr):
		c.JSON(http.StatusNotFound, gin.H{"error": sessionErr.Message})
	case errors.As(err, &configErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": configErr.Message})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	default:
		h.Logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
