package routes

import (
	"github.com/gin-gonic/gin"

	"nestcare/handlers"
)

// RegisterWizardRoutes registers all endpoints for the configuration wizard.
func RegisterWizardRoutes(r *gin.Engine, h *handlers.WizardHandler) {
	wizard := r.Group("/api/wizard")
	{
		wizard.POST("/session", h.StartSession)
		wizard.GET("/session/:sessionID", h.GetSession)
		wizard.DELETE("/session/:sessionID", h.CancelSession)

		wizard.POST("/session/:sessionID/service", h.SelectService)
		wizard.POST("/session/:sessionID/option", h.SelectOption)
		wizard.POST("/session/:sessionID/schedule/day", h.ToggleScheduleDay)
		wizard.POST("/session/:sessionID/schedule/slot", h.SetTimeSlot)
		wizard.POST("/session/:sessionID/rooms", h.AdjustRoomQuantity)
		wizard.POST("/session/:sessionID/bags", h.AdjustBagCount)
		wizard.POST("/session/:sessionID/meals", h.AdjustMealCount)
		wizard.POST("/session/:sessionID/property", h.SetPropertyType)
		wizard.POST("/session/:sessionID/laundry-type", h.SetLaundryType)
		wizard.POST("/session/:sessionID/meal-type", h.SetMealType)
		wizard.POST("/session/:sessionID/treatment", h.SetPestControlDetails)
		wizard.POST("/session/:sessionID/terms", h.SetPlanTerms)
		wizard.POST("/session/:sessionID/step", h.RequestStep)

		wizard.POST("/session/:sessionID/confirm", h.Confirm)
	}
}
