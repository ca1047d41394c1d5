package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portfolio-sim/internal/api/models"
	"portfolio-sim/internal/model"
)

// ScheduleHandler describes the built-in schedule policies.
type ScheduleHandler struct {
	log zerolog.Logger
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{log: log.With().Str("component", "schedule_handler").Logger()}
}

// ListSchedules handles GET /api/v1/schedules.
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules := []models.ScheduleInfo{
		{
			Name:        "call",
			Description: "Spreads 20% of commitment evenly over the first 60 months. Partial-call assumption: the remaining 80% is never drawn.",
			Parameters: []models.ParameterInfo{
				{Name: "fraction_per_month", Type: "float", Description: "Fraction of commitment called each month during the call window", Default: 0.2 / 60},
				{Name: "window_months", Type: "int", Description: "Length of the call window", Default: 60},
			},
		},
		{
			Name:        "nav_growth",
			Description: "J-curve growth factors: value drag for two years, slow growth through year five, harvest growth after.",
			Parameters: []models.ParameterInfo{
				{Name: "drag_factor", Type: "float", Description: "Monthly factor for months 0-23", Default: 0.99},
				{Name: "growth_factor", Type: "float", Description: "Monthly factor for months 24-59", Default: 1.01},
				{Name: "harvest_factor", Type: "float", Description: "Monthly factor from month 60", Default: 1.03},
			},
		},
		{
			Name:        "distribution",
			Description: "Distributes 2% of commitment per month from month 60 through the end of the fund's life.",
			Parameters: []models.ParameterInfo{
				{Name: "fraction_per_month", Type: "float", Description: "Fraction of commitment distributed each month once harvest begins", Default: 0.02},
				{Name: "start_month", Type: "int", Description: "First month of distributions", Default: 60},
			},
		},
	}

	h.log.Debug().Int("count", len(schedules)).Msg("listing default schedules")
	c.JSON(http.StatusOK, gin.H{
		"fund_life_months": model.DefaultFundLife,
		"schedules":        schedules,
	})
}
