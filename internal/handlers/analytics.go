package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GET /analytics/organizational?days=30  (manager+)
func (ah *AnalyticsHandler) Organizational(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	report, err := ah.analyticsService.Organizational(c.Request.Context(), days)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "organizational_report_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /analytics/personal?days=30
func (ah *AnalyticsHandler) Personal(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	summary, err := ah.analyticsService.Personal(c.Request.Context(), days)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "personal_summary_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
