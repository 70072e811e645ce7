package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

type AlertHandler struct {
	alertService services.AlertService
}

func NewAlertHandler(alertService services.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// GET /alerts?unresolved=true
func (ah *AlertHandler) ListMine(c *gin.Context) {
	unresolvedOnly := c.Query("unresolved") == "true"
	alerts, err := ah.alertService.ListMine(c.Request.Context(), unresolvedOnly)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "list_alerts_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "count": len(alerts)})
}

// POST /alerts/:id/resolve
func (ah *AlertHandler) Resolve(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": "invalid alert id"})
		return
	}
	if err := ah.alertService.Resolve(c.Request.Context(), alertID); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "resolve_alert_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
