package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

type WellbeingHandler struct {
	wellbeingService services.WellbeingService
}

func NewWellbeingHandler(wellbeingService services.WellbeingService) *WellbeingHandler {
	return &WellbeingHandler{wellbeingService: wellbeingService}
}

// POST /wellbeing
// body: { "mood_score": 1-10, "energy_score": 1-10, "stress_score": 1-10,
//         "sleep_quality": 1-10, "work_hours": 0-24, "notes": "...",
//         "sentiment_score": -1..1 }
func (wh *WellbeingHandler) CreateRecord(c *gin.Context) {
	var req services.CreateRecordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	result, err := wh.wellbeingService.CreateRecord(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "create_record_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /wellbeing/history?days=30
func (wh *WellbeingHandler) History(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	records, err := wh.wellbeingService.History(c.Request.Context(), days)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "history_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
}
