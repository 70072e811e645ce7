package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

type PredictionHandler struct {
	predictionService services.PredictionService
}

func NewPredictionHandler(predictionService services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// GET /predictions/burnout
func (ph *PredictionHandler) Burnout(c *gin.Context) {
	prediction, err := ph.predictionService.Burnout(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "burnout_prediction_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// GET /predictions/timeseries?days_ahead=7
func (ph *PredictionHandler) Timeseries(c *gin.Context) {
	daysAhead, _ := strconv.Atoi(c.DefaultQuery("days_ahead", "7"))
	prediction, err := ph.predictionService.Timeseries(c.Request.Context(), daysAhead)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "timeseries_prediction_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prediction)
}
