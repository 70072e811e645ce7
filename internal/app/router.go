package app

import (
	"github.com/gin-gonic/gin"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/observability"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Mode:           cfg.Mode,
		AllowedOrigins: cfg.AllowedOrigins,
		TracingEnabled: observability.Enabled(),

		AuthMiddleware: middlewareset.Auth,

		HealthHandler:         handlerset.Health,
		AuthHandler:           handlerset.Auth,
		UserHandler:           handlerset.User,
		WellbeingHandler:      handlerset.Wellbeing,
		PredictionHandler:     handlerset.Prediction,
		AnalyticsHandler:      handlerset.Analytics,
		AlertHandler:          handlerset.Alert,
		ChatHandler:           handlerset.Chat,
		RecommendationHandler: handlerset.Recommendation,
	})
}
