package app

import (
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/handlers"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
)

type Handlers struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	User           *handlers.UserHandler
	Wellbeing      *handlers.WellbeingHandler
	Prediction     *handlers.PredictionHandler
	Analytics      *handlers.AnalyticsHandler
	Alert          *handlers.AlertHandler
	Chat           *handlers.ChatHandler
	Recommendation *handlers.RecommendationHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:         handlers.NewHealthHandler(),
		Auth:           handlers.NewAuthHandler(serviceset.Auth),
		User:           handlers.NewUserHandler(serviceset.User),
		Wellbeing:      handlers.NewWellbeingHandler(serviceset.Wellbeing),
		Prediction:     handlers.NewPredictionHandler(serviceset.Prediction),
		Analytics:      handlers.NewAnalyticsHandler(serviceset.Analytics),
		Alert:          handlers.NewAlertHandler(serviceset.Alert),
		Chat:           handlers.NewChatHandler(serviceset.ChatSession),
		Recommendation: handlers.NewRecommendationHandler(serviceset.Recommender),
	}
}
