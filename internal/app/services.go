package app

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/engine"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

type Services struct {
	Auth        services.AuthService
	User        services.UserService
	Wellbeing   services.WellbeingService
	Prediction  services.PredictionService
	Analytics   services.AnalyticsService
	Alert       services.AlertService
	ChatSession services.ChatSessionService

	Recommender *engine.Recommender
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, rdb *goredis.Client) (Services, error) {
	log.Info("Wiring services...")

	recommender, err := engine.NewRecommender()
	if err != nil {
		return Services{}, fmt.Errorf("init recommender: %w", err)
	}

	return Services{
		Auth: services.NewAuthService(db, log, reposet.User, reposet.UserToken, services.AuthConfig{
			JWTSecret:  cfg.JWTSecretKey,
			AccessTTL:  cfg.AccessTokenTTL,
			RefreshTTL: cfg.RefreshTokenTTL,
		}),
		User:       services.NewUserService(db, log, reposet.User),
		Wellbeing:  services.NewWellbeingService(db, log, reposet.WellbeingRecord, reposet.Alert),
		Prediction: services.NewPredictionService(db, log, reposet.WellbeingRecord, recommender),
		Analytics: services.NewAnalyticsService(db, log, reposet.WellbeingRecord, reposet.User, rdb, services.AnalyticsConfig{
			AnonymizeSalt: cfg.AnonymizeSalt,
			CacheTTL:      cfg.AnalyticsCacheTTL,
		}),
		Alert:       services.NewAlertService(db, log, reposet.Alert),
		ChatSession: services.NewChatSessionService(db, log, reposet.ChatSession),
		Recommender: recommender,
	}, nil
}
