package app

import (
	"strings"
	"time"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/utils"
)

type Config struct {
	Mode           string
	Port           string
	AllowedOrigins []string

	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	AnonymizeSalt     string
	RedisAddr         string
	AnalyticsCacheTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	accessTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 1800, log)
	refreshTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 604800, log)
	cacheTTLSeconds := utils.GetEnvAsInt("ANALYTICS_CACHE_TTL", 900, log)

	var origins []string
	for _, origin := range strings.Split(utils.GetEnv("ALLOWED_ORIGINS", "", log), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return Config{
		Mode:              utils.GetEnv("APP_MODE", "development", log),
		Port:              utils.GetEnv("PORT", "8000", log),
		AllowedOrigins:    origins,
		JWTSecretKey:      utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTokenTTL:    time.Duration(accessTTLSeconds) * time.Second,
		RefreshTokenTTL:   time.Duration(refreshTTLSeconds) * time.Second,
		AnonymizeSalt:     utils.GetEnv("ANONYMIZE_SALT", "vida-trabalho", log),
		RedisAddr:         utils.GetEnv("REDIS_ADDR", "", log),
		AnalyticsCacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}
