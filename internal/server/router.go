package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/handlers"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/middleware"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

type RouterConfig struct {
	Mode           string
	AllowedOrigins []string
	TracingEnabled bool

	AuthMiddleware *middleware.AuthMiddleware

	HealthHandler         *handlers.HealthHandler
	AuthHandler           *handlers.AuthHandler
	UserHandler           *handlers.UserHandler
	WellbeingHandler      *handlers.WellbeingHandler
	PredictionHandler     *handlers.PredictionHandler
	AnalyticsHandler      *handlers.AnalyticsHandler
	AlertHandler          *handlers.AlertHandler
	ChatHandler           *handlers.ChatHandler
	RecommendationHandler *handlers.RecommendationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if strings.EqualFold(cfg.Mode, "prod") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware("vida-trabalho-api"))
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/auth/register", cfg.AuthHandler.Register)
		api.POST("/auth/login", cfg.AuthHandler.Login)
		api.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)

	// User
	protected.GET("/me", cfg.UserHandler.GetMe)
	protected.GET("/users", cfg.AuthMiddleware.RequireRole(types.RoleAdmin), cfg.UserHandler.ListUsers)

	// Wellbeing check-ins
	protected.POST("/wellbeing", cfg.WellbeingHandler.CreateRecord)
	protected.GET("/wellbeing/history", cfg.WellbeingHandler.History)

	// Predictions
	protected.GET("/predictions/burnout", cfg.PredictionHandler.Burnout)
	protected.GET("/predictions/timeseries", cfg.PredictionHandler.Timeseries)

	// Analytics
	protected.GET("/analytics/organizational", cfg.AuthMiddleware.RequireRole(types.RoleManager), cfg.AnalyticsHandler.Organizational)
	protected.GET("/analytics/personal", cfg.AnalyticsHandler.Personal)

	// Alerts
	protected.GET("/alerts", cfg.AlertHandler.ListMine)
	protected.POST("/alerts/:id/resolve", cfg.AlertHandler.Resolve)

	// Chat sessions
	protected.POST("/chat/sessions", cfg.ChatHandler.StartSession)
	protected.POST("/chat/sessions/:id/messages", cfg.ChatHandler.AppendMessages)
	protected.GET("/chat/sessions", cfg.ChatHandler.ListSessions)

	// Recommendations
	protected.GET("/recommendations", cfg.RecommendationHandler.Catalog)

	return router
}
