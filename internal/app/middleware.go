package app

import (
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/middleware"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, serviceset.Auth),
	}
}
