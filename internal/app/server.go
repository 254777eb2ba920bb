package app

import (
	"context"

	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/http"
	"github.com/pressplay/gamestore/internal/http/handlers"
	"github.com/pressplay/gamestore/internal/http/middleware"
	"github.com/pressplay/gamestore/internal/infrastructure/auth"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	userRepo domain.UserRepository,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	catalogHandler *handlers.CatalogHandler,
	storeHandler *handlers.StoreHandler,
	friendHandler *handlers.FriendHandler,
	adminHandler *handlers.AdminHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		catalogHandler,
		storeHandler,
		friendHandler,
		adminHandler,
		errorHandler,
		log,
		port,
	)
}

// StartServer starts the HTTP server when the fx application starts
func (a *application) StartServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			log.Info("HTTP server started", zap.String("port", a.config.Server.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return log.Sync()
		},
	})
}
