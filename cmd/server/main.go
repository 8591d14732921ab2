// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRouter "squadhub/internal/auth/router"
	"squadhub/internal/config"
	"squadhub/internal/database/database"
	"squadhub/internal/database/migrate"
	eventRouter "squadhub/internal/event/router"
	"squadhub/internal/health"
	inviteRouter "squadhub/internal/invite/router"
	kitRouter "squadhub/internal/kit/router"
	lineupRouter "squadhub/internal/lineup/router"
	"squadhub/internal/middleware"
	orgRouter "squadhub/internal/org/router"
	profileRouter "squadhub/internal/profile/router"
	rosterRouter "squadhub/internal/roster/router"
	rsvpRouter "squadhub/internal/rsvp/router"
	teamRouter "squadhub/internal/team/router"
	"squadhub/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zapLogger.Errorw("failed to close database connection", "error", closeErr)
		}
	}()

	if cfg.AutoMigrate {
		if err := migrate.Migrate(db); err != nil {
			zapLogger.Fatalw("failed to apply migrations", "error", err)
		}
		zapLogger.Infow("migrations applied")
	}

	gin.SetMode(cfg.GinMode)
	engine := newEngine(db, cfg, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zapLogger.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("server shutdown failed", "error", err)
	}
}

// newEngine builds the gin engine with middleware and all module routes.
func newEngine(db *gorm.DB, cfg config.Config, zapLogger *zap.SugaredLogger) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.Logger(zapLogger))
	engine.Use(middleware.Recovery(zapLogger))

	healthHandler := health.New(db, zapLogger)
	engine.GET("/health", healthHandler.Check)

	authSvc := authRouter.NewService(db, cfg.Auth, zapLogger)
	authRouter.RegisterPublicRoutes(engine, authSvc, zapLogger)

	api := engine.Group("/")
	api.Use(middleware.Auth(authSvc, zapLogger))

	authRouter.RegisterProtectedRoutes(api, authSvc, zapLogger)
	profileRouter.RegisterRoutes(api, db, zapLogger)
	orgRouter.RegisterRoutes(api, db, zapLogger)
	teamRouter.RegisterRoutes(api, db, zapLogger)
	rosterRouter.RegisterRoutes(api, db, zapLogger)
	inviteRouter.RegisterRoutes(api, db, zapLogger)
	eventRouter.RegisterRoutes(api, db, zapLogger)
	rsvpRouter.RegisterRoutes(api, db, zapLogger)
	lineupRouter.RegisterRoutes(api, db, zapLogger)
	kitRouter.RegisterRoutes(api, db, zapLogger)

	return engine
}
