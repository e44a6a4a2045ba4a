package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/youssefhammani/file-rouge-final/internal/api"
	"github.com/youssefhammani/file-rouge-final/internal/api/handlers"
	"github.com/youssefhammani/file-rouge-final/internal/repository"
	"github.com/youssefhammani/file-rouge-final/internal/services"
	"github.com/youssefhammani/file-rouge-final/pkg/config"
	"github.com/youssefhammani/file-rouge-final/pkg/database"
	"github.com/youssefhammani/file-rouge-final/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting job board API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Connect to database
	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	savedRepo := repository.NewSavedJobRepository(db)

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte("change-me-in-production-please")
	}

	// Initialize services
	authSvc := services.NewAuthService(userRepo, jwtSecret, cfg.TokenTTL)
	jobSvc := services.NewJobService(jobRepo, userRepo, appRepo)
	applicationSvc := services.NewApplicationService(appRepo, jobRepo, userRepo)
	userSvc := services.NewUserService(userRepo, jobRepo, savedRepo)

	// Create router with dependencies
	router := api.NewRouter(api.Dependencies{
		HMACSecret:          jwtSecret,
		Users:               userRepo,
		AuthHandler:         handlers.NewAuthHandler(authSvc),
		JobsHandler:         handlers.NewJobsHandler(jobSvc),
		ApplicationsHandler: handlers.NewApplicationsHandler(applicationSvc),
		UsersHandler:        handlers.NewUsersHandler(userSvc),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
