package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/plague-community-hub/internal/api"
	"github.com/plague-community-hub/internal/config"
	"github.com/plague-community-hub/internal/notify"
	"github.com/plague-community-hub/internal/repository"
	"github.com/plague-community-hub/internal/seed"
	"github.com/plague-community-hub/internal/service"
	"github.com/plague-community-hub/internal/session"
	"github.com/plague-community-hub/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "json")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("Starting Plague Community Hub server...")

	// Load seed dataset
	ds, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Seed.Path).Msg("Failed to load seed dataset")
	}
	log.Info().Int("members", len(ds.Members)).Int("projects", len(ds.Projects)).Msg("Seed dataset loaded")

	// Initialize repositories
	repos := repository.New(ds.Members, ds.Projects)

	// Initialize services
	services := service.NewServices(repos, session.DemoAuthenticator{}, log)

	// Start notification janitor
	queue := notify.NewQueue(cfg.Notify.TTL, log)
	queue.StartJanitor(context.Background(), cfg.Notify.SweepInterval)

	// Initialize router
	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(services, queue, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop notification janitor
	queue.StopJanitor()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
