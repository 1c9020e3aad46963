package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shindakun/ethicstraining/internal/auth"
	"github.com/shindakun/ethicstraining/internal/config"
	"github.com/shindakun/ethicstraining/internal/content"
	"github.com/shindakun/ethicstraining/internal/logger"
	"github.com/shindakun/ethicstraining/internal/version"
	"github.com/shindakun/ethicstraining/internal/web"
	"github.com/shindakun/ethicstraining/internal/web/handlers"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config.yaml"
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		// no logger yet; use a bootstrap one
		zap.NewExample().Fatal("Failed to load configuration", zap.String("path", configPath), zap.Error(err))
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync() //nolint:errcheck

	log.Info("Starting EPA ethics training API",
		zap.String("version", version.GetFullVersion()),
		zap.String("environment", cfg.Server.Environment),
		zap.String("config", configPath),
	)

	authenticator := auth.NewAuthenticator(cfg.Auth)
	catalog := content.Default()

	h := handlers.New(cfg, authenticator, catalog, logger.WithComponent(log, "handlers"))
	router := web.NewRouter(cfg, h, logger.WithComponent(log, "http"))

	// HTTP server configuration
	srv := &http.Server{
		Addr:         cfg.GetAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", "http://"+cfg.GetAddr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited successfully")
}
