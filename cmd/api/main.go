package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/fitlog/backend/config"
	"github.com/pageza/fitlog/backend/internal/database"
	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/server"
	"github.com/pageza/fitlog/backend/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := logger.Init(config.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	l := logger.L()

	cfg, err := config.LoadConfig()
	if err != nil {
		l.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Without redis the auth endpoints are served unthrottled
	rdb, err := database.NewRedisClient(cfg)
	if err != nil {
		l.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	var storage service.PictureStorage
	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	switch {
	case errors.Is(err, config.ErrStorageDisabled):
		l.Info("Profile picture storage disabled")
	case err != nil:
		l.Warn("Failed to initialize S3, profile pictures disabled", zap.Error(err))
	default:
		storage = s3cfg
	}

	srv := server.New(cfg, server.Deps{DB: db, Redis: rdb, Storage: storage})

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			l.Fatal("Server error", zap.Error(err))
		}
	case sig := <-quit:
		l.Info("Received signal", zap.String("signal", sig.String()))
	}

	l.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error("Server shutdown error", zap.Error(err))
		return
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	l.Info("Server stopped")
}
