// Job board API entrypoint: loads configuration, connects MongoDB and Redis,
// starts the hashing worker pool and serves HTTP until interrupted.
//
// @title           UQ Job Board API
// @version         1.0
// @description     Role-scoped job postings catalog with token authentication.
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/uqcareers/jobboard-api/internal/api"
	"github.com/uqcareers/jobboard-api/internal/core/service"
	"github.com/uqcareers/jobboard-api/internal/infrastructure/config"
	mongodb "github.com/uqcareers/jobboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/uqcareers/jobboard-api/internal/infrastructure/db/redis"
	"github.com/uqcareers/jobboard-api/internal/infrastructure/hashing"
	"github.com/uqcareers/jobboard-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// The unique username index must exist before any registration is
	// accepted; it is what makes concurrent duplicate registrations race
	// safely inside the store.
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, job listing cache disabled")
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	hasher := hashing.NewPool(cfg.HashWorkers, service.NewBcryptHasher(cfg.BcryptCost), log)
	hasher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, hasher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
