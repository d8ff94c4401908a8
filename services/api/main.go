package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/config"
	"github.com/02loveslollipop/sgsb-barragens/services/api/db"
	httpserver "github.com/02loveslollipop/sgsb-barragens/services/api/http"
	"github.com/02loveslollipop/sgsb-barragens/services/api/logging"
	"github.com/02loveslollipop/sgsb-barragens/services/api/session"
	"github.com/02loveslollipop/sgsb-barragens/services/api/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "sgsb-api")
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := db.New(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("db connection error", zap.Error(err))
	}
	defer store.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	revoker := session.NewRevoker(redisClient)
	if err := revoker.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, logout revocation degraded", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	var blobs httpserver.BlobStore
	if cfg.BlobAPIURL != "" {
		blobs = storage.New(cfg.BlobAPIURL, cfg.BlobBaseURL, cfg.BlobToken, logger)
	} else {
		logger.Warn("BLOB_API_URL not set, document uploads disabled")
	}

	srv := httpserver.New(cfg, store, revoker, blobs, logger)
	logger.Info("REST API listening", zap.String("addr", cfg.ListenAddr()))

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
