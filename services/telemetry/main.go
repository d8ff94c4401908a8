package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/db"
	"github.com/02loveslollipop/sgsb-barragens/services/api/logging"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/telemetry/internal/config"
	"github.com/02loveslollipop/sgsb-barragens/services/telemetry/internal/ingest"
	"github.com/02loveslollipop/sgsb-barragens/services/telemetry/internal/mqtt"
)

const telemetryRole = "leiturista"

func main() {
	if err := run(); err != nil {
		log.Fatalf("telemetry failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "sgsb-telemetry")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := db.New(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	// Readings reference their author; the bridge writes as a service user.
	name := "Telemetria"
	method := "telemetry"
	if err := store.UpsertUser(ctx, models.UserIdentity{OpenID: cfg.UserID, Name: &name, LoginMethod: &method}, telemetryRole); err != nil {
		return err
	}

	processor := ingest.NewProcessor(store, ingest.Options{
		UserID:       cfg.UserID,
		MinInterval:  cfg.MinInterval,
		ValueEpsilon: cfg.ValueEpsilon,
		DryRun:       cfg.DryRun,
	}, logger.Named("ingest"))

	client := mqtt.NewClient(mqtt.Options{
		Broker:   cfg.Broker,
		ClientID: cfg.ClientID,
		Username: cfg.Username,
		Password: cfg.Password,
	}, logger.Named("mqtt"))
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect()

	if err := client.Subscribe(cfg.Topic, 1, processor.Handle); err != nil {
		return err
	}

	logger.Info("telemetry bridge started",
		zap.String("broker", cfg.Broker),
		zap.String("topic", cfg.Topic),
		zap.Duration("min_interval", cfg.MinInterval),
		zap.Bool("dry_run", cfg.DryRun),
	)

	<-ctx.Done()
	logger.Info("shutting down telemetry bridge")
	return nil
}
