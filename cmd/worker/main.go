// Package main is the entry point for the canpoli worker: the process that
// schedules and executes the House of Commons ingestion sweeps. The cron
// scheduler publishes ticks to NATS and the consumer picks them up in a
// queue group, so extra replicas add redundancy without duplicating sweeps.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/config"
	"github.com/BradleyExton/canpoli-api/internal/consumer"
	"github.com/BradleyExton/canpoli-api/internal/fetch"
	"github.com/BradleyExton/canpoli-api/internal/ingest"
	"github.com/BradleyExton/canpoli-api/internal/natsclient"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	"github.com/BradleyExton/canpoli-api/internal/scheduler"
	"github.com/BradleyExton/canpoli-api/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	// ── Structured Logger ──────────────────────────────────────────────────
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// ── OpenTelemetry Tracer ───────────────────────────────────────────────
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint != "" {
		tp, err := telemetry.InitTracer(context.Background(), "canpoli-worker", otelEndpoint)
		if err != nil {
			logger.Error("failed to init OTel tracer", zap.Error(err))
		} else {
			defer tp.Shutdown(context.Background())
			logger.Info("OTel tracer initialized", zap.String("endpoint", otelEndpoint))
		}
	}

	// ── Configuration (env + optional Vault overlay) ───────────────────────
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration invalid", zap.Error(err))
	}

	// ── Database Connection Pool (instrumented with OTel) ──────────────────
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to parse DATABASE_URL", zap.Error(err))
	}
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to database (OTel-instrumented)")

	// ── NATS ───────────────────────────────────────────────────────────────
	natsClient, err := natsclient.NewClient(cfg.NATSURL, logger)
	if err != nil {
		logger.Fatal("NATS connection failed", zap.Error(err))
	}
	defer natsClient.Close()

	// ── Ingestion Runner ───────────────────────────────────────────────────
	store := repository.NewStore(pool)
	fetchPool := fetch.New(fetch.Options{
		MaxConcurrency:     cfg.Ingest.MaxConcurrency,
		MinRequestInterval: cfg.Ingest.MinRequestInterval,
		Timeout:            cfg.Ingest.Timeout,
	})
	runner := ingest.NewRunner(store, fetchPool, cfg.Ingest, logger)

	// ── Tick Consumer ──────────────────────────────────────────────────────
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	ingestConsumer := consumer.NewIngestConsumer(natsClient, runner, logger)
	if err := ingestConsumer.Start(consumerCtx); err != nil {
		logger.Fatal("failed to start ingest consumer", zap.Error(err))
	}

	// ── Cron Scheduler ─────────────────────────────────────────────────────
	cronScheduler := scheduler.NewCronScheduler(natsClient, cfg.IngestCronSpec, logger)
	if err := cronScheduler.Start(); err != nil {
		logger.Fatal("failed to start cron scheduler", zap.Error(err))
	}

	logger.Info("canpoli-worker started (scheduler + consumer active)")

	// ── Graceful Shutdown ──────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("initiating graceful shutdown")

	// Stop emitting ticks, let any running sweep wind down, then drain NATS
	// so in-flight deliveries finish before the connection closes.
	cronScheduler.Stop()
	consumerCancel()
	natsClient.Close()
	pool.Close()

	logger.Info("canpoli-worker shut down cleanly")
}
