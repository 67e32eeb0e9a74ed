// Package consumer runs the ingestion sweep when a scheduler tick arrives.
//
// It queue-subscribes to SYSTEM_EVENTS.ingest.hourly (published by the
// worker's cron scheduler) so that exactly one worker instance executes
// each sweep, and drives the full pipeline runner for every tick.
package consumer

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/natsclient"
)

// Runner is the slice of the ingestion orchestrator the consumer drives.
type Runner interface {
	RunAll(ctx context.Context, only []string) map[string]any
}

// tickEvent mirrors the payload published by the scheduler.
type tickEvent struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

// IngestConsumer listens for scheduled ticks and runs the pipelines.
type IngestConsumer struct {
	nats   *natsclient.Client
	runner Runner
	logger *zap.Logger
	tracer trace.Tracer
}

// NewIngestConsumer creates an IngestConsumer.
func NewIngestConsumer(nc *natsclient.Client, runner Runner, logger *zap.Logger) *IngestConsumer {
	return &IngestConsumer{
		nats:   nc,
		runner: runner,
		logger: logger,
		tracer: otel.Tracer("canpoli-ingest-consumer"),
	}
}

// Start subscribes to the tick subject and processes ticks until ctx is
// cancelled.
func (c *IngestConsumer) Start(ctx context.Context) error {
	// The tick subject is plain NATS published by the scheduler. A queue
	// subscription means one worker instance sweeps per tick even when
	// several replicas run.
	_, err := c.nats.Conn.QueueSubscribe(natsclient.SubjectIngestTick, natsclient.QueueWorkers, func(msg *nats.Msg) {
		c.processTick(ctx, msg.Data)
	})
	if err != nil {
		return err
	}

	c.logger.Info("ingest consumer started",
		zap.String("subject", natsclient.SubjectIngestTick),
		zap.String("queue", natsclient.QueueWorkers),
	)

	go func() {
		<-ctx.Done()
		c.logger.Info("ingest consumer stopping")
	}()

	return nil
}

// processTick runs one full ingestion sweep. The tick payload is purely
// informational; a payload that fails to decode still triggers the sweep.
func (c *IngestConsumer) processTick(ctx context.Context, data []byte) {
	var tick tickEvent
	if err := json.Unmarshal(data, &tick); err != nil {
		c.logger.Warn("undecodable tick payload, sweeping anyway", zap.Error(err))
	} else {
		c.logger.Info("received ingest tick",
			zap.String("event", tick.Event),
			zap.String("scheduled_at", tick.Timestamp),
		)
	}

	ctx, span := c.tracer.Start(ctx, "worker.ingest.sweep")
	defer span.End()

	results := c.runner.RunAll(ctx, nil)

	fields := make([]zap.Field, 0, len(results))
	for name, stats := range results {
		fields = append(fields, zap.Any(name, stats))
	}
	c.logger.Info("ingest sweep complete", fields...)
}
