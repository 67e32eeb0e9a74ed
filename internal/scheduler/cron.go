// Package scheduler publishes ingestion ticks on a cron cadence.
//
// The worker runs a single schedule, INGEST_CRON_SPEC (six-field cron,
// seconds first), which emits a lightweight tick event onto
// SYSTEM_EVENTS.ingest.hourly. Consumers join a queue group on that
// subject, so exactly one worker instance sweeps the upstream feeds per
// tick no matter how many replicas are deployed.
package scheduler

import (
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/natsclient"
)

// tickPayload is the JSON envelope published for each tick.
type tickPayload struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

// CronScheduler wraps robfig/cron and publishes tick events to NATS.
type CronScheduler struct {
	cron   *cron.Cron
	spec   string
	nats   *natsclient.Client
	logger *zap.Logger
}

// NewCronScheduler creates the scheduler. The schedule expression uses the
// six-field cron format with a leading seconds column.
func NewCronScheduler(nc *natsclient.Client, spec string, logger *zap.Logger) *CronScheduler {
	return &CronScheduler{
		cron:   cron.New(cron.WithSeconds()),
		spec:   spec,
		nats:   nc,
		logger: logger,
	}
}

// Start registers the ingest tick job and starts the scheduler.
// Call Stop() to gracefully shut down.
func (s *CronScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.publishTick); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		zap.String("spec", s.spec),
		zap.String("subject", natsclient.SubjectIngestTick),
	)
	return nil
}

// Stop gracefully stops the cron scheduler, waiting for a running job to
// return first.
func (s *CronScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("cron scheduler stopped")
}

func (s *CronScheduler) publishTick() {
	payload := tickPayload{
		Event:     "ingest.tick",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to marshal tick payload", zap.Error(err))
		return
	}

	// Publish via plain NATS (not JetStream): a lost tick is recovered by
	// the next sweep, so at-least-once delivery buys nothing here.
	if err := s.nats.Conn.Publish(natsclient.SubjectIngestTick, data); err != nil {
		s.logger.Error("failed to publish ingest tick",
			zap.String("subject", natsclient.SubjectIngestTick),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("ingest tick published", zap.String("subject", natsclient.SubjectIngestTick))
}
