// Package ingest pulls House of Commons and LEGISinfo data into Postgres.
// Each pipeline fetches its upstream feed through the shared fetch pool,
// decodes it, and writes through one transaction, so a re-run either lands
// whole or not at all. Row-level fetch and decode failures are counted and
// skipped; database failures abort the pipeline.
package ingest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/config"
	"github.com/BradleyExton/canpoli-api/internal/fetch"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// Pipeline names accepted by RunAll's only filter.
const (
	PipelineMembers        = "members"
	PipelinePartyStandings = "party_standings"
	PipelineRoles          = "roles"
	PipelineVotes          = "votes"
	PipelinePetitions      = "petitions"
	PipelineDebates        = "debates"
	PipelineExpenditures   = "expenditures"
	PipelineBills          = "bills"
)

// PipelineNames lists every pipeline in run order.
var PipelineNames = []string{
	PipelineMembers,
	PipelinePartyStandings,
	PipelineRoles,
	PipelineVotes,
	PipelinePetitions,
	PipelineDebates,
	PipelineExpenditures,
	PipelineBills,
}

// Stats carries one pipeline's outcome counters.
type Stats map[string]int

// Runner executes the ingestion pipelines against one store.
type Runner struct {
	store  repository.Store
	pool   *fetch.Pool
	cfg    config.Ingest
	logger *zap.Logger
}

func NewRunner(store repository.Store, pool *fetch.Pool, cfg config.Ingest, logger *zap.Logger) *Runner {
	return &Runner{
		store:  store,
		pool:   pool,
		cfg:    cfg,
		logger: logger,
	}
}

// RunAll runs the enabled pipelines in declared order. A non-empty only set
// restricts the run to the named pipelines. Each pipeline gets its own
// failure boundary: a failed pipeline records {"error": message} in the
// result and the remaining pipelines still run.
func (r *Runner) RunAll(ctx context.Context, only []string) map[string]any {
	wanted := map[string]bool{}
	for _, name := range only {
		wanted[name] = true
	}

	pipelines := []struct {
		name    string
		enabled bool
		run     func(context.Context) (Stats, error)
	}{
		{PipelineMembers, r.cfg.EnableMembers, r.runMembers},
		{PipelinePartyStandings, r.cfg.EnablePartyStandings, r.runPartyStandings},
		{PipelineRoles, r.cfg.EnableRoles, r.runRoles},
		{PipelineVotes, r.cfg.EnableVotes, r.runVotes},
		{PipelinePetitions, r.cfg.EnablePetitions, r.runPetitions},
		{PipelineDebates, r.cfg.EnableDebates, r.runDebates},
		{PipelineExpenditures, r.cfg.EnableExpenditures, r.runExpenditures},
		{PipelineBills, r.cfg.EnableBills, r.runBills},
	}

	results := map[string]any{}
	for _, p := range pipelines {
		if !p.enabled {
			continue
		}
		if len(wanted) > 0 && !wanted[p.name] {
			continue
		}

		log := r.pipelineLogger(ctx, p.name)
		log.Info("Starting pipeline")
		start := time.Now()

		stats, err := p.run(ctx)
		if err != nil {
			log.Error("Pipeline failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
			results[p.name] = map[string]string{"error": err.Error()}
			continue
		}

		fields := []zap.Field{zap.Duration("elapsed", time.Since(start))}
		for key, value := range stats {
			fields = append(fields, zap.Int(key, value))
		}
		log.Info("Pipeline complete", fields...)
		results[p.name] = stats
	}
	return results
}

// pipelineLogger tags the runner's logger with the pipeline name and, when
// the caller is traced, the active trace id.
func (r *Runner) pipelineLogger(ctx context.Context, name string) *zap.Logger {
	log := r.logger.With(zap.String("pipeline", name))
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		log = log.With(zap.String("trace_id", sc.TraceID().String()))
	}
	return log
}

func (r *Runner) url(path string) string {
	return r.cfg.BaseURL + path
}

func dateOf(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func timestampOf(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
