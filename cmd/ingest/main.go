// Package main is the one-shot ingestion CLI. It runs the same pipelines
// the worker runs on its cron cadence, but exactly once, and prints the
// per-pipeline stats to stdout. Pipeline failures are reported in the stats
// rather than through the exit code, so a partial sweep still lands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/config"
	"github.com/BradleyExton/canpoli-api/internal/fetch"
	"github.com/BradleyExton/canpoli-api/internal/ingest"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

func newRunCommand(logger *zap.Logger) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the ingestion pipelines once and print their stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validatePipelines(only); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("configuration invalid: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("database connection failed: %w", err)
			}
			defer pool.Close()

			store := repository.NewStore(pool)
			fetchPool := fetch.New(fetch.Options{
				MaxConcurrency:     cfg.Ingest.MaxConcurrency,
				MinRequestInterval: cfg.Ingest.MinRequestInterval,
				Timeout:            cfg.Ingest.Timeout,
			})
			runner := ingest.NewRunner(store, fetchPool, cfg.Ingest, logger)

			results := runner.RunAll(ctx, only)

			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal stats: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil,
		"restrict the run to these pipelines ("+strings.Join(ingest.PipelineNames, ", ")+")")
	return cmd
}

// validatePipelines rejects unknown --only names before anything connects.
func validatePipelines(only []string) error {
	known := make(map[string]bool, len(ingest.PipelineNames))
	for _, name := range ingest.PipelineNames {
		known[name] = true
	}
	for _, name := range only {
		if !known[name] {
			return fmt.Errorf("unknown pipeline %q (valid: %s)", name, strings.Join(ingest.PipelineNames, ", "))
		}
	}
	return nil
}

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	root := &cobra.Command{
		Use:  "canpoli-ingest [command]",
		Long: "One-shot ingestion of House of Commons and LEGISinfo data into Postgres",
	}
	root.AddCommand(newRunCommand(logger))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
