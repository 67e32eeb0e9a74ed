package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/decode"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// runPartyStandings pulls the seat-count feed, sums the repeated caucus
// rows, and records one standing per caucus dated today. Re-running on the
// same day updates in place; the next day appends a fresh snapshot.
func (r *Runner) runPartyStandings(ctx context.Context) (Stats, error) {
	log := r.pipelineLogger(ctx, PipelinePartyStandings)

	sourceURL := r.url("/Members/en/party-standings/XML")
	body, err := r.pool.Get(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	rows, err := decode.PartyStandings(body)
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	var order []string
	for _, row := range rows {
		if row.Caucus == "" {
			continue
		}
		if _, seen := totals[row.Caucus]; !seen {
			order = append(order, row.Caucus)
		}
		totals[row.Caucus] += row.SeatCount
	}
	log.Info("Fetched party standings", zap.Int("caucuses", len(order)))

	asOf := pgtype.Date{Time: time.Now().UTC(), Valid: true}
	stats := Stats{"created": 0, "updated": 0}
	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		for _, partyName := range order {
			var partyID *int64
			if !strings.EqualFold(partyName, "Vacant") {
				party, err := q.GetPartyByName(ctx, partyName)
				switch {
				case err == nil:
					partyID = &party.ID
				case errors.Is(err, pgx.ErrNoRows):
					// standings never mint parties; the members
					// pipeline owns creation
				default:
					return fmt.Errorf("get party %q: %w", partyName, err)
				}
			}

			existing, err := q.GetPartyStanding(ctx, repository.GetPartyStandingParams{
				PartyName:  partyName,
				Parliament: intPtr(r.cfg.Parliament),
				Session:    intPtr(r.cfg.Session),
				AsOfDate:   asOf,
			})
			switch {
			case err == nil:
				_, err = q.UpdatePartyStanding(ctx, repository.UpdatePartyStandingParams{
					ID:        existing.ID,
					PartyID:   partyID,
					SeatCount: totals[partyName],
					SourceURL: strPtr(sourceURL),
				})
				if err != nil {
					return fmt.Errorf("update standing %q: %w", partyName, err)
				}
				stats["updated"]++
			case errors.Is(err, pgx.ErrNoRows):
				_, err = q.CreatePartyStanding(ctx, repository.CreatePartyStandingParams{
					PartyID:    partyID,
					PartyName:  partyName,
					SeatCount:  totals[partyName],
					AsOfDate:   asOf,
					Parliament: intPtr(r.cfg.Parliament),
					Session:    intPtr(r.cfg.Session),
					SourceURL:  strPtr(sourceURL),
				})
				if err != nil {
					return fmt.Errorf("create standing %q: %w", partyName, err)
				}
				stats["created"]++
			default:
				return fmt.Errorf("get standing %q: %w", partyName, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
