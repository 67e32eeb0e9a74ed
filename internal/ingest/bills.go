package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/BradleyExton/canpoli-api/internal/decode"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// runBills ingests the LEGISinfo bill list for the configured session.
// Bills are upserted by (number, parliament, session) on every run; the
// feed has no per-item change marker worth trusting, so the stored hash is
// refreshed rather than compared.
func (r *Runner) runBills(ctx context.Context) (Stats, error) {
	stats := Stats{"bills": 0, "errors": 0}

	feedURL := fmt.Sprintf("%s/legisinfo/en/bills/json?parlsession=%d-%d",
		r.cfg.LegisinfoBaseURL, r.cfg.Parliament, r.cfg.Session)
	body, err := r.pool.Get(ctx, feedURL)
	if err != nil {
		return stats, err
	}
	bills, err := decode.Bills(body)
	if err != nil {
		return stats, err
	}

	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		for _, item := range bills {
			existing, err := q.GetBillByNumber(ctx, repository.GetBillByNumberParams{
				BillNumber: item.BillNumber,
				Parliament: item.Parliament,
				Session:    item.Session,
			})
			switch {
			case err == nil:
				// Columns the feed does not carry keep their stored values.
				_, err = q.UpdateBill(ctx, repository.UpdateBillParams{
					ID:                 existing.ID,
					LegisinfoID:        item.LegisinfoID,
					TitleEn:            item.TitleEn,
					TitleFr:            item.TitleFr,
					Status:             item.Status,
					IntroducedDate:     dateOf(item.IntroducedDate),
					LatestActivityDate: timestampOf(item.LatestActivity),
					SponsorHocID:       existing.SponsorHocID,
					SponsorName:        item.SponsorName,
					SponsorParty:       existing.SponsorParty,
					SummaryEn:          existing.SummaryEn,
					SummaryFr:          existing.SummaryFr,
					SourceURL:          strPtr(feedURL),
					SourceHash:         optStr(item.SourceHash),
				})
				if err != nil {
					return err
				}
			case errors.Is(err, pgx.ErrNoRows):
				_, err = q.CreateBill(ctx, repository.CreateBillParams{
					LegisinfoID:        item.LegisinfoID,
					BillNumber:         item.BillNumber,
					TitleEn:            item.TitleEn,
					TitleFr:            item.TitleFr,
					Status:             item.Status,
					Parliament:         item.Parliament,
					Session:            item.Session,
					IntroducedDate:     dateOf(item.IntroducedDate),
					LatestActivityDate: timestampOf(item.LatestActivity),
					SponsorName:        item.SponsorName,
					SourceURL:          strPtr(feedURL),
					SourceHash:         optStr(item.SourceHash),
				})
				if err != nil {
					return err
				}
			default:
				return err
			}
			stats["bills"]++
		}
		return nil
	})
	if err != nil {
		return stats, err
	}
	return stats, nil
}
