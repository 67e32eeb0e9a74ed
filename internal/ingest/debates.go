package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/decode"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// runDebates scans Hansard sitting numbers forward from the highest stored
// sitting, fetching each configured language variant. Missing sittings are
// normal at the head of the session; the scan stops after DebatesMaxMissing
// consecutive sittings with no document in any language. Unchanged
// documents (by source hash) are skipped without touching their
// interventions.
func (r *Runner) runDebates(ctx context.Context) (Stats, error) {
	log := r.pipelineLogger(ctx, PipelineDebates)

	maxSitting, err := r.store.GetMaxDebateSitting(ctx, repository.GetMaxDebateSittingParams{
		Parliament: intPtr(r.cfg.Parliament),
		Session:    intPtr(r.cfg.Session),
	})
	if err != nil {
		return nil, err
	}

	start, end := 1, r.cfg.DebatesMaxSitting
	if maxSitting != nil && *maxSitting > 0 {
		start = *maxSitting + 1
		end = *maxSitting + r.cfg.DebatesLookahead
	}
	log.Info("Scanning sittings", zap.Int("from", start), zap.Int("to", end))

	type fetchedDebate struct {
		sitting       int
		language      string
		header        decode.DebateHeader
		interventions []decode.Intervention
		documentURL   string
		hash          string
	}
	var docs []fetchedDebate

	missing := 0
	for sitting := start; sitting <= end; sitting++ {
		foundAny := false
		for _, lang := range r.cfg.DebateLanguages {
			code := "F"
			if strings.HasPrefix(strings.ToLower(lang), "en") {
				code = "E"
			}
			docURL := r.url(fmt.Sprintf("/Content/House/%d%d/Debates/%d/HAN%d-%s.XML",
				r.cfg.Parliament, r.cfg.Session, sitting, sitting, code))
			body, err := r.pool.Get(ctx, docURL)
			if err != nil {
				// unpublished sittings come back as errors; only a dead
				// context ends the scan
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}
			foundAny = true

			header, interventions, err := decode.Hansard(body)
			if err != nil {
				return nil, err
			}
			sum := sha256.Sum256(body)
			docs = append(docs, fetchedDebate{
				sitting:       sitting,
				language:      strings.ToLower(lang),
				header:        header,
				interventions: interventions,
				documentURL:   docURL,
				hash:          hex.EncodeToString(sum[:]),
			})
		}

		if !foundAny {
			missing++
			if missing >= r.cfg.DebatesMaxMissing {
				break
			}
		} else {
			missing = 0
		}
	}
	log.Info("Fetched sitting documents", zap.Int("documents", len(docs)))

	stats := Stats{"debates": 0, "interventions": 0, "errors": 0}
	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		for _, doc := range docs {
			existing, err := q.GetDebateBySitting(ctx, repository.GetDebateBySittingParams{
				Parliament: intPtr(r.cfg.Parliament),
				Session:    intPtr(r.cfg.Session),
				Sitting:    intPtr(doc.sitting),
				Language:   strPtr(doc.language),
			})
			exists := err == nil
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("get debate sitting %d: %w", doc.sitting, err)
			}
			if exists && existing.SourceHash != nil && *existing.SourceHash == doc.hash {
				continue
			}

			var stored repository.Debate
			if exists {
				stored, err = q.UpdateDebate(ctx, repository.UpdateDebateParams{
					ID:          existing.ID,
					DebateDate:  dateOf(doc.header.Date),
					Volume:      doc.header.Volume,
					Number:      doc.header.Number,
					SpeakerName: doc.header.SpeakerName,
					DocumentURL: strPtr(doc.documentURL),
					SourceHash:  strPtr(doc.hash),
				})
			} else {
				stored, err = q.CreateDebate(ctx, repository.CreateDebateParams{
					Parliament:  intPtr(r.cfg.Parliament),
					Session:     intPtr(r.cfg.Session),
					Sitting:     intPtr(doc.sitting),
					DebateDate:  dateOf(doc.header.Date),
					Language:    strPtr(doc.language),
					Volume:      doc.header.Volume,
					Number:      doc.header.Number,
					SpeakerName: doc.header.SpeakerName,
					DocumentURL: strPtr(doc.documentURL),
					SourceHash:  strPtr(doc.hash),
				})
			}
			if err != nil {
				return fmt.Errorf("upsert debate sitting %d: %w", doc.sitting, err)
			}
			stats["debates"]++

			if err := q.DeleteDebateInterventions(ctx, stored.ID); err != nil {
				return fmt.Errorf("delete interventions of sitting %d: %w", doc.sitting, err)
			}
			for i, item := range doc.interventions {
				err := q.CreateDebateIntervention(ctx, repository.CreateDebateInterventionParams{
					DebateID:           stored.ID,
					Sequence:           i + 1,
					SpeakerName:        item.SpeakerName,
					SpeakerAffiliation: item.SpeakerAffiliation,
					FloorLanguage:      item.FloorLanguage,
					Timestamp:          item.Timestamp,
					OrderOfBusiness:    item.OrderOfBusiness,
					SubjectTitle:       item.SubjectTitle,
					InterventionType:   item.Type,
					Text:               item.Text,
				})
				if err != nil {
					return fmt.Errorf("create intervention for sitting %d: %w", doc.sitting, err)
				}
				stats["interventions"]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
