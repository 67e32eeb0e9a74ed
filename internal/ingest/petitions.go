package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/decode"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

func petitionSearchForm(page int) url.Values {
	return url.Values{
		"parl":            {"Latest"},
		"type":            {""},
		"keyword":         {""},
		"sponsor":         {""},
		"status":          {""},
		"RPP":             {"20"},
		"order":           {"Recent"},
		"page":            {strconv.Itoa(page)},
		"category":        {"All"},
		"output":          {""},
		"reCaptchaAction": {""},
		"reCaptchaToken":  {""},
	}
}

// runPetitions walks every page of the petitions search and upserts each
// petition by number. The sponsor link prefers the external id on the
// detail page and falls back to an exact case-insensitive name match
// against the roster.
func (r *Runner) runPetitions(ctx context.Context) (Stats, error) {
	log := r.pipelineLogger(ctx, PipelinePetitions)

	searchURL := r.url("/petitions/en/Petition/SearchAsync")
	body, err := r.pool.PostForm(ctx, searchURL, petitionSearchForm(1))
	if err != nil {
		return nil, err
	}
	first, err := decode.PetitionSearchPage(body)
	if err != nil {
		return nil, err
	}
	totalPages := first.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	log.Info("Fetched petitions search", zap.Int("pages", totalPages))

	stats := Stats{"petitions": 0, "errors": 0}

	type fetchedPetition struct {
		row       decode.PetitionRow
		detail    *decode.PetitionDetail
		detailURL *string
		hash      *string
	}
	var fetched []fetchedPetition
	page := first
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		if pageNum > 1 {
			body, err := r.pool.PostForm(ctx, searchURL, petitionSearchForm(pageNum))
			if err != nil {
				return nil, err
			}
			page, err = decode.PetitionSearchPage(body)
			if err != nil {
				return nil, err
			}
		}
		for _, row := range page.Rows {
			p := fetchedPetition{row: row}
			if row.DetailHref != "" {
				detailURL := r.url("/petitions/en/Petition/" + row.DetailHref)
				detailBody, err := r.pool.Get(ctx, detailURL)
				if err != nil {
					log.Error("Failed to fetch petition detail", zap.String("petition", row.Number), zap.Error(err))
					stats["errors"]++
					continue
				}
				detail, err := decode.ParsePetitionDetail(detailBody)
				if err != nil {
					log.Error("Failed to decode petition detail", zap.String("petition", row.Number), zap.Error(err))
					stats["errors"]++
					continue
				}
				sum := sha256.Sum256(detailBody)
				p.detail = &detail
				p.detailURL = strPtr(detailURL)
				p.hash = strPtr(hex.EncodeToString(sum[:]))
			}
			fetched = append(fetched, p)
		}
	}

	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		reps, err := q.ListAllRepresentatives(ctx)
		if err != nil {
			return fmt.Errorf("list representatives: %w", err)
		}
		hocIDByName := make(map[string]int, len(reps))
		for _, rep := range reps {
			hocIDByName[strings.ToLower(rep.Name)] = rep.HocID
		}

		for _, p := range fetched {
			var sponsorHocID *int
			sponsorName := optStr(p.row.Sponsor)
			if p.detail != nil {
				sponsorHocID = p.detail.SponsorHocID
				if p.detail.SponsorName != "" {
					sponsorName = strPtr(p.detail.SponsorName)
				}
			}
			if sponsorHocID == nil && p.row.Sponsor != "" {
				if hocID, ok := hocIDByName[strings.ToLower(p.row.Sponsor)]; ok {
					sponsorHocID = &hocID
				}
			}

			params := repository.CreatePetitionParams{
				PetitionNumber: p.row.Number,
				TitleEn:        optStr(p.row.Title),
				Status:         optStr(p.row.Status),
				Signatures:     p.row.Signatures,
				SponsorHocID:   sponsorHocID,
				SponsorName:    sponsorName,
				Parliament:     intPtr(r.cfg.Parliament),
				Session:        intPtr(r.cfg.Session),
				SourceURL:      p.detailURL,
				SourceHash:     p.hash,
			}
			if p.detail != nil {
				params.PresentationDate = dateOf(p.detail.PresentationDate)
				params.ClosingDate = timestampOf(p.detail.ClosingDate)
			}

			existing, err := q.GetPetitionByNumber(ctx, p.row.Number)
			switch {
			case err == nil:
				_, err = q.UpdatePetition(ctx, repository.UpdatePetitionParams{
					ID:               existing.ID,
					TitleEn:          params.TitleEn,
					TitleFr:          existing.TitleFr,
					Status:           params.Status,
					PresentationDate: params.PresentationDate,
					ClosingDate:      params.ClosingDate,
					Signatures:       params.Signatures,
					SponsorHocID:     params.SponsorHocID,
					SponsorName:      params.SponsorName,
					Parliament:       params.Parliament,
					Session:          params.Session,
					SourceURL:        params.SourceURL,
					SourceHash:       params.SourceHash,
				})
				if err != nil {
					return fmt.Errorf("update petition %s: %w", p.row.Number, err)
				}
			case errors.Is(err, pgx.ErrNoRows):
				if _, err := q.CreatePetition(ctx, params); err != nil {
					return fmt.Errorf("create petition %s: %w", p.row.Number, err)
				}
			default:
				return fmt.Errorf("get petition %s: %w", p.row.Number, err)
			}
			stats["petitions"]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
