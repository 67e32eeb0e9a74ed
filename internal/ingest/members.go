package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/decode"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// Colors for the major federal caucuses; parties outside the map are
// created with a null color.
var partyColors = map[string]string{
	"Liberal":        "#D71920",
	"Conservative":   "#1A4782",
	"NDP":            "#F37021",
	"Bloc Québécois": "#33B2CC",
	"Green Party":    "#3D9B35",
	"Independent":    "#808080",
}

var partyShortNames = map[string]string{
	"Liberal":        "LPC",
	"Conservative":   "CPC",
	"NDP":            "NDP",
	"Bloc Québécois": "BQ",
	"Green Party":    "GPC",
	"Independent":    "Ind.",
}

// runMembers pulls the all-MPs feed and upserts every sitting member,
// creating parties and ridings on first sight.
func (r *Runner) runMembers(ctx context.Context) (Stats, error) {
	log := r.pipelineLogger(ctx, PipelineMembers)

	body, err := r.pool.Get(ctx, r.url("/Members/en/search/XML"))
	if err != nil {
		return nil, err
	}
	members, err := decode.Members(body)
	if err != nil {
		return nil, err
	}
	log.Info("Fetched members feed", zap.Int("members", len(members)))

	stats := Stats{"created": 0, "updated": 0, "errors": 0}
	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		for _, m := range members {
			partyID, err := getOrCreateParty(ctx, q, m.Caucus)
			if err != nil {
				return fmt.Errorf("party %q: %w", m.Caucus, err)
			}
			ridingID, err := getOrCreateRiding(ctx, q, m.Constituency, m.Province)
			if err != nil {
				return fmt.Errorf("riding %q: %w", m.Constituency, err)
			}

			name := strings.TrimSpace(m.FirstName + " " + m.LastName)
			params := memberParams(m, name, partyID, ridingID)

			existing, err := q.GetRepresentativeByHocID(ctx, m.HocID)
			switch {
			case err == nil:
				update := repository.UpdateRepresentativeParams{
					ID:         existing.ID,
					FirstName:  params.FirstName,
					LastName:   params.LastName,
					Name:       params.Name,
					Honorific:  params.Honorific,
					Email:      params.Email,
					Phone:      params.Phone,
					PhotoURL:   params.PhotoURL,
					ProfileURL: params.ProfileURL,
					IsActive:   true,
					PartyID:    partyID,
					RidingID:   ridingID,
				}
				if _, err := q.UpdateRepresentative(ctx, update); err != nil {
					return fmt.Errorf("update representative %d: %w", m.HocID, err)
				}
				stats["updated"]++
			case errors.Is(err, pgx.ErrNoRows):
				if _, err := q.CreateRepresentative(ctx, params); err != nil {
					return fmt.Errorf("create representative %d: %w", m.HocID, err)
				}
				stats["created"]++
			default:
				return fmt.Errorf("get representative %d: %w", m.HocID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func memberParams(m decode.Member, name string, partyID, ridingID *int64) repository.CreateRepresentativeParams {
	return repository.CreateRepresentativeParams{
		HocID:      m.HocID,
		FirstName:  optStr(m.FirstName),
		LastName:   optStr(m.LastName),
		Name:       name,
		Honorific:  optStr(m.Honorific),
		Email:      optStr(m.Email),
		Phone:      optStr(m.Phone),
		PhotoURL:   strPtr(fmt.Sprintf("https://www.ourcommons.ca/Members/en/%d/photo", m.HocID)),
		ProfileURL: strPtr(fmt.Sprintf("https://www.ourcommons.ca/Members/en/%d", m.HocID)),
		IsActive:   true,
		PartyID:    partyID,
		RidingID:   ridingID,
	}
}

// getOrCreateParty resolves a caucus name to a party id, creating the party
// with its known short name and color on first sight. Empty names resolve
// to no link.
func getOrCreateParty(ctx context.Context, q repository.Querier, name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	party, err := q.GetPartyByName(ctx, name)
	if errors.Is(err, pgx.ErrNoRows) {
		party, err = q.CreateParty(ctx, repository.CreatePartyParams{
			Name:      name,
			ShortName: optStr(partyShortNames[name]),
			Color:     optStr(partyColors[name]),
		})
	}
	if err != nil {
		return nil, err
	}
	return &party.ID, nil
}

func getOrCreateRiding(ctx context.Context, q repository.Querier, name, province string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	riding, err := q.GetRidingByNameAndProvince(ctx, repository.GetRidingByNameAndProvinceParams{
		Name:     name,
		Province: province,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		riding, err = q.CreateRiding(ctx, repository.CreateRidingParams{
			Name:     name,
			Province: province,
		})
	}
	if err != nil {
		return nil, err
	}
	return &riding.ID, nil
}
