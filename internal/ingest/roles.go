package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/decode"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// runRoles crawls the per-member profile feed for every active
// representative and replaces each member's role set wholesale. A member
// whose profile cannot be fetched or decoded keeps their previous roles.
func (r *Runner) runRoles(ctx context.Context) (Stats, error) {
	log := r.pipelineLogger(ctx, PipelineRoles)

	reps, err := r.store.ListActiveRepresentatives(ctx)
	if err != nil {
		return nil, err
	}

	stats := Stats{"representatives": len(reps), "roles": 0, "errors": 0}

	type memberRoles struct {
		rep       repository.Representative
		roles     []decode.MemberRole
		sourceURL string
		hash      string
	}
	var decoded []memberRoles
	for _, rep := range reps {
		sourceURL := r.url(fmt.Sprintf("/members/en/%d/xml", rep.HocID))
		body, err := r.pool.Get(ctx, sourceURL)
		if err != nil {
			log.Error("Failed to fetch member profile", zap.Int("hoc_id", rep.HocID), zap.Error(err))
			stats["errors"]++
			continue
		}
		roles, err := decode.MemberRoles(body)
		if err != nil {
			log.Error("Failed to decode member profile", zap.Int("hoc_id", rep.HocID), zap.Error(err))
			stats["errors"]++
			continue
		}
		sum := sha256.Sum256(body)
		decoded = append(decoded, memberRoles{
			rep:       rep,
			roles:     roles,
			sourceURL: sourceURL,
			hash:      hex.EncodeToString(sum[:]),
		})
	}

	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		for _, m := range decoded {
			if err := q.DeleteRepresentativeRoles(ctx, m.rep.ID); err != nil {
				return fmt.Errorf("delete roles for %d: %w", m.rep.HocID, err)
			}
			for _, role := range m.roles {
				_, err := q.CreateRepresentativeRole(ctx, repository.CreateRepresentativeRoleParams{
					RepresentativeID: m.rep.ID,
					RoleName:         role.Name,
					RoleType:         role.Type,
					Organization:     role.Organization,
					Parliament:       role.Parliament,
					Session:          role.Session,
					StartDate:        timestampOf(role.Start),
					EndDate:          timestampOf(role.End),
					IsCurrent:        role.IsCurrent,
					SourceURL:        strPtr(m.sourceURL),
					SourceHash:       strPtr(m.hash),
				})
				if err != nil {
					return fmt.Errorf("create role for %d: %w", m.rep.HocID, err)
				}
				stats["roles"]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
