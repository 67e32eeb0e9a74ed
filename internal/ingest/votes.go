package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/decode"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// runVotes pulls the chamber votes table, then each vote's detail page. A
// detail page whose hash matches the stored vote is skipped outright,
// ballots included; anything else upserts the vote and replaces its member
// ballots.
func (r *Runner) runVotes(ctx context.Context) (Stats, error) {
	log := r.pipelineLogger(ctx, PipelineVotes)

	listURL := r.url(fmt.Sprintf("/members/en/votes?parl=%d&session=%d", r.cfg.Parliament, r.cfg.Session))
	body, err := r.pool.Get(ctx, listURL)
	if err != nil {
		return nil, err
	}
	rows, err := decode.VoteList(body)
	if err != nil {
		return nil, err
	}
	log.Info("Fetched votes list", zap.Int("votes", len(rows)))

	stats := Stats{"votes": 0, "members": 0, "errors": 0}

	type fetchedVote struct {
		row       decode.VoteRow
		detail    *decode.VoteDetail
		detailURL *string
		hash      *string
	}
	var fetched []fetchedVote
	for _, row := range rows {
		v := fetchedVote{row: row}
		if row.DetailPath != "" {
			detailURL := r.url(row.DetailPath)
			detailBody, err := r.pool.Get(ctx, detailURL)
			if err != nil {
				log.Error("Failed to fetch vote detail", zap.Int("vote_number", row.VoteNumber), zap.Error(err))
				stats["errors"]++
				continue
			}
			detail, err := decode.ParseVoteDetail(detailBody)
			if err != nil {
				log.Error("Failed to decode vote detail", zap.Int("vote_number", row.VoteNumber), zap.Error(err))
				stats["errors"]++
				continue
			}
			sum := sha256.Sum256(detailBody)
			v.detail = &detail
			v.detailURL = strPtr(detailURL)
			v.hash = strPtr(hex.EncodeToString(sum[:]))
		}
		fetched = append(fetched, v)
	}

	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		reps, err := q.ListAllRepresentatives(ctx)
		if err != nil {
			return fmt.Errorf("list representatives: %w", err)
		}
		repByHocID := make(map[int]repository.Representative, len(reps))
		for _, rep := range reps {
			repByHocID[rep.HocID] = rep
		}

		for _, v := range fetched {
			existing, err := q.GetVoteByNumber(ctx, repository.GetVoteByNumberParams{
				VoteNumber: v.row.VoteNumber,
				Parliament: intPtr(r.cfg.Parliament),
				Session:    intPtr(r.cfg.Session),
			})
			exists := err == nil
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("get vote %d: %w", v.row.VoteNumber, err)
			}
			if exists && v.hash != nil && existing.SourceHash != nil && *existing.SourceHash == *v.hash {
				continue
			}

			subject := optStr(v.row.Subject)
			billNumber := v.row.BillNumber
			var motionText *string
			var sitting *int
			if v.detail != nil {
				if v.detail.Subject != "" {
					subject = strPtr(v.detail.Subject)
				}
				if v.detail.BillNumber != nil {
					billNumber = v.detail.BillNumber
				}
				motionText = optStr(v.detail.MotionText)
				sitting = v.detail.Sitting
			}

			var stored repository.Vote
			if exists {
				stored, err = q.UpdateVote(ctx, repository.UpdateVoteParams{
					ID:         existing.ID,
					VoteDate:   dateOf(v.row.VoteDate),
					SubjectEn:  subject,
					Decision:   optStr(v.row.Decision),
					Yeas:       v.row.Yeas,
					Nays:       v.row.Nays,
					Paired:     v.row.Paired,
					BillNumber: billNumber,
					MotionText: motionText,
					Sitting:    sitting,
					SourceURL:  v.detailURL,
					SourceHash: v.hash,
				})
			} else {
				stored, err = q.CreateVote(ctx, repository.CreateVoteParams{
					VoteNumber: v.row.VoteNumber,
					Parliament: intPtr(r.cfg.Parliament),
					Session:    intPtr(r.cfg.Session),
					VoteDate:   dateOf(v.row.VoteDate),
					SubjectEn:  subject,
					Decision:   optStr(v.row.Decision),
					Yeas:       v.row.Yeas,
					Nays:       v.row.Nays,
					Paired:     v.row.Paired,
					BillNumber: billNumber,
					MotionText: motionText,
					Sitting:    sitting,
					SourceURL:  v.detailURL,
					SourceHash: v.hash,
				})
			}
			if err != nil {
				return fmt.Errorf("upsert vote %d: %w", v.row.VoteNumber, err)
			}
			stats["votes"]++

			if v.detail == nil || len(v.detail.Ballots) == 0 {
				continue
			}
			if err := q.DeleteVoteMembers(ctx, stored.ID); err != nil {
				return fmt.Errorf("delete members of vote %d: %w", v.row.VoteNumber, err)
			}
			for _, ballot := range v.detail.Ballots {
				var repID *int64
				if ballot.HocID != nil {
					if rep, ok := repByHocID[*ballot.HocID]; ok {
						repID = &rep.ID
					}
				}
				err := q.CreateVoteMember(ctx, repository.CreateVoteMemberParams{
					VoteID:           stored.ID,
					RepresentativeID: repID,
					HocID:            ballot.HocID,
					MemberName:       ballot.MemberName,
					Position:         ballot.Position,
					PartyName:        ballot.Party,
					RidingName:       ballot.Riding,
				})
				if err != nil {
					return fmt.Errorf("create member ballot for vote %d: %w", v.row.VoteNumber, err)
				}
				stats["members"]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
