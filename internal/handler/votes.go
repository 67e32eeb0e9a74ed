package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

type voteMemberView struct {
	ID               int64   `json:"id"`
	VoteID           int64   `json:"vote_id"`
	RepresentativeID *int64  `json:"representative_id"`
	HocID            *int    `json:"hoc_id"`
	MemberName       string  `json:"member_name"`
	Position         string  `json:"position"`
	PartyName        *string `json:"party_name"`
	RidingName       *string `json:"riding_name"`
}

// voteView serializes Members as null unless ballots were requested, so the
// cheap listing stays cheap.
type voteView struct {
	ID         int64            `json:"id"`
	VoteNumber int              `json:"vote_number"`
	Parliament *int             `json:"parliament"`
	Session    *int             `json:"session"`
	VoteDate   pgtype.Date      `json:"vote_date"`
	SubjectEn  *string          `json:"subject_en"`
	SubjectFr  *string          `json:"subject_fr"`
	Decision   *string          `json:"decision"`
	Yeas       *int             `json:"yeas"`
	Nays       *int             `json:"nays"`
	Paired     *int             `json:"paired"`
	BillNumber *string          `json:"bill_number"`
	MotionText *string          `json:"motion_text"`
	Sitting    *int             `json:"sitting"`
	Members    []voteMemberView `json:"members"`
}

func newVoteView(v repository.Vote, members []voteMemberView) voteView {
	return voteView{
		ID:         v.ID,
		VoteNumber: v.VoteNumber,
		Parliament: v.Parliament,
		Session:    v.Session,
		VoteDate:   v.VoteDate,
		SubjectEn:  v.SubjectEn,
		SubjectFr:  v.SubjectFr,
		Decision:   v.Decision,
		Yeas:       v.Yeas,
		Nays:       v.Nays,
		Paired:     v.Paired,
		BillNumber: v.BillNumber,
		MotionText: v.MotionText,
		Sitting:    v.Sitting,
		Members:    members,
	}
}

func newVoteMemberView(m repository.VoteMember) voteMemberView {
	return voteMemberView{
		ID:               m.ID,
		VoteID:           m.VoteID,
		RepresentativeID: m.RepresentativeID,
		HocID:            m.HocID,
		MemberName:       m.MemberName,
		Position:         m.Position,
		PartyName:        m.PartyName,
		RidingName:       m.RidingName,
	}
}

func (h *Handler) listVotes(c echo.Context) error {
	pg, err := bindPage(c, defaultPageLimit)
	if err != nil {
		return err
	}
	voteDate, err := queryDate(c, "date")
	if err != nil {
		return err
	}
	decision := queryString(c, "decision")
	billNumber := queryString(c, "bill_number")
	parliament, err := queryInt(c, "parliament")
	if err != nil {
		return err
	}
	sessionNumber, err := queryInt(c, "session_number")
	if err != nil {
		return err
	}
	includeMembers, err := queryBool(c, "include_members", false)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	votes, err := h.store.ListVotes(ctx, repository.ListVotesParams{
		VoteDate:   voteDate,
		Decision:   decision,
		BillNumber: billNumber,
		Parliament: parliament,
		Session:    sessionNumber,
		Limit:      pg.Limit,
		Offset:     pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list votes", err)
	}
	total, err := h.store.CountVotes(ctx, repository.CountVotesParams{
		VoteDate:   voteDate,
		Decision:   decision,
		BillNumber: billNumber,
		Parliament: parliament,
		Session:    sessionNumber,
	})
	if err != nil {
		return h.serverError(c, "count votes", err)
	}

	ballots := make(map[int64][]voteMemberView)
	if includeMembers && len(votes) > 0 {
		ids := make([]int64, 0, len(votes))
		for _, v := range votes {
			ids = append(ids, v.ID)
		}
		members, err := h.store.ListVoteMembersForVotes(ctx, ids)
		if err != nil {
			return h.serverError(c, "list vote members", err)
		}
		for _, m := range members {
			ballots[m.VoteID] = append(ballots[m.VoteID], newVoteMemberView(m))
		}
	}

	items := make([]voteView, 0, len(votes))
	for _, v := range votes {
		var members []voteMemberView
		if includeMembers {
			members = ballots[v.ID]
			if members == nil {
				members = make([]voteMemberView, 0)
			}
		}
		items = append(items, newVoteView(v, members))
	}
	return listJSON(c, items, total, pg)
}

func (h *Handler) getVote(c echo.Context) error {
	voteID, err := pathInt64(c, "vote_id")
	if err != nil {
		return err
	}
	includeMembers, err := queryBool(c, "include_members", true)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	vote, err := h.store.GetVote(ctx, voteID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errResponse(c, http.StatusNotFound, "Vote not found")
	}
	if err != nil {
		return h.serverError(c, "get vote", err)
	}

	var members []voteMemberView
	if includeMembers {
		rows, err := h.store.ListVoteMembers(ctx, vote.ID)
		if err != nil {
			return h.serverError(c, "list vote members", err)
		}
		members = make([]voteMemberView, 0, len(rows))
		for _, m := range rows {
			members = append(members, newVoteMemberView(m))
		}
	}
	return c.JSON(http.StatusOK, newVoteView(vote, members))
}
