package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const voteColumns = `id, vote_number, parliament, session, vote_date, subject_en, subject_fr,
  decision, yeas, nays, paired, bill_number, motion_text, sitting,
  source_url, source_hash, created_at, updated_at`

func scanVote(row pgx.Row) (Vote, error) {
	var i Vote
	err := row.Scan(
		&i.ID,
		&i.VoteNumber,
		&i.Parliament,
		&i.Session,
		&i.VoteDate,
		&i.SubjectEn,
		&i.SubjectFr,
		&i.Decision,
		&i.Yeas,
		&i.Nays,
		&i.Paired,
		&i.BillNumber,
		&i.MotionText,
		&i.Sitting,
		&i.SourceURL,
		&i.SourceHash,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getVote = `
SELECT ` + voteColumns + `
FROM votes
WHERE id = $1
`

func (q *Queries) GetVote(ctx context.Context, id int64) (Vote, error) {
	return scanVote(q.db.QueryRow(ctx, getVote, id))
}

const getVoteByNumber = `
SELECT ` + voteColumns + `
FROM votes
WHERE vote_number = $1
  AND parliament IS NOT DISTINCT FROM $2
  AND session IS NOT DISTINCT FROM $3
`

type GetVoteByNumberParams struct {
	VoteNumber int
	Parliament *int
	Session    *int
}

func (q *Queries) GetVoteByNumber(ctx context.Context, arg GetVoteByNumberParams) (Vote, error) {
	return scanVote(q.db.QueryRow(ctx, getVoteByNumber, arg.VoteNumber, arg.Parliament, arg.Session))
}

const createVote = `
INSERT INTO votes (
  vote_number, parliament, session, vote_date, subject_en, subject_fr,
  decision, yeas, nays, paired, bill_number, motion_text, sitting,
  source_url, source_hash
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + voteColumns + `
`

type CreateVoteParams struct {
	VoteNumber int
	Parliament *int
	Session    *int
	VoteDate   pgtype.Date
	SubjectEn  *string
	SubjectFr  *string
	Decision   *string
	Yeas       *int
	Nays       *int
	Paired     *int
	BillNumber *string
	MotionText *string
	Sitting    *int
	SourceURL  *string
	SourceHash *string
}

func (q *Queries) CreateVote(ctx context.Context, arg CreateVoteParams) (Vote, error) {
	return scanVote(q.db.QueryRow(ctx, createVote,
		arg.VoteNumber,
		arg.Parliament,
		arg.Session,
		arg.VoteDate,
		arg.SubjectEn,
		arg.SubjectFr,
		arg.Decision,
		arg.Yeas,
		arg.Nays,
		arg.Paired,
		arg.BillNumber,
		arg.MotionText,
		arg.Sitting,
		arg.SourceURL,
		arg.SourceHash,
	))
}

const updateVote = `
UPDATE votes SET
  vote_date = $2,
  subject_en = $3,
  subject_fr = $4,
  decision = $5,
  yeas = $6,
  nays = $7,
  paired = $8,
  bill_number = $9,
  motion_text = $10,
  sitting = $11,
  source_url = $12,
  source_hash = $13,
  updated_at = now()
WHERE id = $1
RETURNING ` + voteColumns + `
`

type UpdateVoteParams struct {
	ID         int64
	VoteDate   pgtype.Date
	SubjectEn  *string
	SubjectFr  *string
	Decision   *string
	Yeas       *int
	Nays       *int
	Paired     *int
	BillNumber *string
	MotionText *string
	Sitting    *int
	SourceURL  *string
	SourceHash *string
}

func (q *Queries) UpdateVote(ctx context.Context, arg UpdateVoteParams) (Vote, error) {
	return scanVote(q.db.QueryRow(ctx, updateVote,
		arg.ID,
		arg.VoteDate,
		arg.SubjectEn,
		arg.SubjectFr,
		arg.Decision,
		arg.Yeas,
		arg.Nays,
		arg.Paired,
		arg.BillNumber,
		arg.MotionText,
		arg.Sitting,
		arg.SourceURL,
		arg.SourceHash,
	))
}

const listVotes = `
SELECT ` + voteColumns + `
FROM votes
WHERE ($1::date IS NULL OR vote_date = $1)
  AND ($2::text IS NULL OR decision = $2)
  AND ($3::text IS NULL OR bill_number = $3)
  AND ($4::int IS NULL OR parliament = $4)
  AND ($5::int IS NULL OR session = $5)
ORDER BY vote_date DESC NULLS LAST, vote_number DESC
LIMIT $6 OFFSET $7
`

type ListVotesParams struct {
	VoteDate   pgtype.Date
	Decision   *string
	BillNumber *string
	Parliament *int
	Session    *int
	Limit      int
	Offset     int
}

func (q *Queries) ListVotes(ctx context.Context, arg ListVotesParams) ([]Vote, error) {
	rows, err := q.db.Query(ctx, listVotes,
		arg.VoteDate,
		arg.Decision,
		arg.BillNumber,
		arg.Parliament,
		arg.Session,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Vote
	for rows.Next() {
		i, err := scanVote(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countVotes = `
SELECT count(*)
FROM votes
WHERE ($1::date IS NULL OR vote_date = $1)
  AND ($2::text IS NULL OR decision = $2)
  AND ($3::text IS NULL OR bill_number = $3)
  AND ($4::int IS NULL OR parliament = $4)
  AND ($5::int IS NULL OR session = $5)
`

type CountVotesParams struct {
	VoteDate   pgtype.Date
	Decision   *string
	BillNumber *string
	Parliament *int
	Session    *int
}

func (q *Queries) CountVotes(ctx context.Context, arg CountVotesParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countVotes,
		arg.VoteDate,
		arg.Decision,
		arg.BillNumber,
		arg.Parliament,
		arg.Session,
	).Scan(&count)
	return count, err
}

func scanVoteMember(row pgx.Row) (VoteMember, error) {
	var i VoteMember
	err := row.Scan(
		&i.ID,
		&i.VoteID,
		&i.RepresentativeID,
		&i.HocID,
		&i.MemberName,
		&i.Position,
		&i.PartyName,
		&i.RidingName,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createVoteMember = `
INSERT INTO vote_members (
  vote_id, representative_id, hoc_id, member_name, position, party_name, riding_name
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateVoteMemberParams struct {
	VoteID           int64
	RepresentativeID *int64
	HocID            *int
	MemberName       string
	Position         string
	PartyName        *string
	RidingName       *string
}

func (q *Queries) CreateVoteMember(ctx context.Context, arg CreateVoteMemberParams) error {
	_, err := q.db.Exec(ctx, createVoteMember,
		arg.VoteID,
		arg.RepresentativeID,
		arg.HocID,
		arg.MemberName,
		arg.Position,
		arg.PartyName,
		arg.RidingName,
	)
	return err
}

const deleteVoteMembers = `
DELETE FROM vote_members WHERE vote_id = $1
`

// DeleteVoteMembers clears stored ballots before re-inserting a fresh set,
// keeping the ballot list an exact mirror of the source table.
func (q *Queries) DeleteVoteMembers(ctx context.Context, voteID int64) error {
	_, err := q.db.Exec(ctx, deleteVoteMembers, voteID)
	return err
}

const listVoteMembers = `
SELECT id, vote_id, representative_id, hoc_id, member_name, position,
  party_name, riding_name, created_at, updated_at
FROM vote_members
WHERE vote_id = $1
ORDER BY id
`

func (q *Queries) ListVoteMembers(ctx context.Context, voteID int64) ([]VoteMember, error) {
	rows, err := q.db.Query(ctx, listVoteMembers, voteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VoteMember
	for rows.Next() {
		i, err := scanVoteMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listVoteMembersForVotes = `
SELECT id, vote_id, representative_id, hoc_id, member_name, position,
  party_name, riding_name, created_at, updated_at
FROM vote_members
WHERE vote_id = ANY($1::bigint[])
ORDER BY vote_id, id
`

func (q *Queries) ListVoteMembersForVotes(ctx context.Context, voteIDs []int64) ([]VoteMember, error) {
	rows, err := q.db.Query(ctx, listVoteMembersForVotes, voteIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VoteMember
	for rows.Next() {
		i, err := scanVoteMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
