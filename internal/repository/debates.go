package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const debateColumns = `id, parliament, session, sitting, debate_date, language, volume,
  number, speaker_name, document_url, source_hash, created_at, updated_at`

func scanDebate(row pgx.Row) (Debate, error) {
	var i Debate
	err := row.Scan(
		&i.ID,
		&i.Parliament,
		&i.Session,
		&i.Sitting,
		&i.DebateDate,
		&i.Language,
		&i.Volume,
		&i.Number,
		&i.SpeakerName,
		&i.DocumentURL,
		&i.SourceHash,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDebate = `
SELECT ` + debateColumns + `
FROM debates
WHERE id = $1
`

func (q *Queries) GetDebate(ctx context.Context, id int64) (Debate, error) {
	return scanDebate(q.db.QueryRow(ctx, getDebate, id))
}

// A sitting is published once per floor language, so the natural key is
// (parliament, session, sitting, language), all nullable upstream.
const getDebateBySitting = `
SELECT ` + debateColumns + `
FROM debates
WHERE parliament IS NOT DISTINCT FROM $1
  AND session IS NOT DISTINCT FROM $2
  AND sitting IS NOT DISTINCT FROM $3
  AND language IS NOT DISTINCT FROM $4
`

type GetDebateBySittingParams struct {
	Parliament *int
	Session    *int
	Sitting    *int
	Language   *string
}

func (q *Queries) GetDebateBySitting(ctx context.Context, arg GetDebateBySittingParams) (Debate, error) {
	return scanDebate(q.db.QueryRow(ctx, getDebateBySitting,
		arg.Parliament, arg.Session, arg.Sitting, arg.Language))
}

const createDebate = `
INSERT INTO debates (
  parliament, session, sitting, debate_date, language, volume, number,
  speaker_name, document_url, source_hash
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + debateColumns + `
`

type CreateDebateParams struct {
	Parliament  *int
	Session     *int
	Sitting     *int
	DebateDate  pgtype.Date
	Language    *string
	Volume      *string
	Number      *string
	SpeakerName *string
	DocumentURL *string
	SourceHash  *string
}

func (q *Queries) CreateDebate(ctx context.Context, arg CreateDebateParams) (Debate, error) {
	return scanDebate(q.db.QueryRow(ctx, createDebate,
		arg.Parliament,
		arg.Session,
		arg.Sitting,
		arg.DebateDate,
		arg.Language,
		arg.Volume,
		arg.Number,
		arg.SpeakerName,
		arg.DocumentURL,
		arg.SourceHash,
	))
}

const updateDebate = `
UPDATE debates SET
  debate_date = $2,
  volume = $3,
  number = $4,
  speaker_name = $5,
  document_url = $6,
  source_hash = $7,
  updated_at = now()
WHERE id = $1
RETURNING ` + debateColumns + `
`

type UpdateDebateParams struct {
	ID          int64
	DebateDate  pgtype.Date
	Volume      *string
	Number      *string
	SpeakerName *string
	DocumentURL *string
	SourceHash  *string
}

func (q *Queries) UpdateDebate(ctx context.Context, arg UpdateDebateParams) (Debate, error) {
	return scanDebate(q.db.QueryRow(ctx, updateDebate,
		arg.ID,
		arg.DebateDate,
		arg.Volume,
		arg.Number,
		arg.SpeakerName,
		arg.DocumentURL,
		arg.SourceHash,
	))
}

const listDebates = `
SELECT ` + debateColumns + `
FROM debates
WHERE ($1::date IS NULL OR debate_date = $1)
  AND ($2::text IS NULL OR language = $2)
  AND ($3::int IS NULL OR sitting = $3)
  AND ($4::int IS NULL OR parliament = $4)
  AND ($5::int IS NULL OR session = $5)
ORDER BY debate_date DESC NULLS LAST, sitting DESC NULLS LAST
LIMIT $6 OFFSET $7
`

type ListDebatesParams struct {
	DebateDate pgtype.Date
	Language   *string
	Sitting    *int
	Parliament *int
	Session    *int
	Limit      int
	Offset     int
}

func (q *Queries) ListDebates(ctx context.Context, arg ListDebatesParams) ([]Debate, error) {
	rows, err := q.db.Query(ctx, listDebates,
		arg.DebateDate,
		arg.Language,
		arg.Sitting,
		arg.Parliament,
		arg.Session,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Debate
	for rows.Next() {
		i, err := scanDebate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countDebates = `
SELECT count(*)
FROM debates
WHERE ($1::date IS NULL OR debate_date = $1)
  AND ($2::text IS NULL OR language = $2)
  AND ($3::int IS NULL OR sitting = $3)
  AND ($4::int IS NULL OR parliament = $4)
  AND ($5::int IS NULL OR session = $5)
`

type CountDebatesParams struct {
	DebateDate pgtype.Date
	Language   *string
	Sitting    *int
	Parliament *int
	Session    *int
}

func (q *Queries) CountDebates(ctx context.Context, arg CountDebatesParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countDebates,
		arg.DebateDate,
		arg.Language,
		arg.Sitting,
		arg.Parliament,
		arg.Session,
	).Scan(&count)
	return count, err
}

// GetMaxDebateSitting returns the highest sitting number stored for a
// parliament and session, or nil when none have been ingested yet.
const getMaxDebateSitting = `
SELECT max(sitting)
FROM debates
WHERE parliament IS NOT DISTINCT FROM $1
  AND session IS NOT DISTINCT FROM $2
`

type GetMaxDebateSittingParams struct {
	Parliament *int
	Session    *int
}

func (q *Queries) GetMaxDebateSitting(ctx context.Context, arg GetMaxDebateSittingParams) (*int, error) {
	var maxSitting *int
	err := q.db.QueryRow(ctx, getMaxDebateSitting, arg.Parliament, arg.Session).Scan(&maxSitting)
	return maxSitting, err
}

func scanDebateIntervention(row pgx.Row) (DebateIntervention, error) {
	var i DebateIntervention
	err := row.Scan(
		&i.ID,
		&i.DebateID,
		&i.Sequence,
		&i.SpeakerName,
		&i.SpeakerAffiliation,
		&i.FloorLanguage,
		&i.Timestamp,
		&i.OrderOfBusiness,
		&i.SubjectTitle,
		&i.InterventionType,
		&i.Text,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createDebateIntervention = `
INSERT INTO debate_interventions (
  debate_id, sequence, speaker_name, speaker_affiliation, floor_language,
  timestamp, order_of_business, subject_title, intervention_type, text
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateDebateInterventionParams struct {
	DebateID           int64
	Sequence           int
	SpeakerName        *string
	SpeakerAffiliation *string
	FloorLanguage      *string
	Timestamp          *string
	OrderOfBusiness    *string
	SubjectTitle       *string
	InterventionType   *string
	Text               *string
}

func (q *Queries) CreateDebateIntervention(ctx context.Context, arg CreateDebateInterventionParams) error {
	_, err := q.db.Exec(ctx, createDebateIntervention,
		arg.DebateID,
		arg.Sequence,
		arg.SpeakerName,
		arg.SpeakerAffiliation,
		arg.FloorLanguage,
		arg.Timestamp,
		arg.OrderOfBusiness,
		arg.SubjectTitle,
		arg.InterventionType,
		arg.Text,
	)
	return err
}

const deleteDebateInterventions = `
DELETE FROM debate_interventions WHERE debate_id = $1
`

func (q *Queries) DeleteDebateInterventions(ctx context.Context, debateID int64) error {
	_, err := q.db.Exec(ctx, deleteDebateInterventions, debateID)
	return err
}

const listDebateInterventions = `
SELECT id, debate_id, sequence, speaker_name, speaker_affiliation, floor_language,
  timestamp, order_of_business, subject_title, intervention_type, text,
  created_at, updated_at
FROM debate_interventions
WHERE debate_id = $1
ORDER BY sequence
`

func (q *Queries) ListDebateInterventions(ctx context.Context, debateID int64) ([]DebateIntervention, error) {
	rows, err := q.db.Query(ctx, listDebateInterventions, debateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DebateIntervention
	for rows.Next() {
		i, err := scanDebateIntervention(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
