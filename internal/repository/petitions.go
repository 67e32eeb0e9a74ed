package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const petitionColumns = `id, petition_number, title_en, title_fr, status, presentation_date,
  closing_date, signatures, sponsor_hoc_id, sponsor_name, parliament, session,
  source_url, source_hash, created_at, updated_at`

func scanPetition(row pgx.Row) (Petition, error) {
	var i Petition
	err := row.Scan(
		&i.ID,
		&i.PetitionNumber,
		&i.TitleEn,
		&i.TitleFr,
		&i.Status,
		&i.PresentationDate,
		&i.ClosingDate,
		&i.Signatures,
		&i.SponsorHocID,
		&i.SponsorName,
		&i.Parliament,
		&i.Session,
		&i.SourceURL,
		&i.SourceHash,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPetition = `
SELECT ` + petitionColumns + `
FROM petitions
WHERE id = $1
`

func (q *Queries) GetPetition(ctx context.Context, id int64) (Petition, error) {
	return scanPetition(q.db.QueryRow(ctx, getPetition, id))
}

const getPetitionByNumber = `
SELECT ` + petitionColumns + `
FROM petitions
WHERE petition_number = $1
`

func (q *Queries) GetPetitionByNumber(ctx context.Context, petitionNumber string) (Petition, error) {
	return scanPetition(q.db.QueryRow(ctx, getPetitionByNumber, petitionNumber))
}

const createPetition = `
INSERT INTO petitions (
  petition_number, title_en, title_fr, status, presentation_date, closing_date,
  signatures, sponsor_hoc_id, sponsor_name, parliament, session, source_url, source_hash
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + petitionColumns + `
`

type CreatePetitionParams struct {
	PetitionNumber   string
	TitleEn          *string
	TitleFr          *string
	Status           *string
	PresentationDate pgtype.Date
	ClosingDate      pgtype.Timestamptz
	Signatures       *int
	SponsorHocID     *int
	SponsorName      *string
	Parliament       *int
	Session          *int
	SourceURL        *string
	SourceHash       *string
}

func (q *Queries) CreatePetition(ctx context.Context, arg CreatePetitionParams) (Petition, error) {
	return scanPetition(q.db.QueryRow(ctx, createPetition,
		arg.PetitionNumber,
		arg.TitleEn,
		arg.TitleFr,
		arg.Status,
		arg.PresentationDate,
		arg.ClosingDate,
		arg.Signatures,
		arg.SponsorHocID,
		arg.SponsorName,
		arg.Parliament,
		arg.Session,
		arg.SourceURL,
		arg.SourceHash,
	))
}

const updatePetition = `
UPDATE petitions SET
  title_en = $2,
  title_fr = $3,
  status = $4,
  presentation_date = $5,
  closing_date = $6,
  signatures = $7,
  sponsor_hoc_id = $8,
  sponsor_name = $9,
  parliament = $10,
  session = $11,
  source_url = $12,
  source_hash = $13,
  updated_at = now()
WHERE id = $1
RETURNING ` + petitionColumns + `
`

type UpdatePetitionParams struct {
	ID               int64
	TitleEn          *string
	TitleFr          *string
	Status           *string
	PresentationDate pgtype.Date
	ClosingDate      pgtype.Timestamptz
	Signatures       *int
	SponsorHocID     *int
	SponsorName      *string
	Parliament       *int
	Session          *int
	SourceURL        *string
	SourceHash       *string
}

func (q *Queries) UpdatePetition(ctx context.Context, arg UpdatePetitionParams) (Petition, error) {
	return scanPetition(q.db.QueryRow(ctx, updatePetition,
		arg.ID,
		arg.TitleEn,
		arg.TitleFr,
		arg.Status,
		arg.PresentationDate,
		arg.ClosingDate,
		arg.Signatures,
		arg.SponsorHocID,
		arg.SponsorName,
		arg.Parliament,
		arg.Session,
		arg.SourceURL,
		arg.SourceHash,
	))
}

const listPetitions = `
SELECT ` + petitionColumns + `
FROM petitions
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::int IS NULL OR sponsor_hoc_id = $2)
  AND ($3::date IS NULL OR presentation_date >= $3)
  AND ($4::date IS NULL OR presentation_date <= $4)
  AND ($5::int IS NULL OR parliament = $5)
  AND ($6::int IS NULL OR session = $6)
ORDER BY presentation_date DESC NULLS LAST
LIMIT $7 OFFSET $8
`

type ListPetitionsParams struct {
	Status       *string
	SponsorHocID *int
	FromDate     pgtype.Date
	ToDate       pgtype.Date
	Parliament   *int
	Session      *int
	Limit        int
	Offset       int
}

func (q *Queries) ListPetitions(ctx context.Context, arg ListPetitionsParams) ([]Petition, error) {
	rows, err := q.db.Query(ctx, listPetitions,
		arg.Status,
		arg.SponsorHocID,
		arg.FromDate,
		arg.ToDate,
		arg.Parliament,
		arg.Session,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Petition
	for rows.Next() {
		i, err := scanPetition(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countPetitions = `
SELECT count(*)
FROM petitions
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::int IS NULL OR sponsor_hoc_id = $2)
  AND ($3::date IS NULL OR presentation_date >= $3)
  AND ($4::date IS NULL OR presentation_date <= $4)
  AND ($5::int IS NULL OR parliament = $5)
  AND ($6::int IS NULL OR session = $6)
`

type CountPetitionsParams struct {
	Status       *string
	SponsorHocID *int
	FromDate     pgtype.Date
	ToDate       pgtype.Date
	Parliament   *int
	Session      *int
}

func (q *Queries) CountPetitions(ctx context.Context, arg CountPetitionsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countPetitions,
		arg.Status,
		arg.SponsorHocID,
		arg.FromDate,
		arg.ToDate,
		arg.Parliament,
		arg.Session,
	).Scan(&count)
	return count, err
}
