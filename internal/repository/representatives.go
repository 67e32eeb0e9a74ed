package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const representativeColumns = `r.id, r.hoc_id, r.first_name, r.last_name, r.name, r.honorific,
  r.email, r.phone, r.photo_url, r.profile_url, r.is_active, r.party_id, r.riding_id,
  r.created_at, r.updated_at`

func scanRepresentative(row pgx.Row) (Representative, error) {
	var i Representative
	err := row.Scan(
		&i.ID,
		&i.HocID,
		&i.FirstName,
		&i.LastName,
		&i.Name,
		&i.Honorific,
		&i.Email,
		&i.Phone,
		&i.PhotoURL,
		&i.ProfileURL,
		&i.IsActive,
		&i.PartyID,
		&i.RidingID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getRepresentativeByHocID = `
SELECT ` + representativeColumns + `
FROM representatives r
WHERE r.hoc_id = $1
`

func (q *Queries) GetRepresentativeByHocID(ctx context.Context, hocID int) (Representative, error) {
	return scanRepresentative(q.db.QueryRow(ctx, getRepresentativeByHocID, hocID))
}

// getActiveRepresentativeByRidingID returns the sitting member for a riding.
const getActiveRepresentativeByRidingID = `
SELECT ` + representativeColumns + `
FROM representatives r
WHERE r.riding_id = $1 AND r.is_active = TRUE
`

func (q *Queries) GetActiveRepresentativeByRidingID(ctx context.Context, ridingID int64) (Representative, error) {
	return scanRepresentative(q.db.QueryRow(ctx, getActiveRepresentativeByRidingID, ridingID))
}

const createRepresentative = `
INSERT INTO representatives (
  hoc_id, first_name, last_name, name, honorific, email, phone,
  photo_url, profile_url, is_active, party_id, riding_id
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, hoc_id, first_name, last_name, name, honorific,
  email, phone, photo_url, profile_url, is_active, party_id, riding_id,
  created_at, updated_at
`

type CreateRepresentativeParams struct {
	HocID      int
	FirstName  *string
	LastName   *string
	Name       string
	Honorific  *string
	Email      *string
	Phone      *string
	PhotoURL   *string
	ProfileURL *string
	IsActive   bool
	PartyID    *int64
	RidingID   *int64
}

func (q *Queries) CreateRepresentative(ctx context.Context, arg CreateRepresentativeParams) (Representative, error) {
	return scanRepresentative(q.db.QueryRow(ctx, createRepresentative,
		arg.HocID,
		arg.FirstName,
		arg.LastName,
		arg.Name,
		arg.Honorific,
		arg.Email,
		arg.Phone,
		arg.PhotoURL,
		arg.ProfileURL,
		arg.IsActive,
		arg.PartyID,
		arg.RidingID,
	))
}

const updateRepresentative = `
UPDATE representatives SET
  first_name = $2,
  last_name = $3,
  name = $4,
  honorific = $5,
  email = $6,
  phone = $7,
  photo_url = $8,
  profile_url = $9,
  is_active = $10,
  party_id = $11,
  riding_id = $12,
  updated_at = now()
WHERE id = $1
RETURNING id, hoc_id, first_name, last_name, name, honorific,
  email, phone, photo_url, profile_url, is_active, party_id, riding_id,
  created_at, updated_at
`

type UpdateRepresentativeParams struct {
	ID         int64
	FirstName  *string
	LastName   *string
	Name       string
	Honorific  *string
	Email      *string
	Phone      *string
	PhotoURL   *string
	ProfileURL *string
	IsActive   bool
	PartyID    *int64
	RidingID   *int64
}

func (q *Queries) UpdateRepresentative(ctx context.Context, arg UpdateRepresentativeParams) (Representative, error) {
	return scanRepresentative(q.db.QueryRow(ctx, updateRepresentative,
		arg.ID,
		arg.FirstName,
		arg.LastName,
		arg.Name,
		arg.Honorific,
		arg.Email,
		arg.Phone,
		arg.PhotoURL,
		arg.ProfileURL,
		arg.IsActive,
		arg.PartyID,
		arg.RidingID,
	))
}

// Listing only ever returns active members. Province matches the riding and
// party matches the party name, both exactly.
const listRepresentatives = `
SELECT ` + representativeColumns + `
FROM representatives r
LEFT JOIN ridings rd ON rd.id = r.riding_id
LEFT JOIN parties p ON p.id = r.party_id
WHERE r.is_active = TRUE
  AND ($1::text IS NULL OR rd.province = $1)
  AND ($2::text IS NULL OR p.name = $2)
ORDER BY r.name
LIMIT $3 OFFSET $4
`

type ListRepresentativesParams struct {
	Province *string
	Party    *string
	Limit    int
	Offset   int
}

func (q *Queries) ListRepresentatives(ctx context.Context, arg ListRepresentativesParams) ([]Representative, error) {
	rows, err := q.db.Query(ctx, listRepresentatives, arg.Province, arg.Party, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Representative
	for rows.Next() {
		i, err := scanRepresentative(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countRepresentatives = `
SELECT count(*)
FROM representatives r
LEFT JOIN ridings rd ON rd.id = r.riding_id
LEFT JOIN parties p ON p.id = r.party_id
WHERE r.is_active = TRUE
  AND ($1::text IS NULL OR rd.province = $1)
  AND ($2::text IS NULL OR p.name = $2)
`

type CountRepresentativesParams struct {
	Province *string
	Party    *string
}

func (q *Queries) CountRepresentatives(ctx context.Context, arg CountRepresentativesParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countRepresentatives, arg.Province, arg.Party).Scan(&count)
	return count, err
}

// listActiveRepresentatives feeds the per-member roles crawl.
const listActiveRepresentatives = `
SELECT ` + representativeColumns + `
FROM representatives r
WHERE r.is_active = TRUE
ORDER BY r.hoc_id
`

func (q *Queries) ListActiveRepresentatives(ctx context.Context) ([]Representative, error) {
	rows, err := q.db.Query(ctx, listActiveRepresentatives)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Representative
	for rows.Next() {
		i, err := scanRepresentative(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// listAllRepresentatives feeds the expenditure name matcher.
const listAllRepresentatives = `
SELECT ` + representativeColumns + `
FROM representatives r
`

func (q *Queries) ListAllRepresentatives(ctx context.Context) ([]Representative, error) {
	rows, err := q.db.Query(ctx, listAllRepresentatives)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Representative
	for rows.Next() {
		i, err := scanRepresentative(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
