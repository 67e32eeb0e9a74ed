package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func scanRiding(row pgx.Row) (Riding, error) {
	var i Riding
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Province,
		&i.FedNumber,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getRiding = `
SELECT id, name, province, fed_number, created_at, updated_at
FROM ridings
WHERE id = $1
`

func (q *Queries) GetRiding(ctx context.Context, id int64) (Riding, error) {
	return scanRiding(q.db.QueryRow(ctx, getRiding, id))
}

const getRidingByNameAndProvince = `
SELECT id, name, province, fed_number, created_at, updated_at
FROM ridings
WHERE name = $1 AND province = $2
`

type GetRidingByNameAndProvinceParams struct {
	Name     string
	Province string
}

func (q *Queries) GetRidingByNameAndProvince(ctx context.Context, arg GetRidingByNameAndProvinceParams) (Riding, error) {
	return scanRiding(q.db.QueryRow(ctx, getRidingByNameAndProvince, arg.Name, arg.Province))
}

// getRidingByPoint resolves a WGS84 coordinate to the riding whose boundary
// contains it. Rows without geometry are skipped.
const getRidingByPoint = `
SELECT id, name, province, fed_number, created_at, updated_at
FROM ridings
WHERE geom IS NOT NULL
  AND ST_Contains(geom, ST_SetSRID(ST_MakePoint($1, $2), 4326))
`

type GetRidingByPointParams struct {
	Lng float64
	Lat float64
}

func (q *Queries) GetRidingByPoint(ctx context.Context, arg GetRidingByPointParams) (Riding, error) {
	return scanRiding(q.db.QueryRow(ctx, getRidingByPoint, arg.Lng, arg.Lat))
}

const createRiding = `
INSERT INTO ridings (name, province, fed_number)
VALUES ($1, $2, $3)
RETURNING id, name, province, fed_number, created_at, updated_at
`

type CreateRidingParams struct {
	Name      string
	Province  string
	FedNumber *int
}

func (q *Queries) CreateRiding(ctx context.Context, arg CreateRidingParams) (Riding, error) {
	return scanRiding(q.db.QueryRow(ctx, createRiding, arg.Name, arg.Province, arg.FedNumber))
}

const listRidings = `
SELECT id, name, province, fed_number, created_at, updated_at
FROM ridings
WHERE ($1::text IS NULL OR province = $1)
ORDER BY name
LIMIT $2 OFFSET $3
`

type ListRidingsParams struct {
	Province *string
	Limit    int
	Offset   int
}

func (q *Queries) ListRidings(ctx context.Context, arg ListRidingsParams) ([]Riding, error) {
	rows, err := q.db.Query(ctx, listRidings, arg.Province, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Riding
	for rows.Next() {
		i, err := scanRiding(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listRidingsByIDs = `
SELECT id, name, province, fed_number, created_at, updated_at
FROM ridings
WHERE id = ANY($1::bigint[])
`

func (q *Queries) ListRidingsByIDs(ctx context.Context, ids []int64) ([]Riding, error) {
	rows, err := q.db.Query(ctx, listRidingsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Riding
	for rows.Next() {
		i, err := scanRiding(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countRidings = `
SELECT count(*) FROM ridings
WHERE ($1::text IS NULL OR province = $1)
`

func (q *Queries) CountRidings(ctx context.Context, province *string) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countRidings, province).Scan(&count)
	return count, err
}
