package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func scanParty(row pgx.Row) (Party, error) {
	var i Party
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.ShortName,
		&i.Color,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getParty = `
SELECT id, name, short_name, color, created_at, updated_at
FROM parties
WHERE id = $1
`

func (q *Queries) GetParty(ctx context.Context, id int64) (Party, error) {
	return scanParty(q.db.QueryRow(ctx, getParty, id))
}

const getPartyByName = `
SELECT id, name, short_name, color, created_at, updated_at
FROM parties
WHERE name = $1
`

func (q *Queries) GetPartyByName(ctx context.Context, name string) (Party, error) {
	return scanParty(q.db.QueryRow(ctx, getPartyByName, name))
}

const createParty = `
INSERT INTO parties (name, short_name, color)
VALUES ($1, $2, $3)
RETURNING id, name, short_name, color, created_at, updated_at
`

type CreatePartyParams struct {
	Name      string
	ShortName *string
	Color     *string
}

func (q *Queries) CreateParty(ctx context.Context, arg CreatePartyParams) (Party, error) {
	return scanParty(q.db.QueryRow(ctx, createParty, arg.Name, arg.ShortName, arg.Color))
}

const listParties = `
SELECT id, name, short_name, color, created_at, updated_at
FROM parties
ORDER BY name
LIMIT $1 OFFSET $2
`

type ListPartiesParams struct {
	Limit  int
	Offset int
}

func (q *Queries) ListParties(ctx context.Context, arg ListPartiesParams) ([]Party, error) {
	rows, err := q.db.Query(ctx, listParties, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Party
	for rows.Next() {
		i, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listPartiesByIDs = `
SELECT id, name, short_name, color, created_at, updated_at
FROM parties
WHERE id = ANY($1::bigint[])
`

func (q *Queries) ListPartiesByIDs(ctx context.Context, ids []int64) ([]Party, error) {
	rows, err := q.db.Query(ctx, listPartiesByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Party
	for rows.Next() {
		i, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countParties = `
SELECT count(*) FROM parties
`

func (q *Queries) CountParties(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countParties).Scan(&count)
	return count, err
}
