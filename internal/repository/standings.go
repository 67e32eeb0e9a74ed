package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanPartyStanding(row pgx.Row) (PartyStanding, error) {
	var i PartyStanding
	err := row.Scan(
		&i.ID,
		&i.PartyID,
		&i.PartyName,
		&i.SeatCount,
		&i.AsOfDate,
		&i.Parliament,
		&i.Session,
		&i.SourceURL,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// Standings are unique per (party_name, parliament, session, as_of_date).
// Parliament and session may be null, so the match uses IS NOT DISTINCT FROM.
const getPartyStanding = `
SELECT id, party_id, party_name, seat_count, as_of_date, parliament, session,
  source_url, created_at, updated_at
FROM party_standings
WHERE party_name = $1
  AND parliament IS NOT DISTINCT FROM $2
  AND session IS NOT DISTINCT FROM $3
  AND as_of_date IS NOT DISTINCT FROM $4
`

type GetPartyStandingParams struct {
	PartyName  string
	Parliament *int
	Session    *int
	AsOfDate   pgtype.Date
}

func (q *Queries) GetPartyStanding(ctx context.Context, arg GetPartyStandingParams) (PartyStanding, error) {
	return scanPartyStanding(q.db.QueryRow(ctx, getPartyStanding,
		arg.PartyName, arg.Parliament, arg.Session, arg.AsOfDate))
}

const createPartyStanding = `
INSERT INTO party_standings (party_id, party_name, seat_count, as_of_date, parliament, session, source_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, party_id, party_name, seat_count, as_of_date, parliament, session,
  source_url, created_at, updated_at
`

type CreatePartyStandingParams struct {
	PartyID    *int64
	PartyName  string
	SeatCount  int
	AsOfDate   pgtype.Date
	Parliament *int
	Session    *int
	SourceURL  *string
}

func (q *Queries) CreatePartyStanding(ctx context.Context, arg CreatePartyStandingParams) (PartyStanding, error) {
	return scanPartyStanding(q.db.QueryRow(ctx, createPartyStanding,
		arg.PartyID, arg.PartyName, arg.SeatCount, arg.AsOfDate, arg.Parliament, arg.Session, arg.SourceURL))
}

const updatePartyStanding = `
UPDATE party_standings SET
  party_id = $2,
  seat_count = $3,
  source_url = $4,
  updated_at = now()
WHERE id = $1
RETURNING id, party_id, party_name, seat_count, as_of_date, parliament, session,
  source_url, created_at, updated_at
`

type UpdatePartyStandingParams struct {
	ID        int64
	PartyID   *int64
	SeatCount int
	SourceURL *string
}

func (q *Queries) UpdatePartyStanding(ctx context.Context, arg UpdatePartyStandingParams) (PartyStanding, error) {
	return scanPartyStanding(q.db.QueryRow(ctx, updatePartyStanding,
		arg.ID, arg.PartyID, arg.SeatCount, arg.SourceURL))
}

const listPartyStandings = `
SELECT id, party_id, party_name, seat_count, as_of_date, parliament, session,
  source_url, created_at, updated_at
FROM party_standings
WHERE ($1::int IS NULL OR parliament = $1)
  AND ($2::int IS NULL OR session = $2)
  AND ($3::date IS NULL OR as_of_date = $3)
  AND ($4::text IS NULL OR party_name = $4)
ORDER BY seat_count DESC
LIMIT $5 OFFSET $6
`

type ListPartyStandingsParams struct {
	Parliament *int
	Session    *int
	AsOfDate   pgtype.Date
	PartyName  *string
	Limit      int
	Offset     int
}

func (q *Queries) ListPartyStandings(ctx context.Context, arg ListPartyStandingsParams) ([]PartyStanding, error) {
	rows, err := q.db.Query(ctx, listPartyStandings,
		arg.Parliament, arg.Session, arg.AsOfDate, arg.PartyName, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PartyStanding
	for rows.Next() {
		i, err := scanPartyStanding(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countPartyStandings = `
SELECT count(*)
FROM party_standings
WHERE ($1::int IS NULL OR parliament = $1)
  AND ($2::int IS NULL OR session = $2)
  AND ($3::date IS NULL OR as_of_date = $3)
  AND ($4::text IS NULL OR party_name = $4)
`

type CountPartyStandingsParams struct {
	Parliament *int
	Session    *int
	AsOfDate   pgtype.Date
	PartyName  *string
}

func (q *Queries) CountPartyStandings(ctx context.Context, arg CountPartyStandingsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countPartyStandings,
		arg.Parliament, arg.Session, arg.AsOfDate, arg.PartyName).Scan(&count)
	return count, err
}

// getLatestStandingDate finds the most recent snapshot date so list requests
// without an explicit as_of_date default to the newest standings.
const getLatestStandingDate = `
SELECT max(as_of_date)
FROM party_standings
WHERE ($1::int IS NULL OR parliament = $1)
  AND ($2::int IS NULL OR session = $2)
`

type GetLatestStandingDateParams struct {
	Parliament *int
	Session    *int
}

func (q *Queries) GetLatestStandingDate(ctx context.Context, arg GetLatestStandingDateParams) (pgtype.Date, error) {
	var d pgtype.Date
	err := q.db.QueryRow(ctx, getLatestStandingDate, arg.Parliament, arg.Session).Scan(&d)
	return d, err
}
