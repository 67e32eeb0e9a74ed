package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const memberExpenditureColumns = `id, representative_id, hoc_id, member_name, category, amount,
  period_start, period_end, fiscal_year, source_url, created_at, updated_at`

func scanMemberExpenditure(row pgx.Row) (MemberExpenditure, error) {
	var i MemberExpenditure
	err := row.Scan(
		&i.ID,
		&i.RepresentativeID,
		&i.HocID,
		&i.MemberName,
		&i.Category,
		&i.Amount,
		&i.PeriodStart,
		&i.PeriodEnd,
		&i.FiscalYear,
		&i.SourceURL,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createMemberExpenditure = `
INSERT INTO member_expenditures (
  representative_id, hoc_id, member_name, category, amount, period_start,
  period_end, fiscal_year, source_url
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + memberExpenditureColumns + `
`

type CreateMemberExpenditureParams struct {
	RepresentativeID *int64
	HocID            *int
	MemberName       string
	Category         string
	Amount           float64
	PeriodStart      pgtype.Date
	PeriodEnd        pgtype.Date
	FiscalYear       *string
	SourceURL        *string
}

func (q *Queries) CreateMemberExpenditure(ctx context.Context, arg CreateMemberExpenditureParams) (MemberExpenditure, error) {
	return scanMemberExpenditure(q.db.QueryRow(ctx, createMemberExpenditure,
		arg.RepresentativeID,
		arg.HocID,
		arg.MemberName,
		arg.Category,
		arg.Amount,
		arg.PeriodStart,
		arg.PeriodEnd,
		arg.FiscalYear,
		arg.SourceURL,
	))
}

const deleteMemberExpendituresForPeriod = `
DELETE FROM member_expenditures
WHERE period_start = $1 AND period_end = $2
`

type DeleteMemberExpendituresForPeriodParams struct {
	PeriodStart pgtype.Date
	PeriodEnd   pgtype.Date
}

func (q *Queries) DeleteMemberExpendituresForPeriod(ctx context.Context, arg DeleteMemberExpendituresForPeriodParams) error {
	_, err := q.db.Exec(ctx, deleteMemberExpendituresForPeriod, arg.PeriodStart, arg.PeriodEnd)
	return err
}

const listMemberExpenditures = `
SELECT ` + memberExpenditureColumns + `
FROM member_expenditures
WHERE ($1::int IS NULL OR hoc_id = $1)
  AND ($2::text IS NULL OR fiscal_year = $2)
  AND ($3::text IS NULL OR category = $3)
ORDER BY period_start DESC NULLS LAST, member_name, category
LIMIT $4 OFFSET $5
`

type ListMemberExpendituresParams struct {
	HocID      *int
	FiscalYear *string
	Category   *string
	Limit      int
	Offset     int
}

func (q *Queries) ListMemberExpenditures(ctx context.Context, arg ListMemberExpendituresParams) ([]MemberExpenditure, error) {
	rows, err := q.db.Query(ctx, listMemberExpenditures,
		arg.HocID,
		arg.FiscalYear,
		arg.Category,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MemberExpenditure
	for rows.Next() {
		i, err := scanMemberExpenditure(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countMemberExpenditures = `
SELECT count(*)
FROM member_expenditures
WHERE ($1::int IS NULL OR hoc_id = $1)
  AND ($2::text IS NULL OR fiscal_year = $2)
  AND ($3::text IS NULL OR category = $3)
`

type CountMemberExpendituresParams struct {
	HocID      *int
	FiscalYear *string
	Category   *string
}

func (q *Queries) CountMemberExpenditures(ctx context.Context, arg CountMemberExpendituresParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countMemberExpenditures,
		arg.HocID,
		arg.FiscalYear,
		arg.Category,
	).Scan(&count)
	return count, err
}

const houseOfficerExpenditureColumns = `id, officer_name, role_title, category, amount,
  period_start, period_end, fiscal_year, source_url, created_at, updated_at`

func scanHouseOfficerExpenditure(row pgx.Row) (HouseOfficerExpenditure, error) {
	var i HouseOfficerExpenditure
	err := row.Scan(
		&i.ID,
		&i.OfficerName,
		&i.RoleTitle,
		&i.Category,
		&i.Amount,
		&i.PeriodStart,
		&i.PeriodEnd,
		&i.FiscalYear,
		&i.SourceURL,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createHouseOfficerExpenditure = `
INSERT INTO house_officer_expenditures (
  officer_name, role_title, category, amount, period_start, period_end,
  fiscal_year, source_url
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + houseOfficerExpenditureColumns + `
`

type CreateHouseOfficerExpenditureParams struct {
	OfficerName string
	RoleTitle   *string
	Category    string
	Amount      float64
	PeriodStart pgtype.Date
	PeriodEnd   pgtype.Date
	FiscalYear  *string
	SourceURL   *string
}

func (q *Queries) CreateHouseOfficerExpenditure(ctx context.Context, arg CreateHouseOfficerExpenditureParams) (HouseOfficerExpenditure, error) {
	return scanHouseOfficerExpenditure(q.db.QueryRow(ctx, createHouseOfficerExpenditure,
		arg.OfficerName,
		arg.RoleTitle,
		arg.Category,
		arg.Amount,
		arg.PeriodStart,
		arg.PeriodEnd,
		arg.FiscalYear,
		arg.SourceURL,
	))
}

const deleteHouseOfficerExpendituresForPeriod = `
DELETE FROM house_officer_expenditures
WHERE period_start = $1 AND period_end = $2
`

type DeleteHouseOfficerExpendituresForPeriodParams struct {
	PeriodStart pgtype.Date
	PeriodEnd   pgtype.Date
}

func (q *Queries) DeleteHouseOfficerExpendituresForPeriod(ctx context.Context, arg DeleteHouseOfficerExpendituresForPeriodParams) error {
	_, err := q.db.Exec(ctx, deleteHouseOfficerExpendituresForPeriod, arg.PeriodStart, arg.PeriodEnd)
	return err
}

const listHouseOfficerExpenditures = `
SELECT ` + houseOfficerExpenditureColumns + `
FROM house_officer_expenditures
WHERE ($1::text IS NULL OR fiscal_year = $1)
  AND ($2::text IS NULL OR category = $2)
ORDER BY period_start DESC NULLS LAST, officer_name, category
LIMIT $3 OFFSET $4
`

type ListHouseOfficerExpendituresParams struct {
	FiscalYear *string
	Category   *string
	Limit      int
	Offset     int
}

func (q *Queries) ListHouseOfficerExpenditures(ctx context.Context, arg ListHouseOfficerExpendituresParams) ([]HouseOfficerExpenditure, error) {
	rows, err := q.db.Query(ctx, listHouseOfficerExpenditures,
		arg.FiscalYear,
		arg.Category,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HouseOfficerExpenditure
	for rows.Next() {
		i, err := scanHouseOfficerExpenditure(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countHouseOfficerExpenditures = `
SELECT count(*)
FROM house_officer_expenditures
WHERE ($1::text IS NULL OR fiscal_year = $1)
  AND ($2::text IS NULL OR category = $2)
`

type CountHouseOfficerExpendituresParams struct {
	FiscalYear *string
	Category   *string
}

func (q *Queries) CountHouseOfficerExpenditures(ctx context.Context, arg CountHouseOfficerExpendituresParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countHouseOfficerExpenditures,
		arg.FiscalYear,
		arg.Category,
	).Scan(&count)
	return count, err
}
