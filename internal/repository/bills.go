package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const billColumns = `id, legisinfo_id, bill_number, title_en, title_fr, status, parliament,
  session, introduced_date, latest_activity_date, sponsor_hoc_id, sponsor_name,
  sponsor_party, summary_en, summary_fr, source_url, source_hash, created_at, updated_at`

func scanBill(row pgx.Row) (Bill, error) {
	var i Bill
	err := row.Scan(
		&i.ID,
		&i.LegisinfoID,
		&i.BillNumber,
		&i.TitleEn,
		&i.TitleFr,
		&i.Status,
		&i.Parliament,
		&i.Session,
		&i.IntroducedDate,
		&i.LatestActivityDate,
		&i.SponsorHocID,
		&i.SponsorName,
		&i.SponsorParty,
		&i.SummaryEn,
		&i.SummaryFr,
		&i.SourceURL,
		&i.SourceHash,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBill = `
SELECT ` + billColumns + `
FROM bills
WHERE id = $1
`

func (q *Queries) GetBill(ctx context.Context, id int64) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBill, id))
}

const getBillByNumber = `
SELECT ` + billColumns + `
FROM bills
WHERE bill_number = $1 AND parliament = $2 AND session = $3
`

type GetBillByNumberParams struct {
	BillNumber string
	Parliament *int
	Session    *int
}

func (q *Queries) GetBillByNumber(ctx context.Context, arg GetBillByNumberParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBillByNumber, arg.BillNumber, arg.Parliament, arg.Session))
}

const createBill = `
INSERT INTO bills (
  legisinfo_id, bill_number, title_en, title_fr, status, parliament, session,
  introduced_date, latest_activity_date, sponsor_hoc_id, sponsor_name,
  sponsor_party, summary_en, summary_fr, source_url, source_hash
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING ` + billColumns + `
`

type CreateBillParams struct {
	LegisinfoID        *int
	BillNumber         string
	TitleEn            *string
	TitleFr            *string
	Status             *string
	Parliament         *int
	Session            *int
	IntroducedDate     pgtype.Date
	LatestActivityDate pgtype.Timestamptz
	SponsorHocID       *int
	SponsorName        *string
	SponsorParty       *string
	SummaryEn          *string
	SummaryFr          *string
	SourceURL          *string
	SourceHash         *string
}

func (q *Queries) CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, createBill,
		arg.LegisinfoID,
		arg.BillNumber,
		arg.TitleEn,
		arg.TitleFr,
		arg.Status,
		arg.Parliament,
		arg.Session,
		arg.IntroducedDate,
		arg.LatestActivityDate,
		arg.SponsorHocID,
		arg.SponsorName,
		arg.SponsorParty,
		arg.SummaryEn,
		arg.SummaryFr,
		arg.SourceURL,
		arg.SourceHash,
	))
}

const updateBill = `
UPDATE bills SET
  legisinfo_id = $2,
  title_en = $3,
  title_fr = $4,
  status = $5,
  introduced_date = $6,
  latest_activity_date = $7,
  sponsor_hoc_id = $8,
  sponsor_name = $9,
  sponsor_party = $10,
  summary_en = $11,
  summary_fr = $12,
  source_url = $13,
  source_hash = $14,
  updated_at = now()
WHERE id = $1
RETURNING ` + billColumns + `
`

type UpdateBillParams struct {
	ID                 int64
	LegisinfoID        *int
	TitleEn            *string
	TitleFr            *string
	Status             *string
	IntroducedDate     pgtype.Date
	LatestActivityDate pgtype.Timestamptz
	SponsorHocID       *int
	SponsorName        *string
	SponsorParty       *string
	SummaryEn          *string
	SummaryFr          *string
	SourceURL          *string
	SourceHash         *string
}

func (q *Queries) UpdateBill(ctx context.Context, arg UpdateBillParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, updateBill,
		arg.ID,
		arg.LegisinfoID,
		arg.TitleEn,
		arg.TitleFr,
		arg.Status,
		arg.IntroducedDate,
		arg.LatestActivityDate,
		arg.SponsorHocID,
		arg.SponsorName,
		arg.SponsorParty,
		arg.SummaryEn,
		arg.SummaryFr,
		arg.SourceURL,
		arg.SourceHash,
	))
}

const listBills = `
SELECT ` + billColumns + `
FROM bills
WHERE ($1::text IS NULL OR bill_number = $1)
  AND ($2::text IS NULL OR status = $2)
  AND ($3::int IS NULL OR sponsor_hoc_id = $3)
  AND ($4::timestamptz IS NULL OR latest_activity_date >= $4)
  AND ($5::int IS NULL OR parliament = $5)
  AND ($6::int IS NULL OR session = $6)
ORDER BY latest_activity_date DESC NULLS LAST
LIMIT $7 OFFSET $8
`

type ListBillsParams struct {
	BillNumber   *string
	Status       *string
	SponsorHocID *int
	UpdatedSince pgtype.Timestamptz
	Parliament   *int
	Session      *int
	Limit        int
	Offset       int
}

func (q *Queries) ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error) {
	rows, err := q.db.Query(ctx, listBills,
		arg.BillNumber,
		arg.Status,
		arg.SponsorHocID,
		arg.UpdatedSince,
		arg.Parliament,
		arg.Session,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bill
	for rows.Next() {
		i, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countBills = `
SELECT count(*)
FROM bills
WHERE ($1::text IS NULL OR bill_number = $1)
  AND ($2::text IS NULL OR status = $2)
  AND ($3::int IS NULL OR sponsor_hoc_id = $3)
  AND ($4::timestamptz IS NULL OR latest_activity_date >= $4)
  AND ($5::int IS NULL OR parliament = $5)
  AND ($6::int IS NULL OR session = $6)
`

type CountBillsParams struct {
	BillNumber   *string
	Status       *string
	SponsorHocID *int
	UpdatedSince pgtype.Timestamptz
	Parliament   *int
	Session      *int
}

func (q *Queries) CountBills(ctx context.Context, arg CountBillsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countBills,
		arg.BillNumber,
		arg.Status,
		arg.SponsorHocID,
		arg.UpdatedSince,
		arg.Parliament,
		arg.Session,
	).Scan(&count)
	return count, err
}
