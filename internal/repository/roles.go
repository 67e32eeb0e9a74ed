package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createRepresentativeRole = `
INSERT INTO representative_roles (
  representative_id, role_name, role_type, organization, parliament, session,
  start_date, end_date, is_current, source_url, source_hash
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, representative_id, role_name, role_type, organization, parliament, session,
  start_date, end_date, is_current, source_url, source_hash, created_at, updated_at
`

type CreateRepresentativeRoleParams struct {
	RepresentativeID int64
	RoleName         string
	RoleType         string
	Organization     *string
	Parliament       *int
	Session          *int
	StartDate        pgtype.Timestamptz
	EndDate          pgtype.Timestamptz
	IsCurrent        bool
	SourceURL        *string
	SourceHash       *string
}

func (q *Queries) CreateRepresentativeRole(ctx context.Context, arg CreateRepresentativeRoleParams) (RepresentativeRole, error) {
	row := q.db.QueryRow(ctx, createRepresentativeRole,
		arg.RepresentativeID,
		arg.RoleName,
		arg.RoleType,
		arg.Organization,
		arg.Parliament,
		arg.Session,
		arg.StartDate,
		arg.EndDate,
		arg.IsCurrent,
		arg.SourceURL,
		arg.SourceHash,
	)
	var i RepresentativeRole
	err := row.Scan(
		&i.ID,
		&i.RepresentativeID,
		&i.RoleName,
		&i.RoleType,
		&i.Organization,
		&i.Parliament,
		&i.Session,
		&i.StartDate,
		&i.EndDate,
		&i.IsCurrent,
		&i.SourceURL,
		&i.SourceHash,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteRepresentativeRoles = `
DELETE FROM representative_roles WHERE representative_id = $1
`

// DeleteRepresentativeRoles clears every stored role for a member before a
// fresh profile scrape is written.
func (q *Queries) DeleteRepresentativeRoles(ctx context.Context, representativeID int64) error {
	_, err := q.db.Exec(ctx, deleteRepresentativeRoles, representativeID)
	return err
}

const listRepresentativeRoles = `
SELECT rr.id, rr.representative_id, rr.role_name, rr.role_type, rr.organization,
  rr.parliament, rr.session, rr.start_date, rr.end_date, rr.is_current,
  rr.source_url, rr.source_hash, rr.created_at, rr.updated_at,
  r.hoc_id, r.name
FROM representative_roles rr
JOIN representatives r ON r.id = rr.representative_id
WHERE ($1::int IS NULL OR r.hoc_id = $1)
  AND ($2::text IS NULL OR rr.role_type = $2)
  AND ($3::boolean IS NULL OR rr.is_current = $3)
  AND ($4::int IS NULL OR rr.parliament = $4)
  AND ($5::int IS NULL OR rr.session = $5)
ORDER BY rr.start_date DESC NULLS LAST
LIMIT $6 OFFSET $7
`

type ListRepresentativeRolesParams struct {
	HocID      *int
	RoleType   *string
	Current    *bool
	Parliament *int
	Session    *int
	Limit      int
	Offset     int
}

type ListRepresentativeRolesRow struct {
	RepresentativeRole
	RepresentativeHocID int
	RepresentativeName  string
}

func (q *Queries) ListRepresentativeRoles(ctx context.Context, arg ListRepresentativeRolesParams) ([]ListRepresentativeRolesRow, error) {
	rows, err := q.db.Query(ctx, listRepresentativeRoles,
		arg.HocID,
		arg.RoleType,
		arg.Current,
		arg.Parliament,
		arg.Session,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRepresentativeRolesRow
	for rows.Next() {
		var i ListRepresentativeRolesRow
		err := rows.Scan(
			&i.ID,
			&i.RepresentativeID,
			&i.RoleName,
			&i.RoleType,
			&i.Organization,
			&i.Parliament,
			&i.Session,
			&i.StartDate,
			&i.EndDate,
			&i.IsCurrent,
			&i.SourceURL,
			&i.SourceHash,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.RepresentativeHocID,
			&i.RepresentativeName,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countRepresentativeRoles = `
SELECT count(*)
FROM representative_roles rr
JOIN representatives r ON r.id = rr.representative_id
WHERE ($1::int IS NULL OR r.hoc_id = $1)
  AND ($2::text IS NULL OR rr.role_type = $2)
  AND ($3::boolean IS NULL OR rr.is_current = $3)
  AND ($4::int IS NULL OR rr.parliament = $4)
  AND ($5::int IS NULL OR rr.session = $5)
`

type CountRepresentativeRolesParams struct {
	HocID      *int
	RoleType   *string
	Current    *bool
	Parliament *int
	Session    *int
}

func (q *Queries) CountRepresentativeRoles(ctx context.Context, arg CountRepresentativeRolesParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countRepresentativeRoles,
		arg.HocID,
		arg.RoleType,
		arg.Current,
		arg.Parliament,
		arg.Session,
	).Scan(&count)
	return count, err
}
