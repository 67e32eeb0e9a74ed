package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, auth_provider, auth_user_id, email, created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.AuthProvider,
		&i.AuthUserID,
		&i.Email,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUser = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, id pgtype.UUID) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUser, id))
}

const getUserByAuthUserID = `
SELECT ` + userColumns + `
FROM users
WHERE auth_provider = $1 AND auth_user_id = $2
`

type GetUserByAuthUserIDParams struct {
	AuthProvider string
	AuthUserID   string
}

func (q *Queries) GetUserByAuthUserID(ctx context.Context, arg GetUserByAuthUserIDParams) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByAuthUserID, arg.AuthProvider, arg.AuthUserID))
}

// getUserForUpdate takes a row lock so concurrent key rotations for the same
// user serialize instead of double-issuing.
const getUserForUpdate = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetUserForUpdate(ctx context.Context, id pgtype.UUID) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserForUpdate, id))
}

const createUser = `
INSERT INTO users (id, auth_provider, auth_user_id, email)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns + `
`

type CreateUserParams struct {
	ID           pgtype.UUID
	AuthProvider string
	AuthUserID   string
	Email        *string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	return scanUser(q.db.QueryRow(ctx, createUser,
		arg.ID,
		arg.AuthProvider,
		arg.AuthUserID,
		arg.Email,
	))
}

const updateUserEmail = `
UPDATE users SET
  email = $2,
  updated_at = now()
WHERE id = $1
RETURNING ` + userColumns + `
`

type UpdateUserEmailParams struct {
	ID    pgtype.UUID
	Email *string
}

func (q *Queries) UpdateUserEmail(ctx context.Context, arg UpdateUserEmailParams) (User, error) {
	return scanUser(q.db.QueryRow(ctx, updateUserEmail, arg.ID, arg.Email))
}
