package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const apiKeyColumns = `id, user_id, key_prefix, key_hash, active, revoked_at, last_used_at,
  created_at, updated_at`

func scanApiKey(row pgx.Row) (ApiKey, error) {
	var i ApiKey
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.KeyPrefix,
		&i.KeyHash,
		&i.Active,
		&i.RevokedAt,
		&i.LastUsedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getApiKeyByHash = `
SELECT ` + apiKeyColumns + `
FROM api_keys
WHERE key_hash = $1
`

func (q *Queries) GetApiKeyByHash(ctx context.Context, keyHash string) (ApiKey, error) {
	return scanApiKey(q.db.QueryRow(ctx, getApiKeyByHash, keyHash))
}

const getActiveApiKeyForUser = `
SELECT ` + apiKeyColumns + `
FROM api_keys
WHERE user_id = $1 AND active
ORDER BY created_at DESC
LIMIT 1
`

func (q *Queries) GetActiveApiKeyForUser(ctx context.Context, userID pgtype.UUID) (ApiKey, error) {
	return scanApiKey(q.db.QueryRow(ctx, getActiveApiKeyForUser, userID))
}

const createApiKey = `
INSERT INTO api_keys (id, user_id, key_prefix, key_hash, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + apiKeyColumns + `
`

type CreateApiKeyParams struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	KeyPrefix string
	KeyHash   string
	Active    bool
}

func (q *Queries) CreateApiKey(ctx context.Context, arg CreateApiKeyParams) (ApiKey, error) {
	return scanApiKey(q.db.QueryRow(ctx, createApiKey,
		arg.ID,
		arg.UserID,
		arg.KeyPrefix,
		arg.KeyHash,
		arg.Active,
	))
}

const deactivateApiKeysForUser = `
UPDATE api_keys SET
  active = false,
  revoked_at = now(),
  updated_at = now()
WHERE user_id = $1 AND active
`

func (q *Queries) DeactivateApiKeysForUser(ctx context.Context, userID pgtype.UUID) error {
	_, err := q.db.Exec(ctx, deactivateApiKeysForUser, userID)
	return err
}

const setApiKeyActive = `
UPDATE api_keys SET
  active = $2,
  revoked_at = CASE WHEN $2 THEN NULL ELSE coalesce(revoked_at, now()) END,
  updated_at = now()
WHERE id = $1
`

type SetApiKeyActiveParams struct {
	ID     pgtype.UUID
	Active bool
}

func (q *Queries) SetApiKeyActive(ctx context.Context, arg SetApiKeyActiveParams) error {
	_, err := q.db.Exec(ctx, setApiKeyActive, arg.ID, arg.Active)
	return err
}

const touchApiKeyLastUsed = `
UPDATE api_keys SET
  last_used_at = now()
WHERE id = $1
`

func (q *Queries) TouchApiKeyLastUsed(ctx context.Context, id pgtype.UUID) error {
	_, err := q.db.Exec(ctx, touchApiKeyLastUsed, id)
	return err
}
