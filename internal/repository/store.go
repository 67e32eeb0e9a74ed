package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles the query surface with transaction control. Ingestion and
// the account flows need multi-statement atomicity (delete children then
// reinsert, lock a row then rotate) without owning a pool themselves.
type Store interface {
	Querier
	WithTransaction(ctx context.Context, fn func(Querier) error) error
}

// SQLStore is the pgx-backed Store.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{Queries: New(pool), pool: pool}
}

// WithTransaction runs fn inside a transaction, committing on nil and
// rolling back on error.
func (s *SQLStore) WithTransaction(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
