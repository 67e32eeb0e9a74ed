// Package repository is the hand-maintained pgx data access layer for the
// canpoli Postgres schema. Queries keeps no state beyond the connection it
// was constructed with, so the same value works against a pool, a single
// connection, or an open transaction.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx used by this package. Both *pgxpool.Pool and
// pgx.Tx satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// New returns a Queries bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries executes SQL against the bound DBTX.
type Queries struct {
	db DBTX
}

// WithTx returns a Queries that runs inside tx.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Ping runs a trivial query to probe database reachability.
func (q *Queries) Ping(ctx context.Context) error {
	_, err := q.db.Exec(ctx, "SELECT 1")
	return err
}
