// Package store implements the core persistence interfaces on Postgres.
package store

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is a core.Store backed by a pgx pool.
type Store struct {
	pool *pgxpool.Pool
	q    *database.Queries
}

var _ core.Store = (*Store)(nil)

// New returns a Store using pool for every query.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, q: database.New(pool)}
}

// inTx runs fn inside a database transaction, committing when fn succeeds.
func (s *Store) inTx(ctx context.Context, fn func(q *database.Queries) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	if err := fn(s.q.WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
