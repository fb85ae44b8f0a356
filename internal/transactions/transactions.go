// Package transactions scopes a unit of work to one database transaction
// carried through the request context.
package transactions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
)

// Manager owns the transaction boundary. Data-access code only executes
// statements against the transaction it finds in the context.
type Manager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewManager creates a Manager over db. opts may be nil for driver defaults.
func NewManager(db *sqlx.DB, opts *sql.TxOptions) *Manager {
	return &Manager{db: db, opts: opts}
}

// Do begins a transaction, runs fn with the transaction stored in ctx and
// commits when fn returns nil. Any error from fn, or a panic, rolls the
// transaction back; the panic is re-raised after the rollback.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTxx(ctx, m.opts)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			rollback(tx)
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		rollback(tx)
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func rollback(tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Log.Errorw("failed to rollback transaction", "error", err)
	}
}

type contextKey struct{}

var txKey = contextKey{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// FromContext returns the transaction in scope, or nil outside Manager.Do.
func FromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
