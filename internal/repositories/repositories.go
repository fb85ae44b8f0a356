// Package repositories holds the data-access layer: one repository per
// entity, each turning typed records into parameterized SQL.
//
// Repositories execute statements against the transaction found in the
// context (see the transactions package) and fall back to the pool when none
// is in scope. They never begin, commit or roll back.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/sqlbuilder"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("not found")

	// ErrEmptyUpdate is returned when an update record carries no fields;
	// no statement is executed in that case.
	ErrEmptyUpdate = sqlbuilder.ErrEmptyUpdate
)

// TxGetter returns the transaction in scope for ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// store is embedded by every repository.
type store struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func (s store) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = s.db
	if s.txGetter != nil {
		if tx := s.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

func (s store) bindType() int {
	return sqlx.BindType(s.db.DriverName())
}

// insert runs an INSERT ... RETURNING id statement.
func (s store) insert(ctx context.Context, query string, args []any, logArgs []any) (int64, error) {
	query = s.db.Rebind(query)

	var id int64
	err := sqlx.GetContext(ctx, s.executor(ctx), &id, query, args...)
	logQuery(query, logArgs, id, err)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// get scans a single row into dest.
func (s store) get(ctx context.Context, dest any, query string, args ...any) error {
	query = s.db.Rebind(query)

	err := sqlx.GetContext(ctx, s.executor(ctx), dest, query, args...)
	logQuery(query, args, err == nil, err)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// list scans all rows into dest, a pointer to a slice.
func (s store) list(ctx context.Context, dest any, query string, args ...any) error {
	query = s.db.Rebind(query)

	err := sqlx.SelectContext(ctx, s.executor(ctx), dest, query, args...)
	logQuery(query, args, "rows", err)
	return err
}

// update applies a partial update through the builder.
func (s store) update(ctx context.Context, table string, columns sqlbuilder.ColumnMap, record sqlbuilder.Record, id int64, redact ...string) (int64, error) {
	bindType := s.bindType()
	u, err := sqlbuilder.Build(bindType, columns, record, id)
	if err != nil {
		logger.Log.Infow("update skipped", "table", table, "id", id, "error", err)
		return 0, err
	}
	query := u.Statement(bindType, table)

	var updatedID int64
	err = sqlx.GetContext(ctx, s.executor(ctx), &updatedID, query, u.Args...)
	logQuery(query, redactArgs(u, redact), updatedID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return updatedID, nil
}

// delete removes a row by id.
func (s store) delete(ctx context.Context, table string, id int64) (int64, error) {
	query := s.db.Rebind("DELETE FROM " + table + " WHERE id = ? RETURNING id")

	var deletedID int64
	err := sqlx.GetContext(ctx, s.executor(ctx), &deletedID, query, id)
	logQuery(query, []any{id}, deletedID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return deletedID, nil
}

// count runs a single-value aggregate.
func (s store) count(ctx context.Context, query string, args ...any) (int64, error) {
	query = s.db.Rebind(query)

	var total int64
	err := sqlx.GetContext(ctx, s.executor(ctx), &total, query, args...)
	logQuery(query, args, total, err)
	return total, err
}

// logQuery logs the query in a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

const redacted = "[REDACTED]"

func redactArgs(u sqlbuilder.Update, columns []string) []any {
	if len(columns) == 0 {
		return u.Args
	}
	out := make([]any, len(u.Args))
	copy(out, u.Args)
	for i, fragment := range u.Fragments {
		for _, c := range columns {
			if strings.HasPrefix(fragment, c+" = ") {
				out[i] = redacted
			}
		}
	}
	return out
}

func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
