// Package sqlbuilder assembles the SET clause of partial UPDATE statements.
//
// Columns are resolved through an explicit field→column mapping, never by
// naming convention, and every value is bound positionally.
package sqlbuilder

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

var (
	// ErrEmptyUpdate is returned when the update record carries no fields.
	ErrEmptyUpdate = errors.New("update record has no fields")

	// ErrUnmappedField is returned when the record carries a field that the
	// column mapping does not know about.
	ErrUnmappedField = errors.New("update field has no column mapping")
)

// Record is an update record: every field keyed by its name.
type Record interface {
	Fields() map[string]models.Field
}

// Column maps one update-record field to its table column.
type Column struct {
	Field  string
	Column string
}

// ColumnMap is an ordered field→column mapping. Its order decides the order
// of the generated assignments.
type ColumnMap []Column

// Update is the output of Build: one "<column> = <placeholder>" fragment per
// present field and the bound values in the same order, followed by the row id.
type Update struct {
	Fragments []string
	Args      []any
}

// Build turns record into SET fragments and positional arguments for
// "WHERE id = ..." using the given bind type (sqlx.DOLLAR, sqlx.QUESTION, sqlx.AT).
func Build(bindType int, columns ColumnMap, record Record, id int64) (Update, error) {
	fields := record.Fields()

	known := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		known[c.Field] = struct{}{}
	}
	var unmapped []string
	for name, f := range fields {
		if _, ok := known[name]; !ok && f != nil && f.IsSet() {
			unmapped = append(unmapped, name)
		}
	}
	if len(unmapped) > 0 {
		sort.Strings(unmapped)
		return Update{}, fmt.Errorf("%w: %s", ErrUnmappedField, strings.Join(unmapped, ", "))
	}

	var u Update
	for _, c := range columns {
		f, ok := fields[c.Field]
		if !ok || f == nil || !f.IsSet() {
			continue
		}
		u.Args = append(u.Args, f.SQLValue())
		u.Fragments = append(u.Fragments, c.Column+" = "+placeholder(bindType, len(u.Args)))
	}
	if len(u.Fragments) == 0 {
		return Update{}, ErrEmptyUpdate
	}
	u.Args = append(u.Args, id)
	return u, nil
}

// Statement renders "UPDATE <table> SET ... WHERE id = <n> RETURNING id".
func (u Update) Statement(bindType int, table string) string {
	return "UPDATE " + table +
		" SET " + strings.Join(u.Fragments, ", ") +
		" WHERE id = " + placeholder(bindType, len(u.Args)) +
		" RETURNING id"
}

// placeholder returns the n-th (1-based) bind variable for bindType.
func placeholder(bindType, n int) string {
	switch bindType {
	case sqlx.DOLLAR:
		return "$" + strconv.Itoa(n)
	case sqlx.AT:
		return "@p" + strconv.Itoa(n)
	case sqlx.NAMED:
		return ":arg" + strconv.Itoa(n)
	default:
		return "?"
	}
}
