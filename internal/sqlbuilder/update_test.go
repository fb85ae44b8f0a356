package sqlbuilder

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumns = ColumnMap{
	{Field: "title", Column: "title"},
	{Field: "description", Column: "description"},
	{Field: "start_datetime", Column: "start_date"},
	{Field: "end_datetime", Column: "end_date"},
	{Field: "location", Column: "location"},
	{Field: "max_attendees", Column: "max_attendees"},
}

type fakeRecord map[string]models.Field

func (r fakeRecord) Fields() map[string]models.Field { return r }

func TestBuild(t *testing.T) {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		record    Record
		bindType  int
		fragments []string
		args      []any
		statement string
	}{
		{
			name:      "single field",
			record:    models.EventUpdate{Title: models.Some("Renamed")},
			bindType:  sqlx.DOLLAR,
			fragments: []string{"title = $1"},
			args:      []any{"Renamed", int64(7)},
			statement: "UPDATE events SET title = $1 WHERE id = $2 RETURNING id",
		},
		{
			name: "mapping order wins and columns are renamed",
			record: models.EventUpdate{
				MaxAttendees:  models.Some(50),
				StartDatetime: models.Some(start),
				Title:         models.Some("T"),
			},
			bindType:  sqlx.DOLLAR,
			fragments: []string{"title = $1", "start_date = $2", "max_attendees = $3"},
			args:      []any{"T", start, 50, int64(7)},
			statement: "UPDATE events SET title = $1, start_date = $2, max_attendees = $3 WHERE id = $4 RETURNING id",
		},
		{
			name:      "explicit null clears",
			record:    models.EventUpdate{Location: models.Null[string]()},
			bindType:  sqlx.DOLLAR,
			fragments: []string{"location = $1"},
			args:      []any{nil, int64(7)},
			statement: "UPDATE events SET location = $1 WHERE id = $2 RETURNING id",
		},
		{
			name:      "zero values are present",
			record:    models.EventUpdate{Description: models.Some(""), MaxAttendees: models.Some(0)},
			bindType:  sqlx.DOLLAR,
			fragments: []string{"description = $1", "max_attendees = $2"},
			args:      []any{"", 0, int64(7)},
			statement: "UPDATE events SET description = $1, max_attendees = $2 WHERE id = $3 RETURNING id",
		},
		{
			name:      "question bind type",
			record:    models.EventUpdate{Title: models.Some("a"), Location: models.Some("b")},
			bindType:  sqlx.QUESTION,
			fragments: []string{"title = ?", "location = ?"},
			args:      []any{"a", "b", int64(7)},
			statement: "UPDATE events SET title = ?, location = ? WHERE id = ? RETURNING id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Build(tt.bindType, eventColumns, tt.record, 7)
			require.NoError(t, err)
			assert.Equal(t, tt.fragments, u.Fragments)
			assert.Equal(t, tt.args, u.Args)
			assert.Equal(t, tt.statement, u.Statement(tt.bindType, "events"))
			assert.Len(t, u.Args, len(u.Fragments)+1)
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	u, err := Build(sqlx.DOLLAR, eventColumns, models.EventUpdate{}, 1)
	assert.ErrorIs(t, err, ErrEmptyUpdate)
	assert.Empty(t, u.Fragments)
	assert.Empty(t, u.Args)
}

func TestBuild_UnmappedField(t *testing.T) {
	record := fakeRecord{
		"title":      models.Some("x"),
		"created_by": models.Some(int64(2)),
	}
	_, err := Build(sqlx.DOLLAR, eventColumns, record, 1)
	assert.ErrorIs(t, err, ErrUnmappedField)
	assert.Contains(t, err.Error(), "created_by")
}

func TestBuild_UnmappedAbsentFieldIsIgnored(t *testing.T) {
	record := fakeRecord{
		"title":  models.Some("x"),
		"legacy": models.Optional[string]{},
	}
	u, err := Build(sqlx.DOLLAR, eventColumns, record, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"title = $1"}, u.Fragments)
}

func TestBuild_Deterministic(t *testing.T) {
	record := models.EventUpdate{
		Title:        models.Some("a"),
		Description:  models.Some("b"),
		Location:     models.Some("c"),
		MaxAttendees: models.Some(1),
	}
	first, err := Build(sqlx.DOLLAR, eventColumns, record, 3)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Build(sqlx.DOLLAR, eventColumns, record, 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$3", placeholder(sqlx.DOLLAR, 3))
	assert.Equal(t, "?", placeholder(sqlx.QUESTION, 3))
	assert.Equal(t, "@p3", placeholder(sqlx.AT, 3))
	assert.Equal(t, ":arg3", placeholder(sqlx.NAMED, 3))
	assert.Equal(t, "?", placeholder(sqlx.UNKNOWN, 3))
}
