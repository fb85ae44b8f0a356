package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/sqlbuilder"
)

var eventColumns = sqlbuilder.ColumnMap{
	{Field: "title", Column: "title"},
	{Field: "description", Column: "description"},
	{Field: "start_datetime", Column: "start_date"},
	{Field: "end_datetime", Column: "end_date"},
	{Field: "location", Column: "location"},
	{Field: "max_attendees", Column: "max_attendees"},
}

const selectEvents = `
	SELECT id, title, description, start_date, end_date, created_by, location, max_attendees
	FROM events
`

// EventRepository reads and writes the events table.
type EventRepository struct {
	store
}

func NewEventRepository(db *sqlx.DB, txGetter TxGetter) *EventRepository {
	return &EventRepository{store{db: db, txGetter: txGetter}}
}

// Create inserts e and returns the assigned id. An unknown created_by
// surfaces as the driver's foreign-key error.
func (r *EventRepository) Create(ctx context.Context, e models.Event) (int64, error) {
	const query = `
		INSERT INTO events (title, description, start_date, end_date, created_by, location, max_attendees)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{e.Title, e.Description, e.StartDatetime, e.EndDatetime, e.CreatedBy, e.Location, e.MaxAttendees}
	return r.insert(ctx, query, args, args)
}

// GetByID returns the event or ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := r.get(ctx, &event, selectEvents+" WHERE id = ?", id); err != nil {
		return nil, err
	}
	normalizeEvent(&event)
	return &event, nil
}

// ListAll returns every event ordered by id.
func (r *EventRepository) ListAll(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	if err := r.list(ctx, &events, selectEvents+" ORDER BY id"); err != nil {
		return nil, err
	}
	for i := range events {
		normalizeEvent(&events[i])
	}
	return events, nil
}

// List returns at most quantity events ordered by id, starting at page
// (1-based). page and quantity are assumed positive.
func (r *EventRepository) List(ctx context.Context, page, quantity int) ([]models.Event, error) {
	events := []models.Event{}
	err := r.list(ctx, &events, selectEvents+" ORDER BY id LIMIT ? OFFSET ?", quantity, Offset(page, quantity))
	if err != nil {
		return nil, err
	}
	for i := range events {
		normalizeEvent(&events[i])
	}
	return events, nil
}

// Count returns the number of events in the table, independent of paging.
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM events")
}

// Update applies the present fields of upd.
func (r *EventRepository) Update(ctx context.Context, id int64, upd models.EventUpdate) (int64, error) {
	return r.update(ctx, "events", eventColumns, upd, id)
}

// Delete removes the event and returns its id, or ErrNotFound.
func (r *EventRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.delete(ctx, "events", id)
}

// Offset converts a 1-based page and a page size into a row offset.
func Offset(page, quantity int) int {
	return (page - 1) * quantity
}

func normalizeEvent(e *models.Event) {
	e.StartDatetime = utc(e.StartDatetime)
	e.EndDatetime = utc(e.EndDatetime)
}
