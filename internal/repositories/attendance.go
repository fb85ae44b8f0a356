package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/sqlbuilder"
)

var attendanceColumns = sqlbuilder.ColumnMap{
	{Field: "status", Column: "status"},
	{Field: "notes", Column: "notes"},
}

// AttendanceRepository reads and writes the attendances table.
type AttendanceRepository struct {
	store
}

func NewAttendanceRepository(db *sqlx.DB, txGetter TxGetter) *AttendanceRepository {
	return &AttendanceRepository{store{db: db, txGetter: txGetter}}
}

// Create inserts a and returns the assigned id. The status must be one of
// the known values; nothing is executed otherwise.
func (r *AttendanceRepository) Create(ctx context.Context, a models.Attendance) (int64, error) {
	if err := a.Status.Validate(); err != nil {
		return 0, err
	}

	const query = `
		INSERT INTO attendances (user_id, event_id, status, notes)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`
	args := []any{a.UserID, a.EventID, string(a.Status), a.Notes}
	return r.insert(ctx, query, args, args)
}

// GetByID returns the attendance or ErrNotFound.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	const query = `
		SELECT id, user_id, event_id, status, notes
		FROM attendances
		WHERE id = ?
	`
	var attendance models.Attendance
	if err := r.get(ctx, &attendance, query, id); err != nil {
		return nil, err
	}
	return &attendance, nil
}

// ListByEvent returns the attendances of an event ordered by id.
func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.Attendance, error) {
	const query = `
		SELECT id, user_id, event_id, status, notes
		FROM attendances
		WHERE event_id = ?
		ORDER BY id
	`
	attendances := []models.Attendance{}
	if err := r.list(ctx, &attendances, query, eventID); err != nil {
		return nil, err
	}
	return attendances, nil
}

// Update applies the present fields of upd.
func (r *AttendanceRepository) Update(ctx context.Context, id int64, upd models.AttendanceUpdate) (int64, error) {
	if upd.Status.Set && !upd.Status.Null {
		if err := upd.Status.Value.Validate(); err != nil {
			return 0, err
		}
	}
	return r.update(ctx, "attendances", attendanceColumns, upd, id)
}

// Delete removes the attendance and returns its id, or ErrNotFound.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.delete(ctx, "attendances", id)
}
