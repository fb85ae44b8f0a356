package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/sqlbuilder"
)

var taskColumns = sqlbuilder.ColumnMap{
	{Field: "title", Column: "title"},
	{Field: "description", Column: "description"},
	{Field: "assigned_to", Column: "assigned_to"},
	{Field: "due_date", Column: "due_date"},
	{Field: "event_id", Column: "event_id"},
	{Field: "completed", Column: "completed"},
}

const selectTasks = `
	SELECT id, title, description, assigned_to, created_by, due_date, event_id, completed
	FROM tasks
`

// TaskRepository reads and writes the tasks table.
type TaskRepository struct {
	store
}

func NewTaskRepository(db *sqlx.DB, txGetter TxGetter) *TaskRepository {
	return &TaskRepository{store{db: db, txGetter: txGetter}}
}

// Create inserts t and returns the assigned id.
func (r *TaskRepository) Create(ctx context.Context, t models.Task) (int64, error) {
	const query = `
		INSERT INTO tasks (title, description, assigned_to, created_by, due_date, event_id, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{t.Title, t.Description, t.AssignedTo, t.CreatedBy, t.DueDate, t.EventID, t.Completed}
	return r.insert(ctx, query, args, args)
}

// GetByID returns the task or ErrNotFound.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := r.get(ctx, &task, selectTasks+" WHERE id = ?", id); err != nil {
		return nil, err
	}
	task.DueDate = utcPtr(task.DueDate)
	return &task, nil
}

// ListByEvent returns the tasks tied to an event ordered by id.
func (r *TaskRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.list(ctx, &tasks, selectTasks+" WHERE event_id = ? ORDER BY id", eventID); err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].DueDate = utcPtr(tasks[i].DueDate)
	}
	return tasks, nil
}

// Update applies the present fields of upd. created_by is immutable.
func (r *TaskRepository) Update(ctx context.Context, id int64, upd models.TaskUpdate) (int64, error) {
	return r.update(ctx, "tasks", taskColumns, upd, id)
}

// Delete removes the task and returns its id, or ErrNotFound.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.delete(ctx, "tasks", id)
}
