package models

import "time"

// Task is a to-do item, optionally tied to an event and an assignee.
// swagger:model Task
type Task struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title" validate:"required,max=100"`
	Description *string    `json:"description" db:"description" validate:"omitempty,max=255"`
	AssignedTo  *int64     `json:"assigned_to" db:"assigned_to" validate:"omitempty,gt=0"`
	CreatedBy   int64      `json:"created_by" db:"created_by" validate:"required,gt=0"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	EventID     *int64     `json:"event_id" db:"event_id" validate:"omitempty,gt=0"`
	Completed   bool       `json:"completed" db:"completed"`
}

// TaskUpdate carries the fields a partial task update may change.
// swagger:model TaskUpdate
type TaskUpdate struct {
	Title       Optional[string]    `json:"title" swaggertype:"string"`
	Description Optional[string]    `json:"description" swaggertype:"string"`
	AssignedTo  Optional[int64]     `json:"assigned_to" swaggertype:"integer"`
	DueDate     Optional[time.Time] `json:"due_date" swaggertype:"string"`
	EventID     Optional[int64]     `json:"event_id" swaggertype:"integer"`
	Completed   Optional[bool]      `json:"completed" swaggertype:"boolean"`
}

func (t TaskUpdate) Validate() error {
	errs := &ValidationError{}
	notNull(errs, "title", t.Title)
	notNull(errs, "completed", t.Completed)
	checkVar(errs, "title", t.Title, "required,max=100")
	checkVar(errs, "description", t.Description, "max=255")
	checkVar(errs, "assigned_to", t.AssignedTo, "gt=0")
	checkVar(errs, "event_id", t.EventID, "gt=0")
	return errs.orNil()
}

// Fields returns the update record keyed by field name.
func (t TaskUpdate) Fields() map[string]Field {
	return map[string]Field{
		"title":       t.Title,
		"description": t.Description,
		"assigned_to": t.AssignedTo,
		"due_date":    t.DueDate,
		"event_id":    t.EventID,
		"completed":   t.Completed,
	}
}
