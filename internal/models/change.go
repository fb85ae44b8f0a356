package models

// Entity names used in change notifications.
const (
	EntityUser       = "user"
	EntityEvent      = "event"
	EntityAttendance = "attendance"
	EntityTask       = "task"
)

// Operations used in change notifications.
const (
	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"
)

// ChangeEvent is published after a write has been committed.
type ChangeEvent struct {
	ChangeID  string `json:"change_id"` // Unique identifier of the notification
	Entity    string `json:"entity"`    // "user", "event", "attendance" or "task"
	Operation string `json:"operation"` // "created", "updated" or "deleted"
	ID        int64  `json:"id"`        // Primary key of the affected row
	Timestamp int64  `json:"timestamp"` // Unix seconds when the change was committed
}
