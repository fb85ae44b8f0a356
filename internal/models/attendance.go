package models

// AttendanceStatus is the RSVP state of a user for an event.
type AttendanceStatus string

const (
	StatusGoing    AttendanceStatus = "going"
	StatusNotGoing AttendanceStatus = "not_going"
	StatusMaybe    AttendanceStatus = "maybe"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusGoing, StatusNotGoing, StatusMaybe:
		return true
	}
	return false
}

// Validate returns a *ValidationError for an unknown status.
func (s AttendanceStatus) Validate() error {
	if s.Valid() {
		return nil
	}
	return &ValidationError{Fields: []FieldError{{
		Field:   "status",
		Message: describe("oneof", "going not_going maybe"),
	}}}
}

// Attendance links a user to an event.
// swagger:model Attendance
type Attendance struct {
	ID      int64            `json:"id" db:"id"`
	UserID  int64            `json:"user_id" db:"user_id" validate:"required,gt=0"`
	EventID int64            `json:"event_id" db:"event_id" validate:"required,gt=0"`
	Status  AttendanceStatus `json:"status" db:"status" validate:"required,oneof=going not_going maybe"`
	Notes   *string          `json:"notes" db:"notes" validate:"omitempty,max=255"`
}

// AttendanceUpdate carries the fields a partial attendance update may change.
// The user/event pair identifies the attendance and cannot be moved.
// swagger:model AttendanceUpdate
type AttendanceUpdate struct {
	Status Optional[AttendanceStatus] `json:"status" swaggertype:"string"`
	Notes  Optional[string]           `json:"notes" swaggertype:"string"`
}

func (a AttendanceUpdate) Validate() error {
	errs := &ValidationError{}
	notNull(errs, "status", a.Status)
	if a.Status.Set && !a.Status.Null && !a.Status.Value.Valid() {
		errs.add("status", describe("oneof", "going not_going maybe"))
	}
	checkVar(errs, "notes", a.Notes, "max=255")
	return errs.orNil()
}

// Fields returns the update record keyed by field name.
func (a AttendanceUpdate) Fields() map[string]Field {
	return map[string]Field{
		"status": statusField{a.Status},
		"notes":  a.Notes,
	}
}

// statusField binds the status as plain text.
type statusField struct {
	Optional[AttendanceStatus]
}

func (f statusField) SQLValue() any {
	if f.Null {
		return nil
	}
	return string(f.Value)
}
