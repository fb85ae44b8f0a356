package models

import "time"

// Event represents a row in the events table.
// start_datetime/end_datetime are stored in the start_date/end_date columns;
// their ordering is not checked here.
// swagger:model Event
type Event struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title" validate:"required,max=100"`
	Description   *string   `json:"description" db:"description" validate:"omitempty,max=255"`
	StartDatetime time.Time `json:"start_datetime" db:"start_date" validate:"required"`
	EndDatetime   time.Time `json:"end_datetime" db:"end_date" validate:"required"`
	CreatedBy     int64     `json:"created_by" db:"created_by" validate:"required,gt=0"`
	Location      *string   `json:"location" db:"location" validate:"omitempty,max=100"`
	MaxAttendees  *int      `json:"max_attendees" db:"max_attendees" validate:"omitempty,gte=0"`
}

// EventUpdate carries the fields a partial event update may change.
// CreatedBy is immutable and therefore absent.
// swagger:model EventUpdate
type EventUpdate struct {
	Title         Optional[string]    `json:"title" swaggertype:"string"`
	Description   Optional[string]    `json:"description" swaggertype:"string"`
	StartDatetime Optional[time.Time] `json:"start_datetime" swaggertype:"string"`
	EndDatetime   Optional[time.Time] `json:"end_datetime" swaggertype:"string"`
	Location      Optional[string]    `json:"location" swaggertype:"string"`
	MaxAttendees  Optional[int]       `json:"max_attendees" swaggertype:"integer"`
}

func (e EventUpdate) Validate() error {
	errs := &ValidationError{}
	notNull(errs, "title", e.Title)
	notNull(errs, "start_datetime", e.StartDatetime)
	notNull(errs, "end_datetime", e.EndDatetime)
	checkVar(errs, "title", e.Title, "required,max=100")
	checkVar(errs, "description", e.Description, "max=255")
	checkVar(errs, "start_datetime", e.StartDatetime, "required")
	checkVar(errs, "end_datetime", e.EndDatetime, "required")
	checkVar(errs, "location", e.Location, "max=100")
	checkVar(errs, "max_attendees", e.MaxAttendees, "gte=0")
	return errs.orNil()
}

// Fields returns the update record keyed by field name.
func (e EventUpdate) Fields() map[string]Field {
	return map[string]Field{
		"title":          e.Title,
		"description":    e.Description,
		"start_datetime": e.StartDatetime,
		"end_datetime":   e.EndDatetime,
		"location":       e.Location,
		"max_attendees":  e.MaxAttendees,
	}
}

// EventPage is one page of the events collection plus the table total.
// swagger:model EventPage
type EventPage struct {
	Events   []Event `json:"events"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	Quantity int     `json:"quantity"`
}
