package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

const entityEvent = "event"

// EventCreator creates events.
type EventCreator interface {
	Create(ctx context.Context, e models.Event) (int64, error)
}

// EventGetter reads a single event.
type EventGetter interface {
	Get(ctx context.Context, id int64) (*models.Event, error)
}

// EventLister reads one page of events.
type EventLister interface {
	List(ctx context.Context, page, quantity int) (*models.EventPage, error)
}

// EventAllLister reads every event at once.
type EventAllLister interface {
	All(ctx context.Context) ([]models.Event, error)
}

// EventUpdater applies partial event updates.
type EventUpdater interface {
	Update(ctx context.Context, id int64, upd models.EventUpdate) (int64, error)
}

// EventTaskLister lists the tasks of an event.
type EventTaskLister interface {
	Tasks(ctx context.Context, eventID int64) ([]models.Task, error)
}

// EventAttendanceLister lists the attendances of an event.
type EventAttendanceLister interface {
	Attendances(ctx context.Context, eventID int64) ([]models.Attendance, error)
}

// NewCreateEventHandler returns an HTTP handler creating an event.
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.Event true "Event"
// @Success 201 {object} models.Response{data=models.IDResponse}
// @Failure 400 {object} models.Response "Invalid request"
// @Failure 409 {object} models.Response "Unknown creator"
// @Router /events [post]
func NewCreateEventHandler(svc EventCreator) http.HandlerFunc {
	return createHandler(entityEvent, svc.Create)
}

// NewGetEventHandler returns an HTTP handler reading an event by id.
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} models.Response{data=models.Event}
// @Failure 404 {object} models.Response "Event not found"
// @Router /events/{id} [get]
func NewGetEventHandler(svc EventGetter) http.HandlerFunc {
	return getHandler(entityEvent, svc.Get)
}

// NewListEventsHandler returns an HTTP handler listing events page by page.
// @Summary List events
// @Description Returns events ordered by id together with the total number of events.
// @Tags events
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param quantity query int false "Page size" default(10)
// @Success 200 {object} models.Response{data=models.EventPage}
// @Failure 400 {object} models.Response "Invalid page or quantity"
// @Router /events [get]
func NewListEventsHandler(svc EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, quantity, err := parsePage(r)
		if err != nil {
			writeError(w, r, entityEvent, err)
			return
		}

		result, err := svc.List(r.Context(), page, quantity)
		if err != nil {
			writeError(w, r, entityEvent, err)
			return
		}
		if result.Events == nil {
			result.Events = []models.Event{}
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewListAllEventsHandler returns an HTTP handler listing every event without paging.
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Event}
// @Failure 500 {object} models.Response "Internal server error"
// @Router /events/all [get]
func NewListAllEventsHandler(svc EventAllLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := svc.All(r.Context())
		if err != nil {
			writeError(w, r, entityEvent, err)
			return
		}
		if events == nil {
			events = []models.Event{}
		}

		writeJSON(w, http.StatusOK, events)
	}
}

// NewUpdateEventHandler returns an HTTP handler for partial event updates.
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param event body models.EventUpdate true "Fields to change"
// @Success 200 {object} models.Response{data=models.IDResponse}
// @Failure 400 {object} models.Response "Invalid request or no fields to update"
// @Failure 404 {object} models.Response "Event not found"
// @Router /events/{id} [patch]
func NewUpdateEventHandler(svc EventUpdater) http.HandlerFunc {
	return updateHandler(entityEvent, svc.Update)
}

// NewDeleteEventHandler returns an HTTP handler deleting an event.
// @Summary Delete event
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} models.Response{data=models.IDResponse}
// @Failure 404 {object} models.Response "Event not found"
// @Router /events/{id} [delete]
func NewDeleteEventHandler(svc Deleter) http.HandlerFunc {
	return deleteHandler(entityEvent, svc)
}

// NewListEventTasksHandler returns an HTTP handler listing the tasks of an event.
// @Summary List event tasks
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} models.Response{data=[]models.Task}
// @Failure 404 {object} models.Response "Event not found"
// @Router /events/{id}/tasks [get]
func NewListEventTasksHandler(svc EventTaskLister) http.HandlerFunc {
	return listByParentHandler(entityEvent, svc.Tasks)
}

// NewListEventAttendancesHandler returns an HTTP handler listing the attendances of an event.
// @Summary List event attendances
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} models.Response{data=[]models.Attendance}
// @Failure 404 {object} models.Response "Event not found"
// @Router /events/{id}/attendances [get]
func NewListEventAttendancesHandler(svc EventAttendanceLister) http.HandlerFunc {
	return listByParentHandler(entityEvent, svc.Attendances)
}
