package services

import (
	"context"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, e models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, page, quantity int) ([]models.Event, error)
	ListAll(ctx context.Context) ([]models.Event, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id int64, upd models.EventUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// EventTaskReader lists the tasks of an event.
type EventTaskReader interface {
	ListByEvent(ctx context.Context, eventID int64) ([]models.Task, error)
}

// EventAttendanceReader lists the attendances of an event.
type EventAttendanceReader interface {
	ListByEvent(ctx context.Context, eventID int64) ([]models.Attendance, error)
}

// EventService handles events and the collections hanging off them.
type EventService struct {
	repo        EventRepository
	tasks       EventTaskReader
	attendances EventAttendanceReader
	tx          TxRunner
	publisher
}

// NewEventService creates a new EventService.
func NewEventService(
	repo EventRepository,
	tasks EventTaskReader,
	attendances EventAttendanceReader,
	tx TxRunner,
	kafkaWriter KafkaWriter,
) *EventService {
	return &EventService{
		repo:        repo,
		tasks:       tasks,
		attendances: attendances,
		tx:          tx,
		publisher:   publisher{writer: kafkaWriter},
	}
}

// Create stores a new event.
func (s *EventService) Create(ctx context.Context, e models.Event) (int64, error) {
	var id int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		id, err = s.repo.Create(ctx, e)
		return err
	})
	if err != nil {
		logFailure("failed to create event", err, "created_by", e.CreatedBy)
		return 0, err
	}

	s.publish(ctx, models.EntityEvent, models.OperationCreated, id)
	return id, nil
}

// Get returns an event by id.
func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of events together with the table total. Both are
// read inside the same transaction.
func (s *EventService) List(ctx context.Context, page, quantity int) (*models.EventPage, error) {
	result := &models.EventPage{Page: page, Quantity: quantity}
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		if result.Events, err = s.repo.List(ctx, page, quantity); err != nil {
			return err
		}
		result.Total, err = s.repo.Count(ctx)
		return err
	})
	if err != nil {
		logFailure("failed to list events", err, "page", page, "quantity", quantity)
		return nil, err
	}
	return result, nil
}

// All returns every event ordered by id, without paging.
func (s *EventService) All(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		logFailure("failed to list all events", err)
		return nil, err
	}
	return events, nil
}

// Update applies a partial update.
func (s *EventService) Update(ctx context.Context, id int64, upd models.EventUpdate) (int64, error) {
	var updatedID int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		updatedID, err = s.repo.Update(ctx, id, upd)
		return err
	})
	if err != nil {
		logFailure("failed to update event", err, "id", id)
		return 0, err
	}

	s.publish(ctx, models.EntityEvent, models.OperationUpdated, updatedID)
	return updatedID, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id int64) (int64, error) {
	var deletedID int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		deletedID, err = s.repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		logFailure("failed to delete event", err, "id", id)
		return 0, err
	}

	s.publish(ctx, models.EntityEvent, models.OperationDeleted, deletedID)
	return deletedID, nil
}

// Tasks returns the tasks of an existing event.
func (s *EventService) Tasks(ctx context.Context, eventID int64) ([]models.Task, error) {
	var tasks []models.Task
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		if _, err = s.repo.GetByID(ctx, eventID); err != nil {
			return err
		}
		tasks, err = s.tasks.ListByEvent(ctx, eventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Attendances returns the attendances of an existing event.
func (s *EventService) Attendances(ctx context.Context, eventID int64) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		if _, err = s.repo.GetByID(ctx, eventID); err != nil {
			return err
		}
		attendances, err = s.attendances.ListByEvent(ctx, eventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return attendances, nil
}
