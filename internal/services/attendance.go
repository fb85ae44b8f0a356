package services

import (
	"context"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// AttendanceRepository defines storage operations for attendances.
type AttendanceRepository interface {
	Create(ctx context.Context, a models.Attendance) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	Update(ctx context.Context, id int64, upd models.AttendanceUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// AttendanceService records who attends which event.
type AttendanceService struct {
	repo AttendanceRepository
	tx   TxRunner
	publisher
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(repo AttendanceRepository, tx TxRunner, kafkaWriter KafkaWriter) *AttendanceService {
	return &AttendanceService{
		repo:      repo,
		tx:        tx,
		publisher: publisher{writer: kafkaWriter},
	}
}

// Create stores a new attendance.
func (s *AttendanceService) Create(ctx context.Context, a models.Attendance) (int64, error) {
	var id int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		id, err = s.repo.Create(ctx, a)
		return err
	})
	if err != nil {
		logFailure("failed to create attendance", err, "user_id", a.UserID, "event_id", a.EventID)
		return 0, err
	}

	s.publish(ctx, models.EntityAttendance, models.OperationCreated, id)
	return id, nil
}

// Get returns an attendance by id.
func (s *AttendanceService) Get(ctx context.Context, id int64) (*models.Attendance, error) {
	return s.repo.GetByID(ctx, id)
}

// Update changes the status or notes of an attendance.
func (s *AttendanceService) Update(ctx context.Context, id int64, upd models.AttendanceUpdate) (int64, error) {
	var updatedID int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		updatedID, err = s.repo.Update(ctx, id, upd)
		return err
	})
	if err != nil {
		logFailure("failed to update attendance", err, "id", id)
		return 0, err
	}

	s.publish(ctx, models.EntityAttendance, models.OperationUpdated, updatedID)
	return updatedID, nil
}

// Delete removes an attendance.
func (s *AttendanceService) Delete(ctx context.Context, id int64) (int64, error) {
	var deletedID int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		deletedID, err = s.repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		logFailure("failed to delete attendance", err, "id", id)
		return 0, err
	}

	s.publish(ctx, models.EntityAttendance, models.OperationDeleted, deletedID)
	return deletedID, nil
}
