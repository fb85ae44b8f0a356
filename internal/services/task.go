package services

import (
	"context"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// TaskRepository defines storage operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t models.Task) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	Update(ctx context.Context, id int64, upd models.TaskUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// TaskService manages to-do items.
type TaskService struct {
	repo TaskRepository
	tx   TxRunner
	publisher
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo TaskRepository, tx TxRunner, kafkaWriter KafkaWriter) *TaskService {
	return &TaskService{
		repo:      repo,
		tx:        tx,
		publisher: publisher{writer: kafkaWriter},
	}
}

// Create stores a new task.
func (s *TaskService) Create(ctx context.Context, t models.Task) (int64, error) {
	var id int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		id, err = s.repo.Create(ctx, t)
		return err
	})
	if err != nil {
		logFailure("failed to create task", err, "created_by", t.CreatedBy)
		return 0, err
	}

	s.publish(ctx, models.EntityTask, models.OperationCreated, id)
	return id, nil
}

// Get returns a task by id.
func (s *TaskService) Get(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update.
func (s *TaskService) Update(ctx context.Context, id int64, upd models.TaskUpdate) (int64, error) {
	var updatedID int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		updatedID, err = s.repo.Update(ctx, id, upd)
		return err
	})
	if err != nil {
		logFailure("failed to update task", err, "id", id)
		return 0, err
	}

	s.publish(ctx, models.EntityTask, models.OperationUpdated, updatedID)
	return updatedID, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id int64) (int64, error) {
	var deletedID int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		deletedID, err = s.repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		logFailure("failed to delete task", err, "id", id)
		return 0, err
	}

	s.publish(ctx, models.EntityTask, models.OperationDeleted, deletedID)
	return deletedID, nil
}
