package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

const entityTask = "task"

// TaskCreator creates tasks.
type TaskCreator interface {
	Create(ctx context.Context, t models.Task) (int64, error)
}

// TaskGetter reads a single task.
type TaskGetter interface {
	Get(ctx context.Context, id int64) (*models.Task, error)
}

// TaskUpdater applies partial task updates.
type TaskUpdater interface {
	Update(ctx context.Context, id int64, upd models.TaskUpdate) (int64, error)
}

// NewCreateTaskHandler returns an HTTP handler creating a task.
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body models.Task true "Task"
// @Success 201 {object} models.Response{data=models.IDResponse}
// @Failure 400 {object} models.Response "Invalid request"
// @Failure 409 {object} models.Response "Unknown user or event"
// @Router /tasks [post]
func NewCreateTaskHandler(svc TaskCreator) http.HandlerFunc {
	return createHandler(entityTask, svc.Create)
}

// NewGetTaskHandler returns an HTTP handler reading a task by id.
// @Summary Get task
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} models.Response{data=models.Task}
// @Failure 404 {object} models.Response "Task not found"
// @Router /tasks/{id} [get]
func NewGetTaskHandler(svc TaskGetter) http.HandlerFunc {
	return getHandler(entityTask, svc.Get)
}

// NewUpdateTaskHandler returns an HTTP handler for partial task updates.
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param task body models.TaskUpdate true "Fields to change"
// @Success 200 {object} models.Response{data=models.IDResponse}
// @Failure 400 {object} models.Response "Invalid request or no fields to update"
// @Failure 404 {object} models.Response "Task not found"
// @Router /tasks/{id} [patch]
func NewUpdateTaskHandler(svc TaskUpdater) http.HandlerFunc {
	return updateHandler(entityTask, svc.Update)
}

// NewDeleteTaskHandler returns an HTTP handler deleting a task.
// @Summary Delete task
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} models.Response{data=models.IDResponse}
// @Failure 404 {object} models.Response "Task not found"
// @Router /tasks/{id} [delete]
func NewDeleteTaskHandler(svc Deleter) http.HandlerFunc {
	return deleteHandler(entityTask, svc)
}
