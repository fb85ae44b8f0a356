package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

const entityAttendance = "attendance"

// AttendanceCreator creates attendances.
type AttendanceCreator interface {
	Create(ctx context.Context, a models.Attendance) (int64, error)
}

// AttendanceGetter reads a single attendance.
type AttendanceGetter interface {
	Get(ctx context.Context, id int64) (*models.Attendance, error)
}

// AttendanceUpdater applies partial attendance updates.
type AttendanceUpdater interface {
	Update(ctx context.Context, id int64, upd models.AttendanceUpdate) (int64, error)
}

// NewCreateAttendanceHandler returns an HTTP handler recording an attendance.
// @Summary Create attendance
// @Tags attendances
// @Accept json
// @Produce json
// @Param attendance body models.Attendance true "Attendance"
// @Success 201 {object} models.Response{data=models.IDResponse}
// @Failure 400 {object} models.Response "Invalid request"
// @Failure 409 {object} models.Response "Unknown user or event"
// @Router /attendances [post]
func NewCreateAttendanceHandler(svc AttendanceCreator) http.HandlerFunc {
	return createHandler(entityAttendance, svc.Create)
}

// NewGetAttendanceHandler returns an HTTP handler reading an attendance by id.
// @Summary Get attendance
// @Tags attendances
// @Produce json
// @Param id path int true "Attendance id"
// @Success 200 {object} models.Response{data=models.Attendance}
// @Failure 404 {object} models.Response "Attendance not found"
// @Router /attendances/{id} [get]
func NewGetAttendanceHandler(svc AttendanceGetter) http.HandlerFunc {
	return getHandler(entityAttendance, svc.Get)
}

// NewUpdateAttendanceHandler returns an HTTP handler changing status or notes.
// @Summary Update attendance
// @Tags attendances
// @Accept json
// @Produce json
// @Param id path int true "Attendance id"
// @Param attendance body models.AttendanceUpdate true "Fields to change"
// @Success 200 {object} models.Response{data=models.IDResponse}
// @Failure 400 {object} models.Response "Invalid request or no fields to update"
// @Failure 404 {object} models.Response "Attendance not found"
// @Router /attendances/{id} [patch]
func NewUpdateAttendanceHandler(svc AttendanceUpdater) http.HandlerFunc {
	return updateHandler(entityAttendance, svc.Update)
}

// NewDeleteAttendanceHandler returns an HTTP handler deleting an attendance.
// @Summary Delete attendance
// @Tags attendances
// @Produce json
// @Param id path int true "Attendance id"
// @Success 200 {object} models.Response{data=models.IDResponse}
// @Failure 404 {object} models.Response "Attendance not found"
// @Router /attendances/{id} [delete]
func NewDeleteAttendanceHandler(svc Deleter) http.HandlerFunc {
	return deleteHandler(entityAttendance, svc)
}
