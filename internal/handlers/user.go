package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

const entityUser = "user"

// UserRegisterer defines the interface that the service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, reg models.UserRegistration) (int64, error)
}

// UserGetter reads a single user.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

// UserUpdater applies partial user updates.
type UserUpdater interface {
	Update(ctx context.Context, id int64, upd models.UserUpdate) (int64, error)
}

// NewRegisterUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email and username must be unique. Password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserRegistration true "User registration request"
// @Success 201 {object} models.Response{data=models.IDResponse}
// @Failure 400 {object} models.Response "Invalid request"
// @Failure 409 {object} models.Response "Email or username already exists"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /users [post]
func NewRegisterUserHandler(svc UserRegisterer) http.HandlerFunc {
	return createHandler(entityUser, svc.Register)
}

// NewGetUserHandler returns an HTTP handler reading a user by id.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.Response{data=models.User}
// @Failure 400 {object} models.Response "Malformed id"
// @Failure 404 {object} models.Response "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return getHandler(entityUser, svc.Get)
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// Keys absent from the body are left untouched.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param user body models.UserUpdate true "Fields to change"
// @Success 200 {object} models.Response{data=models.IDResponse}
// @Failure 400 {object} models.Response "Invalid request or no fields to update"
// @Failure 404 {object} models.Response "User not found"
// @Failure 409 {object} models.Response "Email or username already exists"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return updateHandler(entityUser, svc.Update)
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.Response{data=models.IDResponse}
// @Failure 404 {object} models.Response "User not found"
// @Failure 409 {object} models.Response "User is still referenced"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc Deleter) http.HandlerFunc {
	return deleteHandler(entityUser, svc)
}
