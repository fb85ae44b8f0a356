package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/repositories"
)

// Error codes carried in the response envelope.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeEmptyUpdate         = "EMPTY_UPDATE"
	CodeDuplicateResource   = "DUPLICATE_RESOURCE"
	CodeUnknownReference    = "UNKNOWN_REFERENCE"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)

// Postgres SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgIntegrityClass      = "23"
)

// classify maps an error returned by a service to an HTTP status and body.
func classify(entity string, err error) (int, models.ErrorBody) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, models.ErrorBody{
			Code:    CodeValidation,
			Message: "invalid request",
			Fields:  verr.Fields,
		}
	}

	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound, models.ErrorBody{Code: CodeNotFound, Message: entity + " not found"}
	case errors.Is(err, repositories.ErrEmptyUpdate):
		return http.StatusBadRequest, models.ErrorBody{Code: CodeEmptyUpdate, Message: "no fields to update"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return http.StatusConflict, models.ErrorBody{
				Code:    CodeDuplicateResource,
				Message: entity + " already exists",
			}
		case pgErr.Code == pgForeignKeyViolation:
			return http.StatusConflict, models.ErrorBody{
				Code:    CodeUnknownReference,
				Message: "referenced resource does not exist",
			}
		case strings.HasPrefix(pgErr.Code, pgIntegrityClass):
			return http.StatusBadRequest, models.ErrorBody{
				Code:    CodeConstraintViolation,
				Message: "constraint violated",
			}
		}
	}

	return http.StatusInternalServerError, models.ErrorBody{Code: CodeInternal, Message: "Something went wrong"}
}
