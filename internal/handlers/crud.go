package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// Deleter removes a resource by id and returns the removed id.
type Deleter interface {
	Delete(ctx context.Context, id int64) (int64, error)
}

func createHandler[T any](entity string, create func(context.Context, T) (int64, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := models.Decode[T](r.Body)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		id, err := create(r.Context(), record)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.IDResponse{ID: id})
	}
}

func getHandler[T any](entity string, get func(context.Context, int64) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		record, err := get(r.Context(), id)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func updateHandler[U any](entity string, update func(context.Context, int64, U) (int64, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		upd, err := models.Decode[U](r.Body)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		updatedID, err := update(r.Context(), id, upd)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		writeJSON(w, http.StatusOK, models.IDResponse{ID: updatedID})
	}
}

func deleteHandler(entity string, svc Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		deletedID, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		writeJSON(w, http.StatusOK, models.IDResponse{ID: deletedID})
	}
}

func listByParentHandler[T any](entity string, list func(context.Context, int64) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}

		records, err := list(r.Context(), id)
		if err != nil {
			writeError(w, r, entity, err)
			return
		}
		if records == nil {
			records = []T{}
		}

		writeJSON(w, http.StatusOK, records)
	}
}
