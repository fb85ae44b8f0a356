package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

const (
	defaultPage     = 1
	defaultQuantity = 10
	maxQuantity     = 100
)

// parseID reads the {id} path parameter as a positive integer.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fieldError("id", "must be a positive integer")
	}
	return id, nil
}

// parsePage reads the page and quantity query parameters. The resulting
// row offset (page-1)*quantity is guaranteed to fit in an int.
func parsePage(r *http.Request) (page, quantity int, err error) {
	verr := &models.ValidationError{}

	page, ok := positiveQuery(r, "page", defaultPage)
	if !ok {
		verr.Fields = append(verr.Fields, models.FieldError{Field: "page", Message: "must be a positive integer"})
	}

	quantity, qok := positiveQuery(r, "quantity", defaultQuantity)
	switch {
	case !qok:
		verr.Fields = append(verr.Fields, models.FieldError{Field: "quantity", Message: "must be a positive integer"})
	case quantity > maxQuantity:
		verr.Fields = append(verr.Fields, models.FieldError{
			Field:   "quantity",
			Message: "must be at most " + strconv.Itoa(maxQuantity),
		})
	case ok && page-1 > math.MaxInt/quantity:
		verr.Fields = append(verr.Fields, models.FieldError{Field: "page", Message: "is too large"})
	}

	if len(verr.Fields) > 0 {
		return 0, 0, verr
	}
	return page, quantity, nil
}

// positiveQuery reads a positive integer query parameter, falling back to
// def when the parameter is absent.
func positiveQuery(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func fieldError(field, message string) error {
	return &models.ValidationError{Fields: []models.FieldError{{Field: field, Message: message}}}
}
