package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request body cannot be turned into
// a well-formed entity or update record. It lists every offending field.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validator is implemented by records that validate themselves instead of
// relying on struct tags (update records with tri-state fields).
type Validator interface {
	Validate() error
}

// Validate checks v and returns a *ValidationError listing all failures.
func Validate(v any) error {
	if self, ok := v.(Validator); ok {
		return self.Validate()
	}
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.add(fe.Field(), describe(fe.Tag(), fe.Param()))
	}
	return out
}

// Decode reads one JSON document from r into T and validates it.
// Malformed JSON and wrongly typed fields surface as *ValidationError.
func Decode[T any](r io.Reader) (T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, decodeError(err)
	}
	if err := Validate(&v); err != nil {
		return v, err
	}
	return v, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{Fields: []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		}}}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "must be a valid JSON document"}}}
	}
	// time.Time and other TextUnmarshalers report parse failures as plain errors.
	return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
}

func describe(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "max":
		return "must be at most " + param + " characters"
	default:
		return "failed " + tag + " check"
	}
}

// checks for tri-state update fields

func notNull[T any](errs *ValidationError, field string, o Optional[T]) {
	if o.IsNull() {
		errs.add(field, "cannot be null")
	}
}

func checkVar[T any](errs *ValidationError, field string, o Optional[T], tag string) {
	if !o.Set || o.Null {
		return
	}
	if err := validate.Var(o.Value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			errs.add(field, describe(verrs[0].Tag(), verrs[0].Param()))
			return
		}
		errs.add(field, err.Error())
	}
}
