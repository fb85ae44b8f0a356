package models

import (
	"encoding/json"
)

// Field is one entry of an update record.
type Field interface {
	IsSet() bool
	SQLValue() any
}

// Optional is a tri-state field used by update records: absent, explicit
// null, or a value. A JSON key that is missing leaves the field absent,
// a JSON null marks it Null, anything else is decoded into Value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that explicitly clears the column.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// IsSet reports whether the field was present in the update record.
func (o Optional[T]) IsSet() bool {
	return o.Set
}

// IsNull reports whether the field was present and explicitly null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Null
}

// SQLValue returns the value to bind: nil for an explicit null.
func (o Optional[T]) SQLValue() any {
	if o.Null {
		return nil
	}
	return o.Value
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
