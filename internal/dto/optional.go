package dto

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field for PATCH bodies: absent, explicit
// null, or a value. Absent fields never touch the stored row; an explicit
// null clears a nullable column.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON is only invoked when the field is present, so Set records
// presence and Valid distinguishes null from a value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a nullable pointer: nil for an explicit null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// Some wraps a value as a present Optional. Mostly used by tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null is an explicitly cleared Optional. Mostly used by tests.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
