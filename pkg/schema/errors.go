package schema

import "errors"

var (
	// ErrInvalidSchema is returned when a schema document cannot be decoded.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrDuplicateField is returned when a schema declares the same field twice.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrEmptyFieldName is returned when a schema field has no name.
	ErrEmptyFieldName = errors.New("empty field name")

	// ErrNilRule is returned when a schema field has no rule.
	ErrNilRule = errors.New("nil rule")

	// ErrInvalidFormat is returned when a date format cannot be translated.
	ErrInvalidFormat = errors.New("invalid date format")
)
