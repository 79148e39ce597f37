package validator

import "errors"

var (
	// ErrValidationFailed matches every *ValidationError through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidRule is returned when a rule itself is unusable, for example
	// when it names a pattern that is not registered or carries a date format
	// that cannot be translated. It indicates a programming error in the schema
	// rather than bad input.
	ErrInvalidRule = errors.New("invalid rule")
)
