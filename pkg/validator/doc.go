// Package validator checks untyped datasets, such as decoded JSON bodies or
// query parameters, against a schema.Schema and coerces the accepted values
// into typed results.
//
// # Usage
//
//	var signup = schema.MustNew(
//	    schema.Field{Name: "email", Rule: schema.StringRule{Match: schema.PatternEmail, Case: schema.CaseLower}},
//	    schema.Field{Name: "age", Rule: schema.NumberRule{Min: schema.Bound(18)}},
//	)
//
//	payload, err := validator.Validate(signup, map[string]any{"email": "Bob@Example.com", "age": "21"})
//	if err != nil {
//	    if verr := validator.ExtractValidationError(err); verr != nil {
//	        // verr.Error() == "'age': cannot be lower than 18"
//	    }
//	}
//	// payload == map[string]any{"email": "bob@example.com", "age": 21.0}
//
// # Coercion
//
// The result holds one entry per schema field that was present in the input:
//
//   - string    – string, optionally upper or lower cased
//   - number    – float64, parsed from numbers, json.Number or numeric strings
//   - bool      – bool, from booleans or the strings "true" and "false"
//   - date      – time.Time
//   - datetime  – time.Time
//   - object    – map[string]any
//   - list      – []any of the element results
//
// Numeric strings are parsed whole: "12abc" is rejected rather than read as
// 12 the way a prefix parser such as JavaScript's parseFloat would. NaN and
// infinities are rejected as well.
//
// Date strings must be in exactly the form the format describes. A value that
// parses but would be written differently, such as "9:00" for HH:mm or a
// trailing ".5" after seconds, is rejected.
//
// Coerced values validate to themselves, so a result can be validated again
// against the same schema.
//
// # Error Handling
//
// Validation stops at the first violation. The returned *ValidationError names
// the field, the violated rule, the raw value and a reason; its Error method
// renders "'<field>': <reason>". errors.Is(err, ErrValidationFailed) reports
// whether an error is a validation failure. Errors wrapping ErrInvalidRule
// signal a broken schema and should be treated as internal errors.
//
// # Concurrency
//
// Validation is synchronous and keeps no state between calls. Schemas are only
// read, so one schema may serve any number of goroutines.
package validator
