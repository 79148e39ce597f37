package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// Validator validates datasets against a fixed schema.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	schema schema.Schema
}

// New returns a Validator for s. The schema must not be modified afterwards.
func New(s schema.Schema) *Validator {
	return &Validator{schema: s}
}

// Schema returns the schema the validator was built with.
func (v *Validator) Schema() schema.Schema {
	return v.schema
}

// Validate checks data against the validator schema. See Validate.
func (v *Validator) Validate(data map[string]any) (map[string]any, error) {
	return Validate(v.schema, data)
}

// Validate checks data against s and returns the coerced values keyed by field name.
//
// Fields are processed in declaration order and the first violation stops the
// walk: the returned error is then a *ValidationError. Any other error means
// the schema itself is unusable (see ErrInvalidRule). Optional fields missing
// from data are omitted from the result; keys of data that s does not declare
// are dropped.
//
// Validate never modifies s.
func Validate(s schema.Schema, data map[string]any) (map[string]any, error) {
	return validateObject(s, data, "")
}

func validateObject(s schema.Schema, data map[string]any, path string) (map[string]any, error) {
	out := make(map[string]any, len(s))
	for _, f := range s {
		value, present := data[f.Name]

		result, ok, err := validateField(f.Name, joinPath(path, f.Name), f.Rule, value, present)
		if err != nil {
			return nil, err
		}
		if ok {
			out[f.Name] = result
		}
	}
	return out, nil
}

// validateField applies presence and list handling before dispatching on the rule type.
// The boolean result is false when an optional field is absent.
func validateField(key, path string, rule schema.Rule, value any, present bool) (any, bool, error) {
	if rule == nil {
		return nil, false, unexpectedType(key, path, rule, value)
	}

	if !present {
		if schema.Required(rule) {
			return nil, false, fail(key, path, rule, value,
				fmt.Sprintf("missing required parameter of type '(%s)'", rule.Kind()),
				"validation.required",
				map[string]any{"type": string(rule.Kind())},
			)
		}
		return nil, false, nil
	}

	if schema.IsList(rule) {
		result, err := validateList(key, path, rule, value)
		if err != nil {
			return nil, false, err
		}
		return result, true, nil
	}

	result, err := validateValue(key, path, rule, value)
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

// validateValue dispatches on the rule variant.
func validateValue(key, path string, rule schema.Rule, value any) (any, error) {
	switch r := rule.(type) {
	case schema.StringRule:
		return validateString(key, path, r, value)
	case schema.NumberRule:
		return validateNumber(key, path, r, value)
	case schema.BoolRule:
		return validateBool(key, path, r, value)
	case schema.DateRule:
		return validateDate(key, path, r, r.Layout(), value)
	case schema.DateTimeRule:
		return validateDate(key, path, r, r.Layout(), value)
	case schema.ObjectRule:
		nested, ok := toDataset(value)
		if !ok {
			return nil, invalidValue(key, path, r, value)
		}
		return validateObject(r.Schema, nested, path)
	default:
		return nil, unexpectedType(key, path, rule, value)
	}
}

func unexpectedType(key, path string, rule schema.Rule, value any) *ValidationError {
	return fail(key, path, rule, value,
		"got an unexpected value type",
		"validation.unknown_type",
		map[string]any{"type": string(ruleType(rule))},
	)
}

// toDataset converts an object value into a dataset. A nil value is an empty
// dataset so that nested optional fields may be omitted together with their parent value.
func toDataset(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case map[string]any:
		return v, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	if rv.IsNil() {
		return nil, true
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
