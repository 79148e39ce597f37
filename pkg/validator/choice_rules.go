package validator

import (
	"reflect"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// validateBool accepts boolean values and the exact strings "true" and "false",
// which is how booleans arrive from query strings and forms.
func validateBool(key, path string, rule schema.BoolRule, value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, invalidValue(key, path, rule, value)
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Bool {
		return rv.Bool(), nil
	}
	return nil, invalidValue(key, path, rule, value)
}
