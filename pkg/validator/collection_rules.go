package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// validateList checks that value is a slice or array and validates every
// element against a copy of rule with the list flag cleared.
func validateList(key, path string, rule schema.Rule, value any) (any, error) {
	items, ok := toList(value)
	if !ok {
		return nil, fail(key, path, rule, value,
			fmt.Sprintf("expected a list of '%s'", rule.Kind()),
			"validation.list",
			map[string]any{"type": string(rule.Kind())},
		)
	}

	elem := schema.WithoutList(rule)
	out := make([]any, 0, len(items))
	for i, item := range items {
		result, err := validateValue(key, fmt.Sprintf("%s[%d]", path, i), elem, item)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, nil
}

func toList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
