package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

func validateNumber(key, path string, rule schema.NumberRule, value any) (any, error) {
	n, ok := toFloat(value)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, invalidValue(key, path, rule, value)
	}

	if rule.Max != nil && n > *rule.Max {
		return nil, fail(key, path, rule, value,
			fmt.Sprintf("cannot be greater than %s", formatFloat(*rule.Max)),
			"validation.max",
			map[string]any{"max": *rule.Max},
		)
	}

	if rule.Min != nil && n < *rule.Min {
		return nil, fail(key, path, rule, value,
			fmt.Sprintf("cannot be lower than %s", formatFloat(*rule.Min)),
			"validation.min",
			map[string]any{"min": *rule.Min},
		)
	}

	if rule.IntegerOnly && n != math.Trunc(n) {
		return nil, fail(key, path, rule, value,
			"floats not allowed",
			"validation.integer",
			nil,
		)
	}

	return n, nil
}

// toFloat parses numbers, json.Number and numeric strings. Strings must hold a
// complete decimal number; surrounding whitespace is ignored. Booleans are not
// numbers. Named numeric and string types are accepted by their kind.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil, bool:
		return 0, false
	case string:
		return parseFloat(v)
	case json.Number:
		return parseFloat(v.String())
	}

	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(value)
		return f, err == nil
	case reflect.String:
		return parseFloat(rv.String())
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
