package validator

import (
	"encoding/json"
	"fmt"
	"reflect"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

func validateString(key, path string, rule schema.StringRule, value any) (any, error) {
	s, ok := toString(value)
	if !ok {
		return nil, invalidValue(key, path, rule, value)
	}

	if rule.NotEmpty && s == "" {
		return nil, invalidValue(key, path, rule, value)
	}

	if rule.Match != "" && rule.RegExp != nil {
		return nil, fail(key, path, rule, value,
			"regExp and match cannot both be defined",
			"validation.pattern_conflict",
			nil,
		)
	}

	pattern, description, err := resolvePattern(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidRule, path, err)
	}
	if pattern != nil && !pattern.MatchString(s) {
		return nil, fail(key, path, rule, value,
			"value does not match given pattern",
			"validation.regex_pattern",
			map[string]any{"pattern": description},
		)
	}

	return normalizeCase(s, rule.Case), nil
}

// toString accepts strings and named string types. json.Number is a number
// even though its underlying type is string.
func toString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return "", false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func resolvePattern(rule schema.StringRule) (schema.Pattern, string, error) {
	if rule.RegExp != nil {
		return rule.RegExp, rule.RegExp.String(), nil
	}
	if rule.Match == "" {
		return nil, "", nil
	}

	p, ok := schema.LookupPattern(rule.Match)
	if !ok {
		return nil, "", fmt.Errorf("unknown pattern %q", rule.Match)
	}
	return p, rule.Match, nil
}

// normalizeCase applies the rule case to the validated value.
// Casers keep state, so a new one is created per call.
func normalizeCase(s string, c schema.Case) string {
	switch c {
	case schema.CaseUpper:
		return cases.Upper(language.Und).String(s)
	case schema.CaseLower:
		return cases.Lower(language.Und).String(s)
	default:
		return s
	}
}
