package validator

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// validateDate parses value with the rule format. The parsed time must render
// back to the exact input, so padding, fractional seconds or letter case that
// the format does not describe are rejected. The returned time is in UTC
// unless the format carries a zone offset.
func validateDate(key, path string, rule schema.Rule, format string, value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
		return nil, invalidValue(key, path, rule, value)
	}

	s, ok := toString(value)
	if !ok {
		return nil, invalidValue(key, path, rule, value)
	}

	layout, err := schema.Layout(format)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidRule, path, err)
	}

	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil || !renders(t, format, s) {
		return nil, fail(key, path, rule, value,
			fmt.Sprintf("invalid value for type '%s'", rule.Kind()),
			"validation.date_format",
			map[string]any{"type": string(rule.Kind()), "format": format},
		)
	}
	return t, nil
}

func renders(t time.Time, format, want string) bool {
	got, err := schema.Render(t, format)
	return err == nil && got == want
}
