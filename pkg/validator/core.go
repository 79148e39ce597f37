package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// ValidationError describes the first rule violation found in a dataset.
// It supports translation through TranslationKey and TranslationValues.
type ValidationError struct {
	// Field is the name of the offending field as declared in its schema.
	Field string
	// Path locates the field from the root dataset, e.g. "address.city" or "tags[2]".
	Path string
	// Rule is the violated rule.
	Rule schema.Rule
	// Value is the raw input value that failed.
	Value any
	// Reason is a human readable explanation.
	Reason string

	TranslationKey    string
	TranslationValues map[string]any
}

// Error renders the failure as '<field>': <reason>.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("'%s': %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidationFailed) true for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractValidationError extracts a ValidationError from an error chain.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}

// fail builds a ValidationError. Translation values always carry the field name.
func fail(key, path string, rule schema.Rule, value any, reason, translationKey string, values map[string]any) *ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = key

	return &ValidationError{
		Field:             key,
		Path:              path,
		Rule:              rule,
		Value:             value,
		Reason:            reason,
		TranslationKey:    translationKey,
		TranslationValues: values,
	}
}

func invalidValue(key, path string, rule schema.Rule, value any) *ValidationError {
	return fail(key, path, rule, value,
		fmt.Sprintf("invalid value for type '%s'", ruleType(rule)),
		"validation.invalid_type",
		map[string]any{"type": string(ruleType(rule))},
	)
}

func ruleType(rule schema.Rule) schema.Type {
	if rule == nil {
		return ""
	}
	return rule.Kind()
}
