package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("renders field and reason", func(t *testing.T) {
		err := &validator.ValidationError{Field: "email", Reason: "value does not match given pattern"}
		assert.Equal(t, "'email': value does not match given pattern", err.Error())
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		var err error = &validator.ValidationError{Field: "email"}
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.False(t, errors.Is(err, validator.ErrInvalidRule))
	})
}

func TestExtractValidationError(t *testing.T) {
	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationError(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationError(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("unwraps wrapped validation errors", func(t *testing.T) {
		inner := &validator.ValidationError{Field: "age", Reason: "floats not allowed"}
		wrapped := fmt.Errorf("request: %w", inner)

		extracted := validator.ExtractValidationError(wrapped)
		require.NotNil(t, extracted)
		assert.Same(t, inner, extracted)
		assert.True(t, validator.IsValidationError(wrapped))
	})
}

func TestValidate_Presence(t *testing.T) {
	t.Parallel()

	s := schema.MustNew(
		schema.Field{Name: "name", Rule: schema.StringRule{}},
		schema.Field{Name: "nick", Rule: schema.StringRule{Base: schema.Base{Optional: true}}},
	)

	t.Run("all fields present", func(t *testing.T) {
		out, err := validator.Validate(s, map[string]any{"name": "Ann", "nick": "an"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ann", "nick": "an"}, out)
	})

	t.Run("optional field absent is omitted", func(t *testing.T) {
		out, err := validator.Validate(s, map[string]any{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ann"}, out)
		assert.NotContains(t, out, "nick")
	})

	t.Run("required field absent fails", func(t *testing.T) {
		_, err := validator.Validate(s, map[string]any{"nick": "an"})
		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "name", verr.Field)
		assert.Equal(t, "missing required parameter of type '(string)'", verr.Reason)
		assert.Equal(t, "validation.required", verr.TranslationKey)
		assert.Equal(t, map[string]any{"field": "name", "type": "string"}, verr.TranslationValues)
		assert.Nil(t, verr.Value)
	})

	t.Run("nil dataset behaves like an empty one", func(t *testing.T) {
		_, err := validator.Validate(s, nil)
		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("explicit nil is a present value", func(t *testing.T) {
		_, err := validator.Validate(s, map[string]any{"name": nil})
		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "invalid value for type 'string'", verr.Reason)
	})

	t.Run("undeclared keys are dropped", func(t *testing.T) {
		out, err := validator.Validate(s, map[string]any{"name": "Ann", "admin": true})
		require.NoError(t, err)
		assert.NotContains(t, out, "admin")
	})
}

func TestValidate_FirstFailureWins(t *testing.T) {
	t.Parallel()

	s := schema.MustNew(
		schema.Field{Name: "a", Rule: schema.NumberRule{}},
		schema.Field{Name: "b", Rule: schema.NumberRule{}},
		schema.Field{Name: "c", Rule: schema.NumberRule{}},
	)

	_, err := validator.Validate(s, map[string]any{"a": 1, "b": "x", "c": "y"})
	verr := validator.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "b", verr.Field)
	assert.Equal(t, "x", verr.Value)
}

type foreignRule struct {
	schema.BoolRule
}

func TestValidate_UnexpectedType(t *testing.T) {
	t.Parallel()

	t.Run("unknown rule from a document", func(t *testing.T) {
		s := schema.Schema{{Name: "id", Rule: schema.UnknownRule{Type: "uuid"}}}

		_, err := validator.Validate(s, map[string]any{"id": "x"})
		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "'id': got an unexpected value type", verr.Error())
		assert.Equal(t, "validation.unknown_type", verr.TranslationKey)
	})

	t.Run("rule type declared outside the schema package", func(t *testing.T) {
		s := schema.Schema{{Name: "flag", Rule: foreignRule{}}}

		_, err := validator.Validate(s, map[string]any{"flag": true})
		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "got an unexpected value type", verr.Reason)
	})

	t.Run("nil rule", func(t *testing.T) {
		s := schema.Schema{{Name: "x"}}

		_, err := validator.Validate(s, map[string]any{"x": 1})
		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "got an unexpected value type", verr.Reason)
	})

	t.Run("missing optional unknown rule is not checked", func(t *testing.T) {
		s := schema.Schema{{Name: "id", Rule: schema.UnknownRule{Base: schema.Base{Optional: true}, Type: "uuid"}}}

		out, err := validator.Validate(s, map[string]any{})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestValidator(t *testing.T) {
	t.Parallel()

	s := schema.MustNew(schema.Field{Name: "n", Rule: schema.NumberRule{}})
	v := validator.New(s)

	assert.Equal(t, s, v.Schema())

	out, err := v.Validate(map[string]any{"n": "3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 3.0}, out)
}
