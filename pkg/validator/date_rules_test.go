package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

func TestDateRule(t *testing.T) {
	t.Parallel()

	t.Run("leap day passes", func(t *testing.T) {
		out, err := validateOne(t, schema.DateRule{}, "2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), out)
	})

	t.Run("invalid calendar date fails", func(t *testing.T) {
		_, err := validateOne(t, schema.DateRule{}, "2024-02-30")
		verr := requireReason(t, err, "invalid value for type 'date'")
		assert.Equal(t, "validation.date_format", verr.TranslationKey)
		assert.Equal(t, schema.DefaultDateFormat, verr.TranslationValues["format"])
	})

	t.Run("non leap year", func(t *testing.T) {
		_, err := validateOne(t, schema.DateRule{}, "2023-02-29")
		requireReason(t, err, "invalid value for type 'date'")
	})

	t.Run("parse is strict", func(t *testing.T) {
		for _, v := range []string{"2024-2-29", "2024-02-29 10:00:00", "29/02/2024", ""} {
			_, err := validateOne(t, schema.DateRule{}, v)
			requireReason(t, err, "invalid value for type 'date'")
		}

		for _, v := range []string{"2024-01-01 7:05", "2024-01-01 07:05:00", "2024-01-01 07:05.5"} {
			_, err := validateOne(t, schema.DateRule{Format: "YYYY-MM-DD HH:mm"}, v)
			requireReason(t, err, "invalid value for type 'date'")
		}

		for _, v := range []string{"1-Jan-2024", "01-jan-2024"} {
			_, err := validateOne(t, schema.DateRule{Format: "DD-MMM-YYYY"}, v)
			requireReason(t, err, "invalid value for type 'date'")
		}
	})

	t.Run("unpadded tokens", func(t *testing.T) {
		out, err := validateOne(t, schema.DateRule{Format: "D.M.YYYY H:mm"}, "5.3.2024 9:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC), out)

		_, err = validateOne(t, schema.DateRule{Format: "D.M.YYYY H:mm"}, "05.03.2024 09:30")
		requireReason(t, err, "invalid value for type 'date'")
	})

	t.Run("custom format", func(t *testing.T) {
		out, err := validateOne(t, schema.DateRule{Format: "DD/MM/YYYY"}, "01/12/2023")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), out)
	})

	t.Run("non string value", func(t *testing.T) {
		_, err := validateOne(t, schema.DateRule{}, 20240229)
		requireReason(t, err, "invalid value for type 'date'")
	})

	t.Run("time values pass through", func(t *testing.T) {
		ts := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)

		out, err := validateOne(t, schema.DateRule{}, ts)
		require.NoError(t, err)
		assert.Equal(t, ts, out)

		out, err = validateOne(t, schema.DateRule{}, &ts)
		require.NoError(t, err)
		assert.Equal(t, ts, out)
	})

	t.Run("untranslatable format is a rule error", func(t *testing.T) {
		_, err := validateOne(t, schema.DateRule{Format: "[YYYY"}, "2024")
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrInvalidRule))
		assert.True(t, errors.Is(err, schema.ErrInvalidFormat))
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestDateTimeRule(t *testing.T) {
	t.Parallel()

	t.Run("default format", func(t *testing.T) {
		out, err := validateOne(t, schema.DateTimeRule{}, "2024-03-01 13:45:10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 1, 13, 45, 10, 0, time.UTC), out)
	})

	t.Run("invalid time fails", func(t *testing.T) {
		_, err := validateOne(t, schema.DateTimeRule{}, "2024-03-01 25:00:00")
		requireReason(t, err, "invalid value for type 'datetime'")
	})

	t.Run("parse is strict", func(t *testing.T) {
		for _, v := range []string{
			"2024-01-01 9:00:00",
			"2024-01-01 10:00:00.123",
			"2024-01-01 10:00:00,5",
			"2024-1-01 10:00:00",
		} {
			_, err := validateOne(t, schema.DateTimeRule{}, v)
			requireReason(t, err, "invalid value for type 'datetime'")
		}
	})

	t.Run("fractional seconds in format", func(t *testing.T) {
		f := "YYYY-MM-DD HH:mm:ss.SSS"
		out, err := validateOne(t, schema.DateTimeRule{Format: f}, "2024-01-01 10:00:00.123")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.January, 1, 10, 0, 0, 123_000_000, time.UTC), out)

		_, err = validateOne(t, schema.DateTimeRule{Format: f}, "2024-01-01 10:00:00.12")
		requireReason(t, err, "invalid value for type 'datetime'")
	})

	t.Run("date only fails", func(t *testing.T) {
		_, err := validateOne(t, schema.DateTimeRule{}, "2024-03-01")
		requireReason(t, err, "invalid value for type 'datetime'")
	})

	t.Run("format with zone offset", func(t *testing.T) {
		out, err := validateOne(t, schema.DateTimeRule{Format: "YYYY-MM-DD[T]HH:mm:ssZ"}, "2024-03-01T10:00:00+02:00")
		require.NoError(t, err)

		ts, ok := out.(time.Time)
		require.True(t, ok)
		assert.True(t, ts.Equal(time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)))
	})
}
