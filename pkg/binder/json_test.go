package binder_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/binder"
	"github.com/dmitrymomot/reqschema/pkg/schema"
)

func jsonRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid object", func(t *testing.T) {
		t.Parallel()
		data, err := binder.JSON()(jsonRequest(`{"name":"John","age":30,"tags":["a"]}`, "application/json"), nil)
		require.NoError(t, err)
		assert.Equal(t, "John", data["name"])
		assert.Equal(t, json.Number("30"), data["age"])
		assert.Equal(t, []any{"a"}, data["tags"])
	})

	t.Run("large integers are not rounded", func(t *testing.T) {
		t.Parallel()
		data, err := binder.JSON()(jsonRequest(`{"id":9007199254740993}`, "application/json"), nil)
		require.NoError(t, err)
		assert.Equal(t, json.Number("9007199254740993"), data["id"])
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()
		data, err := binder.JSON()(jsonRequest(`{"name":"Jane"}`, "Application/JSON; charset=utf-8"), nil)
		require.NoError(t, err)
		assert.Equal(t, "Jane", data["name"])
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		_, err := binder.JSON()(jsonRequest(`{"name":"Test"}`, ""), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, binder.ErrMissingContentType))
		assert.Contains(t, err.Error(), "expected application/json")
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		_, err := binder.JSON()(jsonRequest(`{"name":"Test"}`, "text/plain"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, binder.ErrUnsupportedMediaType))
	})

	t.Run("malformed and non object bodies", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{``, `{"name":`, `[1,2]`, `"text"`, `null`, `{"a":1}{"b":2}`, `{"a":1} x`} {
			_, err := binder.JSON()(jsonRequest(body, "application/json"), nil)
			require.Error(t, err, body)
			assert.True(t, errors.Is(err, binder.ErrFailedToParseJSON), body)
		}
	})

	t.Run("trailing whitespace is allowed", func(t *testing.T) {
		t.Parallel()
		_, err := binder.JSON()(jsonRequest("{\"a\":1}\n  ", "application/json"), nil)
		require.NoError(t, err)
	})

	t.Run("body over limit", func(t *testing.T) {
		t.Parallel()
		body := `{"name":"` + strings.Repeat("x", 64) + `"}`
		_, err := binder.JSONLimit(32)(jsonRequest(body, "application/json"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, binder.ErrBodyTooLarge))

		_, err = binder.JSONLimit(int64(len(body)))(jsonRequest(body, "application/json"), nil)
		require.NoError(t, err)
	})

	t.Run("body limited by MaxBytesReader", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(`{"name":"`+strings.Repeat("x", 64)+`"}`, "application/json")
		req.Body = http.MaxBytesReader(httptest.NewRecorder(), req.Body, 16)
		_, err := binder.JSON()(req, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, binder.ErrBodyTooLarge))
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(`{"a":1}`, "application/json")
		ctx, cancel := context.WithCancel(req.Context())
		cancel()
		_, err := binder.JSON()(req.WithContext(ctx), schema.Schema{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, errors.Is(err, binder.ErrFailedToParseJSON))
	})
}
