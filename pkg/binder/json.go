package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a source that decodes a JSON object body with the default size limit.
// Numbers are kept as json.Number so large integers are not rounded before validation.
//
// Example:
//
//	r.With(handler.Validate(createUser, handler.WithSource(binder.JSON()))).Post("/users", createUserHandler)
func JSON() Source {
	return JSONLimit(DefaultMaxJSONSize)
}

// JSONLimit is like JSON with a custom body size limit in bytes.
// A non-positive limit falls back to DefaultMaxJSONSize.
func JSONLimit(maxSize int64) Source {
	if maxSize <= 0 {
		maxSize = DefaultMaxJSONSize
	}

	return func(r *http.Request, _ schema.Schema) (map[string]any, error) {
		if err := r.Context().Err(); err != nil {
			return nil, err
		}

		if r.Header.Get("Content-Type") == "" {
			return nil, fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
		}
		if mt := mediaType(r); mt != "application/json" {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}
		if r.Body == nil {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		// Read one byte past the limit to detect oversized bodies
		body, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
		if err != nil {
			if tooLarge(err) {
				return nil, fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
			}
			return nil, fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > maxSize {
			return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.UseNumber()

		var data map[string]any
		if err := decoder.Decode(&data); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}
		if data == nil {
			return nil, fmt.Errorf("%w: expected a JSON object", ErrFailedToParseJSON)
		}

		// Ensure entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return data, nil
	}
}
