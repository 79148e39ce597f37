package binder

import (
	"errors"
	"maps"
	"net/http"
	"strings"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// Source extracts an untyped dataset from a request. The schema is passed so
// that string based sources know which fields are lists or nested objects.
type Source func(r *http.Request, s schema.Schema) (map[string]any, error)

// Merge combines several sources into one. Sources are read in order and a
// key found by a later source replaces the same key from an earlier one.
//
// Example:
//
//	binder.Merge(binder.Query(), binder.Path(chi.URLParam))
func Merge(sources ...Source) Source {
	return func(r *http.Request, s schema.Schema) (map[string]any, error) {
		out := make(map[string]any)
		for _, src := range sources {
			if src == nil {
				continue
			}
			data, err := src(r, s)
			if err != nil {
				return nil, err
			}
			maps.Copy(out, data)
		}
		return out, nil
	}
}

// mediaType returns the media type of the request without parameters.
func mediaType(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// tooLarge reports whether err comes from an http.MaxBytesReader installed
// further up the chain.
func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
