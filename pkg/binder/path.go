package binder

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// Path creates a source for router path parameters using the provided extractor.
// The extractor is called once per top-level schema field; empty results are
// treated as absent.
//
// Example with chi router:
//
//	r := chi.NewRouter()
//	r.With(handler.Validate(s, handler.WithSource(binder.Merge(
//		binder.Path(chi.URLParam),
//		binder.JSON(),
//	)))).Put("/users/{id}", updateUser)
//
// Example with the standard library mux:
//
//	binder.Path(func(r *http.Request, name string) string { return r.PathValue(name) })
func Path(extractor func(r *http.Request, fieldName string) string) Source {
	return func(r *http.Request, s schema.Schema) (map[string]any, error) {
		if extractor == nil {
			return nil, fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		out := make(map[string]any)
		for _, name := range s.Names() {
			if v := extractor(r, name); v != "" {
				out[name] = v
			}
		}
		return out, nil
	}
}
