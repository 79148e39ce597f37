package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Query creates a source that reads URL query parameters.
//
// Values are kept as strings; the validator converts them. Fields declared as
// lists collect every occurrence of the key (both "tags=a&tags=b" and
// "tags[]=a&tags[]=b" are understood). Nested objects use dotted keys,
// so "addr.city=Berlin" fills the "city" field of an "addr" object rule.
//
// Example:
//
//	r.With(handler.Validate(search, handler.WithSource(binder.Query()))).Get("/search", searchHandler)
func Query() Source {
	return func(r *http.Request, s schema.Schema) (map[string]any, error) {
		return fromValues(r.URL.Query(), s), nil
	}
}

// Form creates a source for application/x-www-form-urlencoded and
// multipart/form-data bodies. Only body values are read; combine it with
// Query via Merge when both are needed. Uploaded files are ignored.
// Values are shaped the same way as in Query.
func Form() Source {
	return func(r *http.Request, s schema.Schema) (map[string]any, error) {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return nil, fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		var values url.Values

		switch mt := mediaType(r); mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return nil, formError(err)
			}
			values = r.PostForm

		case "multipart/form-data":
			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed content type with boundary", ErrFailedToParseForm)
			}
			if params["boundary"] == "" {
				return nil, fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return nil, formError(err)
			}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		default:
			return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}

		return fromValues(values, s), nil
	}
}

func formError(err error) error {
	if tooLarge(err) {
		return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
}

// fromValues shapes flat string values after the schema. Keys the schema does
// not declare are dropped, the validator would ignore them anyway.
func fromValues(values url.Values, s schema.Schema) map[string]any {
	out := make(map[string]any)
	if len(values) == 0 {
		return out
	}

	for _, f := range s {
		if obj, ok := f.Rule.(schema.ObjectRule); ok && !obj.List {
			if nested := subValues(values, f.Name+"."); len(nested) > 0 {
				out[f.Name] = fromValues(nested, obj.Schema)
			}
			continue
		}

		if schema.IsList(f.Rule) {
			vals, ok := values[f.Name]
			if !ok {
				vals, ok = values[f.Name+"[]"]
			}
			if ok {
				list := make([]any, len(vals))
				for i, v := range vals {
					list[i] = v
				}
				out[f.Name] = list
			}
			continue
		}

		if vals, ok := values[f.Name]; ok && len(vals) > 0 {
			out[f.Name] = vals[0]
		}
	}

	return out
}

func subValues(values url.Values, prefix string) url.Values {
	var nested url.Values
	for k, v := range values {
		name, ok := strings.CutPrefix(k, prefix)
		if !ok || name == "" {
			continue
		}
		if nested == nil {
			nested = make(url.Values)
		}
		nested[name] = v
	}
	return nested
}
