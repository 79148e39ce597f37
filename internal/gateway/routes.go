package gateway

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reqschema/pkg/binder"
	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// Source names accepted in a route's sources list.
const (
	SourcePath  = "path"
	SourceQuery = "query"
	SourceBody  = "body"
	SourceForm  = "form"
)

// Route is one validated endpoint.
type Route struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
	// Sources lists where request data is read from. Later sources override
	// earlier ones for the same key. Defaults to [query] for GET, HEAD and
	// DELETE and to [body] otherwise.
	Sources []string      `yaml:"sources"`
	Schema  schema.Schema `yaml:"schema"`
}

var methods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

type routesFile struct {
	Routes []Route `yaml:"routes"`
}

// LoadRoutes reads and parses a routes file.
func LoadRoutes(path string) ([]Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidRoutes, err)
	}
	return ParseRoutes(data)
}

// ParseRoutes decodes a routes document:
//
//	routes:
//	  - method: POST
//	    path: /users/{id}
//	    sources: [path, body]
//	    schema:
//	      id: {type: number, allowFloat: false}
//	      email: {type: string, match: email}
func ParseRoutes(data []byte) ([]Route, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc routesFile
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidRoutes, err)
	}

	seen := make(map[string]struct{}, len(doc.Routes))
	for i := range doc.Routes {
		r := &doc.Routes[i]
		r.Method = strings.ToUpper(strings.TrimSpace(r.Method))

		if r.Method == "" || r.Path == "" {
			return nil, fmt.Errorf("%w: route %d: method and path are required", ErrInvalidRoutes, i)
		}
		if !slices.Contains(methods, r.Method) {
			return nil, fmt.Errorf("%w: route %s %s: unsupported method", ErrInvalidRoutes, r.Method, r.Path)
		}
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("%w: route %s %s: path must start with '/'", ErrInvalidRoutes, r.Method, r.Path)
		}

		key := r.Method + " " + r.Path
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: duplicate route %s", ErrInvalidRoutes, key)
		}
		seen[key] = struct{}{}

		if len(r.Sources) == 0 {
			r.Sources = defaultSources(r.Method)
		}
		if _, err := r.Source(); err != nil {
			return nil, fmt.Errorf("%w: route %s: %w", ErrInvalidRoutes, key, err)
		}
	}

	return doc.Routes, nil
}

// Source builds the binder for the route's sources.
func (r Route) Source() (binder.Source, error) {
	names := r.Sources
	if len(names) == 0 {
		names = defaultSources(r.Method)
	}

	srcs := make([]binder.Source, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(name) {
		case SourcePath:
			srcs = append(srcs, binder.Path(chi.URLParam))
		case SourceQuery:
			srcs = append(srcs, binder.Query())
		case SourceBody, "json":
			srcs = append(srcs, binder.JSON())
		case SourceForm:
			srcs = append(srcs, binder.Form())
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
	}

	if len(srcs) == 1 {
		return srcs[0], nil
	}
	return binder.Merge(srcs...), nil
}

func defaultSources(method string) []string {
	if slices.Contains([]string{http.MethodGet, http.MethodHead, http.MethodDelete}, method) {
		return []string{SourceQuery}
	}
	return []string{SourceBody}
}
