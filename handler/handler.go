package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/reqschema/pkg/binder"
	"github.com/dmitrymomot/reqschema/pkg/logger"
	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Option configures the Validate middleware.
type Option func(*config)

type config struct {
	source       binder.Source
	logger       *slog.Logger
	errorHandler ErrorHandler
	maxBodySize  int64
}

// WithSource sets the request data source. Defaults to binder.JSON().
func WithSource(src binder.Source) Option {
	return func(c *config) {
		if src != nil {
			c.source = src
		}
	}
}

// WithSources reads request data from several sources, later ones win.
//
// Example:
//
//	handler.WithSources(binder.Query(), binder.JSON(), binder.Path(chi.URLParam))
func WithSources(srcs ...binder.Source) Option {
	return WithSource(binder.Merge(srcs...))
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithMaxBodySize caps the request body with http.MaxBytesReader before the
// source reads it. Zero leaves the body untouched.
func WithMaxBodySize(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// Validate returns middleware that extracts request data, validates it
// against s and stores the result for the next handler (see Payload).
// Rejected requests never reach next.
//
// Validate panics if s is structurally invalid, see schema.Schema.Check.
//
// Example:
//
//	r := chi.NewRouter()
//	r.With(handler.Validate(createUser)).Post("/users", func(w http.ResponseWriter, r *http.Request) {
//		user := handler.Payload(r.Context())
//		email := user["email"].(string)
//		// ...
//	})
func Validate(s schema.Schema, opts ...Option) func(http.Handler) http.Handler {
	if err := s.Check(); err != nil {
		panic(fmt.Errorf("handler: %w", err))
	}

	cfg := &config{
		source: binder.JSON(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = NewErrorHandler(cfg.logger)
	}

	v := validator.New(s)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.maxBodySize > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, cfg.maxBodySize)
			}

			payload, err := extract(r, v, cfg.source)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			cfg.logger.DebugContext(r.Context(), "request validated",
				slog.Int("fields", len(payload)),
				logger.Component("validate"),
			)

			next.ServeHTTP(w, r.WithContext(WithPayload(r.Context(), payload)))
		})
	}
}

// extract runs the source and the validator. Panics are turned into errors
// so they end up as a 500 response instead of tearing down the connection.
func extract(r *http.Request, v *validator.Validator, src binder.Source) (payload map[string]any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			payload = nil
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	data, err := src(r, v.Schema())
	if err != nil {
		return nil, err
	}
	return v.Validate(data)
}
