package gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/reqschema/handler"
	"github.com/dmitrymomot/reqschema/internal/server"
	"github.com/dmitrymomot/reqschema/pkg/logger"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Logger      *slog.Logger
	MaxBodySize int64
}

// NewRouter mounts every route behind the validation middleware. Each route
// answers 200 {"data": <validated payload>}. GET /healthz answers 204.
func NewRouter(routes []Route, cfg RouterConfig) (http.Handler, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(log))

	r.Get("/healthz", server.HealthHandler(log))

	for _, route := range routes {
		src, err := route.Source()
		if err != nil {
			return nil, err
		}

		validate := handler.Validate(route.Schema,
			handler.WithSource(src),
			handler.WithLogger(log.With(logger.Route(route.Method, route.Path))),
			handler.WithMaxBodySize(cfg.MaxBodySize),
		)
		r.With(validate).Method(route.Method, route.Path, echo(log))

		log.Debug("route mounted",
			logger.Route(route.Method, route.Path),
			slog.Any("sources", route.Sources),
			slog.Int("fields", len(route.Schema)),
		)
	}

	return r, nil
}

func echo(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := handler.DataResponse{Data: handler.Payload(r.Context())}
		if err := handler.JSON(w, http.StatusOK, resp); err != nil {
			log.ErrorContext(r.Context(), "failed to write response",
				logger.Error(err),
				logger.Component("gateway"),
			)
		}
	}
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("url_path", r.URL.Path),
				logger.Status(ww.Status()),
				logger.Duration(time.Since(start)),
				logger.Component("gateway"),
			)
		})
	}
}
