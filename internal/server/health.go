package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/reqschema/pkg/logger"
)

// HealthHandler answers liveness and readiness probes with 204 No Content.
// When checks are given they all run against the request context and the
// first failure turns the response into 503 Service Unavailable.
func HealthHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Error(err),
					logger.Component("health"),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
