package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Route records the matched route pattern under the key "route".
func Route(method, pattern string) slog.Attr {
	return slog.String("route", method+" "+pattern)
}

// Field records the name of the rejected field under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Path records the location of a nested field under the key "path".
// If path is empty, it returns an empty Attr.
func Path(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("path", path)
}

// Reason records a validation failure reason under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Status records the HTTP response status under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
