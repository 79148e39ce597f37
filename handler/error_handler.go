package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/reqschema/pkg/binder"
	"github.com/dmitrymomot/reqschema/pkg/logger"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// ErrorHandler responds to a request whose data could not be extracted or validated.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	// Message is empty for server errors, their details are never sent to the client.
	Message  string
	LogLevel slog.Level
}

// clientErrors are binder failures caused by the request itself.
var clientErrors = []error{
	binder.ErrUnsupportedMediaType,
	binder.ErrMissingContentType,
	binder.ErrFailedToParseJSON,
	binder.ErrFailedToParseForm,
	binder.ErrBodyTooLarge,
}

// ClassifyError maps an error from Validate to a response status.
//
//   - *validator.ValidationError: 400 with "'<field>': <reason>"
//   - malformed request data (see package binder): 400 with the binder message
//   - anything else: 500
func ClassifyError(err error) ErrorInfo {
	if verr := validator.ExtractValidationError(err); verr != nil {
		return ErrorInfo{StatusCode: http.StatusBadRequest, Message: verr.Error(), LogLevel: slog.LevelWarn}
	}

	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return ErrorInfo{StatusCode: http.StatusBadRequest, Message: err.Error(), LogLevel: slog.LevelWarn}
		}
	}

	return ErrorInfo{StatusCode: http.StatusInternalServerError, LogLevel: slog.LevelError}
}

// NewErrorHandler creates the default error handler. Client errors get a JSON
// body {"code":400,"message":"..."}; server errors get the bare status code.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		info := ClassifyError(err)
		logError(log, r, err, info)

		if info.StatusCode >= http.StatusInternalServerError {
			w.WriteHeader(info.StatusCode)
			return
		}

		if renderErr := JSON(w, info.StatusCode, ErrorResponse{Code: info.StatusCode, Message: info.Message}); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Error(renderErr),
				logger.Component("validate"),
			)
		}
	}
}

// logError records the rejection. The request id is added by the logger's
// context extractors, see logger.RequestIDExtractor.
func logError(log *slog.Logger, r *http.Request, err error, info ErrorInfo) {
	attrs := []slog.Attr{
		logger.Status(info.StatusCode),
		slog.String("method", r.Method),
		slog.String("url_path", r.URL.Path),
		logger.Component("validate"),
	}

	if verr := validator.ExtractValidationError(err); verr != nil {
		attrs = append(attrs,
			logger.Field(verr.Field),
			logger.Path(verr.Path),
			logger.Reason(verr.Reason),
		)
	} else {
		attrs = append(attrs, logger.Error(err))
	}

	log.LogAttrs(r.Context(), info.LogLevel, "request rejected", attrs...)
}
