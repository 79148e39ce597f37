package gateway

import "errors"

var (
	// ErrInvalidRoutes is returned when the routes file cannot be used
	ErrInvalidRoutes = errors.New("invalid routes file")
	// ErrUnknownSource is returned for a route source name the gateway does not know
	ErrUnknownSource = errors.New("unknown request source")
)
