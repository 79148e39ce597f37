package handler

import "errors"

// ErrPanic wraps a value recovered while extracting or validating request data.
var ErrPanic = errors.New("panic during request validation")
