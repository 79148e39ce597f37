package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body sent for rejected requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DataResponse wraps a successful result.
type DataResponse struct {
	Data any `json:"data"`
}

// JSON writes v as a JSON document with the given status.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
