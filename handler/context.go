package handler

import "context"

type payloadKey struct{}

// WithPayload stores a validated payload in ctx.
func WithPayload(ctx context.Context, payload map[string]any) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// PayloadOK returns the payload stored by Validate and whether one was found.
func PayloadOK(ctx context.Context) (map[string]any, bool) {
	if ctx == nil {
		return nil, false
	}
	payload, ok := ctx.Value(payloadKey{}).(map[string]any)
	return payload, ok
}

// Payload returns the payload stored by Validate, or nil when the request
// did not pass through the middleware.
func Payload(ctx context.Context) map[string]any {
	payload, _ := PayloadOK(ctx)
	return payload
}
