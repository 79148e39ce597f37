// Package handler adapts schema validation to net/http.
//
// Validate builds a middleware from a schema.Schema. For every request it
// reads an untyped dataset through a binder.Source, validates it with the
// validator package and either stores the coerced result in the request
// context or rejects the request:
//
//   - validation failure: 400 {"code":400,"message":"'<field>': <reason>"}
//   - malformed request data (content type, JSON syntax, body size): 400 with the same envelope
//   - anything else, including panics and unusable rules: 500 with an empty body
//
// The mapping from error to status lives in ClassifyError and can be reused
// by custom error handlers installed with WithErrorHandler.
//
// # Usage
//
//	createUser := schema.MustNew(
//		schema.Field{Name: "id", Rule: schema.NumberRule{IntegerOnly: true}},
//		schema.Field{Name: "email", Rule: schema.StringRule{Match: schema.PatternEmail, Case: schema.CaseLower}},
//	)
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID)
//	r.With(handler.Validate(createUser,
//		handler.WithSources(binder.JSON(), binder.Path(chi.URLParam)),
//		handler.WithLogger(log),
//	)).Put("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//		payload := handler.Payload(r.Context())
//		_ = handler.JSON(w, http.StatusOK, handler.DataResponse{Data: payload})
//	})
package handler
