// Package binder extracts untyped request data for schema validation.
//
// A Source reads one part of an HTTP request and returns a flat
// map[string]any dataset. The dataset is not validated here; it is handed to
// the validator package together with the schema that describes it.
//
// # Available Sources
//
//   - JSON(), JSONLimit(n): a JSON object request body, numbers kept as json.Number
//   - Query(): URL query parameters
//   - Form(): urlencoded and multipart form values
//   - Path(extractor): router path parameters, e.g. Path(chi.URLParam)
//   - Merge(sources...): several sources combined, later ones win
//
// String based sources (query, form, path) use the schema to decide the shape
// of each value: list fields collect every occurrence of a key and object
// fields are filled from dotted keys.
//
// # Basic Usage
//
//	src := binder.Merge(binder.Path(chi.URLParam), binder.JSON())
//	data, err := src(r, userSchema)
//	if err != nil {
//		// client error: bad content type, malformed body, body too large
//	}
//	payload, err := validator.Validate(userSchema, data)
//
// # Error Handling
//
// All errors wrap one of the package sentinel errors and can be checked
// with errors.Is:
//
//	if errors.Is(err, binder.ErrUnsupportedMediaType) {
//		// respond with 415 or 400
//	}
package binder
