// Package gateway serves validated routes described by a YAML routes file.
//
// Every route declares a method, a chi path pattern, the request sources to
// read (path, query, body, form) and a schema. Requests that pass validation
// are answered with the coerced payload, which makes the gateway useful for
// trying schemas out and as a validating front for other services.
package gateway
