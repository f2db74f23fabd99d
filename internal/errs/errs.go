// Package errs defines the application error types and constructors.
//
// Services and handlers return *HTTPError values so the HTTP layer can
// serialize a consistent envelope (code, message, status, field errors)
// without inspecting driver- or layer-specific error types.
package errs
