package errs

import "strings"

// FieldError is a field-level validation error.
type FieldError struct {
	// Field is the payload key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable message for that field.
	Error string `json:"error"`
}

// HTTPError is the error envelope serialized to API clients.
//
// Code is a machine-readable identifier (e.g. "NOT_FOUND",
// "ARTICLE_ALREADY_EXISTS"), Message is the human-readable text, Status is
// the HTTP status code. Override marks messages safe to show verbatim in a
// client UI.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors, when applicable.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error satisfies the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, so errors.Is can detect an already-converted
// error regardless of its code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
// Used to derive stable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
