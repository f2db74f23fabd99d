// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules declared in struct tags
// (required fields, numeric minimums, enumerations) and converts failures
// into field-level errors the client can act on.
package validation
