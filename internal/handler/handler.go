// Package handler is the HTTP layer, the first entry point for business
// logic after the router.
//
// It parses and validates requests through the validation package, calls
// the appropriate service, and writes the response.
package handler
