// Package service contains the business logic between the handler and
// repository layers. Handlers hand it validated input; it orchestrates
// repository calls, composes the public aggregate, and shapes what goes
// back out.
package service
