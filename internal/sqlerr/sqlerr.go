// Package sqlerr normalizes database driver errors.
//
// It maps PostgreSQL SQLSTATEs into application categories: constraint
// violations become client-facing request errors, while missing-schema and
// duplicate-object conditions feed the degraded-read and idempotent-DDL
// recovery paths instead of surfacing to clients.
package sqlerr
