package sqlerr

// Code classifies a database error into the categories the application
// reacts to. Everything unrecognized maps to Other.
type Code int

const (
	Other Code = iota

	// Constraint violations, surfaced to clients as request errors.
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation

	// Missing-schema conditions: a statement referenced a table or column
	// that has not been migrated yet. Recovered locally as degraded reads.
	UndefinedTable
	UndefinedColumn

	// Duplicate-object conditions: a DDL statement lost a race with another
	// process that already created the object. Recovered locally as no-ops.
	DuplicateTable
	DuplicateColumn
)

// Severity mirrors the severity field reported by PostgreSQL.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
	SeverityOther
)

// Error is the normalized form of a database driver error. It keeps the
// original SQLSTATE and object names so callers can build messages without
// re-parsing driver strings.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode converts a PostgreSQL SQLSTATE into a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	case "42P07":
		return DuplicateTable
	case "42701":
		return DuplicateColumn
	default:
		return Other
	}
}

// MapSeverity converts the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityOther
	}
}
