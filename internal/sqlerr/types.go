package sqlerr

import "github.com/jackc/pgx/v5/pgconn"

// Code is the application-level category of a database error.
type Code int

const (
	// Other covers errors that do not map to a known category.
	Other Code = iota

	// UniqueViolation: SQLSTATE 23505, a unique or primary key constraint failed.
	UniqueViolation

	// ForeignKeyViolation: SQLSTATE 23503, a referenced row does not exist
	// (or is still referenced on delete).
	ForeignKeyViolation

	// NotNullViolation: SQLSTATE 23502, a required column was null.
	NotNullViolation

	// CheckViolation: SQLSTATE 23514, a CHECK constraint failed.
	CheckViolation

	// ConnectionFailure: SQLSTATE class 08, the store is unreachable.
	ConnectionFailure
)

// Severity mirrors the severity field reported by the Postgres server.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
	SeverityWarning
)

// Error is a normalized database error. It keeps the original driver error
// for unwrapping while exposing the mapped category and constraint metadata
// used to build client-facing messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e.driverErr == nil {
		return nil
	}
	return e.driverErr
}

// MapCode maps a SQLSTATE string to a Code.
//
// Class 08 covers all connection exceptions (connection_failure,
// sqlclient_unable_to_establish_sqlconnection, etc.), so it is matched by
// prefix rather than by individual code.
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
	}
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps the server-reported severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	}
	return SeverityUnknown
}
