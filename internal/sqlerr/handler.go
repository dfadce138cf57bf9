package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/etharaai/workforce-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// It accepts both the normalized *sqlerr.Error and raw (possibly wrapped)
// driver errors, so services can classify what repositories return without
// unwrapping themselves. Anything else maps to Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}

	return Other
}

// ConvertPgError converts a raw pgconn.PgError into our normalized Error,
// mapping SQLSTATE and severity into enums for easier switching.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates consistent application error codes from DB errors.
//
// Output format is <DOMAIN>_<ACTION>, e.g. employees + UniqueViolation =>
// EMPLOYEE_ALREADY_EXISTS. These codes are meant for machines (frontend
// logic), not humans.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "EMPLOYEES" -> "EMPLOYEE".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the end-user-facing message for a
// normalized database error. It uses table/column metadata to phrase the
// message around the entity involved.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced later if the violated column can be
		// inferred from the constraint name.
		return fmt.Sprintf("A%s %s with this identifier already exists", indefiniteArticleSuffix(entityName), entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// indefiniteArticleSuffix returns "n" when the entity name starts with a
// vowel, so messages read "An Employee" rather than "A Employee".
func indefiniteArticleSuffix(entity string) string {
	if entity == "" {
		return ""
	}
	switch entity[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "n"
	}
	return ""
}

// getEntityName infers an entity name from table/column metadata.
//
// Priority:
//  1. A column ending in "_id" names the referenced entity (best for FKs):
//     "employee_id" -> "Employee".
//  2. Otherwise the table name, crudely singularized.
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case identifiers into Title Case:
// "full_name" -> "Full Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueConstraintColumnRe matches the "<table>_<column>_(key|ukey)" naming
// convention Postgres uses for auto-named unique constraints.
var uniqueConstraintColumnRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey|pkey)$`)

// extractColumnForUniqueViolation infers the violated column from a unique
// constraint name.
//
// Supported conventions:
//
//  1. "unique_<table>_<column>", e.g. unique_attendance_employee_date
//  2. "<table>_<column>_key" / "_ukey" / "_pkey", e.g. employees_email_key
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueConstraintColumnRe.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application error.
//
// Mapping:
//   - *errs.HTTPError: returned unchanged (no double wrapping)
//   - unique violation: conflict (400) with an ALREADY_EXISTS code
//   - foreign key violation: not found (404) naming the referenced entity
//   - not-null / check violation: 422 with field-level detail
//   - connection failure and everything else: generic 500
//   - pgx.ErrNoRows / sql.ErrNoRows: not found (404)
//
// Intended to be called in repositories/services after a DB call fails, and
// as the fallback classification in the global HTTP error handler.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewNotFoundError(userMessage, true, &errorCode)

		case UniqueViolation:
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewConflictError(userMessage, errorCode)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewUnprocessableEntityError(userMessage, fieldErrors)

		case CheckViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is invalid",
				},
			}
			return errs.NewUnprocessableEntityError(userMessage, fieldErrors)

		default:
			// Connection failures and unclassified server errors must not
			// leak driver detail to clients.
			return errs.NewInternalServerError()
		}
	}

	// "No rows" from SELECTs maps to not found.
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
