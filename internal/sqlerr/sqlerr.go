// Package sqlerr classifies database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them into
// application-level errors with user-friendly messages (e.g. turning a
// unique violation on employees.email into "An employee with this Email
// already exists"), so that raw driver text never reaches API clients.
package sqlerr
