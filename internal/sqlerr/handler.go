package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alexeyalexeyalex/FastApi/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConvertPgError converts a raw PostgreSQL error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       src.Severity,
		DatabaseCode:   src.Code,
		Message:        src.Message,
		TableName:      src.TableName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ConvertSQLiteError converts a raw SQLite error into an *Error.
// SQLite names neither the table nor the constraint of a failed foreign key.
func ConvertSQLiteError(src sqlite3.Error) *Error {
	return &Error{
		Code:         mapSQLiteCode(src.ExtendedCode),
		Severity:     "ERROR",
		DatabaseCode: fmt.Sprintf("%d", int(src.ExtendedCode)),
		Message:      src.Error(),
		driverErr:    src,
	}
}

// referencedEntity reads the target of a foreign key from constraint names
// of the form fk_<table>_<relation>, e.g. fk_orders_user => "user".
func referencedEntity(sqlErr *Error) string {
	prefix := "fk_" + sqlErr.TableName + "_"
	if sqlErr.TableName != "" && strings.HasPrefix(sqlErr.ConstraintName, prefix) {
		if entity := strings.TrimPrefix(sqlErr.ConstraintName, prefix); entity != "" {
			return entity
		}
	}
	return "record"
}

// humanizeText converts "first_name" into "First Name".
func humanizeText(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// toHTTPError maps a normalised database error onto the API error shape.
func toHTTPError(sqlErr *Error) error {
	if sqlErr.Code != ForeignKeyViolation {
		return errs.NewInternalServerError()
	}

	entity := referencedEntity(sqlErr)
	errorCode := fmt.Sprintf("%s_NOT_FOUND", strings.ToUpper(entity))
	message := fmt.Sprintf("The referenced %s does not exist", humanizeText(entity))

	return errs.NewBadRequestError(message, false, &errorCode, nil)
}

// HandleError converts a low-level database error into an application-level error.
//
//   - *errs.HTTPError is returned unchanged
//   - foreign key violations become 400s named after the referenced entity
//   - anything else becomes a generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return toHTTPError(sqlErr)
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return toHTTPError(ConvertPgError(pgerr))
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return toHTTPError(ConvertSQLiteError(liteErr))
	}

	return errs.NewInternalServerError()
}
