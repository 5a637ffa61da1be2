package sqlerr

import (
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Code is a driver-independent classification of a database error.
type Code string

const (
	Other               Code = "other"
	ForeignKeyViolation Code = "foreign_key_violation"
)

// Error is a normalised database error.
type Error struct {
	Code           Code
	Severity       string
	DatabaseCode   string
	Message        string
	TableName      string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a PostgreSQL SQLSTATE to a Code.
func MapCode(sqlstate string) Code {
	if sqlstate == "23503" {
		return ForeignKeyViolation
	}
	return Other
}

// mapSQLiteCode maps a SQLite extended result code to a Code.
func mapSQLiteCode(code sqlite3.ErrNoExtended) Code {
	if code == sqlite3.ErrConstraintForeignKey {
		return ForeignKeyViolation
	}
	return Other
}
