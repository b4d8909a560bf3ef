// Package apperrors defines the closed set of error kinds the store layer
// surfaces and the single place where low-level database faults are
// classified into them. Code above the repositories switches on Kind and
// never inspects raw driver errors.
package apperrors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the outward classification of a failed operation.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
)

// Error is the tagged error returned by every store operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, may be nil
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports that the named entity does not exist.
func NotFound(model string) *Error {
	return &Error{Kind: KindNotFound, Message: model + " not found"}
}

// Conflict reports a uniqueness or referential-integrity violation.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unauthorized reports a failed credential or token check.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Internal wraps an unexpected fault.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// Postgres error codes surfaced by constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
)

// FromDB classifies a database error into the closed taxonomy. model names
// the entity the operation was about and is used in the outward message.
// GORM's translated sentinel errors are checked first; pg error codes and
// SQLite constraint text cover drivers that do not translate.
func FromDB(err error, model string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(model)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict(model + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: KindConflict, Message: "record is being used by other data", Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Conflict(model + " already exists")
		case pgForeignKeyViolation:
			return &Error{Kind: KindConflict, Message: "record is being used by other data", Err: err}
		case pgNotNullViolation:
			return &Error{Kind: KindConflict, Message: "required field cannot be empty", Err: err}
		}
	}

	// SQLite (used by the test suite) reports constraints in the error text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return Conflict(model + " already exists")
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &Error{Kind: KindConflict, Message: "record is being used by other data", Err: err}
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return &Error{Kind: KindConflict, Message: "required field cannot be empty", Err: err}
	}

	return Internal(err)
}

// KindOf extracts the Kind from any error; unclassified errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// StatusCode maps an error to the HTTP status the routing layer should use.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the outward message for an error. Internal faults get a
// generic message so driver details never leak to clients.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "internal error"
}
