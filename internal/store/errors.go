package store

import (
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password; callers cannot tell which half of the pair was wrong.
var ErrInvalidCredentials = errors.New("store: invalid credentials")

// ValidationError reports a domain-constraint violation detected before any
// statement runs. Nothing has been written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: invalid %s: %s", e.Field, e.Reason)
}

// UniquenessError means an insert collided with an existing unique value
// (username or email). Detected from the engine's constraint error rather
// than a check-then-insert pre-read.
type UniquenessError struct {
	Column string
	Err    error
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("store: %s already taken", e.Column)
}

func (e *UniquenessError) Unwrap() error { return e.Err }

// StorageError wraps any other engine failure. It is propagated as-is and
// never retried here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// uniqueColumn extracts the violated column name from the engine's
// "UNIQUE constraint failed: table.column" message.
func uniqueColumn(err error) string {
	const marker = "UNIQUE constraint failed: "
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return "value"
	}
	rest := msg[i+len(marker):]
	if j := strings.IndexAny(rest, " ,("); j >= 0 {
		rest = rest[:j]
	}
	if j := strings.LastIndex(rest, "."); j >= 0 {
		rest = rest[j+1:]
	}
	return rest
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

// IsForeignKeyViolation reports whether err was caused by a foreign-key
// constraint, e.g. deleting a catalog exercise still referenced by logs.
func IsForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_TRIGGER:
		return true
	}
	return false
}
