package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies a storage failure surfaced by the persistence layer.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindForeignKey Kind = "foreign_key"
	KindEngine     Kind = "engine"
	KindMigration  Kind = "migration"
	KindIO         Kind = "io"
)

// Error tags a storage failure with the operation that produced it,
// e.g. "create_client" or "update_invoice".
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap classifies err and tags it with op. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: classify(err), Op: op, Err: err}
}

// NotFound reports a missing row after a post-write read-back.
func NotFound(op string) error {
	return &Error{Kind: KindNotFound, Op: op}
}

// IOErr tags a file-operation failure from backup/restore.
func IOErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// MigrationErr tags a fatal startup migration failure.
func MigrationErr(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindMigration, Op: "migrate", Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case IsDuplicateKeyErr(err):
		return KindConflict
	case IsForeignKeyErr(err):
		return KindForeignKey
	default:
		return KindEngine
	}
}

func is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsConflict(err error) bool   { return is(err, KindConflict) }
func IsForeignKey(err error) bool { return is(err, KindForeignKey) }

// IsDuplicateKeyErr reports whether err is a primary-key or unique-constraint
// violation from the engine.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite error codes 1555 and 2067
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyErr reports whether err is a foreign-key violation: a child row
// referencing an absent parent, or a restricted parent delete.
func IsForeignKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	// SQLite error code 787
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
