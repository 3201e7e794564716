package db

import "errors"

// ErrKeyNotFound is returned by Get when the key is absent or expired.
var ErrKeyNotFound = errors.New("db: key not found")

// ErrConflict is wrapped in an Error when Update keeps losing to concurrent
// writers after MaxUpdateAttempts tries.
var ErrConflict = errors.New("db: too many concurrent updates")

// Store operations, as reported in Error.Op.
const (
	OpDial = "DIAL"
	OpOpen = "OPEN"
	OpPing = "PING"
	OpGet  = "GET"
	OpSet  = "SET"
	OpDel  = "DEL"
	OpCAS  = "CAS"
)

// Error is a driver failure tagged with the store operation that hit it.
// A missing key is never an Error; callers test for ErrKeyNotFound instead.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "db " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// IsTransient reports whether err came from the driver rather than from a
// missing key, i.e. whether a retry could succeed.
func IsTransient(err error) bool {
	var dbErr *Error
	return errors.As(err, &dbErr)
}
