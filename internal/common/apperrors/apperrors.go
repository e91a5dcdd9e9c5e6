// internal/common/apperrors/apperrors.go
// Failure taxonomy shared by the feed, blocks and matches modules.

package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no active session was presented with the call.
	ErrUnauthenticated = errors.New("unauthenticated: no active session")

	// ErrNotFound means the referenced match or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means the requested match transition is not legal
	// from the record's current status.
	ErrInvalidState = errors.New("invalid state transition")
)

// PersistenceError wraps a failed document-store call. The operation name is
// kept for logging; the caller decides on user-visible messaging.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err as a PersistenceError unless it is already part of
// the taxonomy (NotFound passes through untouched).
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
