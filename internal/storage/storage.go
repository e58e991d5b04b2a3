package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("storage: key not found")

// Storage is the durable key/value medium shared by the scroll store and the
// locale preference. Set replaces the whole value for a key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Error wraps a failed read or write. Callers treat it as non-fatal.
type Error struct {
	Op  string // "get" or "set"
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, key string, err error) error {
	return &Error{Op: op, Key: key, Err: err}
}
