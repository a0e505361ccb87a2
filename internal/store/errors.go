package store

import "errors"

// ErrNotFound is returned when a record does not exist. Implementations
// translate their driver's not-found error into this one.
var ErrNotFound = errors.New("record not found")

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
