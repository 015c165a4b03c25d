package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. two gallery items with the same ID).
	ErrDuplicate = errors.New("entity already exists")

	// ErrCorruptData is returned when persisted data cannot be decoded.
	ErrCorruptData = errors.New("corrupt stored data")

	// ErrVerseNotFound indicates that the requested gallery item does not exist.
	ErrVerseNotFound = fmt.Errorf("%w: verse", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
