package dynarray

import (
	"errors"
	"strconv"
)

var (
	// ErrOutOfBounds is matched by every *IndexError.
	ErrOutOfBounds = errors.New("dynarray: index out of bounds")

	// ErrEmptyCollection is matched by every *EmptyError.
	ErrEmptyCollection = errors.New("dynarray: empty collection")
)

// IndexError is returned when an index (or range bound) falls outside the
// valid logical range of an Array.
type IndexError struct {
	// Op is the operation that rejected the index, e.g. "Get".
	Op string

	// Index is the offending index.
	Index int

	// Size is the array length at the time of the call.
	Size int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	// Example: dynarray: Get: index 7 out of bounds for size 3
	return "dynarray: " + e.Op + ": index " + strconv.Itoa(e.Index) +
		" out of bounds for size " + strconv.Itoa(e.Size)
}

// Is reports whether target is ErrOutOfBounds.
func (e *IndexError) Is(target error) bool { return target == ErrOutOfBounds }

// EmptyError is returned by operations that need at least one element.
type EmptyError struct{ Op string }

// Error implements the error interface.
func (e *EmptyError) Error() string {
	return "dynarray: " + e.Op + ": empty collection"
}

// Is reports whether target is ErrEmptyCollection.
func (e *EmptyError) Is(target error) bool { return target == ErrEmptyCollection }

func outOfBounds(op string, index, size int) error {
	return &IndexError{Op: op, Index: index, Size: size}
}

func empty(op string) error {
	return &EmptyError{Op: op}
}
