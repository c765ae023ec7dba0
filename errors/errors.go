// Package errors holds the sentinel errors shared across seqkit and a small
// helper for accumulating several errors into one.
package errors

import "errors"

var (
	// ErrKeyNotFound reports that a lookup found no entry for the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrMalformedValue reports that a value was found but could not be
	// converted to the requested type.
	ErrMalformedValue = errors.New("malformed value")

	// ErrNegativeCount reports a negative element count, which is a programmer error.
	ErrNegativeCount = errors.New("negative count")

	// ErrWrongType reports a value whose dynamic type differs from the one requested.
	ErrWrongType = errors.New("wrong type")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
