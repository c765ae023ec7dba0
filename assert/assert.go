// Package assert provides type assertion utilities and fail-fast checks for
// programmer errors such as negative counts or missing callbacks.
package assert

import (
	"fmt"

	"github.com/amp-labs/seqkit/empty"
	"github.com/amp-labs/seqkit/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// NotNil asserts that value is neither nil nor a typed nil (nil func, map,
// pointer, slice, chan or interface). Arguments follow the rules of True.
func NotNil(value any, args ...any) {
	True(!empty.IsNil(value), args...)
}

// NonNegative panics with an error wrapping errors.ErrNegativeCount when n < 0.
// The name identifies the offending argument in the panic message.
func NonNegative(n int, name string) {
	if n < 0 {
		panic(fmt.Errorf("%w: %s must be >= 0, got %d", errors.ErrNegativeCount, name, n))
	}
}
