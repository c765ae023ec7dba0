// Package window extracts fixed-size windows from sequences, truncating
// surplus elements and padding shortfalls with caller-supplied defaults.
//
// Padding rule: a missing slot i takes defaults[i] when i is within the
// defaults list, otherwise the last default, otherwise the zero value of T.
//
//	window.FixedSlice([]int{1, 2, 3}, 5, 9) // [1 2 3 9 9]
//	window.FixedSlice([]int{1, 2, 3}, 2)    // [1 2]
//
// A negative count is a programmer error and panics with an error wrapping
// errors.ErrNegativeCount.
package window

import (
	"iter"
	"slices"

	"github.com/amp-labs/seqkit/assert"
	"github.com/amp-labs/seqkit/empty"
)

// Fixed returns exactly n elements: the first n produced by seq, padded when
// seq runs short. Iteration stops after the nth element, so seq may be infinite.
// A nil seq is treated as empty.
func Fixed[T any](seq iter.Seq[T], n int, defaults ...T) []T {
	assert.NonNegative(n, "window: count")

	out := make([]T, n)
	if n == 0 {
		return out
	}

	copied := 0

	if seq != nil {
		for item := range seq {
			out[copied] = item
			copied++

			if copied == n {
				return out
			}
		}
	}

	pad(out, copied, defaults)

	return out
}

// FixedSlice is Fixed over a slice. The result never aliases items.
func FixedSlice[T any](items []T, n int, defaults ...T) []T {
	assert.NonNegative(n, "window: count")

	out := make([]T, n)
	copied := copy(out, items)

	pad(out, copied, defaults)

	return out
}

// AtLeast returns every element of seq, padded up to n when seq is shorter.
//
// The count is measured with a full pass before the copying pass, so seq is
// iterated twice. It must be finite and re-iterable, and it must yield the same
// elements both times. Prefer AtLeastSlice when the input is already a slice.
func AtLeast[T any](seq iter.Seq[T], n int, defaults ...T) []T {
	assert.NonNegative(n, "window: count")

	return Fixed(seq, max(n, count(seq)), defaults...)
}

// AtLeastSlice is AtLeast over a slice; the length is known, so it makes one pass.
func AtLeastSlice[T any](items []T, n int, defaults ...T) []T {
	assert.NonNegative(n, "window: count")

	return FixedSlice(items, max(n, len(items)), defaults...)
}

// Padding returns the slot-filling rule used by Fixed: for slot i it yields
// defaults[i] when present, the last default past the end of the list, or
// the zero value of T when defaults is empty. The defaults are copied.
func Padding[T any](defaults ...T) func(i int) T {
	defaults = slices.Clone(defaults)

	return func(i int) T {
		return fill(defaults, i)
	}
}

func pad[T any](out []T, from int, defaults []T) {
	if empty.IsEmptySlice(defaults) {
		// make already zeroed the tail.
		return
	}

	for i := from; i < len(out); i++ {
		out[i] = fill(defaults, i)
	}
}

func fill[T any](defaults []T, i int) T {
	switch {
	case empty.IsEmptySlice(defaults):
		return empty.Value[T]()
	case i < len(defaults):
		return defaults[i]
	default:
		return defaults[len(defaults)-1]
	}
}

func count[T any](seq iter.Seq[T]) int {
	if seq == nil {
		return 0
	}

	n := 0

	for range seq {
		n++
	}

	return n
}
