// Package sampling produces random permutations of finite sequences by drawing
// without replacement.
//
// The returned sequences are lazy: nothing is copied until iteration starts,
// and each draw costs O(1). Every range over the result copies the source into
// a fresh pool owned by that iteration, so ranging twice yields two independent
// shuffles and the caller's data is never modified. Breaking out of the loop
// early is safe; the pool is simply dropped.
//
//	for card := range sampling.FromSlice(deck) {
//	    deal(card)
//	}
//
// The source is read in full at the start of each iteration, so it must be finite.
package sampling

import (
	"iter"
	"slices"

	"github.com/amp-labs/seqkit/assert"
)

// WithoutReplacement returns a sequence yielding every element of seq exactly
// once, in uniformly random order. A nil or empty seq yields nothing.
func WithoutReplacement[T any](seq iter.Seq[T], opts ...Option) iter.Seq[T] {
	o := buildOptions(opts)

	return func(yield func(T) bool) {
		if seq == nil {
			return
		}

		draw(slices.Collect(seq), o, yield)
	}
}

// FromSlice is WithoutReplacement over a slice. The slice is copied when
// iteration starts and is never reordered.
func FromSlice[T any](items []T, opts ...Option) iter.Seq[T] {
	o := buildOptions(opts)

	return func(yield func(T) bool) {
		draw(slices.Clone(items), o, yield)
	}
}

// Take returns the first k draws from seq: a uniform random subset of size
// min(k, len) in random order. Panics if k is negative.
func Take[T any](seq iter.Seq[T], k int, opts ...Option) []T {
	assert.NonNegative(k, "sampling: k")

	out := make([]T, 0, k)
	if k == 0 {
		return out
	}

	for item := range WithoutReplacement(seq, opts...) {
		out = append(out, item)

		if len(out) == k {
			break
		}
	}

	return out
}

// draw consumes pool, yielding one uniformly chosen element per step and
// removing it by swapping the last element into its slot.
func draw[T any](pool []T, o *options, yield func(T) bool) {
	var zero T

	size := len(pool)
	drawn := 0

	o.logger.Debug("sampling pool allocated", "size", size)

	defer func() {
		o.logger.Debug("sampling pool released", "size", size, "drawn", drawn)
	}()

	for len(pool) > 0 {
		last := len(pool) - 1
		i := index(o.source.Float64(), len(pool))

		picked := pool[i]
		pool[i] = pool[last]
		pool[last] = zero
		pool = pool[:last]
		drawn++

		if !yield(picked) {
			return
		}
	}
}

// index scales r in [0, 1) onto [0, n-1]. Flooring keeps every slot equally
// likely; the clamp absorbs sources that return exactly 1.
func index(r float64, n int) int {
	i := int(r * float64(n))

	switch {
	case i < 0:
		return 0
	case i >= n:
		return n - 1
	default:
		return i
	}
}
