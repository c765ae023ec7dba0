package extremum

import (
	"cmp"
	"iter"
	"slices"

	"github.com/amp-labs/seqkit/assert"
	"github.com/amp-labs/seqkit/compare"
	"github.com/amp-labs/seqkit/optional"
)

// Index returns the zero-based position of the element whose projected value
// wins under policy, or -1 if seq is nil or yields nothing.
//
// The first element seeds the running extremum. Each later element replaces
// it only if policy(comparator(projected, current)) is true. project is called
// once per element. seq is consumed to the end, so it must be finite.
func Index[T, V any](seq iter.Seq[T], project func(T) V, comparator compare.Comparator[V], policy Policy) int {
	assert.NotNil(project, "extremum: project must not be nil")
	assert.NotNil(comparator, "extremum: comparator must not be nil")
	assert.NotNil(policy, "extremum: policy must not be nil")

	_, index := locate(seq, project, comparator, policy)

	return index
}

// IndexFunc is Index with the identity projection.
func IndexFunc[T any](seq iter.Seq[T], comparator compare.Comparator[T], policy Policy) int {
	return Index(seq, identity[T], comparator, policy)
}

// IndexMin returns the index of the first element with the smallest projected value.
func IndexMin[T any, V cmp.Ordered](seq iter.Seq[T], project func(T) V) int {
	return Index(seq, project, compare.Ordered[V], Min)
}

// IndexMax returns the index of the first element with the largest projected value.
func IndexMax[T any, V cmp.Ordered](seq iter.Seq[T], project func(T) V) int {
	return Index(seq, project, compare.Ordered[V], Max)
}

// IndexMinNatural returns the index of the first element whose projected string
// is smallest in natural order ("v2" before "v10").
func IndexMinNatural[T any](seq iter.Seq[T], project func(T) string) int {
	return Index(seq, project, compare.Natural, Min)
}

// IndexMaxNatural returns the index of the first element whose projected string
// is largest in natural order.
func IndexMaxNatural[T any](seq iter.Seq[T], project func(T) string) int {
	return Index(seq, project, compare.Natural, Max)
}

// ArgMin is IndexMin over a slice.
func ArgMin[T any, V cmp.Ordered](items []T, project func(T) V) int {
	return IndexMin(slices.Values(items), project)
}

// ArgMax is IndexMax over a slice.
func ArgMax[T any, V cmp.Ordered](items []T, project func(T) V) int {
	return IndexMax(slices.Values(items), project)
}

// MinBy returns the first element with the smallest projected value, or None
// for an empty sequence.
func MinBy[T any, V cmp.Ordered](seq iter.Seq[T], project func(T) V) optional.Value[T] {
	return By(seq, project, compare.Ordered[V], Min)
}

// MaxBy returns the first element with the largest projected value, or None
// for an empty sequence.
func MaxBy[T any, V cmp.Ordered](seq iter.Seq[T], project func(T) V) optional.Value[T] {
	return By(seq, project, compare.Ordered[V], Max)
}

// By is the element-returning form of Index.
func By[T, V any](seq iter.Seq[T], project func(T) V, comparator compare.Comparator[V], policy Policy) optional.Value[T] {
	assert.NotNil(project, "extremum: project must not be nil")
	assert.NotNil(comparator, "extremum: comparator must not be nil")
	assert.NotNil(policy, "extremum: policy must not be nil")

	best, index := locate(seq, project, comparator, policy)

	return optional.Of(best, index >= 0)
}

func locate[T, V any](seq iter.Seq[T], project func(T) V, comparator compare.Comparator[V], policy Policy) (T, int) {
	var (
		best    T
		current V
	)

	if seq == nil {
		return best, -1
	}

	index := -1
	position := 0

	for item := range seq {
		projected := project(item)

		if index < 0 || policy(comparator(projected, current)) {
			best = item
			current = projected
			index = position
		}

		position++
	}

	return best, index
}

func identity[T any](v T) T {
	return v
}
