package extremum

import "github.com/amp-labs/seqkit/compare"

// Policy decides whether a candidate replaces the running extremum, given the
// three-way comparison of the candidate's projected value against it.
// The first element is always accepted regardless of policy.
type Policy func(candidate compare.Ordering) bool

// Min accepts strictly smaller candidates, so ties keep the earliest element.
func Min(candidate compare.Ordering) bool {
	return candidate == compare.Less
}

// Max accepts strictly larger candidates, so ties keep the earliest element.
func Max(candidate compare.Ordering) bool {
	return candidate == compare.Greater
}

// MinLast accepts smaller or equal candidates, so ties keep the latest element.
func MinLast(candidate compare.Ordering) bool {
	return candidate != compare.Greater
}

// MaxLast accepts larger or equal candidates, so ties keep the latest element.
func MaxLast(candidate compare.Ordering) bool {
	return candidate != compare.Less
}
