package compare

import "cmp"

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	// Less means the left operand sorts before the right one.
	Less Ordering = -1
	// Equal means neither operand sorts before the other.
	Equal Ordering = 0
	// Greater means the left operand sorts after the right one.
	Greater Ordering = 1
)

// String returns "less", "equal" or "greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// Of normalizes any int-valued comparison result (negative, zero, positive)
// into an Ordering. Handy when wrapping strings.Compare, bytes.Compare and friends.
func Of(result int) Ordering {
	switch {
	case result < 0:
		return Less
	case result > 0:
		return Greater
	default:
		return Equal
	}
}

// Comparator performs a three-way comparison of a against b.
// Implementations must be total and consistent: Compare(a, b) == Less
// if and only if Compare(b, a) == Greater.
type Comparator[V any] func(a, b V) Ordering

// Ordered compares values of any cmp.Ordered type. NaN sorts before
// every other float, matching cmp.Compare.
func Ordered[V cmp.Ordered](a, b V) Ordering {
	return Of(cmp.Compare(a, b))
}

// Reverse flips the direction of a comparator.
func Reverse[V any](c Comparator[V]) Comparator[V] {
	return func(a, b V) Ordering {
		return c(b, a)
	}
}

// By lifts a comparator on V to a comparator on T through a projection.
// The projection runs once per operand per call, so prefer projecting
// up front when comparing in a loop.
func By[T, V any](project func(T) V, c Comparator[V]) Comparator[T] {
	return func(a, b T) Ordering {
		return c(project(a), project(b))
	}
}
