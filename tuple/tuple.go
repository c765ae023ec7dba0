// Package tuple provides the pair type seqkit uses for ordered key/value lists.
//
//nolint:ireturn
package tuple

// NewTuple2 builds a pair.
func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Unpack returns both elements, for use in multi-value assignments.
func (t Tuple2[A, B]) Unpack() (A, B) { //nolint:ireturn
	return t.first, t.second
}

// Swap returns a pair with the elements exchanged.
func (t Tuple2[A, B]) Swap() Tuple2[B, A] {
	return NewTuple2(t.second, t.first)
}
