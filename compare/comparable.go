// Package compare provides equality and three-way ordering primitives shared by
// the query packages (extremum, lookup).
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// EqualsFunc adapts a Comparable key type to the plain equality function
// shape expected by lookup.GetFunc.
//
// Example:
//
//	v, ok := lookup.GetFunc(src, key, compare.EqualsFunc[MyKey])
func EqualsFunc[T Comparable[T]](a, b T) bool {
	return a.Equals(b)
}

// Eq is the default equality for comparable types (the == operator).
func Eq[T comparable](a, b T) bool {
	return a == b
}
