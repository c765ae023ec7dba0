package empty

import "reflect"

// T is an empty struct type that occupies zero bytes of memory.
// It's commonly used as a map value where only the presence of a key matters.
//
// Example:
//
//	seen := make(map[string]empty.T)
//	seen["key"] = empty.V
type T struct{}

// V is a pre-allocated instance of the empty struct T.
var V = T{}

// Sized is implemented by collections that know their own length.
type Sized interface {
	Len() int
}

// Slice returns an empty slice of the specified type T.
// The returned slice has zero length and zero capacity.
//
// This is useful when you need to return a non-nil empty slice
// instead of nil, which can be important for JSON serialization
// or API responses.
//
// Example:
//
//	names := empty.Slice[string]()  // []string{} not nil
func Slice[T any]() []T {
	return []T{}
}

// Map returns an empty initialized map with the specified key type K and value type V.
// The returned map is not nil and has zero length.
//
// Example:
//
//	userScores := empty.Map[string, int]()  // map[string]int{} not nil
//	userScores["alice"] = 100  // Safe to use immediately
func Map[K comparable, V any]() map[K]V {
	return make(map[K]V)
}

// Value returns the zero value of the specified type T.
//
// This is useful when you need to explicitly return or pass a zero value,
// particularly in generic code where you can't use a type-specific zero literal.
//
// Example:
//
//	var defaultInt int = empty.Value[int]()        // 0
//	var defaultStr string = empty.Value[string]()  // ""
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsNil returns true if the value is a literal nil or a typed nil
// (nil pointer, map, slice, chan, func or interface wrapped in an any).
func IsNil(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// IsNilOrEmpty returns true if val is nil (see IsNil) or has zero elements.
// Length is taken from a Sized implementation when present, otherwise from
// the built-in len for slices, maps, strings, arrays and channels. A pointer
// is followed to its target. Any other non-nil value is considered non-empty.
func IsNilOrEmpty(val any) bool {
	if IsNil(val) {
		return true
	}

	if sized, ok := val.(Sized); ok {
		return sized.Len() == 0
	}

	valOf := reflect.ValueOf(val)
	if valOf.Kind() == reflect.Pointer {
		return IsNilOrEmpty(valOf.Elem().Interface())
	}

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array, reflect.Chan:
		return valOf.Len() == 0
	}

	return false
}

// IsEmptySlice is the allocation-free form of IsNilOrEmpty for slices.
func IsEmptySlice[T any](items []T) bool {
	return len(items) == 0
}

// IsEmptyMap is the allocation-free form of IsNilOrEmpty for maps.
func IsEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}
