// Package empty provides the null/empty predicates and zero-value constructors
// the query packages lean on.
//
// Example usage:
//
//	// Guard clauses
//	if empty.IsNilOrEmpty(records) {
//	    return -1
//	}
//
//	// Explicit zero values in generic code
//	var fill = empty.Value[T]()
//
//	// Non-nil empty results
//	out := empty.Slice[string]()
package empty
