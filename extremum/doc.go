// Package extremum locates the element of a sequence whose projected value is
// smallest or largest under a caller-chosen tie-break policy.
//
// All functions make a single forward pass, call the projection exactly once
// per element, and report -1 (or optional.None) for an empty or nil sequence.
//
//	i := extremum.ArgMax(orders, func(o Order) float64 { return o.Total })
//	if i < 0 {
//	    return // no orders
//	}
//
// Min and Max keep the earliest of several tied elements. MinLast and MaxLast
// keep the latest one. Any other func(compare.Ordering) bool can be passed
// to Index as a policy.
package extremum
