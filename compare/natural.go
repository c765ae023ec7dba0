package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Natural compares strings in natural order, treating runs of digits
// numerically ("file2" sorts before "file10"). Distinct strings that natsort
// cannot tell apart, such as "a01" and "a1", fall back to byte order so the
// result stays antisymmetric.
func Natural(a, b string) Ordering {
	if a == b {
		return Equal
	}

	before := natsort.Compare(a, b)
	after := natsort.Compare(b, a)

	switch {
	case before && !after:
		return Less
	case after && !before:
		return Greater
	default:
		return Of(cmp.Compare(a, b))
	}
}
