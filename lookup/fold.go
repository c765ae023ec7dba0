package lookup

import (
	"iter"

	"github.com/amp-labs/seqkit/tuple"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldedSource indexes string keys by their case-folded, NFC-normalized form
// while remembering the original spelling of each key.
type foldedSource[V any] struct {
	order []tuple.Tuple2[string, V] // original keys, first spelling wins
	byKey map[string]int            // folded key -> position in order
}

// Folded builds a case-insensitive, normalization-insensitive index over
// string-keyed pairs: "Content-Type", "content-type" and "CONTENT-TYPE" all
// resolve to the same entry, as do precomposed and decomposed accents.
// When several keys fold together, the first one seen wins. The result is
// Hashed and Authoritative. A nil src yields an empty index.
//
// Example:
//
//	headers := lookup.Folded(lookup.FromMap(map[string]string{"Content-Type": "application/json"}))
//	v, ok := lookup.Get(headers, "content-type") // "application/json", true
func Folded[V any](src Source[string, V]) Source[string, V] {
	out := &foldedSource[V]{byKey: make(map[string]int)}

	if isNil(src) {
		return out
	}

	for k, v := range src.All() {
		folded := FoldKey(k)

		if _, seen := out.byKey[folded]; seen {
			continue
		}

		out.byKey[folded] = len(out.order)
		out.order = append(out.order, tuple.NewTuple2(k, v))
	}

	return out
}

// FoldKey returns the canonical form Folded matches keys by: Unicode NFC
// normalization followed by full case folding.
func FoldKey(key string) string {
	return cases.Fold().String(norm.NFC.String(key))
}

// FoldedEqual reports whether two keys match under FoldKey. It can be passed
// to GetFunc to scan any string-keyed source case-insensitively.
func FoldedEqual(a, b string) bool {
	return a == b || FoldKey(a) == FoldKey(b)
}

// All yields the pairs in first-seen order with their original key spelling.
func (f *foldedSource[V]) All() iter.Seq2[string, V] {
	return pairSource[string, V](f.order).All()
}

func (f *foldedSource[V]) Lookup(key string) (V, bool) {
	i, ok := f.byKey[FoldKey(key)]
	if !ok {
		var zero V

		return zero, false
	}

	return f.order[i].Second(), true
}

func (f *foldedSource[V]) Authoritative() bool {
	return true
}

func (f *foldedSource[V]) Len() int {
	return len(f.order)
}

// OriginalKey returns the stored spelling of the first key that folds to the
// same form as key. Folded sources answer from their index; any other source
// is scanned.
func OriginalKey[V any](src Source[string, V], key string) (string, bool) {
	if isNil(src) {
		return "", false
	}

	if folded, ok := src.(*foldedSource[V]); ok {
		i, found := folded.byKey[FoldKey(key)]
		if !found {
			return "", false
		}

		return folded.order[i].First(), true
	}

	for k := range src.All() {
		if FoldedEqual(k, key) {
			return k, true
		}
	}

	return "", false
}
