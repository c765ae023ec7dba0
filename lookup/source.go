package lookup

import (
	"iter"
	"maps"

	"github.com/amp-labs/seqkit/tuple"
)

// Source is any collection of key/value pairs that can be enumerated in order.
// Keys need not be unique.
type Source[K, V any] interface {
	All() iter.Seq2[K, V]
}

// Hashed is a Source that can look up a key directly, typically in O(1).
// Implementations must hold at most one entry per key.
type Hashed[K, V any] interface {
	Source[K, V]
	Lookup(key K) (V, bool)
}

// Authoritative is implemented by Hashed sources whose Lookup miss proves the
// key is absent under ==. Get skips the fallback scan for such sources.
type Authoritative interface {
	Authoritative() bool
}

// mapSource adapts a Go map. It is Hashed and Authoritative.
type mapSource[K comparable, V any] map[K]V

// FromMap wraps a Go map. Iteration order follows Go's map order (unspecified).
// A nil map behaves as a nil source.
func FromMap[K comparable, V any](m map[K]V) Source[K, V] {
	return mapSource[K, V](m)
}

func (m mapSource[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m)
}

func (m mapSource[K, V]) Lookup(key K) (V, bool) {
	v, ok := m[key]

	return v, ok
}

func (m mapSource[K, V]) Authoritative() bool {
	return true
}

func (m mapSource[K, V]) Len() int {
	return len(m)
}

// pairSource adapts an ordered pair list. It supports scanning only.
type pairSource[K, V any] []tuple.Tuple2[K, V]

// FromPairs wraps an ordered list of pairs. Duplicate keys are allowed;
// lookups return the earliest match.
func FromPairs[K, V any](pairs ...tuple.Tuple2[K, V]) Source[K, V] {
	return pairSource[K, V](pairs)
}

func (p pairSource[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, pair := range p {
			if !yield(pair.Unpack()) {
				return
			}
		}
	}
}

func (p pairSource[K, V]) Len() int {
	return len(p)
}

// seqSource adapts an arbitrary pair sequence. It supports scanning only.
type seqSource[K, V any] iter.Seq2[K, V]

// FromSeq2 wraps a pair sequence, for instance maps.All of an ordered map or
// a decoder's record stream. The sequence is ranged once per lookup.
// A nil sequence behaves as a nil source.
func FromSeq2[K, V any](seq iter.Seq2[K, V]) Source[K, V] {
	return seqSource[K, V](seq)
}

func (s seqSource[K, V]) All() iter.Seq2[K, V] {
	return iter.Seq2[K, V](s)
}

// indexSource is an ordered, de-duplicated snapshot with a hash index.
type indexSource[K comparable, V any] struct {
	order []tuple.Tuple2[K, V]
	byKey map[K]int
}

// Index materializes src into a Hashed, Authoritative snapshot so repeated
// lookups avoid rescanning. The first pair seen for a key wins, matching the
// scan semantics of Get. Sources that are already authoritative are returned
// unchanged; a nil src yields an empty index.
func Index[K comparable, V any](src Source[K, V]) Source[K, V] {
	if isAuthoritative(src) {
		return src
	}

	idx := &indexSource[K, V]{byKey: make(map[K]int)}

	if isNil(src) {
		return idx
	}

	for k, v := range src.All() {
		if _, seen := idx.byKey[k]; seen {
			continue
		}

		idx.byKey[k] = len(idx.order)
		idx.order = append(idx.order, tuple.NewTuple2(k, v))
	}

	return idx
}

func (s *indexSource[K, V]) All() iter.Seq2[K, V] {
	return pairSource[K, V](s.order).All()
}

func (s *indexSource[K, V]) Lookup(key K) (V, bool) {
	i, ok := s.byKey[key]
	if !ok {
		var zero V

		return zero, false
	}

	return s.order[i].Second(), true
}

func (s *indexSource[K, V]) Authoritative() bool {
	return true
}

func (s *indexSource[K, V]) Len() int {
	return len(s.order)
}

// ToPairs collects a source into an ordered pair list. A nil source yields nil.
func ToPairs[K, V any](src Source[K, V]) []tuple.Tuple2[K, V] {
	if isNil(src) {
		return nil
	}

	var out []tuple.Tuple2[K, V]

	for k, v := range src.All() {
		out = append(out, tuple.NewTuple2(k, v))
	}

	return out
}

func isAuthoritative(src any) bool {
	if isNil(src) {
		return false
	}

	a, ok := src.(Authoritative)

	return ok && a.Authoritative()
}
