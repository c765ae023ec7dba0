package lookup

import (
	"context"
	"log/slog"

	"github.com/amp-labs/seqkit/assert"
	"github.com/amp-labs/seqkit/compare"
	"github.com/amp-labs/seqkit/empty"
	"github.com/amp-labs/seqkit/optional"
)

// Get returns the value stored under key and whether it was found.
//
// A nil source (including a typed nil such as a nil map) reports not found,
// as does a source whose Len() is zero, without iterating it. Hashed sources are asked first; authoritative ones (Go maps, Index, Folded)
// settle the answer there. Everything else is scanned in order and the first
// pair whose key == key wins. On a miss the zero value of V is returned.
func Get[K comparable, V any](src Source[K, V], key K, opts ...Option) (V, bool) {
	return get(src, key, compare.Eq[K], true, buildOptions(opts))
}

// GetFunc is Get with a caller-supplied key equality for the scan. The fast
// path still uses the source's own Lookup, and a fast-path miss always falls
// through to the scan, since eq may match keys the source's hashing does not.
func GetFunc[K, V any](src Source[K, V], key K, eq func(a, b K) bool, opts ...Option) (V, bool) {
	assert.NotNil(eq, "lookup: equality must not be nil")

	return get(src, key, eq, false, buildOptions(opts))
}

// Find is Get returning an optional.Value.
func Find[K comparable, V any](src Source[K, V], key K, opts ...Option) optional.Value[V] {
	return optional.Of(Get(src, key, opts...))
}

// Contains reports whether key is present.
func Contains[K comparable, V any](src Source[K, V], key K, opts ...Option) bool {
	_, ok := Get(src, key, opts...)

	return ok
}

// GetOrElse returns the value stored under key, or defaultValue when it is missing.
func GetOrElse[K comparable, V any](src Source[K, V], key K, defaultValue V, opts ...Option) V {
	if v, ok := Get(src, key, opts...); ok {
		return v
	}

	return defaultValue
}

// GetAs looks up key and asserts the value has type T, which is how typed
// fields are read out of heterogeneous records such as map[string]any.
// A missing key or a value of another type reports not found.
//
// Example:
//
//	record := lookup.FromMap(map[string]any{"name": "api", "port": 8080})
//	port, ok := lookup.GetAs[int](record, "port")  // 8080, true
//	name, ok := lookup.GetAs[int](record, "name")  // 0, false
func GetAs[T any, K comparable, V any](src Source[K, V], key K, opts ...Option) (T, bool) {
	o := buildOptions(opts)

	return getAs[T](src, key, o)
}

// GetAsOrElse is GetAs with a default for missing or mistyped values.
func GetAsOrElse[T any, K comparable, V any](src Source[K, V], key K, defaultValue T, opts ...Option) T {
	if v, ok := GetAs[T](src, key, opts...); ok {
		return v
	}

	return defaultValue
}

// Lookup binds a source to a set of options, for callers that query the same
// collection repeatedly.
type Lookup[K comparable, V any] struct {
	src  Source[K, V]
	opts *options
}

// New returns a Lookup over src. Wrap src with Index first if it is a large
// scan-only source that will be queried many times.
func New[K comparable, V any](src Source[K, V], opts ...Option) *Lookup[K, V] {
	return &Lookup[K, V]{src: src, opts: buildOptions(opts)}
}

// Source returns the underlying collection.
func (l *Lookup[K, V]) Source() Source[K, V] {
	return l.src
}

// Get behaves like the package-level Get.
func (l *Lookup[K, V]) Get(key K) (V, bool) {
	return get(l.src, key, compare.Eq[K], true, l.opts)
}

// Find behaves like the package-level Find.
func (l *Lookup[K, V]) Find(key K) optional.Value[V] {
	return optional.Of(l.Get(key))
}

// Contains behaves like the package-level Contains.
func (l *Lookup[K, V]) Contains(key K) bool {
	_, ok := l.Get(key)

	return ok
}

// GetOrElse behaves like the package-level GetOrElse.
func (l *Lookup[K, V]) GetOrElse(key K, defaultValue V) V {
	if v, ok := l.Get(key); ok {
		return v
	}

	return defaultValue
}

func get[K, V any](src Source[K, V], key K, eq func(a, b K) bool, trustMiss bool, o *options) (V, bool) {
	var zero V

	if isNil(src) {
		o.metrics.recordCall(pathNil, false)

		return zero, false
	}

	if empty.IsNilOrEmpty(src) {
		o.metrics.recordCall(pathEmpty, false)

		return zero, false
	}

	if hashed, ok := src.(Hashed[K, V]); ok {
		if v, found := hashed.Lookup(key); found {
			o.metrics.recordCall(pathFast, true)

			return v, true
		}

		if trustMiss && isAuthoritative(src) {
			o.metrics.recordCall(pathFast, false)

			return zero, false
		}
	}

	if o.logger.Enabled(context.Background(), slog.LevelDebug) {
		o.logger.Debug("lookup falling back to linear scan", "key", key, "source", sourceName(src))
	}

	for k, v := range src.All() {
		if eq(k, key) {
			o.metrics.recordCall(pathScan, true)

			return v, true
		}
	}

	o.metrics.recordCall(pathScan, false)

	return zero, false
}

func getAs[T any, K comparable, V any](src Source[K, V], key K, o *options) (T, bool) {
	v, ok := get(src, key, compare.Eq[K], true, o)
	if !ok {
		var zero T

		return zero, false
	}

	typed, err := assert.Type[T](any(v))
	if err != nil {
		o.logger.Debug("lookup value has unexpected type", "key", key, "error", err)

		return typed, false
	}

	return typed, true
}

func isNil(src any) bool {
	return empty.IsNil(src)
}
