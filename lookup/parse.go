package lookup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/seqkit/compare"
	commonerrors "github.com/amp-labs/seqkit/errors"
)

// Text is the set of value types the parse helpers accept.
type Text interface {
	~string | ~[]byte
}

// ParseFloat looks up key and parses its value as a float64. Surrounding
// whitespace is ignored. The error wraps errors.ErrKeyNotFound when the key
// is absent and errors.ErrMalformedValue (together with the strconv error)
// when the value does not parse.
func ParseFloat[K comparable, V Text](src Source[K, V], key K, opts ...Option) (float64, error) {
	return parse(src, key, buildOptions(opts), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// ParseInt looks up key and parses its value as a base-10 int64.
// Errors follow ParseFloat.
func ParseInt[K comparable, V Text](src Source[K, V], key K, opts ...Option) (int64, error) {
	return parse(src, key, buildOptions(opts), func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// ParseBool looks up key and parses its value with strconv.ParseBool
// ("1", "t", "true", "0", "f", "false" and their capitalizations).
// Errors follow ParseFloat.
func ParseBool[K comparable, V Text](src Source[K, V], key K, opts ...Option) (bool, error) {
	return parse(src, key, buildOptions(opts), strconv.ParseBool)
}

// TryFloat is ParseFloat with both failure kinds collapsed into false.
// It returns (0, false) on failure.
func TryFloat[K comparable, V Text](src Source[K, V], key K, opts ...Option) (float64, bool) {
	v, err := ParseFloat(src, key, opts...)

	return v, err == nil
}

// TryInt is ParseInt with both failure kinds collapsed into false.
// It returns (0, false) on failure.
func TryInt[K comparable, V Text](src Source[K, V], key K, opts ...Option) (int64, bool) {
	v, err := ParseInt(src, key, opts...)

	return v, err == nil
}

// ParseFloatOrElse returns the parsed value, or defaultValue on any failure.
func ParseFloatOrElse[K comparable, V Text](src Source[K, V], key K, defaultValue float64, opts ...Option) float64 {
	if v, ok := TryFloat(src, key, opts...); ok {
		return v
	}

	return defaultValue
}

// ParseIntOrElse returns the parsed value, or defaultValue on any failure.
func ParseIntOrElse[K comparable, V Text](src Source[K, V], key K, defaultValue int64, opts ...Option) int64 {
	if v, ok := TryInt(src, key, opts...); ok {
		return v
	}

	return defaultValue
}

func parse[K comparable, V Text, N any](src Source[K, V], key K, o *options, conv func(string) (N, error)) (N, error) {
	var zero N

	raw, ok := get(src, key, compare.Eq[K], true, o)
	if !ok {
		o.metrics.recordParseFailure(reasonMissing)

		return zero, fmt.Errorf("%w: %v", commonerrors.ErrKeyNotFound, key)
	}

	parsed, err := conv(strings.TrimSpace(string(raw)))
	if err != nil {
		o.metrics.recordParseFailure(reasonMalformed)
		o.logger.Debug("lookup value is malformed", "key", key, "error", err)

		return zero, fmt.Errorf("%w: key %v: %w", commonerrors.ErrMalformedValue, key, err)
	}

	return parsed, nil
}

func sourceName(src any) string {
	return fmt.Sprintf("%T", src)
}
