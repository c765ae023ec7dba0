package lookup_test

import (
	"errors"
	"strconv"
	"testing"

	commonerrors "github.com/amp-labs/seqkit/errors"
	"github.com/amp-labs/seqkit/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func TestTryFloat(t *testing.T) {
	t.Parallel()

	src := lookup.FromMap(map[string]string{"a": "3.14", "b": "not a number", "c": " 2.5e3 ", "d": ""})

	tests := []struct {
		key      string
		expected float64
		ok       bool
	}{
		{key: "a", expected: 3.14, ok: true},
		{key: "missing", expected: 0, ok: false},
		{key: "b", expected: 0, ok: false},
		{key: "c", expected: 2500, ok: true},
		{key: "d", expected: 0, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()

			v, ok := lookup.TryFloat(src, tc.key)
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.expected, v, 1e-9)
		})
	}
}

func TestTryInt(t *testing.T) {
	t.Parallel()

	src := lookup.FromPairs(pairs("port", "8080", "neg", "-12", "float", "1.5", "big", "99999999999999999999")...)

	v, ok := lookup.TryInt(src, "port")
	require.True(t, ok)
	assert.Equal(t, int64(8080), v)

	v, ok = lookup.TryInt(src, "neg")
	require.True(t, ok)
	assert.Equal(t, int64(-12), v)

	for _, key := range []string{"float", "big", "missing"} {
		v, ok = lookup.TryInt(src, key)
		assert.False(t, ok, key)
		assert.Zero(t, v, key)
	}
}

func TestParse_DistinguishesFailures(t *testing.T) {
	t.Parallel()

	src := lookup.FromMap(map[string]string{"a": "abc", "n": "42", "flag": "true"})

	_, err := lookup.ParseFloat(src, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, commonerrors.ErrKeyNotFound))
	assert.False(t, errors.Is(err, commonerrors.ErrMalformedValue))

	_, err = lookup.ParseFloat(src, "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, commonerrors.ErrMalformedValue))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.False(t, errors.Is(err, commonerrors.ErrKeyNotFound))

	_, err = lookup.ParseInt(src, "a")
	require.ErrorIs(t, err, commonerrors.ErrMalformedValue)

	n, err := lookup.ParseInt(src, "n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	flag, err := lookup.ParseBool(src, "flag")
	require.NoError(t, err)
	assert.True(t, flag)

	_, err = lookup.ParseBool(src, "n")
	require.ErrorIs(t, err, commonerrors.ErrMalformedValue)
}

func TestParse_NilSource(t *testing.T) {
	t.Parallel()

	var src lookup.Source[string, string]

	_, err := lookup.ParseFloat(src, "a")
	require.ErrorIs(t, err, commonerrors.ErrKeyNotFound)

	_, ok := lookup.TryFloat(src, "a")
	assert.False(t, ok)
}

func TestParse_TextValueTypes(t *testing.T) {
	t.Parallel()

	byteValues := lookup.FromMap(map[string][]byte{"ttl": []byte("30")})
	ttl, ok := lookup.TryInt(byteValues, "ttl")
	require.True(t, ok)
	assert.Equal(t, int64(30), ttl)

	named := lookup.FromMap(map[int]label{1: "0.25"})
	ratio, ok := lookup.TryFloat(named, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.25, ratio, 1e-9)
}

func TestParseOrElse(t *testing.T) {
	t.Parallel()

	src := lookup.FromMap(map[string]string{"timeout": "2.5", "retries": "x"})

	assert.InDelta(t, 2.5, lookup.ParseFloatOrElse(src, "timeout", 10), 1e-9)
	assert.InDelta(t, 10, lookup.ParseFloatOrElse(src, "missing", 10), 1e-9)
	assert.Equal(t, int64(3), lookup.ParseIntOrElse(src, "retries", 3))
	assert.Equal(t, int64(3), lookup.ParseIntOrElse(src, "missing", 3))
}
