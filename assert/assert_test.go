package assert_test

import (
	"errors"
	"testing"

	"github.com/amp-labs/seqkit/assert"
	commonerrors "github.com/amp-labs/seqkit/errors"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	t.Parallel()

	t.Run("matching type", func(t *testing.T) {
		t.Parallel()

		result, err := assert.Type[string]("hello")
		require.NoError(t, err)
		require.Equal(t, "hello", result)
	})

	t.Run("mismatched type", func(t *testing.T) {
		t.Parallel()

		result, err := assert.Type[int]("42")
		require.Error(t, err)
		require.ErrorIs(t, err, commonerrors.ErrWrongType)
		require.Contains(t, err.Error(), "expected type int, but received string")
		require.Zero(t, result)
	})

	t.Run("nil interface", func(t *testing.T) {
		t.Parallel()

		_, err := assert.Type[float64](nil)
		require.ErrorIs(t, err, commonerrors.ErrWrongType)
	})
}

func TestTrue(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { assert.True(true) })
	require.PanicsWithValue(t, "assertion failed", func() { assert.True(false) })
	require.PanicsWithValue(t, "bad value 7", func() { assert.True(false, "bad value %d", 7) })
	require.PanicsWithValue(t, "assertion failed: [42]", func() { assert.True(false, 42) })
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	var nilFunc func(int) int

	var nilMap map[string]int

	require.NotPanics(t, func() { assert.NotNil(func(int) int { return 0 }) })
	require.NotPanics(t, func() { assert.NotNil(map[string]int{}) })
	require.Panics(t, func() { assert.NotNil(nil) })
	require.Panics(t, func() { assert.NotNil(nilFunc, "project must not be nil") })
	require.Panics(t, func() { assert.NotNil(nilMap) })
}

func TestNonNegative(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { assert.NonNegative(0, "n") })
	require.NotPanics(t, func() { assert.NonNegative(3, "n") })

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		err, ok := recovered.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, commonerrors.ErrNegativeCount))
		require.Contains(t, err.Error(), "n must be >= 0, got -1")
	}()

	assert.NonNegative(-1, "n")
}
