package sampling_test

import (
	"bytes"
	"iter"
	"log/slog"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/seqkit/sampling"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec
}

// fixedSource replays the given values, then keeps returning zero.
type fixedSource struct {
	values []float64
}

func (f *fixedSource) Float64() float64 {
	if len(f.values) == 0 {
		return 0
	}

	v := f.values[0]
	f.values = f.values[1:]

	return v
}

func TestWithoutReplacement_IsPermutation(t *testing.T) {
	t.Parallel()

	inputs := [][]int{
		{},
		{1},
		{1, 2},
		{5, 3, 9, 1, 7, 2},
		{4, 4, 4, 1, 1},
	}

	for _, input := range inputs {
		for seed := range uint64(20) {
			got := slices.Collect(sampling.WithoutReplacement(slices.Values(input), sampling.WithSource(seeded(seed))))

			require.Len(t, got, len(input))
			assert.ElementsMatch(t, input, got)
		}
	}
}

func TestWithoutReplacement_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var nilSeq iter.Seq[string]

	assert.Empty(t, slices.Collect(sampling.WithoutReplacement(nilSeq)))
	assert.Empty(t, slices.Collect(sampling.WithoutReplacement(slices.Values([]string{}))))
	assert.Empty(t, slices.Collect(sampling.FromSlice[string](nil)))
}

func TestWithoutReplacement_SingleElementIsFixed(t *testing.T) {
	t.Parallel()

	for seed := range uint64(10) {
		got := slices.Collect(sampling.FromSlice([]string{"only"}, sampling.WithSource(seeded(seed))))
		assert.Equal(t, []string{"only"}, got)
	}
}

func TestFromSlice_DoesNotMutateSource(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	snapshot := slices.Clone(input)

	for range sampling.FromSlice(input, sampling.WithSource(seeded(3))) {
		assert.Equal(t, snapshot, input)
	}

	assert.Equal(t, snapshot, input)
}

func TestWithoutReplacement_SameSeedSameOrder(t *testing.T) {
	t.Parallel()

	input := []string{"a", "b", "c", "d", "e", "f"}

	first := slices.Collect(sampling.FromSlice(input, sampling.WithSource(seeded(42))))
	second := slices.Collect(sampling.FromSlice(input, sampling.WithSource(seeded(42))))

	assert.Equal(t, first, second)
}

func TestWithoutReplacement_EachRangeIsIndependent(t *testing.T) {
	t.Parallel()

	input := make([]int, 32)
	for i := range input {
		input[i] = i
	}

	pulls := 0
	source := func(yield func(int) bool) {
		pulls++

		for _, v := range input {
			if !yield(v) {
				return
			}
		}
	}

	seq := sampling.WithoutReplacement(iter.Seq[int](source), sampling.WithSource(seeded(9)))

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, 2, pulls, "each range materializes its own pool")
	assert.ElementsMatch(t, input, first)
	assert.ElementsMatch(t, input, second)
	assert.NotEqual(t, first, second)
}

func TestWithoutReplacement_DrawOrder(t *testing.T) {
	t.Parallel()

	// Pool [a b c d]: 0.5 -> slot 2 (c), pool becomes [a b d].
	// 0.0 -> slot 0 (a), pool becomes [d b].
	// 0.99 -> slot 1 (b), pool becomes [d].
	// 0.0 -> d.
	source := &fixedSource{values: []float64{0.5, 0.0, 0.99, 0.0}}

	got := slices.Collect(sampling.FromSlice([]string{"a", "b", "c", "d"}, sampling.WithSource(source)))

	assert.Equal(t, []string{"c", "a", "b", "d"}, got)
}

func TestWithoutReplacement_EarlyBreak(t *testing.T) {
	t.Parallel()

	var got []int

	for v := range sampling.FromSlice([]int{1, 2, 3, 4, 5}, sampling.WithSource(seeded(1))) {
		got = append(got, v)

		if len(got) == 2 {
			break
		}
	}

	require.Len(t, got, 2)
	assert.NotEqual(t, got[0], got[1])
}

func TestWithoutReplacement_RoughlyUniform(t *testing.T) {
	t.Parallel()

	const trials = 6000

	input := []string{"a", "b", "c"}
	firsts := map[string]int{}
	rng := seeded(2024)

	for range trials {
		for v := range sampling.FromSlice(input, sampling.WithSource(rng)) {
			firsts[v]++

			break
		}
	}

	for _, v := range input {
		assert.InDelta(t, trials/len(input), firsts[v], trials*0.05, "first draw %q", v)
	}
}

func TestTake(t *testing.T) {
	t.Parallel()

	input := []int{10, 20, 30, 40, 50}

	got := sampling.Take(slices.Values(input), 3, sampling.WithSource(seeded(5)))
	require.Len(t, got, 3)
	assert.Subset(t, input, got)

	assert.ElementsMatch(t, input, sampling.Take(slices.Values(input), 10))
	assert.Empty(t, sampling.Take(slices.Values(input), 0))
	assert.Panics(t, func() { sampling.Take(slices.Values(input), -1) })
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("test logger", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(sampling.FromSlice([]int{1, 2, 3}, sampling.WithLogger(slogt.New(t))))
		assert.Len(t, got, 3)
	})

	t.Run("records pool lifecycle", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		for range sampling.FromSlice([]int{1, 2, 3, 4}, sampling.WithLogger(logger)) {
			break
		}

		out := buf.String()
		assert.Contains(t, out, `msg="sampling pool allocated" size=4`)
		assert.Contains(t, out, `msg="sampling pool released" size=4 drawn=1`)
	})
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	t.Parallel()

	got := slices.Collect(sampling.FromSlice([]int{1, 2, 3}, sampling.WithSource(nil), sampling.WithLogger(nil)))

	assert.ElementsMatch(t, []int{1, 2, 3}, got)
}
