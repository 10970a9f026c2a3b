package genling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/genling/pkg/genling"
)

func TestWeightedChoice(t *testing.T) {
	t.Parallel()

	t.Run("frequencies follow weights", func(t *testing.T) {
		t.Parallel()
		src := genling.NewSource(42)
		const draws = 100000
		counts := make([]int, 3)
		for range draws {
			i, err := genling.WeightedChoice(src, []float64{1, 1, 2})
			require.NoError(t, err)
			counts[i]++
		}
		assert.InDelta(t, 0.25, float64(counts[0])/draws, 0.01)
		assert.InDelta(t, 0.25, float64(counts[1])/draws, 0.01)
		assert.InDelta(t, 0.50, float64(counts[2])/draws, 0.01)
	})

	t.Run("draw maps onto cumulative weights", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			draw float64
			want int
		}{
			{draw: 0, want: 0},
			{draw: 0.24, want: 0},
			{draw: 0.25, want: 1},
			{draw: 0.49, want: 1},
			{draw: 0.5, want: 2},
			{draw: 0.999, want: 2},
		}
		for _, tt := range tests {
			i, err := genling.WeightedChoice(seq(tt.draw), []float64{1, 1, 2})
			require.NoError(t, err)
			assert.Equal(t, tt.want, i, "draw %v", tt.draw)
		}
	})

	t.Run("zero weight is never chosen", func(t *testing.T) {
		t.Parallel()
		for _, draw := range []float64{0, 0.5, 0.999} {
			i, err := genling.WeightedChoice(seq(draw), []float64{0, 1, 0})
			require.NoError(t, err)
			assert.Equal(t, 1, i)
		}
	})

	t.Run("weights summing past float64 range", func(t *testing.T) {
		t.Parallel()
		src := genling.NewSource(1)
		const draws = 10000
		counts := make([]int, 3)
		for range draws {
			i, err := genling.WeightedChoice(src, []float64{1e308, 1e308, 1})
			require.NoError(t, err)
			counts[i]++
		}
		assert.InDelta(t, 0.5, float64(counts[0])/draws, 0.03)
		assert.InDelta(t, 0.5, float64(counts[1])/draws, 0.03)
		assert.Zero(t, counts[2])

		i, err := genling.WeightedChoice(seq(0.75), []float64{1e308, 1e308})
		require.NoError(t, err)
		assert.Equal(t, 1, i)
	})

	t.Run("nil source uses default", func(t *testing.T) {
		t.Parallel()
		i, err := genling.WeightedChoice(nil, []float64{0, 0, 5})
		require.NoError(t, err)
		assert.Equal(t, 2, i)
	})

	t.Run("invalid weights", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name    string
			weights []float64
			err     error
		}{
			{name: "empty", weights: nil, err: genling.ErrNoWeights},
			{name: "all zero", weights: []float64{0, 0}, err: genling.ErrNoWeights},
			{name: "negative", weights: []float64{1, -1}, err: genling.ErrNegativeWeight},
			{name: "nan", weights: []float64{math.NaN()}, err: genling.ErrNegativeWeight},
			{name: "infinite", weights: []float64{math.Inf(1)}, err: genling.ErrNegativeWeight},
		}
		for _, tt := range tests {
			i, err := genling.WeightedChoice(seq(0.5), tt.weights)
			require.ErrorIs(t, err, tt.err, tt.name)
			assert.Equal(t, -1, i, tt.name)
		}
	})
}
