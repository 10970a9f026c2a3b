package genling

import (
	"fmt"
	"math"
)

// WeightedChoice returns an index into weights with probability proportional to its weight.
//
// It returns ErrNoWeights when weights is empty or sums to zero and ErrNegativeWeight
// when any weight is negative, NaN, or infinite; in both cases the index is -1 and
// must not be used. Weights whose sum overflows float64 are scaled down first.
func WeightedChoice(src Source, weights []float64) (int, error) {
	total, scale, err := sumWeights(weights)
	if err != nil {
		return -1, err
	}

	r := sourceOrDefault(src).Float64() * total
	for i, w := range weights {
		r -= w / scale
		if r < 0 {
			return i, nil
		}
	}

	// Rounding can leave r at exactly zero after the last subtraction.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return -1, ErrNoWeights
}

// sumWeights returns the total of weights divided by scale. scale is 1 unless
// the plain sum overflows, in which case it is the largest weight.
func sumWeights(weights []float64) (total, scale float64, err error) {
	var largest float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, 0, fmt.Errorf("%w: index %d has weight %g", ErrNegativeWeight, i, w)
		}
		total += w
		largest = max(largest, w)
	}
	if total <= 0 {
		return 0, 0, ErrNoWeights
	}
	if !math.IsInf(total, 0) {
		return total, 1, nil
	}

	total = 0
	for _, w := range weights {
		total += w / largest
	}
	return total, largest, nil
}
