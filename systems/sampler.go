package systems

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// WeightTable draws entries by cumulative weight
// Entries keep table order; the first entry whose running sum reaches the draw wins
type WeightTable[T any] struct {
	entries []T
	weights []float64
	total   float64
}

// NewWeightTable builds a table from parallel entries and weights
func NewWeightTable[T any](entries []T, weight func(T) float64) *WeightTable[T] {
	wt := &WeightTable[T]{
		entries: entries,
		weights: make([]float64, len(entries)),
	}
	for i, e := range entries {
		w := weight(e)
		wt.weights[i] = w
		wt.total += w
	}
	return wt
}

// Validate fails on negative weights or a sum further than tolerance from 1
func (wt *WeightTable[T]) Validate(tolerance float64) error {
	if len(wt.entries) == 0 {
		return errors.New("weight table is empty")
	}
	for i, w := range wt.weights {
		if w < 0 || math.IsNaN(w) {
			return errors.Errorf("weight %d is %v", i, w)
		}
	}
	if math.Abs(wt.total-1) > tolerance {
		return errors.Errorf("weights sum to %v, want 1", wt.total)
	}
	return nil
}

// Total returns the sum of all weights
func (wt *WeightTable[T]) Total() float64 {
	return wt.total
}

// Pick returns the first entry whose cumulative weight is >= draw
// Draws beyond the total (float drift) resolve to the last entry with non-zero weight
func (wt *WeightTable[T]) Pick(draw float64) T {
	cumulative := 0.0
	last := -1
	for i, w := range wt.weights {
		if w <= 0 {
			continue
		}
		last = i
		cumulative += w
		if cumulative >= draw {
			return wt.entries[i]
		}
	}
	if last < 0 {
		last = len(wt.entries) - 1
	}
	return wt.entries[last]
}

// Sample draws uniformly in [0, total) and picks
func (wt *WeightTable[T]) Sample(rng *rand.Rand) T {
	return wt.Pick(rng.Float64() * wt.total)
}
