// Package discrete draws indices with probability proportional to a fixed
// set of non-negative weights, using a cumulative table and binary search.
package discrete

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrNoWeights is returned when the weights are empty or sum to zero.
	ErrNoWeights = errors.New("discrete: no positive weight")
	// ErrBadWeight is returned for a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("discrete: weight must be finite and non-negative")
)

// CDF is an immutable cumulative weight table.
type CDF struct {
	cum  []float64
	last int // last index with a positive weight
}

// New builds the cumulative table for weights. The weights are not retained.
func New(weights []float64) (*CDF, error) {
	last := -1
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.Wrapf(ErrBadWeight, "weight %d is %v", i, w)
		}
		if w > 0 {
			last = i
		}
	}
	if last < 0 {
		return nil, ErrNoWeights
	}

	cum := floats.CumSum(make([]float64, len(weights)), weights)
	if math.IsInf(cum[len(cum)-1], 0) {
		return nil, errors.Wrap(ErrBadWeight, "weights overflow")
	}
	return &CDF{cum: cum, last: last}, nil
}

// Len returns the number of weights, including zero ones.
func (c *CDF) Len() int { return len(c.cum) }

// Total returns the sum of the weights.
func (c *CDF) Total() float64 { return c.cum[len(c.cum)-1] }

// Draw returns index i with probability weights[i] / Total().
// Indices of zero weight are never returned.
func (c *CDF) Draw(src rand.Source) int {
	u := distuv.Uniform{Min: 0, Max: c.Total(), Src: src}.Rand()
	i := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] > u })
	if i > c.last {
		// u rounded up to Total.
		return c.last
	}
	return i
}
