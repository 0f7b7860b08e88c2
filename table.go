package zipf

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/nozzle/zipf/internal/discrete"
)

// MaxTableLen bounds N for Table.
const MaxTableLen = 1 << 30

// Table samples the Zipf law from a precomputed table of the N weights.
//
// Construction costs O(N) time and memory, pow being the dominant cost.
// Draws are a single binary search, which beats RejectionInversion for N up
// to about TableThreshold and loses once the table no longer fits in cache.
type Table[I constraints.Integer, F constraints.Float] struct {
	n       I
	s, q    F
	weights []F // weights[0] is padding
	cdf     *discrete.CDF
}

// NewTable returns a table sampler over [1, n] with exponent s and
// deformation q. It validates its arguments like NewRejectionInversion and
// additionally fails with ErrTooLarge if n > MaxTableLen.
func NewTable[I constraints.Integer, F constraints.Float](n I, s, q F) (*Table[I, F], error) {
	if err := validate(n, q); err != nil {
		return nil, err
	}
	if uint64(n) > MaxTableLen {
		return nil, errors.Wrapf(ErrTooLarge, "N = %v", n)
	}

	w := massTable(int(n), float64(s), float64(q))
	cdf, err := discrete.New(w)
	if err != nil {
		return nil, errors.Wrapf(ErrDegenerate, "N = %v, s = %v, q = %v: %v", n, s, q, err)
	}

	weights := make([]F, len(w))
	for i, v := range w {
		weights[i] = F(v)
	}

	return &Table[I, F]{
		n:       n,
		s:       s,
		q:       q,
		weights: weights,
		cdf:     cdf,
	}, nil
}

// massTable returns the unnormalised masses (q+i)^(-s) for i in [1, n],
// with a zero at index 0.
func massTable(n int, s, q float64) []float64 {
	w := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		w[i] = math.Pow(q+float64(i), -s)
	}
	return w
}

// Draw returns a Zipf-distributed value in [1, N].
func (t *Table[I, F]) Draw(src rand.Source) I {
	return I(t.cdf.Draw(src))
}

// Weights returns a copy of the unnormalised weights. Index 0 is unused and
// zero; index i holds (q+i)^(-s).
func (t *Table[I, F]) Weights() []F {
	return append([]F(nil), t.weights...)
}

// Min returns 1.
func (t *Table[I, F]) Min() I { return 1 }

// Max returns N.
func (t *Table[I, F]) Max() I { return t.n }

// S returns the exponent.
func (t *Table[I, F]) S() F { return t.s }

// Q returns the Hurwicz deformation.
func (t *Table[I, F]) Q() F { return t.q }
