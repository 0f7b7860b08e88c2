package zipf

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"
)

// RejectionInversion samples the Zipf law by rejection-inversion. It needs
// O(1) memory and construction time; each draw takes an expected O(1)
// number of iterations independent of N.
//
// The method is exact when the hat function is convex, which holds for
// s >= 0 and s <= -1. For -1 < s < 0 the weights grow concavely with k and
// the draws are only approximately Zipf; use Table there.
type RejectionInversion[I constraints.Integer, F constraints.Float] struct {
	n   I
	env envelope[F]

	hx1  F // H(x_1) = H(1.5) - h(1)
	hn   F // H(N + 0.5)
	cut  F // k - x below this is accepted without evaluating H
	dist distuv.Uniform
}

// NewRejectionInversion returns a sampler over [1, n] with exponent s and
// deformation q. It fails with ErrInvalidDeformation if q <= -0.5 and with
// ErrEmptySupport if n < 1.
func NewRejectionInversion[I constraints.Integer, F constraints.Float](n I, s, q F) (*RejectionInversion[I, F], error) {
	if err := validate(n, q); err != nil {
		return nil, err
	}

	env := newEnvelope(s, q)
	hx1 := env.integral(1.5) - env.hat(1)
	hn := env.integral(F(n) + 0.5)
	cut := 1 - env.inverse(hx1)
	for _, v := range []F{hx1, hn, cut} {
		if !finite(float64(v)) {
			return nil, errors.Wrapf(ErrDegenerate, "N = %v, s = %v, q = %v", n, s, q)
		}
	}

	return &RejectionInversion[I, F]{
		n:    n,
		env:  env,
		hx1:  hx1,
		hn:   hn,
		cut:  cut,
		dist: distuv.Uniform{Min: float64(hx1), Max: float64(hn)},
	}, nil
}

// Draw returns a Zipf-distributed value in [1, N].
func (z *RejectionInversion[I, F]) Draw(src rand.Source) I {
	dist := z.dist
	dist.Src = src
	n := float64(z.n)

	for {
		u := F(dist.Rand())
		x := z.env.inverse(u)
		k := F(math.Round(float64(x)))
		// x can round to N+1 when u lands on H(N+0.5).
		if k < 1 || float64(k) > n {
			continue
		}
		if k-x <= z.cut {
			return I(k)
		}
		if u >= z.env.integral(k+0.5)-z.env.hat(k) {
			return I(k)
		}
	}
}

// Min returns 1.
func (z *RejectionInversion[I, F]) Min() I { return 1 }

// Max returns N.
func (z *RejectionInversion[I, F]) Max() I { return z.n }

// S returns the exponent.
func (z *RejectionInversion[I, F]) S() F { return z.env.s }

// Q returns the Hurwicz deformation.
func (z *RejectionInversion[I, F]) Q() F { return z.env.q }
