package zipf

import (
	"math"

	"golang.org/x/exp/constraints"

	xmath "github.com/nozzle/zipf/internal/math"
)

// envelope holds the hat function h(x) = (x+q)^(-s), its antiderivative H
// and the inverse of H.
//
// The textbook antiderivative [(x+q)^(1-s) - (1+q)^(1-s)] / (1-s) loses all
// precision for q larger than about 10 and is undefined at s = 1, so two
// regimes are used. Away from the pole H(x) = (x+q)^(1-s) / (1-s). Near it
// H(x) = [exp((1-s) log(x+q)) - 1] / (1-s), written with the stable
// (e^x-1)/x and log(1+x)/x so it tends to log(x+q) as s -> 1. The two
// regimes differ by the constant 1/(1-s); only differences of H and H^-1 of
// the same regime are ever combined.
type envelope[F constraints.Float] struct {
	s, q  F
	oms   F    // 1-s
	spole bool // s within Epsilon of 1
	rvs   F    // 1/(1-s), zero at the pole
}

func newEnvelope[F constraints.Float](s, q F) envelope[F] {
	e := envelope[F]{s: s, q: q, oms: 1 - s}
	e.spole = math.Abs(float64(e.oms)) < xmath.Epsilon
	if !e.spole {
		e.rvs = 1 / e.oms
	}
	return e
}

// hat is h(x).
func (e envelope[F]) hat(x F) F {
	return F(math.Pow(float64(x+e.q), float64(-e.s)))
}

// integral is H(x).
func (e envelope[F]) integral(x F) F {
	if !e.spole {
		return F(math.Pow(float64(x+e.q), float64(e.oms)) / float64(e.oms))
	}
	l := F(math.Log(float64(x + e.q)))
	return l * xmath.Expm1x(e.oms*l)
}

// inverse is H^-1(y).
func (e envelope[F]) inverse(y F) F {
	if !e.spole {
		return F(math.Pow(float64(y*e.oms), float64(e.rvs))) - e.q
	}
	return F(math.Exp(float64(y*xmath.Log1px(e.oms*y)))) - e.q
}
