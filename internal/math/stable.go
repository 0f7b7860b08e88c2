// Package math provides numerically stable elementary functions for the
// Zipf hat integrals.
package math

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the switch-over point below which the truncated Taylor series
// are used. The dropped terms are of order Epsilon^4/24, well under one
// float64 ulp.
const Epsilon = 2e-5

// Expm1x computes (exp(x) - 1) / x.
// It is continuous through x = 0 where it equals 1.
func Expm1x[F constraints.Float](x F) F {
	if math.Abs(float64(x)) > Epsilon {
		return F(math.Expm1(float64(x)) / float64(x))
	}
	return 1 + x/2*(1+x/3*(1+x/4))
}

// Log1px computes log(1 + x) / x.
// It is continuous through x = 0 where it equals 1.
func Log1px[F constraints.Float](x F) F {
	if math.Abs(float64(x)) > Epsilon {
		return F(math.Log1p(float64(x)) / float64(x))
	}
	return 1 - x*(F(1)/2-x*(F(1)/3-x/4))
}
