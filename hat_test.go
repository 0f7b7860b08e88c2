package zipf

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	xmath "github.com/nozzle/zipf/internal/math"
)

func TestEnvelopeRegimes(t *testing.T) {
	for _, s := range []float64{1, 1 - xmath.Epsilon/2, 1 + xmath.Epsilon/2} {
		if !newEnvelope(s, 0.0).spole {
			t.Errorf("s=%v should use the pole regime", s)
		}
	}
	for _, s := range []float64{0, 0.5, 1 - 2*xmath.Epsilon, 1 + 2*xmath.Epsilon, 2, -3} {
		if newEnvelope(s, 0.0).spole {
			t.Errorf("s=%v should not use the pole regime", s)
		}
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	cases := []struct {
		s, q, tol float64
	}{
		{0, 0, 1e-14},
		{0.5, 0, 1e-13},
		{1, 0, 1e-13},
		{1, 15, 1e-13},
		{1, 1000, 1e-12},
		{2, 0, 1e-13},
		{2, 50, 1e-13},
		{1.2, -0.4, 1e-13},
		{1 - xmath.Epsilon/2, 25, 1e-12},
		{1 + xmath.Epsilon/2, 25, 1e-12},
		// Regime A next to the pole: 1/(1-s) amplifies the rounding of pow.
		{1 + 2*xmath.Epsilon, 0, 1e-9},
		{-2, 3, 1e-13},
	}

	for _, c := range cases {
		e := newEnvelope(c.s, c.q)
		for _, x := range []float64{0.5, 1, 1.5, 2.5, 10.5, 300.5, 1e6 + 0.5} {
			// Subtracting q costs digits of x but not of x+q.
			got := e.inverse(e.integral(x))
			if !scalar.EqualWithinRel(got+c.q, x+c.q, c.tol) {
				t.Errorf("s=%v q=%v: H^-1(H(%v)) = %.17g", c.s, c.q, x, got)
			}
		}
	}
}

func TestEnvelopeIntegralMatchesHat(t *testing.T) {
	// H' = h, checked with a central difference.
	for _, s := range []float64{0.3, 1, 1.7, 3} {
		e := newEnvelope(s, 0.25)
		for _, x := range []float64{1, 2, 7, 40} {
			const d = 1e-5
			deriv := (e.integral(x+d) - e.integral(x-d)) / (2 * d)
			if !scalar.EqualWithinRel(deriv, e.hat(x), 1e-6) {
				t.Errorf("s=%v x=%v: H'=%v, h=%v", s, x, deriv, e.hat(x))
			}
		}
	}
}

func TestEnvelopeContinuousAcrossPole(t *testing.T) {
	// H(b)-H(a) must not jump when s crosses the regime switch.
	a, b := 1.5, 10.5
	below := newEnvelope(1-xmath.Epsilon*1.001, 0.0)
	above := newEnvelope(1-xmath.Epsilon*0.999, 0.0)
	d1 := below.integral(b) - below.integral(a)
	d2 := above.integral(b) - above.integral(a)
	if !scalar.EqualWithinRel(d1, d2, 1e-6) {
		t.Errorf("H(%v)-H(%v) jumps across the pole switch: %v vs %v", b, a, d1, d2)
	}
	if want := math.Log(b / a); !scalar.EqualWithinRel(d2, want, 1e-4) {
		t.Errorf("H(%v)-H(%v) = %v, want about %v", b, a, d2, want)
	}
}

func TestCutWithinHalf(t *testing.T) {
	for _, s := range []float64{0, 0.5, 1, 1.5, 4} {
		z, err := NewRejectionInversion[int, float64](100, s, 0)
		if err != nil {
			t.Fatal(err)
		}
		if z.cut < 0 || z.cut > 0.5 {
			t.Errorf("s=%v: cut %v outside [0, 0.5]", s, z.cut)
		}
		if z.hn <= z.hx1 {
			t.Errorf("s=%v: empty interval [%v, %v]", s, z.hx1, z.hn)
		}
	}
}

func TestMassTable(t *testing.T) {
	w := massTable(5, 2, 0)
	want := []float64{0, 1, 1.0 / 4, 1.0 / 9, 1.0 / 16, 1.0 / 25}
	for i := range want {
		if !scalar.EqualWithinRel(w[i], want[i], 1e-15) {
			t.Errorf("w[%d] = %v, want %v", i, w[i], want[i])
		}
	}
}
