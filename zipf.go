// Package zipf samples integers from a Zipf (Zeta) distribution over [1, N]
// with exponent s and Hurwicz deformation q:
//
//	P(k) ∝ (k + q)^(-s)
//
// Two samplers draw from the same law. RejectionInversion uses the
// rejection-inversion method of Hörmann and Derflinger ("Rejection-inversion
// to generate variates from monotone discrete distributions", ACM TOMACS
// 6.3, 1996) and needs O(1) memory. Table precomputes all N weights and is
// faster per draw for small N.
//
// Basic usage:
//
//	z, err := zipf.NewRejectionInversion[uint64, float64](300, 1.0, 0.0)
//	if err != nil {
//		return err
//	}
//	src := rand.NewPCG(1, 2)
//	k := z.Draw(src)
//
// Samplers are immutable. A sampler may be shared between goroutines as long
// as every goroutine draws with its own rand.Source.
package zipf

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidDeformation is returned when q <= -0.5.
	ErrInvalidDeformation = errors.New("zipf: range error: q must be greater than -0.5")
	// ErrEmptySupport is returned when N < 1.
	ErrEmptySupport = errors.New("zipf: N must be at least 1")
	// ErrTooLarge is returned when a weight table for N cannot be allocated.
	ErrTooLarge = errors.New("zipf: N too large for a weight table")
	// ErrDegenerate is returned when the parameters overflow or underflow
	// the working precision.
	ErrDegenerate = errors.New("zipf: parameters not representable in working precision")
	// ErrUnknownMethod is returned by ParseMethod.
	ErrUnknownMethod = errors.New("zipf: unknown sampling method")
)

// Sampler draws from a Zipf law.
type Sampler[I constraints.Integer, F constraints.Float] interface {
	// Draw returns a value in [Min(), Max()], consuming bits from src.
	Draw(src rand.Source) I
	// Min returns 1.
	Min() I
	// Max returns N.
	Max() I
	// S returns the exponent.
	S() F
	// Q returns the Hurwicz deformation.
	Q() F
}

// Method selects a sampler implementation.
type Method int

const (
	// Auto picks TableLookup for N <= TableThreshold, Rejection otherwise.
	Auto Method = iota
	// Rejection selects RejectionInversion.
	Rejection
	// TableLookup selects Table.
	TableLookup
)

// TableThreshold is the largest N for which Auto builds a Table.
const TableThreshold = 1000

func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case Rejection:
		return "rejection"
	case TableLookup:
		return "table"
	default:
		return "unknown"
	}
}

// ParseMethod parses "auto", "rejection" or "table".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return Auto, nil
	case "rejection", "rejection-inversion":
		return Rejection, nil
	case "table":
		return TableLookup, nil
	default:
		return Auto, errors.Wrapf(ErrUnknownMethod, "%q", s)
	}
}

// Config configures New.
type Config[I constraints.Integer, F constraints.Float] struct {
	// N is the support size; draws fall in [1, N].
	N I

	// S is the power-law exponent. Any real value is accepted.
	// Default: 1.0
	S F

	// Q is the Hurwicz deformation. Must be greater than -0.5.
	// Default: 0.0
	Q F

	// Method selects the sampler.
	// Default: Auto
	Method Method
}

// DefaultConfig returns the classic Zipf law (s = 1, q = 0) over [1, n].
func DefaultConfig[I constraints.Integer, F constraints.Float](n I) Config[I, F] {
	return Config[I, F]{
		N:      n,
		S:      1.0,
		Q:      0.0,
		Method: Auto,
	}
}

// New builds the sampler selected by cfg.Method.
func New[I constraints.Integer, F constraints.Float](cfg Config[I, F]) (Sampler[I, F], error) {
	m := cfg.Method
	if m == Auto {
		m = Rejection
		if uint64(cfg.N) <= TableThreshold {
			m = TableLookup
		}
	}

	switch m {
	case Rejection:
		z, err := NewRejectionInversion(cfg.N, cfg.S, cfg.Q)
		if err != nil {
			return nil, err
		}
		return z, nil
	case TableLookup:
		z, err := NewTable(cfg.N, cfg.S, cfg.Q)
		if err != nil {
			return nil, err
		}
		return z, nil
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "method %d", int(m))
	}
}

// validate checks the preconditions shared by both samplers.
func validate[I constraints.Integer, F constraints.Float](n I, q F) error {
	// Written to also reject NaN.
	if !(q > -0.5) {
		return errors.Wrapf(ErrInvalidDeformation, "q = %v", q)
	}
	if n < 1 {
		return errors.Wrapf(ErrEmptySupport, "N = %v", n)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
