package zipf

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"

	"github.com/nozzle/zipf/internal/parallel"
)

// FillChunk is the number of consecutive draws Fill takes from one source.
const FillChunk = 4096

// PMF returns the exact probabilities of the law: p[k] = P(k) for k in
// [1, n] and p[0] = 0.
func PMF[I constraints.Integer, F constraints.Float](n I, s, q F) ([]float64, error) {
	if err := validate(n, q); err != nil {
		return nil, err
	}
	if uint64(n) > MaxTableLen {
		return nil, errors.Wrapf(ErrTooLarge, "N = %v", n)
	}

	p := massTable(int(n), float64(s), float64(q))
	sum := floats.Sum(p)
	if !finite(sum) || sum == 0 {
		return nil, errors.Wrapf(ErrDegenerate, "N = %v, s = %v, q = %v", n, s, q)
	}
	floats.Scale(1/sum, p)
	return p, nil
}

// Fill fills dst with draws from z. dst is cut into chunks of FillChunk
// draws; chunk c draws from newSource(c), so the result depends only on
// newSource and not on the number of workers. newSource is called from
// several goroutines at once. workers <= 0 uses GOMAXPROCS.
func Fill[I constraints.Integer, F constraints.Float](z Sampler[I, F], dst []I, workers int, newSource func(chunk int) rand.Source) {
	if workers <= 0 {
		workers = parallel.NumWorkers()
	}
	parallel.Chunks(len(dst), FillChunk, workers, func(chunk, start, end int) {
		src := newSource(chunk)
		for i := start; i < end; i++ {
			dst[i] = z.Draw(src)
		}
	})
}

// Histogram counts draws: h[k] is the number of draws equal to k, for k in
// [0, n]. Values outside that range are ignored.
func Histogram[I constraints.Integer](draws []I, n I) []uint64 {
	h := make([]uint64, int(n)+1)
	for _, k := range draws {
		if k >= 0 && k <= n {
			h[k]++
		}
	}
	return h
}
