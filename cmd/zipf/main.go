// Command zipf draws a synthetic Zipf workload and writes its histogram.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"maps"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"

	"github.com/nozzle/zipf"
	"github.com/nozzle/zipf/internal/parallel"
	zrand "github.com/nozzle/zipf/internal/rand"
)

// maxExpected is the largest N for which the exact law is written out.
const maxExpected = 1 << 20

func main() {
	// Parse command-line flags
	n := flag.Uint64("n", 300, "Support size; draws fall in [1, n]")
	s := flag.Float64("s", 1.0, "Power-law exponent")
	q := flag.Float64("q", 0.0, "Hurwicz deformation, must be > -0.5")
	method := flag.String("method", "auto", "Sampler: auto, rejection or table")
	count := flag.Int("count", 100000, "Number of draws")
	seed := flag.Uint("seed", zrand.DefaultSeed, "MT19937 seed of the first chunk")
	workers := flag.Int("workers", parallel.NumWorkers(), "Number of drawing goroutines")
	outputFile := flag.String("output", "histogram.csv", "Output CSV file")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	m, err := zipf.ParseMethod(*method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	cfg := zipf.DefaultConfig[uint64, float64](*n)
	cfg.S = *s
	cfg.Q = *q
	cfg.Method = m

	sampler, err := zipf.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sampler: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Sampling %d draws from %T (N=%d, s=%g, q=%g) on %d workers\n",
			*count, sampler, sampler.Max(), sampler.S(), sampler.Q(), *workers)
	}

	draws := make([]uint64, *count)
	zipf.Fill(sampler, draws, *workers, func(chunk int) rand.Source {
		return zrand.NewMT19937(uint32(*seed) + uint32(chunk))
	})

	// Exact probabilities need O(N) memory; the histogram does not.
	var pmf []float64
	if cfg.N <= maxExpected {
		if pmf, err = zipf.PMF(cfg.N, cfg.S, cfg.Q); err != nil {
			fmt.Fprintf(os.Stderr, "Error computing probabilities: %v\n", err)
			os.Exit(1)
		}
	} else if *verbose {
		fmt.Printf("N > %d, skipping expected column\n", maxExpected)
	}

	if err := saveCSV(*outputFile, draws, pmf); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving output: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Saved histogram to %s\n", *outputFile)
	}
}

// saveCSV writes one row per drawn value: k, count, observed frequency and,
// when pmf is not nil, the exact probability. Values never drawn are skipped.
func saveCSV(filename string, draws []uint64, pmf []float64) error {
	counts := make(map[uint64]uint64)
	for _, k := range draws {
		counts[k]++
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{"k", "count", "observed"}
	if pmf != nil {
		header = append(header, "expected")
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	total := float64(len(draws))
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		c := counts[k]
		record := []string{
			strconv.FormatUint(k, 10),
			strconv.FormatUint(c, 10),
			strconv.FormatFloat(float64(c)/total, 'f', 6, 64),
		}
		if pmf != nil {
			record = append(record, strconv.FormatFloat(pmf[k], 'f', 6, 64))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
