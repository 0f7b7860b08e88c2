// Package parallel provides parallel execution helpers.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Chunks splits [0, total) into consecutive chunks of chunkSize indices
// (the last one may be shorter) and runs fn for each using n workers.
// fn receives the chunk number and its [start, end) bounds. The split does
// not depend on n.
func Chunks(total, chunkSize, n int, fn func(chunk, start, end int)) {
	if total <= 0 {
		return
	}
	if chunkSize <= 0 {
		chunkSize = total
	}

	if n <= 1 {
		for c, s := 0, 0; s < total; c, s = c+1, s+chunkSize {
			fn(c, s, min(s+chunkSize, total))
		}
		return
	}

	var wg sync.WaitGroup
	chunks := make(chan [3]int, n)

	// Start workers
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for chunk := range chunks {
				fn(chunk[0], chunk[1], chunk[2])
			}
		}()
	}

	// Send chunks
	for c, s := 0, 0; s < total; c, s = c+1, s+chunkSize {
		chunks <- [3]int{c, s, min(s+chunkSize, total)}
	}
	close(chunks)

	wg.Wait()
}
