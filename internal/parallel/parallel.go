// Package parallel fans elementwise loops out across worker goroutines.
// Kernels hand it a body and an element count; small counts run inline so
// the goroutine overhead never outweighs the loop.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how loops are split across workers.
type Config struct {
	// Enabled turns fan-out on. When false every loop runs inline.
	Enabled bool
	// NumWorkers is the maximum number of goroutines per loop.
	NumWorkers int
	// MinChunkSize is the smallest element count worth splitting.
	MinChunkSize int
}

// DefaultConfig scales the configuration to the machine.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// Sequential returns a configuration that keeps every loop inline,
// regardless of size.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// For runs f(i) for every i in [0, n), splitting the range into contiguous
// chunks across workers when n is large enough. The body must be safe to
// run concurrently for distinct indices.
func For(n int, f func(i int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.NumWorkers <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForChunked runs f(start, end) over contiguous subranges of [0, n), one
// call per worker chunk. Bodies that can vectorize an inner loop use this
// form to avoid the per-index closure call.
func ForChunked(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.NumWorkers <= 1 {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			f(start, end)
		}(start, end)
	}
	wg.Wait()
}
