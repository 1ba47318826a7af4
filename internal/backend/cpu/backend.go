// Package cpu implements the reference kernels for every operation in the
// dispatch table. Kernels walk the plan's stride tables, taking a flat fast
// path when all operands are contiguous and fanning large loops out across
// workers.
package cpu

import (
	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

// Backend holds the execution configuration shared by all CPU kernels.
type Backend struct {
	cfg parallel.Config
}

// Option configures a Backend.
type Option func(*Backend)

// WithWorkers caps the number of goroutines used per kernel invocation.
func WithWorkers(n int) Option {
	return func(b *Backend) {
		b.cfg.NumWorkers = n
		b.cfg.Enabled = n > 1
	}
}

// WithSequential disables worker fan-out entirely.
func WithSequential() Option {
	return func(b *Backend) { b.cfg = parallel.Sequential() }
}

// WithMinChunk sets the smallest element count worth splitting across
// workers.
func WithMinChunk(n int) Option {
	return func(b *Backend) { b.cfg.MinChunkSize = n }
}

// New creates a CPU backend with defaults scaled to the machine.
func New(opts ...Option) *Backend {
	b := &Backend{cfg: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Device returns the device tag this backend's kernels run under.
func (b *Backend) Device() tensor.Device { return tensor.CPU }

// Register wires every CPU kernel into the table.
func (b *Backend) Register(tbl *dispatch.Table) {
	b.registerFloat(tbl)
	b.registerNumeric(tbl)
	b.registerSpecial(tbl)
	b.registerClamp(tbl)
	b.registerLogical(tbl)
	b.registerBinary(tbl)
	b.registerCast(tbl)
}
