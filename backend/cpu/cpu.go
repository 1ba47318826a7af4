// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/stride-ml/stride/internal/backend/cpu"
)

// Backend holds the execution configuration shared by all CPU kernels.
type Backend = internalcpu.Backend

// Option configures a Backend.
type Option = internalcpu.Option

// New creates a CPU backend with defaults scaled to the machine.
//
// Example:
//
//	tbl := dispatch.NewTable()
//	cpu.New().Register(tbl)
//	ops.SetTable(tbl)
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithWorkers caps the number of goroutines used per kernel invocation.
func WithWorkers(n int) Option {
	return internalcpu.WithWorkers(n)
}

// WithSequential disables worker fan-out entirely.
func WithSequential() Option {
	return internalcpu.WithSequential()
}

// WithMinChunk sets the smallest element count worth splitting across
// workers.
func WithMinChunk(n int) Option {
	return internalcpu.WithMinChunk(n)
}

// Features reports the SIMD capabilities of the host, for diagnostics.
func Features() []string {
	return internalcpu.Features()
}
