// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
//
// # Overview
//
// The CPU backend implements every operation in the dispatch table:
//   - Kernels for all eight dtypes, including complex
//   - Strided iteration with a flat fast path for contiguous operands
//   - Worker fan-out for large arrays, tunable per backend
//
// It is registered into the default dispatch table automatically; this
// package matters when building a custom table or tuning parallelism.
//
// # Basic Usage
//
//	import (
//	    "github.com/stride-ml/stride/backend/cpu"
//	    "github.com/stride-ml/stride/dispatch"
//	    "github.com/stride-ml/stride/ops"
//	)
//
//	func main() {
//	    tbl := dispatch.NewTable()
//	    cpu.New(cpu.WithWorkers(4)).Register(tbl)
//	    ops.SetTable(tbl)
//	}
//
// # Thread Safety
//
// A Backend carries only immutable configuration after New, so its
// kernels are safe for concurrent use.
package cpu
