// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides elementwise operations over arrays.
//
// # Overview
//
// Every operation comes in three forms:
//   - Op(x): allocates and returns a fresh result
//   - OpInto(dst, x): writes into dst, broadcasting x to the shape of dst
//   - OpInPlace(x): overwrites x with the result
//
// The available operations:
//   - Transcendental: Sin, Cos, Tan, Exp, Log, Sqrt, Sigmoid, Tanh and
//     the rest of the inverse and hyperbolic family
//   - Rounding: Ceil, Floor, Round, Trunc, Frac
//   - Sign and negation: Sign, Neg, Abs
//   - Complex: Angle, Conj, Real, Imag
//   - Clamping: Clamp, ClampMin, ClampMax
//   - Special functions: Erf, Erfc, Erfinv, Lgamma, Digamma, Polygamma,
//     Mvlgamma
//   - Logical and bitwise: LogicalNot, BitwiseNot
//   - Conversions: Rad2deg, Deg2rad, Square
//
// # Basic Usage
//
//	import (
//	    "github.com/stride-ml/stride/ops"
//	    "github.com/stride-ml/stride/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float32{0, 1, 2}, tensor.Shape{3}, tensor.CPU)
//
//	    y, _ := ops.Sin(x)        // fresh result
//	    _, _ = ops.SinInto(y, x)  // reuse y's storage
//	    _, _ = ops.SinInPlace(x)  // overwrite x
//	}
//
// # Dtype Domains
//
// Each operation checks its input dtype before any work happens. The
// transcendental and special functions accept floating dtypes only;
// rounding and clamping reject complex input; Neg rejects bool. A domain
// violation returns an error wrapping tensor.ErrUnsupportedDtype and
// never touches the destination.
//
// Abs and Angle on complex input produce a real result of the matching
// float dtype: Complex64 yields Float32 and Complex128 yields Float64.
//
// # Kernel Dispatch
//
// Operations route through a process-wide dispatch table holding the CPU
// kernels, plus the WebGPU kernels where that backend is available. Use
// SetTable to install a custom table.
package ops
