// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/stride-ml/stride/internal/ops"
	"github.com/stride-ml/stride/tensor"
)

// Clamp limits every element to the closed range [min, max]. Either bound
// may be nil to leave that side open, but not both. NaN elements pass
// through unchanged, and complex input is rejected because it has no
// order.
//
// Example:
//
//	lo, hi := tensor.FloatScalar(0), tensor.FloatScalar(1)
//	y, _ := ops.Clamp(x, &lo, &hi)
func Clamp(x *tensor.Array, min, max *tensor.Scalar) (*tensor.Array, error) {
	return ops.Clamp(x, min, max)
}

// ClampInto writes the clamped values of x into dst.
func ClampInto(dst, x *tensor.Array, min, max *tensor.Scalar) (*tensor.Array, error) {
	return ops.ClampInto(dst, x, min, max)
}

// ClampInPlace clamps each element in place.
func ClampInPlace(x *tensor.Array, min, max *tensor.Scalar) (*tensor.Array, error) {
	return ops.ClampInPlace(x, min, max)
}

// ClampMin raises every element below min up to min.
func ClampMin(x *tensor.Array, min tensor.Scalar) (*tensor.Array, error) {
	return ops.ClampMin(x, min)
}

// ClampMinInto writes the lower-clamped values of x into dst.
func ClampMinInto(dst, x *tensor.Array, min tensor.Scalar) (*tensor.Array, error) {
	return ops.ClampMinInto(dst, x, min)
}

// ClampMinInPlace applies the lower bound in place.
func ClampMinInPlace(x *tensor.Array, min tensor.Scalar) (*tensor.Array, error) {
	return ops.ClampMinInPlace(x, min)
}

// ClampMax lowers every element above max down to max.
func ClampMax(x *tensor.Array, max tensor.Scalar) (*tensor.Array, error) {
	return ops.ClampMax(x, max)
}

// ClampMaxInto writes the upper-clamped values of x into dst.
func ClampMaxInto(dst, x *tensor.Array, max tensor.Scalar) (*tensor.Array, error) {
	return ops.ClampMaxInto(dst, x, max)
}

// ClampMaxInPlace applies the upper bound in place.
func ClampMaxInPlace(x *tensor.Array, max tensor.Scalar) (*tensor.Array, error) {
	return ops.ClampMaxInPlace(x, max)
}
