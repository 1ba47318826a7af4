// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/stride-ml/stride/internal/ops"
	"github.com/stride-ml/stride/tensor"
)

// Ceil rounds each element up to the nearest integer. Complex inputs are
// rejected because ordering is undefined for them.
func Ceil(x *tensor.Array) (*tensor.Array, error) { return ops.Ceil(x) }

// CeilInto writes the ceiling of x into dst.
func CeilInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.CeilInto(dst, x) }

// CeilInPlace rounds each element up in place.
func CeilInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.CeilInPlace(x) }

// Floor rounds each element down to the nearest integer.
func Floor(x *tensor.Array) (*tensor.Array, error) { return ops.Floor(x) }

// FloorInto writes the floor of x into dst.
func FloorInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.FloorInto(dst, x) }

// FloorInPlace rounds each element down in place.
func FloorInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.FloorInPlace(x) }

// Round rounds each element to the nearest integer, ties to even.
func Round(x *tensor.Array) (*tensor.Array, error) { return ops.Round(x) }

// RoundInto writes the rounded value of x into dst.
func RoundInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.RoundInto(dst, x) }

// RoundInPlace rounds each element in place, ties to even.
func RoundInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.RoundInPlace(x) }

// Trunc drops the fractional part of each element, rounding toward zero.
func Trunc(x *tensor.Array) (*tensor.Array, error) { return ops.Trunc(x) }

// TruncInto writes the truncated value of x into dst.
func TruncInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.TruncInto(dst, x) }

// TruncInPlace truncates each element in place.
func TruncInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.TruncInPlace(x) }

// Frac computes the fractional portion of each element, keeping its sign:
// frac(x) = x - trunc(x).
func Frac(x *tensor.Array) (*tensor.Array, error) { return ops.Frac(x) }

// FracInto writes the fractional portion of x into dst.
func FracInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.FracInto(dst, x) }

// FracInPlace computes the fractional portion in place.
func FracInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.FracInPlace(x) }

// Sign computes -1, 0 or 1 for each element by comparison against zero.
// NaN maps to NaN rather than to a fixed sign. Complex inputs are
// rejected; bool passes through unchanged.
func Sign(x *tensor.Array) (*tensor.Array, error) { return ops.Sign(x) }

// SignInto writes the sign of x into dst.
func SignInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.SignInto(dst, x) }

// SignInPlace computes the sign in place.
func SignInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.SignInPlace(x) }

// Neg computes the arithmetic negation elementwise. Bool inputs are
// rejected; use LogicalNot to invert truth values.
func Neg(x *tensor.Array) (*tensor.Array, error) { return ops.Neg(x) }

// NegInto writes the negation of x into dst.
func NegInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.NegInto(dst, x) }

// NegInPlace negates each element in place.
func NegInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.NegInPlace(x) }
