// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/stride-ml/stride/internal/ops"
	"github.com/stride-ml/stride/tensor"
)

// LogicalNot inverts the truth value of each element and returns a bool
// array. An element is truthy when it is non-zero; NaN counts as truthy.
// Every dtype is accepted.
func LogicalNot(x *tensor.Array) (*tensor.Array, error) { return ops.LogicalNot(x) }

// LogicalNotInto writes inverted truth values into dst, stored as 0 and 1
// in whatever dtype dst carries.
func LogicalNotInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.LogicalNotInto(dst, x) }

// LogicalNotInPlace inverts truth values in place, keeping the dtype of x.
func LogicalNotInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.LogicalNotInPlace(x) }

// BitwiseNot flips every bit of each element. Bool input is negated
// logically. Floating and complex inputs are rejected.
func BitwiseNot(x *tensor.Array) (*tensor.Array, error) { return ops.BitwiseNot(x) }

// BitwiseNotInto writes the bitwise complement of x into dst.
func BitwiseNotInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.BitwiseNotInto(dst, x) }

// BitwiseNotInPlace flips every bit in place.
func BitwiseNotInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.BitwiseNotInPlace(x) }
