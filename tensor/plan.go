// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/stride-ml/stride/internal/tensor"
)

// Plan is the reconciled iteration description handed to kernels: the
// broadcast shape, computation dtype, device, validated output and
// broadcast-adjusted input strides.
type Plan = tensor.Plan

// BuildOption adjusts plan validation.
type BuildOption = tensor.BuildOption

// WithoutOverlapCheck skips the partial-overlap test between the output
// and the inputs. Kernels that own a private scratch output use this.
func WithoutOverlapCheck() BuildOption { return tensor.WithoutOverlapCheck() }

// WithoutSameDType lifts the rule that the output dtype must equal the
// computation dtype, for kernels that convert as they store.
func WithoutSameDType() BuildOption { return tensor.WithoutSameDType() }

// WithDType sets the dtype a freshly allocated output gets, leaving the
// computation dtype untouched.
func WithDType(dtype DataType) BuildOption { return tensor.WithDType(dtype) }

// Build reconciles the inputs and an optional output into a Plan. A nil
// out allocates the result; a zero-element out is resized; any other out
// must already carry the broadcast shape.
func Build(out *Array, inputs []*Array, opts ...BuildOption) (*Plan, error) {
	return tensor.Build(out, inputs, opts...)
}

// BuildUnary is Build for the single-input case.
func BuildUnary(out, in *Array, opts ...BuildOption) (*Plan, error) {
	return tensor.BuildUnary(out, in, opts...)
}

// BroadcastShapes merges shapes under the broadcasting rules, or fails
// with ErrShapeMismatch.
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return tensor.BroadcastShapes(shapes...)
}

// CanCast reports whether a value of dtype from survives conversion to
// dtype to without discarding its kind: complex never narrows to real,
// floats never narrow to integers, and only bool converts to bool.
func CanCast(from, to DataType) bool {
	return tensor.CanCast(from, to)
}

// ValueType maps a complex dtype to its real component dtype, returning
// every other dtype unchanged.
func ValueType(dtype DataType) DataType {
	return tensor.ValueType(dtype)
}
