// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/stride-ml/stride/internal/ops"
	"github.com/stride-ml/stride/tensor"
)

// Abs computes the absolute value elementwise. A complex input produces
// its magnitude in a real array of the matching float dtype.
func Abs(x *tensor.Array) (*tensor.Array, error) { return ops.Abs(x) }

// AbsInto writes the absolute value of x into dst. A complex input with a
// real dst stores magnitudes, provided the magnitude dtype can be cast
// into the dtype of dst.
func AbsInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.AbsInto(dst, x) }

// AbsInPlace computes the absolute value in place. A complex array keeps
// its complex dtype, holding the magnitude in the real component.
func AbsInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.AbsInPlace(x) }

// Angle computes the phase angle elementwise: the argument of each complex
// element, or 0 and pi for non-negative and negative real input. A complex
// input produces a real result of the matching float dtype.
func Angle(x *tensor.Array) (*tensor.Array, error) { return ops.Angle(x) }

// AngleInto writes the phase angle of x into dst.
func AngleInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.AngleInto(dst, x) }

// AngleInPlace computes the phase angle in place. A complex array keeps
// its complex dtype, holding the angle in the real component.
func AngleInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.AngleInPlace(x) }

// Conj computes the complex conjugate elementwise. Real input passes
// through unchanged.
func Conj(x *tensor.Array) (*tensor.Array, error) { return ops.Conj(x) }

// ConjInto writes the conjugate of x into dst.
func ConjInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.ConjInto(dst, x) }

// ConjInPlace conjugates each element in place.
func ConjInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.ConjInPlace(x) }

// Real returns a view of the real components of a complex array. The view
// shares storage with x, so writes through it are visible in x.
// Non-complex inputs are rejected.
func Real(x *tensor.Array) (*tensor.Array, error) { return ops.Real(x) }

// Imag returns a view of the imaginary components of a complex array,
// sharing storage with x. Non-complex inputs are rejected.
func Imag(x *tensor.Array) (*tensor.Array, error) { return ops.Imag(x) }
