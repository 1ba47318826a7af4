// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public array types for the Stride numeric
// library.
//
// The package exposes the N-dimensional Array over shared storage, the
// Shape, DataType and Device descriptors, scalar immediates, and the
// execution-plan builder that backends consume. Operations over arrays
// live in the ops package.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
//	y, _ := ops.Sin(x)
//	fmt.Println(tensor.Data[float32](y))
package tensor

import (
	"github.com/stride-ml/stride/internal/tensor"
)

// Elem is the constraint over Go element types an Array can hold.
type Elem = tensor.Elem

// DataType identifies the element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Uint8      DataType = tensor.Uint8
	Bool       DataType = tensor.Bool
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Device tags the device an array's data lives on.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3-dimensional array of 24 elements.
type Shape = tensor.Shape

// Array is an N-dimensional view over shared storage. Views taken from an
// array alias its buffer; no method on Array copies elements unless
// documented otherwise.
type Array = tensor.Array

// Scalar is a dtype-tagged immediate value, used for operation arguments
// such as clamp bounds and for broadcasting Go constants against arrays.
type Scalar = tensor.Scalar

// Error sentinels. Operations wrap these, so test with errors.Is.
var (
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrUnsafeAliasing    = tensor.ErrUnsafeAliasing
	ErrUnsupportedDtype  = tensor.ErrUnsupportedDtype
	ErrUnsupportedDevice = tensor.ErrUnsupportedDevice
	ErrUnsupportedLayout = tensor.ErrUnsupportedLayout
	ErrInvalidCast       = tensor.ErrInvalidCast
	ErrInvalidArgument   = tensor.ErrInvalidArgument
)

// FloatScalar wraps a float64 value.
func FloatScalar(v float64) Scalar { return tensor.FloatScalar(v) }

// IntScalar wraps an int64 value.
func IntScalar(v int64) Scalar { return tensor.IntScalar(v) }

// BoolScalar wraps a bool value.
func BoolScalar(v bool) Scalar { return tensor.BoolScalar(v) }

// ComplexScalar wraps a complex128 value.
func ComplexScalar(v complex128) Scalar { return tensor.ComplexScalar(v) }
