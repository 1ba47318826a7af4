// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/stride-ml/stride/internal/tensor"
)

// New allocates a zero-filled array with the given shape and dtype.
func New(shape Shape, dtype DataType, device Device) (*Array, error) {
	return tensor.New(shape, dtype, device)
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape, dtype DataType, device Device) (*Array, error) {
	return tensor.Zeros(shape, dtype, device)
}

// Ones creates an array filled with ones.
func Ones(shape Shape, dtype DataType, device Device) (*Array, error) {
	return tensor.Ones(shape, dtype, device)
}

// Full creates an array with every element set to value converted to dtype.
func Full(shape Shape, value Scalar, dtype DataType, device Device) (*Array, error) {
	return tensor.Full(shape, value, dtype, device)
}

// Arange creates a 1-dimensional array holding start, start+step, and so
// on, stopping before stop.
func Arange(start, stop, step float64, dtype DataType, device Device) (*Array, error) {
	return tensor.Arange(start, stop, step, dtype, device)
}

// FromSlice creates a contiguous array by copying data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
func FromSlice[T Elem](data []T, shape Shape, device Device) (*Array, error) {
	return tensor.FromSlice(data, shape, device)
}

// Data returns the elements of a as a typed slice starting at the view's
// offset and running to the end of the underlying storage. Strided views
// index into this slice with their own strides, so the slice may hold more
// elements than the view addresses. Panics if T does not match the dtype.
func Data[T Elem](a *Array) []T {
	return tensor.Data[T](a)
}

// DataTypeOf returns the DataType for a Go element type.
func DataTypeOf[T Elem]() DataType {
	return tensor.DataTypeOf[T]()
}
