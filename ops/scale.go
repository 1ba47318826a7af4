// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/stride-ml/stride/internal/ops"
	"github.com/stride-ml/stride/tensor"
)

// Rad2deg converts each element from radians to degrees.
func Rad2deg(x *tensor.Array) (*tensor.Array, error) { return ops.Rad2deg(x) }

// Rad2degInto writes the degree values of x into dst.
func Rad2degInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.Rad2degInto(dst, x) }

// Rad2degInPlace converts radians to degrees in place.
func Rad2degInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.Rad2degInPlace(x) }

// Deg2rad converts each element from degrees to radians.
func Deg2rad(x *tensor.Array) (*tensor.Array, error) { return ops.Deg2rad(x) }

// Deg2radInto writes the radian values of x into dst.
func Deg2radInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.Deg2radInto(dst, x) }

// Deg2radInPlace converts degrees to radians in place.
func Deg2radInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.Deg2radInPlace(x) }

// Square multiplies each element by itself. Unlike a float power it is
// exact for integers and defined for complex input.
func Square(x *tensor.Array) (*tensor.Array, error) { return ops.Square(x) }

// SquareInto writes the square of x into dst.
func SquareInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.SquareInto(dst, x) }

// SquareInPlace squares each element in place.
func SquareInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.SquareInPlace(x) }
