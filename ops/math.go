// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/stride-ml/stride/internal/ops"
	"github.com/stride-ml/stride/tensor"
)

// The transcendental operations accept real floating inputs only.

// Acos computes the arccosine elementwise.
func Acos(x *tensor.Array) (*tensor.Array, error) { return ops.Acos(x) }

// AcosInto writes the arccosine of x into dst.
func AcosInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.AcosInto(dst, x) }

// AcosInPlace computes the arccosine in place.
func AcosInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.AcosInPlace(x) }

// Acosh computes the inverse hyperbolic cosine elementwise.
func Acosh(x *tensor.Array) (*tensor.Array, error) { return ops.Acosh(x) }

// AcoshInto writes the inverse hyperbolic cosine of x into dst.
func AcoshInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.AcoshInto(dst, x) }

// AcoshInPlace computes the inverse hyperbolic cosine in place.
func AcoshInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.AcoshInPlace(x) }

// Asin computes the arcsine elementwise.
func Asin(x *tensor.Array) (*tensor.Array, error) { return ops.Asin(x) }

// AsinInto writes the arcsine of x into dst.
func AsinInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.AsinInto(dst, x) }

// AsinInPlace computes the arcsine in place.
func AsinInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.AsinInPlace(x) }

// Asinh computes the inverse hyperbolic sine elementwise.
func Asinh(x *tensor.Array) (*tensor.Array, error) { return ops.Asinh(x) }

// AsinhInto writes the inverse hyperbolic sine of x into dst.
func AsinhInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.AsinhInto(dst, x) }

// AsinhInPlace computes the inverse hyperbolic sine in place.
func AsinhInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.AsinhInPlace(x) }

// Atan computes the arctangent elementwise.
func Atan(x *tensor.Array) (*tensor.Array, error) { return ops.Atan(x) }

// AtanInto writes the arctangent of x into dst.
func AtanInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.AtanInto(dst, x) }

// AtanInPlace computes the arctangent in place.
func AtanInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.AtanInPlace(x) }

// Atanh computes the inverse hyperbolic tangent elementwise.
func Atanh(x *tensor.Array) (*tensor.Array, error) { return ops.Atanh(x) }

// AtanhInto writes the inverse hyperbolic tangent of x into dst.
func AtanhInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.AtanhInto(dst, x) }

// AtanhInPlace computes the inverse hyperbolic tangent in place.
func AtanhInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.AtanhInPlace(x) }

// Cos computes the cosine elementwise.
func Cos(x *tensor.Array) (*tensor.Array, error) { return ops.Cos(x) }

// CosInto writes the cosine of x into dst.
func CosInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.CosInto(dst, x) }

// CosInPlace computes the cosine in place.
func CosInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.CosInPlace(x) }

// Cosh computes the hyperbolic cosine elementwise.
func Cosh(x *tensor.Array) (*tensor.Array, error) { return ops.Cosh(x) }

// CoshInto writes the hyperbolic cosine of x into dst.
func CoshInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.CoshInto(dst, x) }

// CoshInPlace computes the hyperbolic cosine in place.
func CoshInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.CoshInPlace(x) }

// Exp computes e raised to each element.
func Exp(x *tensor.Array) (*tensor.Array, error) { return ops.Exp(x) }

// ExpInto writes the exponential of x into dst.
func ExpInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.ExpInto(dst, x) }

// ExpInPlace computes the exponential in place.
func ExpInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.ExpInPlace(x) }

// Expm1 computes exp(x)-1 elementwise, accurate for small x.
func Expm1(x *tensor.Array) (*tensor.Array, error) { return ops.Expm1(x) }

// Expm1Into writes exp(x)-1 into dst.
func Expm1Into(dst, x *tensor.Array) (*tensor.Array, error) { return ops.Expm1Into(dst, x) }

// Expm1InPlace computes exp(x)-1 in place.
func Expm1InPlace(x *tensor.Array) (*tensor.Array, error) { return ops.Expm1InPlace(x) }

// Log computes the natural logarithm elementwise.
func Log(x *tensor.Array) (*tensor.Array, error) { return ops.Log(x) }

// LogInto writes the natural logarithm of x into dst.
func LogInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.LogInto(dst, x) }

// LogInPlace computes the natural logarithm in place.
func LogInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.LogInPlace(x) }

// Log10 computes the base-10 logarithm elementwise.
func Log10(x *tensor.Array) (*tensor.Array, error) { return ops.Log10(x) }

// Log10Into writes the base-10 logarithm of x into dst.
func Log10Into(dst, x *tensor.Array) (*tensor.Array, error) { return ops.Log10Into(dst, x) }

// Log10InPlace computes the base-10 logarithm in place.
func Log10InPlace(x *tensor.Array) (*tensor.Array, error) { return ops.Log10InPlace(x) }

// Log1p computes log(1+x) elementwise, accurate for small x.
func Log1p(x *tensor.Array) (*tensor.Array, error) { return ops.Log1p(x) }

// Log1pInto writes log(1+x) into dst.
func Log1pInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.Log1pInto(dst, x) }

// Log1pInPlace computes log(1+x) in place.
func Log1pInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.Log1pInPlace(x) }

// Log2 computes the base-2 logarithm elementwise.
func Log2(x *tensor.Array) (*tensor.Array, error) { return ops.Log2(x) }

// Log2Into writes the base-2 logarithm of x into dst.
func Log2Into(dst, x *tensor.Array) (*tensor.Array, error) { return ops.Log2Into(dst, x) }

// Log2InPlace computes the base-2 logarithm in place.
func Log2InPlace(x *tensor.Array) (*tensor.Array, error) { return ops.Log2InPlace(x) }

// Reciprocal computes 1/x elementwise.
func Reciprocal(x *tensor.Array) (*tensor.Array, error) { return ops.Reciprocal(x) }

// ReciprocalInto writes 1/x into dst.
func ReciprocalInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.ReciprocalInto(dst, x) }

// ReciprocalInPlace computes 1/x in place.
func ReciprocalInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.ReciprocalInPlace(x) }

// Rsqrt computes the reciprocal square root elementwise.
func Rsqrt(x *tensor.Array) (*tensor.Array, error) { return ops.Rsqrt(x) }

// RsqrtInto writes the reciprocal square root of x into dst.
func RsqrtInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.RsqrtInto(dst, x) }

// RsqrtInPlace computes the reciprocal square root in place.
func RsqrtInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.RsqrtInPlace(x) }

// Sigmoid computes the logistic function 1/(1+exp(-x)) elementwise.
func Sigmoid(x *tensor.Array) (*tensor.Array, error) { return ops.Sigmoid(x) }

// SigmoidInto writes the logistic function of x into dst.
func SigmoidInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.SigmoidInto(dst, x) }

// SigmoidInPlace computes the logistic function in place.
func SigmoidInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.SigmoidInPlace(x) }

// Sin computes the sine elementwise.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{0, math.Pi / 2}, tensor.Shape{2}, tensor.CPU)
//	y, _ := ops.Sin(x) // [0, 1]
func Sin(x *tensor.Array) (*tensor.Array, error) { return ops.Sin(x) }

// SinInto writes the sine of x into dst.
func SinInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.SinInto(dst, x) }

// SinInPlace computes the sine in place.
func SinInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.SinInPlace(x) }

// Sinh computes the hyperbolic sine elementwise.
func Sinh(x *tensor.Array) (*tensor.Array, error) { return ops.Sinh(x) }

// SinhInto writes the hyperbolic sine of x into dst.
func SinhInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.SinhInto(dst, x) }

// SinhInPlace computes the hyperbolic sine in place.
func SinhInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.SinhInPlace(x) }

// Sqrt computes the square root elementwise.
func Sqrt(x *tensor.Array) (*tensor.Array, error) { return ops.Sqrt(x) }

// SqrtInto writes the square root of x into dst.
func SqrtInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.SqrtInto(dst, x) }

// SqrtInPlace computes the square root in place.
func SqrtInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.SqrtInPlace(x) }

// Tan computes the tangent elementwise.
func Tan(x *tensor.Array) (*tensor.Array, error) { return ops.Tan(x) }

// TanInto writes the tangent of x into dst.
func TanInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.TanInto(dst, x) }

// TanInPlace computes the tangent in place.
func TanInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.TanInPlace(x) }

// Tanh computes the hyperbolic tangent elementwise.
func Tanh(x *tensor.Array) (*tensor.Array, error) { return ops.Tanh(x) }

// TanhInto writes the hyperbolic tangent of x into dst.
func TanhInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.TanhInto(dst, x) }

// TanhInPlace computes the hyperbolic tangent in place.
func TanhInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.TanhInPlace(x) }
