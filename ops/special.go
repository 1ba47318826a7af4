// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/stride-ml/stride/internal/ops"
	"github.com/stride-ml/stride/tensor"
)

// Erf computes the Gauss error function elementwise.
func Erf(x *tensor.Array) (*tensor.Array, error) { return ops.Erf(x) }

// ErfInto writes the error function of x into dst.
func ErfInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.ErfInto(dst, x) }

// ErfInPlace computes the error function in place.
func ErfInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.ErfInPlace(x) }

// Erfc computes the complementary error function 1-erf(x) elementwise.
func Erfc(x *tensor.Array) (*tensor.Array, error) { return ops.Erfc(x) }

// ErfcInto writes the complementary error function of x into dst.
func ErfcInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.ErfcInto(dst, x) }

// ErfcInPlace computes the complementary error function in place.
func ErfcInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.ErfcInPlace(x) }

// Erfinv computes the inverse error function elementwise. Defined on
// (-1, 1); the boundary values map to -Inf and +Inf.
func Erfinv(x *tensor.Array) (*tensor.Array, error) { return ops.Erfinv(x) }

// ErfinvInto writes the inverse error function of x into dst.
func ErfinvInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.ErfinvInto(dst, x) }

// ErfinvInPlace computes the inverse error function in place.
func ErfinvInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.ErfinvInPlace(x) }

// Lgamma computes the natural logarithm of the absolute value of the
// gamma function elementwise.
func Lgamma(x *tensor.Array) (*tensor.Array, error) { return ops.Lgamma(x) }

// LgammaInto writes the log-gamma of x into dst.
func LgammaInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.LgammaInto(dst, x) }

// LgammaInPlace computes the log-gamma in place.
func LgammaInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.LgammaInPlace(x) }

// Digamma computes the logarithmic derivative of the gamma function
// elementwise.
func Digamma(x *tensor.Array) (*tensor.Array, error) { return ops.Digamma(x) }

// DigammaInto writes the digamma of x into dst.
func DigammaInto(dst, x *tensor.Array) (*tensor.Array, error) { return ops.DigammaInto(dst, x) }

// DigammaInPlace computes the digamma in place.
func DigammaInPlace(x *tensor.Array) (*tensor.Array, error) { return ops.DigammaInPlace(x) }

// Polygamma computes the n-th derivative of the digamma function
// elementwise. Order 0 is digamma itself. Negative orders are rejected.
func Polygamma(n int64, x *tensor.Array) (*tensor.Array, error) { return ops.Polygamma(n, x) }

// PolygammaInto writes the n-th polygamma of x into dst.
func PolygammaInto(dst, x *tensor.Array, n int64) (*tensor.Array, error) {
	return ops.PolygammaInto(dst, x, n)
}

// PolygammaInPlace computes the n-th polygamma in place.
func PolygammaInPlace(x *tensor.Array, n int64) (*tensor.Array, error) {
	return ops.PolygammaInPlace(x, n)
}

// Mvlgamma computes the multivariate log-gamma function with multiplicity
// p elementwise:
//
//	mvlgamma(x, p) = p(p-1)/4 * log(pi) + sum_{i=0}^{p-1} lgamma(x - i/2)
//
// Every element of x must be greater than (p-1)/2 and p must be at
// least 1.
func Mvlgamma(x *tensor.Array, p int) (*tensor.Array, error) { return ops.Mvlgamma(x, p) }

// MvlgammaInto writes the multivariate log-gamma of x into dst.
func MvlgammaInto(dst, x *tensor.Array, p int) (*tensor.Array, error) {
	return ops.MvlgammaInto(dst, x, p)
}

// MvlgammaInPlace computes the multivariate log-gamma in place.
func MvlgammaInPlace(x *tensor.Array, p int) (*tensor.Array, error) {
	return ops.MvlgammaInPlace(x, p)
}
