package ops

import (
	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// The transcendental operations accept real floating inputs only. Each op
// comes in three forms sharing one primitive: the allocating form, the
// write-into-output form, and the in-place form.

// Acos computes the arccosine elementwise.
func Acos(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpAcos, floatingOnly, x) }

// AcosInto writes the arccosine of x into dst.
func AcosInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpAcos, floatingOnly, dst, x)
}

// AcosInPlace computes the arccosine in place.
func AcosInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpAcos, floatingOnly, x)
}

// Acosh computes the inverse hyperbolic cosine elementwise.
func Acosh(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpAcosh, floatingOnly, x) }

// AcoshInto writes the inverse hyperbolic cosine of x into dst.
func AcoshInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpAcosh, floatingOnly, dst, x)
}

// AcoshInPlace computes the inverse hyperbolic cosine in place.
func AcoshInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpAcosh, floatingOnly, x)
}

// Asin computes the arcsine elementwise.
func Asin(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpAsin, floatingOnly, x) }

// AsinInto writes the arcsine of x into dst.
func AsinInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpAsin, floatingOnly, dst, x)
}

// AsinInPlace computes the arcsine in place.
func AsinInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpAsin, floatingOnly, x)
}

// Asinh computes the inverse hyperbolic sine elementwise.
func Asinh(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpAsinh, floatingOnly, x) }

// AsinhInto writes the inverse hyperbolic sine of x into dst.
func AsinhInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpAsinh, floatingOnly, dst, x)
}

// AsinhInPlace computes the inverse hyperbolic sine in place.
func AsinhInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpAsinh, floatingOnly, x)
}

// Atan computes the arctangent elementwise.
func Atan(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpAtan, floatingOnly, x) }

// AtanInto writes the arctangent of x into dst.
func AtanInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpAtan, floatingOnly, dst, x)
}

// AtanInPlace computes the arctangent in place.
func AtanInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpAtan, floatingOnly, x)
}

// Atanh computes the inverse hyperbolic tangent elementwise.
func Atanh(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpAtanh, floatingOnly, x) }

// AtanhInto writes the inverse hyperbolic tangent of x into dst.
func AtanhInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpAtanh, floatingOnly, dst, x)
}

// AtanhInPlace computes the inverse hyperbolic tangent in place.
func AtanhInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpAtanh, floatingOnly, x)
}

// Cos computes the cosine elementwise.
func Cos(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpCos, floatingOnly, x) }

// CosInto writes the cosine of x into dst.
func CosInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpCos, floatingOnly, dst, x)
}

// CosInPlace computes the cosine in place.
func CosInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpCos, floatingOnly, x)
}

// Cosh computes the hyperbolic cosine elementwise.
func Cosh(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpCosh, floatingOnly, x) }

// CoshInto writes the hyperbolic cosine of x into dst.
func CoshInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpCosh, floatingOnly, dst, x)
}

// CoshInPlace computes the hyperbolic cosine in place.
func CoshInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpCosh, floatingOnly, x)
}

// Exp computes e raised to each element.
func Exp(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpExp, floatingOnly, x) }

// ExpInto writes the exponential of x into dst.
func ExpInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpExp, floatingOnly, dst, x)
}

// ExpInPlace computes the exponential in place.
func ExpInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpExp, floatingOnly, x)
}

// Expm1 computes exp(x)-1 elementwise, accurate near zero.
func Expm1(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpExpm1, floatingOnly, x) }

// Expm1Into writes exp(x)-1 into dst.
func Expm1Into(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpExpm1, floatingOnly, dst, x)
}

// Expm1InPlace computes exp(x)-1 in place.
func Expm1InPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpExpm1, floatingOnly, x)
}

// Log computes the natural logarithm elementwise.
func Log(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpLog, floatingOnly, x) }

// LogInto writes the natural logarithm of x into dst.
func LogInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpLog, floatingOnly, dst, x)
}

// LogInPlace computes the natural logarithm in place.
func LogInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpLog, floatingOnly, x)
}

// Log10 computes the base-10 logarithm elementwise.
func Log10(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpLog10, floatingOnly, x) }

// Log10Into writes the base-10 logarithm of x into dst.
func Log10Into(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpLog10, floatingOnly, dst, x)
}

// Log10InPlace computes the base-10 logarithm in place.
func Log10InPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpLog10, floatingOnly, x)
}

// Log1p computes log(1+x) elementwise, accurate near zero.
func Log1p(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpLog1p, floatingOnly, x) }

// Log1pInto writes log(1+x) into dst.
func Log1pInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpLog1p, floatingOnly, dst, x)
}

// Log1pInPlace computes log(1+x) in place.
func Log1pInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpLog1p, floatingOnly, x)
}

// Log2 computes the base-2 logarithm elementwise.
func Log2(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpLog2, floatingOnly, x) }

// Log2Into writes the base-2 logarithm of x into dst.
func Log2Into(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpLog2, floatingOnly, dst, x)
}

// Log2InPlace computes the base-2 logarithm in place.
func Log2InPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpLog2, floatingOnly, x)
}

// Reciprocal computes 1/x elementwise.
func Reciprocal(x *tensor.Array) (*tensor.Array, error) {
	return unary(dispatch.OpReciprocal, floatingOnly, x)
}

// ReciprocalInto writes 1/x into dst.
func ReciprocalInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpReciprocal, floatingOnly, dst, x)
}

// ReciprocalInPlace computes 1/x in place.
func ReciprocalInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpReciprocal, floatingOnly, x)
}

// Rsqrt computes the reciprocal square root elementwise.
func Rsqrt(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpRsqrt, floatingOnly, x) }

// RsqrtInto writes the reciprocal square root of x into dst.
func RsqrtInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpRsqrt, floatingOnly, dst, x)
}

// RsqrtInPlace computes the reciprocal square root in place.
func RsqrtInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpRsqrt, floatingOnly, x)
}

// Sigmoid computes the logistic function elementwise.
func Sigmoid(x *tensor.Array) (*tensor.Array, error) {
	return unary(dispatch.OpSigmoid, floatingOnly, x)
}

// SigmoidInto writes the logistic function of x into dst.
func SigmoidInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpSigmoid, floatingOnly, dst, x)
}

// SigmoidInPlace computes the logistic function in place.
func SigmoidInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpSigmoid, floatingOnly, x)
}

// Sin computes the sine elementwise.
func Sin(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpSin, floatingOnly, x) }

// SinInto writes the sine of x into dst.
func SinInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpSin, floatingOnly, dst, x)
}

// SinInPlace computes the sine in place.
func SinInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpSin, floatingOnly, x)
}

// Sinh computes the hyperbolic sine elementwise.
func Sinh(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpSinh, floatingOnly, x) }

// SinhInto writes the hyperbolic sine of x into dst.
func SinhInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpSinh, floatingOnly, dst, x)
}

// SinhInPlace computes the hyperbolic sine in place.
func SinhInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpSinh, floatingOnly, x)
}

// Sqrt computes the square root elementwise.
func Sqrt(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpSqrt, floatingOnly, x) }

// SqrtInto writes the square root of x into dst.
func SqrtInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpSqrt, floatingOnly, dst, x)
}

// SqrtInPlace computes the square root in place.
func SqrtInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpSqrt, floatingOnly, x)
}

// Tan computes the tangent elementwise.
func Tan(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpTan, floatingOnly, x) }

// TanInto writes the tangent of x into dst.
func TanInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpTan, floatingOnly, dst, x)
}

// TanInPlace computes the tangent in place.
func TanInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpTan, floatingOnly, x)
}

// Tanh computes the hyperbolic tangent elementwise.
func Tanh(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpTanh, floatingOnly, x) }

// TanhInto writes the hyperbolic tangent of x into dst.
func TanhInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpTanh, floatingOnly, dst, x)
}

// TanhInPlace computes the hyperbolic tangent in place.
func TanhInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpTanh, floatingOnly, x)
}
