package ops

import (
	"fmt"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// Clamp limits every element to the closed range [min, max]. Either bound
// may be nil to leave that side open, but not both. NaN elements pass
// through unchanged, and complex input is rejected because it has no order.
func Clamp(x *tensor.Array, min, max *tensor.Scalar) (*tensor.Array, error) {
	return clampOut(nil, x, min, max)
}

// ClampInto writes the clamped values of x into dst.
func ClampInto(dst, x *tensor.Array, min, max *tensor.Scalar) (*tensor.Array, error) {
	return clampOut(dst, x, min, max)
}

// ClampInPlace clamps each element in place.
func ClampInPlace(x *tensor.Array, min, max *tensor.Scalar) (*tensor.Array, error) {
	return clampOut(x, x, min, max)
}

func clampOut(dst, x *tensor.Array, min, max *tensor.Scalar) (*tensor.Array, error) {
	switch {
	case min != nil && max != nil:
		return unaryOut(dispatch.OpClamp, realExceptBool, dst, x, *min, *max)
	case min != nil:
		return unaryOut(dispatch.OpClampMin, realExceptBool, dst, x, *min)
	case max != nil:
		return unaryOut(dispatch.OpClampMax, realExceptBool, dst, x, *max)
	default:
		return nil, fmt.Errorf("%w: clamp requires at least one of min or max",
			tensor.ErrInvalidArgument)
	}
}

// ClampMin raises every element below min up to min.
func ClampMin(x *tensor.Array, min tensor.Scalar) (*tensor.Array, error) {
	return unary(dispatch.OpClampMin, realExceptBool, x, min)
}

// ClampMinInto writes the lower-clamped values of x into dst.
func ClampMinInto(dst, x *tensor.Array, min tensor.Scalar) (*tensor.Array, error) {
	return unaryOut(dispatch.OpClampMin, realExceptBool, dst, x, min)
}

// ClampMinInPlace applies the lower bound in place.
func ClampMinInPlace(x *tensor.Array, min tensor.Scalar) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpClampMin, realExceptBool, x, min)
}

// ClampMax lowers every element above max down to max.
func ClampMax(x *tensor.Array, max tensor.Scalar) (*tensor.Array, error) {
	return unary(dispatch.OpClampMax, realExceptBool, x, max)
}

// ClampMaxInto writes the upper-clamped values of x into dst.
func ClampMaxInto(dst, x *tensor.Array, max tensor.Scalar) (*tensor.Array, error) {
	return unaryOut(dispatch.OpClampMax, realExceptBool, dst, x, max)
}

// ClampMaxInPlace applies the upper bound in place.
func ClampMaxInPlace(x *tensor.Array, max tensor.Scalar) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpClampMax, realExceptBool, x, max)
}
