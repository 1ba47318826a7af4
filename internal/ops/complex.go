package ops

import (
	"fmt"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// Abs computes the absolute value elementwise. A complex input produces its
// magnitude in a real array of the matching float dtype.
func Abs(x *tensor.Array) (*tensor.Array, error) {
	return unaryComplexToFloat(dispatch.OpAbs, numericOnly, x)
}

// AbsInto writes the absolute value of x into dst. A complex input with a
// real dst stores magnitudes, provided the magnitude dtype can be cast into
// the dtype of dst.
func AbsInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryComplexToFloatOut(dispatch.OpAbs, numericOnly, dst, x)
}

// AbsInPlace computes the absolute value in place. A complex array keeps its
// complex dtype, holding the magnitude in the real component.
func AbsInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpAbs, numericOnly, x)
}

// Angle computes the phase angle elementwise: the argument of each complex
// element, or atan2(0, x) for real input, which is 0 for non-negative values
// and pi for negative ones. A complex input produces a real result of the
// matching float dtype.
func Angle(x *tensor.Array) (*tensor.Array, error) {
	return unaryComplexToFloat(dispatch.OpAngle, floatingOrComplex, x)
}

// AngleInto writes the phase angle of x into dst.
func AngleInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryComplexToFloatOut(dispatch.OpAngle, floatingOrComplex, dst, x)
}

// AngleInPlace computes the phase angle in place. A complex array keeps its
// complex dtype, holding the angle in the real component.
func AngleInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpAngle, floatingOrComplex, x)
}

// Conj computes the complex conjugate elementwise. Real input passes through
// unchanged.
func Conj(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpConj, numericOnly, x) }

// ConjInto writes the conjugate of x into dst.
func ConjInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpConj, numericOnly, dst, x)
}

// ConjInPlace conjugates each element in place.
func ConjInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpConj, numericOnly, x)
}

// Real returns a view of the real components of a complex array. The view
// shares storage with x, so writes through it are visible in x. Non-complex
// inputs are rejected.
func Real(x *tensor.Array) (*tensor.Array, error) { return componentView("real", x, 0) }

// Imag returns a view of the imaginary components of a complex array,
// sharing storage with x. Non-complex inputs are rejected.
func Imag(x *tensor.Array) (*tensor.Array, error) { return componentView("imag", x, 1) }

// componentView reinterprets a complex array as real pairs and selects one
// half. It never allocates or computes.
func componentView(name string, x *tensor.Array, idx int) (*tensor.Array, error) {
	if !x.DType().IsComplex() {
		return nil, fmt.Errorf("%w: %s expects a complex array, got %s",
			tensor.ErrUnsupportedDtype, name, x.DType())
	}
	v, err := x.ViewAsReal()
	if err != nil {
		return nil, err
	}
	defer v.Release()
	return v.Select(-1, idx)
}
