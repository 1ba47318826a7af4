package ops

import (
	"math"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// Angle unit conversions are plain scalar multiplies. The factors are
// untyped constants so each dtype gets the closest representable value.
const (
	degPerRad = 180 / math.Pi
	radPerDeg = math.Pi / 180
)

// Rad2deg converts each element from radians to degrees.
func Rad2deg(x *tensor.Array) (*tensor.Array, error) {
	return scaleOut("rad2deg", nil, x, degPerRad)
}

// Rad2degInto writes the degree values of x into dst.
func Rad2degInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return scaleOut("rad2deg", dst, x, degPerRad)
}

// Rad2degInPlace converts radians to degrees in place.
func Rad2degInPlace(x *tensor.Array) (*tensor.Array, error) {
	return scaleOut("rad2deg", x, x, degPerRad)
}

// Deg2rad converts each element from degrees to radians.
func Deg2rad(x *tensor.Array) (*tensor.Array, error) {
	return scaleOut("deg2rad", nil, x, radPerDeg)
}

// Deg2radInto writes the radian values of x into dst.
func Deg2radInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return scaleOut("deg2rad", dst, x, radPerDeg)
}

// Deg2radInPlace converts degrees to radians in place.
func Deg2radInPlace(x *tensor.Array) (*tensor.Array, error) {
	return scaleOut("deg2rad", x, x, radPerDeg)
}

func scaleOut(name string, dst, x *tensor.Array, factor float64) (*tensor.Array, error) {
	if err := checkDomain(name, x.DType(), floatingOnly); err != nil {
		return nil, err
	}
	f, err := tensor.FloatScalar(factor).ToArray(x.DType(), x.Device())
	if err != nil {
		return nil, err
	}
	defer f.Release()
	return binaryOut(dispatch.OpMul, dst, x, f)
}

// Square multiplies each element by itself. Unlike a float power it is
// exact for integers and defined for complex input.
func Square(x *tensor.Array) (*tensor.Array, error) {
	return squareOut(nil, x)
}

// SquareInto writes the square of x into dst.
func SquareInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return squareOut(dst, x)
}

// SquareInPlace squares each element in place.
func SquareInPlace(x *tensor.Array) (*tensor.Array, error) {
	return squareOut(x, x)
}

func squareOut(dst, x *tensor.Array) (*tensor.Array, error) {
	if err := checkDomain("square", x.DType(), numericOnly); err != nil {
		return nil, err
	}
	return binaryOut(dispatch.OpMul, dst, x, x)
}
