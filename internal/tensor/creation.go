package tensor

import (
	"fmt"
	"math"
)

// FromSlice creates a contiguous array by copying data.
func FromSlice[T Elem](data []T, shape Shape, device Device) (*Array, error) {
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	a, err := New(shape, DataTypeOf[T](), device)
	if err != nil {
		return nil, err
	}
	copy(Data[T](a), data)
	return a, nil
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape, dtype DataType, device Device) (*Array, error) {
	return New(shape, dtype, device)
}

// Ones creates an array filled with ones.
func Ones(shape Shape, dtype DataType, device Device) (*Array, error) {
	return Full(shape, IntScalar(1), dtype, device)
}

// Full creates an array with every element set to value converted to dtype.
func Full(shape Shape, value Scalar, dtype DataType, device Device) (*Array, error) {
	a, err := New(shape, dtype, device)
	if err != nil {
		return nil, err
	}
	if err := fillScalar(a, value); err != nil {
		a.Release()
		return nil, err
	}
	return a, nil
}

// Arange creates a 1-dimensional array holding start, start+step, and so on
// up to but not including stop.
func Arange(start, stop, step float64, dtype DataType, device Device) (*Array, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: arange step must be nonzero", ErrInvalidArgument)
	}
	n := 0
	if (step > 0 && stop > start) || (step < 0 && stop < start) {
		n = int(math.Ceil((stop - start) / step))
	}
	a, err := New(Shape{n}, dtype, device)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case Float32:
		d := Data[float32](a)
		for i := 0; i < n; i++ {
			d[i] = float32(start + float64(i)*step)
		}
	case Float64:
		d := Data[float64](a)
		for i := 0; i < n; i++ {
			d[i] = start + float64(i)*step
		}
	case Int32:
		d := Data[int32](a)
		for i := 0; i < n; i++ {
			d[i] = int32(start + float64(i)*step)
		}
	case Int64:
		d := Data[int64](a)
		for i := 0; i < n; i++ {
			d[i] = int64(start + float64(i)*step)
		}
	case Uint8:
		d := Data[uint8](a)
		for i := 0; i < n; i++ {
			d[i] = uint8(start + float64(i)*step)
		}
	default:
		a.Release()
		return nil, fmt.Errorf("%w: arange is not implemented for %s", ErrUnsupportedDtype, dtype)
	}
	return a, nil
}
