package tensor

import "fmt"

// Scalar is a dtype-tagged immediate value: the argument form for operation
// parameters such as clamp bounds, and the bridge from Go constants to
// zero-rank arrays for broadcasting. Construct scalars with FloatScalar,
// IntScalar, BoolScalar, or ComplexScalar.
type Scalar struct {
	kind DataType
	b    bool
	i    int64
	f    float64
	c    complex128
}

// FloatScalar wraps a float64 value.
func FloatScalar(v float64) Scalar { return Scalar{kind: Float64, f: v} }

// IntScalar wraps an int64 value.
func IntScalar(v int64) Scalar { return Scalar{kind: Int64, i: v} }

// BoolScalar wraps a bool value.
func BoolScalar(v bool) Scalar { return Scalar{kind: Bool, b: v} }

// ComplexScalar wraps a complex128 value.
func ComplexScalar(v complex128) Scalar { return Scalar{kind: Complex128, c: v} }

// Kind returns the dtype category the scalar was constructed with: Float64,
// Int64, Bool, or Complex128.
func (s Scalar) Kind() DataType { return s.kind }

// IsComplex reports whether the scalar holds a complex value.
func (s Scalar) IsComplex() bool { return s.kind == Complex128 }

// Float64 returns the value widened to float64. Panics for complex scalars.
func (s Scalar) Float64() float64 {
	if s.kind == Complex128 {
		panic("cannot convert complex scalar to float64")
	}
	return s.floatValue()
}

// Int64 returns the value as an int64, truncating floats. Panics for
// complex scalars.
func (s Scalar) Int64() int64 {
	if s.kind == Complex128 {
		panic("cannot convert complex scalar to int64")
	}
	return s.intValue()
}

// Bool returns the stored bool. Panics unless the scalar was constructed
// with BoolScalar.
func (s Scalar) Bool() bool {
	if s.kind != Bool {
		panic(fmt.Sprintf("cannot convert %s scalar to bool", s.kind))
	}
	return s.b
}

// Complex128 returns the value as a complex128. Real scalars are given a
// zero imaginary part.
func (s Scalar) Complex128() complex128 {
	if s.kind == Complex128 {
		return s.c
	}
	return complex(s.floatValue(), 0)
}

func (s Scalar) floatValue() float64 {
	switch s.kind {
	case Int64:
		return float64(s.i)
	case Bool:
		if s.b {
			return 1
		}
		return 0
	case Complex128:
		return real(s.c)
	default:
		return s.f
	}
}

func (s Scalar) intValue() int64 {
	switch s.kind {
	case Int64:
		return s.i
	case Bool:
		if s.b {
			return 1
		}
		return 0
	case Complex128:
		return int64(real(s.c))
	default:
		return int64(s.f)
	}
}

func (s Scalar) boolValue() bool {
	switch s.kind {
	case Int64:
		return s.i != 0
	case Bool:
		return s.b
	case Complex128:
		return s.c != 0
	default:
		return s.f != 0
	}
}

// ToArray materializes the scalar as a zero-rank array of the given dtype,
// the form binary kernels broadcast against.
func (s Scalar) ToArray(dtype DataType, device Device) (*Array, error) {
	a, err := New(Shape{}, dtype, device)
	if err != nil {
		return nil, err
	}
	if err := fillScalar(a, s); err != nil {
		a.Release()
		return nil, err
	}
	return a, nil
}

// fillScalar sets every element of a to the scalar value converted to the
// array's dtype. A complex value with a nonzero imaginary part cannot land
// in a real array.
func fillScalar(a *Array, s Scalar) error {
	if s.kind == Complex128 && !a.dtype.IsComplex() && imag(s.c) != 0 {
		return fmt.Errorf("%w: complex value %v cannot be converted to %s", ErrInvalidCast, s.c, a.dtype)
	}
	switch a.dtype {
	case Float32:
		fill(Data[float32](a), float32(s.floatValue()))
	case Float64:
		fill(Data[float64](a), s.floatValue())
	case Int32:
		fill(Data[int32](a), int32(s.intValue()))
	case Int64:
		fill(Data[int64](a), s.intValue())
	case Uint8:
		fill(Data[uint8](a), uint8(s.intValue()))
	case Bool:
		fill(Data[bool](a), s.boolValue())
	case Complex64:
		fill(Data[complex64](a), complex64(s.Complex128()))
	case Complex128:
		fill(Data[complex128](a), s.Complex128())
	}
	return nil
}

func fill[T Elem](data []T, v T) {
	for i := range data {
		data[i] = v
	}
}
