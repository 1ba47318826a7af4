// Package tensor provides the core N-dimensional array type for the Stride
// numeric library: shapes, strides, data types, devices, scalars, and the
// iteration plans elementwise kernels consume.
package tensor

import "fmt"

// Elem is a type constraint covering all supported element types.
type Elem interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool | ~complex64 | ~complex128
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
	Complex64
	Complex128
)

// Size returns the byte size of a single element.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64, Complex64:
		return 8
	case Complex128:
		return 16
	case Uint8, Bool:
		return 1
	default:
		panic(fmt.Sprintf("unknown data type: %d", dt))
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Uint8:
		return "Uint8"
	case Bool:
		return "Bool"
	case Complex64:
		return "Complex64"
	case Complex128:
		return "Complex128"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// IsFloating reports whether dt is a real floating-point type.
func (dt DataType) IsFloating() bool {
	return dt == Float32 || dt == Float64
}

// IsComplex reports whether dt is a complex type.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsInteger reports whether dt is an integer type. Bool is not an integer.
func (dt DataType) IsInteger() bool {
	return dt == Int32 || dt == Int64 || dt == Uint8
}

// ValueType returns the dtype carrying the magnitude of dt: complex types
// map to their component float type, every other type maps to itself.
func ValueType(dt DataType) DataType {
	switch dt {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return dt
	}
}

// CanCast reports whether values of dtype from may be stored into an array
// of dtype to. Casts that lose the value category are forbidden: complex to
// real, floating point to integral, and anything but bool to bool.
func CanCast(from, to DataType) bool {
	if from.IsComplex() && !to.IsComplex() {
		return false
	}
	if from.IsFloating() && to.IsInteger() {
		return false
	}
	if from != Bool && to == Bool {
		return false
	}
	return true
}

// DataTypeOf returns the DataType corresponding to a static element type.
func DataTypeOf[T Elem]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic(fmt.Sprintf("unsupported element type %T", zero))
	}
}
