package ops

import (
	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// Ceil rounds each element up to the nearest integer. Complex inputs are
// rejected because ordering is undefined for them.
func Ceil(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpCeil, floatingOnly, x) }

// CeilInto writes the ceiling of x into dst.
func CeilInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpCeil, floatingOnly, dst, x)
}

// CeilInPlace rounds each element up in place.
func CeilInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpCeil, floatingOnly, x)
}

// Floor rounds each element down to the nearest integer.
func Floor(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpFloor, floatingOnly, x) }

// FloorInto writes the floor of x into dst.
func FloorInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpFloor, floatingOnly, dst, x)
}

// FloorInPlace rounds each element down in place.
func FloorInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpFloor, floatingOnly, x)
}

// Round rounds each element to the nearest integer, ties to even.
func Round(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpRound, floatingOnly, x) }

// RoundInto writes the rounded value of x into dst.
func RoundInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpRound, floatingOnly, dst, x)
}

// RoundInPlace rounds each element in place, ties to even.
func RoundInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpRound, floatingOnly, x)
}

// Trunc drops the fractional part of each element, rounding toward zero.
func Trunc(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpTrunc, floatingOnly, x) }

// TruncInto writes the truncated value of x into dst.
func TruncInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpTrunc, floatingOnly, dst, x)
}

// TruncInPlace truncates each element in place.
func TruncInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpTrunc, floatingOnly, x)
}

// Frac computes the fractional portion of each element, keeping its sign:
// frac(x) = x - trunc(x).
func Frac(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpFrac, floatingOnly, x) }

// FracInto writes the fractional portion of x into dst.
func FracInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpFrac, floatingOnly, dst, x)
}

// FracInPlace computes the fractional portion in place.
func FracInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpFrac, floatingOnly, x)
}

// Sign computes -1, 0 or 1 for each element by comparison against zero.
// NaN maps to NaN rather than to a fixed sign, so applying Sign twice is
// not the same as applying it once on NaN inputs. Complex inputs are
// rejected; bool passes through unchanged.
func Sign(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpSign, realOnly, x) }

// SignInto writes the sign of x into dst.
func SignInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpSign, realOnly, dst, x)
}

// SignInPlace computes the sign in place.
func SignInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpSign, realOnly, x)
}

// Neg computes the arithmetic negation elementwise. Bool inputs are
// rejected; use LogicalNot to invert truth values.
func Neg(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpNeg, numericOnly, x) }

// NegInto writes the negation of x into dst.
func NegInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpNeg, numericOnly, dst, x)
}

// NegInPlace negates each element in place.
func NegInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpNeg, numericOnly, x)
}
