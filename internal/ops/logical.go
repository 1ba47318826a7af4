package ops

import (
	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// LogicalNot inverts the truth value of each element and returns a bool
// array. An element is truthy when it is non-zero; NaN counts as truthy.
// Every dtype is accepted.
func LogicalNot(x *tensor.Array) (*tensor.Array, error) {
	return logicalNotOut(nil, x)
}

// LogicalNotInto writes inverted truth values into dst, stored as 0 and 1
// in whatever dtype dst carries.
func LogicalNotInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return logicalNotOut(dst, x)
}

// LogicalNotInPlace inverts truth values in place, keeping the dtype of x.
func LogicalNotInPlace(x *tensor.Array) (*tensor.Array, error) {
	return logicalNotOut(x, x)
}

// logicalNotOut accepts any input dtype and any output dtype, so it builds
// its plan without the dtype equality rule. A fresh result defaults to bool.
func logicalNotOut(dst, x *tensor.Array) (*tensor.Array, error) {
	kernel, err := Table().Lookup(dispatch.OpLogicalNot, x.Device())
	if err != nil {
		return nil, err
	}
	plan, err := tensor.BuildUnary(dst, x,
		tensor.WithDType(tensor.Bool), tensor.WithoutSameDType())
	if err != nil {
		return nil, err
	}
	if err := kernel(plan); err != nil {
		return nil, err
	}
	return plan.Output(), nil
}

// BitwiseNot flips every bit of each element. Bool input is negated
// logically. Floating and complex inputs are rejected.
func BitwiseNot(x *tensor.Array) (*tensor.Array, error) {
	return unary(dispatch.OpBitwiseNot, integerOrBool, x)
}

// BitwiseNotInto writes the bitwise complement of x into dst.
func BitwiseNotInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpBitwiseNot, integerOrBool, dst, x)
}

// BitwiseNotInPlace flips every bit in place.
func BitwiseNotInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpBitwiseNot, integerOrBool, x)
}
