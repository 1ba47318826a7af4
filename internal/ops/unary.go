package ops

import (
	"fmt"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// unaryOut is the write-into-output primitive every unary form reduces to:
// domain check, kernel lookup, plan build, kernel run. dst may be nil to
// allocate the result.
func unaryOut(op dispatch.Op, d domain, dst, x *tensor.Array, args ...tensor.Scalar) (*tensor.Array, error) {
	if err := checkDomain(string(op), x.DType(), d); err != nil {
		return nil, err
	}
	kernel, err := Table().Lookup(op, x.Device())
	if err != nil {
		return nil, err
	}
	plan, err := tensor.BuildUnary(dst, x)
	if err != nil {
		return nil, err
	}
	if err := kernel(plan, args...); err != nil {
		return nil, err
	}
	return plan.Output(), nil
}

// unary allocates a fresh result array.
func unary(op dispatch.Op, d domain, x *tensor.Array, args ...tensor.Scalar) (*tensor.Array, error) {
	return unaryOut(op, d, nil, x, args...)
}

// unaryInPlace writes the result back into x.
func unaryInPlace(op dispatch.Op, d domain, x *tensor.Array, args ...tensor.Scalar) (*tensor.Array, error) {
	return unaryOut(op, d, x, x, args...)
}

// unaryComplexToFloatOut implements the result dtype policy for operations
// that map complex inputs to real results. A complex input with a real
// destination runs the kernel complex-to-complex into a scratch array, then
// copies the real component into the destination, resizing it to match.
// Every other combination takes the direct path, so an in-place call on a
// complex array keeps the complex dtype.
func unaryComplexToFloatOut(op dispatch.Op, d domain, dst, x *tensor.Array, args ...tensor.Scalar) (*tensor.Array, error) {
	if dst == nil || !x.DType().IsComplex() || dst.DType().IsComplex() {
		return unaryOut(op, d, dst, x, args...)
	}

	if err := checkDomain(string(op), x.DType(), d); err != nil {
		return nil, err
	}
	floatType := tensor.ValueType(x.DType())
	if !tensor.CanCast(floatType, dst.DType()) {
		return nil, fmt.Errorf("%w: result dtype %s cannot hold %s values",
			tensor.ErrInvalidCast, dst.DType(), floatType)
	}
	kernel, err := Table().Lookup(op, x.Device())
	if err != nil {
		return nil, err
	}
	scratch, err := tensor.BuildUnary(nil, x, tensor.WithoutOverlapCheck())
	if err != nil {
		return nil, err
	}
	if err := kernel(scratch, args...); err != nil {
		return nil, err
	}
	re, err := realComponent(scratch.Output())
	if err != nil {
		return nil, err
	}
	if err := dst.Resize(scratch.Output().Shape()); err != nil {
		return nil, err
	}
	return copyInto(dst, re)
}

// unaryComplexToFloat is the allocating form of the complex-to-real policy:
// a complex input produces a fresh result of the matching float dtype.
func unaryComplexToFloat(op dispatch.Op, d domain, x *tensor.Array, args ...tensor.Scalar) (*tensor.Array, error) {
	if !x.DType().IsComplex() {
		return unary(op, d, x, args...)
	}
	dst, err := tensor.New(tensor.Shape{0}, tensor.ValueType(x.DType()), x.Device())
	if err != nil {
		return nil, err
	}
	return unaryComplexToFloatOut(op, d, dst, x, args...)
}

// realComponent views the real parts of a complex array without copying.
func realComponent(x *tensor.Array) (*tensor.Array, error) {
	v, err := x.ViewAsReal()
	if err != nil {
		return nil, err
	}
	defer v.Release()
	return v.Select(-1, 0)
}

// copyInto copies src into dst elementwise, converting dtype as it stores.
func copyInto(dst, src *tensor.Array) (*tensor.Array, error) {
	kernel, err := Table().Lookup(dispatch.OpCopy, src.Device())
	if err != nil {
		return nil, err
	}
	plan, err := tensor.BuildUnary(dst, src, tensor.WithoutSameDType())
	if err != nil {
		return nil, err
	}
	if err := kernel(plan); err != nil {
		return nil, err
	}
	return plan.Output(), nil
}

// freshCopy materializes a contiguous copy of src.
func freshCopy(src *tensor.Array) (*tensor.Array, error) {
	kernel, err := Table().Lookup(dispatch.OpCopy, src.Device())
	if err != nil {
		return nil, err
	}
	plan, err := tensor.BuildUnary(nil, src, tensor.WithoutOverlapCheck())
	if err != nil {
		return nil, err
	}
	if err := kernel(plan); err != nil {
		return nil, err
	}
	return plan.Output(), nil
}

// binaryOut builds the two-input plan for a support operation and runs it.
func binaryOut(op dispatch.Op, dst, x, y *tensor.Array) (*tensor.Array, error) {
	kernel, err := Table().Lookup(op, x.Device())
	if err != nil {
		return nil, err
	}
	plan, err := tensor.Build(dst, []*tensor.Array{x, y})
	if err != nil {
		return nil, err
	}
	if err := kernel(plan); err != nil {
		return nil, err
	}
	return plan.Output(), nil
}
