package cpu

import (
	"fmt"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

func (b *Backend) registerLogical(tbl *dispatch.Table) {
	tbl.Register(dispatch.OpLogicalNot, tensor.CPU, b.logicalNotKernel())
}

// logicalNotKernel treats zero as false and everything else, NaN included,
// as true, storing the negation cast to the output dtype. Input and output
// dtypes are independent here, so the plan is built without the same-dtype
// rule.
func (b *Backend) logicalNotKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		read, err := truthReader(p.Input(0))
		if err != nil {
			return err
		}
		write, err := boolWriter(p.Output())
		if err != nil {
			return err
		}
		parallel.For(p.NumElements(), func(i int) {
			write(p.OutputOffset(i), !read(p.InputOffset(0, i)))
		}, b.cfg)
		return nil
	}
}

// truthReader returns a function mapping element offsets of a to truth
// values.
func truthReader(a *tensor.Array) (func(off int) bool, error) {
	switch a.DType() {
	case tensor.Float32:
		d := a.AsFloat32()
		return func(off int) bool { return d[off] != 0 }, nil
	case tensor.Float64:
		d := a.AsFloat64()
		return func(off int) bool { return d[off] != 0 }, nil
	case tensor.Int32:
		d := a.AsInt32()
		return func(off int) bool { return d[off] != 0 }, nil
	case tensor.Int64:
		d := a.AsInt64()
		return func(off int) bool { return d[off] != 0 }, nil
	case tensor.Uint8:
		d := a.AsUint8()
		return func(off int) bool { return d[off] != 0 }, nil
	case tensor.Bool:
		d := a.AsBool()
		return func(off int) bool { return d[off] }, nil
	case tensor.Complex64:
		d := a.AsComplex64()
		return func(off int) bool { return d[off] != 0 }, nil
	case tensor.Complex128:
		d := a.AsComplex128()
		return func(off int) bool { return d[off] != 0 }, nil
	default:
		return nil, fmt.Errorf("%w: logical_not is not implemented for %s", tensor.ErrUnsupportedDtype, a.DType())
	}
}

// boolWriter returns a function storing truth values into a at element
// offsets, cast to a's dtype.
func boolWriter(a *tensor.Array) (func(off int, v bool), error) {
	switch a.DType() {
	case tensor.Float32:
		d := a.AsFloat32()
		return func(off int, v bool) { d[off] = b2f[float32](v) }, nil
	case tensor.Float64:
		d := a.AsFloat64()
		return func(off int, v bool) { d[off] = b2f[float64](v) }, nil
	case tensor.Int32:
		d := a.AsInt32()
		return func(off int, v bool) { d[off] = b2f[int32](v) }, nil
	case tensor.Int64:
		d := a.AsInt64()
		return func(off int, v bool) { d[off] = b2f[int64](v) }, nil
	case tensor.Uint8:
		d := a.AsUint8()
		return func(off int, v bool) { d[off] = b2f[uint8](v) }, nil
	case tensor.Bool:
		d := a.AsBool()
		return func(off int, v bool) { d[off] = v }, nil
	case tensor.Complex64:
		d := a.AsComplex64()
		return func(off int, v bool) { d[off] = complex(b2f[float32](v), 0) }, nil
	case tensor.Complex128:
		d := a.AsComplex128()
		return func(off int, v bool) { d[off] = complex(b2f[float64](v), 0) }, nil
	default:
		return nil, fmt.Errorf("%w: logical_not cannot store into %s", tensor.ErrUnsupportedDtype, a.DType())
	}
}

func b2f[T ~float32 | ~float64 | ~int32 | ~int64 | ~uint8](v bool) T {
	if v {
		return 1
	}
	return 0
}
