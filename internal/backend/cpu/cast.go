package cpu

import (
	"fmt"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

func (b *Backend) registerCast(tbl *dispatch.Table) {
	tbl.Register(dispatch.OpCopy, tensor.CPU, b.copyKernel())
}

// copyKernel copies the input into the output, converting the element type
// when the two differ. A complex source lands in a real destination by its
// real part; this is the copy the complex-to-real result policy relies on.
// Conversions route through float64 or complex128, which is exact for every
// pairing the facade produces.
func (b *Backend) copyKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		out := p.Output()
		in := p.Input(0)

		if out.DType() == in.DType() {
			return b.copySame(p)
		}
		if out.DType().IsComplex() {
			read, err := complexReader(in)
			if err != nil {
				return err
			}
			write, err := complexWriter(out)
			if err != nil {
				return err
			}
			parallel.For(p.NumElements(), func(i int) {
				write(p.OutputOffset(i), read(p.InputOffset(0, i)))
			}, b.cfg)
			return nil
		}
		read, err := floatReader(in)
		if err != nil {
			return err
		}
		write, err := floatWriter(out)
		if err != nil {
			return err
		}
		parallel.For(p.NumElements(), func(i int) {
			write(p.OutputOffset(i), read(p.InputOffset(0, i)))
		}, b.cfg)
		return nil
	}
}

func (b *Backend) copySame(p *tensor.Plan) error {
	switch p.DType() {
	case tensor.Float32:
		applyUnary(p, b.cfg, func(v float32) float32 { return v })
	case tensor.Float64:
		applyUnary(p, b.cfg, func(v float64) float64 { return v })
	case tensor.Int32:
		applyUnary(p, b.cfg, func(v int32) int32 { return v })
	case tensor.Int64:
		applyUnary(p, b.cfg, func(v int64) int64 { return v })
	case tensor.Uint8:
		applyUnary(p, b.cfg, func(v uint8) uint8 { return v })
	case tensor.Bool:
		applyUnary(p, b.cfg, func(v bool) bool { return v })
	case tensor.Complex64:
		applyUnary(p, b.cfg, func(v complex64) complex64 { return v })
	case tensor.Complex128:
		applyUnary(p, b.cfg, func(v complex128) complex128 { return v })
	default:
		return fmt.Errorf("%w: copy is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
	}
	return nil
}

// floatReader maps element offsets of a to float64 values. Complex elements
// contribute their real part.
func floatReader(a *tensor.Array) (func(off int) float64, error) {
	switch a.DType() {
	case tensor.Float32:
		d := a.AsFloat32()
		return func(off int) float64 { return float64(d[off]) }, nil
	case tensor.Float64:
		d := a.AsFloat64()
		return func(off int) float64 { return d[off] }, nil
	case tensor.Int32:
		d := a.AsInt32()
		return func(off int) float64 { return float64(d[off]) }, nil
	case tensor.Int64:
		d := a.AsInt64()
		return func(off int) float64 { return float64(d[off]) }, nil
	case tensor.Uint8:
		d := a.AsUint8()
		return func(off int) float64 { return float64(d[off]) }, nil
	case tensor.Bool:
		d := a.AsBool()
		return func(off int) float64 {
			if d[off] {
				return 1
			}
			return 0
		}, nil
	case tensor.Complex64:
		d := a.AsComplex64()
		return func(off int) float64 { return float64(real(d[off])) }, nil
	case tensor.Complex128:
		d := a.AsComplex128()
		return func(off int) float64 { return real(d[off]) }, nil
	default:
		return nil, fmt.Errorf("%w: copy cannot read %s", tensor.ErrUnsupportedDtype, a.DType())
	}
}

func floatWriter(a *tensor.Array) (func(off int, v float64), error) {
	switch a.DType() {
	case tensor.Float32:
		d := a.AsFloat32()
		return func(off int, v float64) { d[off] = float32(v) }, nil
	case tensor.Float64:
		d := a.AsFloat64()
		return func(off int, v float64) { d[off] = v }, nil
	case tensor.Int32:
		d := a.AsInt32()
		return func(off int, v float64) { d[off] = int32(v) }, nil
	case tensor.Int64:
		d := a.AsInt64()
		return func(off int, v float64) { d[off] = int64(v) }, nil
	case tensor.Uint8:
		d := a.AsUint8()
		return func(off int, v float64) { d[off] = uint8(v) }, nil
	case tensor.Bool:
		d := a.AsBool()
		return func(off int, v float64) { d[off] = v != 0 }, nil
	default:
		return nil, fmt.Errorf("%w: copy cannot store into %s", tensor.ErrUnsupportedDtype, a.DType())
	}
}

func complexReader(a *tensor.Array) (func(off int) complex128, error) {
	switch a.DType() {
	case tensor.Complex64:
		d := a.AsComplex64()
		return func(off int) complex128 { return complex128(d[off]) }, nil
	case tensor.Complex128:
		d := a.AsComplex128()
		return func(off int) complex128 { return d[off] }, nil
	default:
		read, err := floatReader(a)
		if err != nil {
			return nil, err
		}
		return func(off int) complex128 { return complex(read(off), 0) }, nil
	}
}

func complexWriter(a *tensor.Array) (func(off int, v complex128), error) {
	switch a.DType() {
	case tensor.Complex64:
		d := a.AsComplex64()
		return func(off int, v complex128) { d[off] = complex64(v) }, nil
	case tensor.Complex128:
		d := a.AsComplex128()
		return func(off int, v complex128) { d[off] = v }, nil
	default:
		return nil, fmt.Errorf("%w: copy cannot store into %s", tensor.ErrUnsupportedDtype, a.DType())
	}
}
