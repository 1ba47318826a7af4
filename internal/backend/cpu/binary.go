package cpu

import (
	"fmt"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

func (b *Backend) registerBinary(tbl *dispatch.Table) {
	tbl.Register(dispatch.OpAdd, tensor.CPU, b.addKernel())
	tbl.Register(dispatch.OpMul, tensor.CPU, b.mulKernel())
}

// applyBinary runs dst[i] = f(a[i], b[i]) over the plan with broadcast
// handled by the input stride tables.
func applyBinary[T tensor.Elem](p *tensor.Plan, cfg parallel.Config, f func(T, T) T) {
	dst := tensor.Data[T](p.Output())
	x := tensor.Data[T](p.Input(0))
	y := tensor.Data[T](p.Input(1))
	n := p.NumElements()
	if p.Contiguous() {
		parallel.ForChunked(n, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(x[i], y[i])
			}
		}, cfg)
		return
	}
	parallel.For(n, func(i int) {
		dst[p.OutputOffset(i)] = f(x[p.InputOffset(0, i)], y[p.InputOffset(1, i)])
	}, cfg)
}

func (b *Backend) addKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		switch p.DType() {
		case tensor.Float32:
			applyBinary(p, b.cfg, func(x, y float32) float32 { return x + y })
		case tensor.Float64:
			applyBinary(p, b.cfg, func(x, y float64) float64 { return x + y })
		case tensor.Int32:
			applyBinary(p, b.cfg, func(x, y int32) int32 { return x + y })
		case tensor.Int64:
			applyBinary(p, b.cfg, func(x, y int64) int64 { return x + y })
		case tensor.Uint8:
			applyBinary(p, b.cfg, func(x, y uint8) uint8 { return x + y })
		case tensor.Complex64:
			applyBinary(p, b.cfg, func(x, y complex64) complex64 { return x + y })
		case tensor.Complex128:
			applyBinary(p, b.cfg, func(x, y complex128) complex128 { return x + y })
		default:
			return fmt.Errorf("%w: add is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}

func (b *Backend) mulKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		switch p.DType() {
		case tensor.Float32:
			applyBinary(p, b.cfg, func(x, y float32) float32 { return x * y })
		case tensor.Float64:
			applyBinary(p, b.cfg, func(x, y float64) float64 { return x * y })
		case tensor.Int32:
			applyBinary(p, b.cfg, func(x, y int32) int32 { return x * y })
		case tensor.Int64:
			applyBinary(p, b.cfg, func(x, y int64) int64 { return x * y })
		case tensor.Uint8:
			applyBinary(p, b.cfg, func(x, y uint8) uint8 { return x * y })
		case tensor.Complex64:
			applyBinary(p, b.cfg, func(x, y complex64) complex64 { return x * y })
		case tensor.Complex128:
			applyBinary(p, b.cfg, func(x, y complex128) complex128 { return x * y })
		default:
			return fmt.Errorf("%w: mul is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}
