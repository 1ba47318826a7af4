package cpu

import (
	"fmt"
	"math"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

// applyUnary runs dst[i] = f(src[i]) over the plan, flat when every operand
// is contiguous and through the stride tables otherwise.
func applyUnary[T tensor.Elem](p *tensor.Plan, cfg parallel.Config, f func(T) T) {
	dst := tensor.Data[T](p.Output())
	src := tensor.Data[T](p.Input(0))
	n := p.NumElements()
	if p.Contiguous() {
		parallel.ForChunked(n, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(src[i])
			}
		}, cfg)
		return
	}
	parallel.For(n, func(i int) {
		dst[p.OutputOffset(i)] = f(src[p.InputOffset(0, i)])
	}, cfg)
}

// floatKernel adapts a float64 function to a kernel over the real floating
// dtypes.
func (b *Backend) floatKernel(name string, f func(float64) float64) dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		switch p.DType() {
		case tensor.Float32:
			applyUnary(p, b.cfg, func(v float32) float32 { return float32(f(float64(v))) })
		case tensor.Float64:
			applyUnary(p, b.cfg, f)
		default:
			return fmt.Errorf("%w: %s is not implemented for %s", tensor.ErrUnsupportedDtype, name, p.DType())
		}
		return nil
	}
}

func (b *Backend) registerFloat(tbl *dispatch.Table) {
	kernels := []struct {
		op dispatch.Op
		f  func(float64) float64
	}{
		{dispatch.OpAcos, math.Acos},
		{dispatch.OpAcosh, math.Acosh},
		{dispatch.OpAsin, math.Asin},
		{dispatch.OpAsinh, math.Asinh},
		{dispatch.OpAtan, math.Atan},
		{dispatch.OpAtanh, math.Atanh},
		{dispatch.OpCeil, math.Ceil},
		{dispatch.OpCos, math.Cos},
		{dispatch.OpCosh, math.Cosh},
		{dispatch.OpErf, math.Erf},
		{dispatch.OpErfc, math.Erfc},
		{dispatch.OpErfinv, math.Erfinv},
		{dispatch.OpExp, math.Exp},
		{dispatch.OpExpm1, math.Expm1},
		{dispatch.OpFloor, math.Floor},
		{dispatch.OpFrac, frac},
		{dispatch.OpLgamma, lgamma},
		{dispatch.OpLog, math.Log},
		{dispatch.OpLog10, math.Log10},
		{dispatch.OpLog1p, math.Log1p},
		{dispatch.OpLog2, math.Log2},
		{dispatch.OpReciprocal, reciprocal},
		{dispatch.OpRound, math.RoundToEven},
		{dispatch.OpRsqrt, rsqrt},
		{dispatch.OpSigmoid, sigmoid},
		{dispatch.OpSin, math.Sin},
		{dispatch.OpSinh, math.Sinh},
		{dispatch.OpSqrt, math.Sqrt},
		{dispatch.OpTan, math.Tan},
		{dispatch.OpTanh, math.Tanh},
		{dispatch.OpTrunc, math.Trunc},
	}
	for _, k := range kernels {
		tbl.Register(k.op, tensor.CPU, b.floatKernel(string(k.op), k.f))
	}
}

// frac returns the fractional part, keeping the sign of the input.
func frac(v float64) float64 { return v - math.Trunc(v) }

func lgamma(v float64) float64 {
	r, _ := math.Lgamma(v)
	return r
}

func reciprocal(v float64) float64 { return 1 / v }

func rsqrt(v float64) float64 { return 1 / math.Sqrt(v) }

func sigmoid(v float64) float64 { return 1 / (1 + math.Exp(-v)) }
