package cpu

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

func (b *Backend) registerNumeric(tbl *dispatch.Table) {
	tbl.Register(dispatch.OpNeg, tensor.CPU, b.negKernel())
	tbl.Register(dispatch.OpAbs, tensor.CPU, b.absKernel())
	tbl.Register(dispatch.OpSign, tensor.CPU, b.signKernel())
	tbl.Register(dispatch.OpConj, tensor.CPU, b.conjKernel())
	tbl.Register(dispatch.OpAngle, tensor.CPU, b.angleKernel())
	tbl.Register(dispatch.OpBitwiseNot, tensor.CPU, b.bitwiseNotKernel())
}

func (b *Backend) negKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		switch p.DType() {
		case tensor.Float32:
			applyUnary(p, b.cfg, func(v float32) float32 { return -v })
		case tensor.Float64:
			applyUnary(p, b.cfg, func(v float64) float64 { return -v })
		case tensor.Int32:
			applyUnary(p, b.cfg, func(v int32) int32 { return -v })
		case tensor.Int64:
			applyUnary(p, b.cfg, func(v int64) int64 { return -v })
		case tensor.Uint8:
			applyUnary(p, b.cfg, func(v uint8) uint8 { return -v })
		case tensor.Complex64:
			applyUnary(p, b.cfg, func(v complex64) complex64 { return -v })
		case tensor.Complex128:
			applyUnary(p, b.cfg, func(v complex128) complex128 { return -v })
		default:
			return fmt.Errorf("%w: neg is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}

func (b *Backend) absKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		switch p.DType() {
		case tensor.Float32:
			applyUnary(p, b.cfg, func(v float32) float32 { return float32(math.Abs(float64(v))) })
		case tensor.Float64:
			applyUnary(p, b.cfg, math.Abs)
		case tensor.Int32:
			applyUnary(p, b.cfg, absInt[int32])
		case tensor.Int64:
			applyUnary(p, b.cfg, absInt[int64])
		case tensor.Uint8:
			applyUnary(p, b.cfg, func(v uint8) uint8 { return v })
		case tensor.Complex64:
			applyUnary(p, b.cfg, func(v complex64) complex64 {
				return complex(float32(cmplx.Abs(complex128(v))), 0)
			})
		case tensor.Complex128:
			applyUnary(p, b.cfg, func(v complex128) complex128 {
				return complex(cmplx.Abs(v), 0)
			})
		default:
			return fmt.Errorf("%w: abs is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}

func absInt[T ~int32 | ~int64](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func (b *Backend) signKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		switch p.DType() {
		case tensor.Float32:
			applyUnary(p, b.cfg, func(v float32) float32 { return float32(signFloat(float64(v))) })
		case tensor.Float64:
			applyUnary(p, b.cfg, signFloat)
		case tensor.Int32:
			applyUnary(p, b.cfg, signInt[int32])
		case tensor.Int64:
			applyUnary(p, b.cfg, signInt[int64])
		case tensor.Uint8:
			applyUnary(p, b.cfg, func(v uint8) uint8 {
				if v > 0 {
					return 1
				}
				return 0
			})
		case tensor.Bool:
			applyUnary(p, b.cfg, func(v bool) bool { return v })
		default:
			return fmt.Errorf("%w: sign is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}

// signFloat propagates NaN rather than collapsing it to zero.
func signFloat(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func signInt[T ~int32 | ~int64](v T) T {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func (b *Backend) conjKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
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
		case tensor.Complex64:
			applyUnary(p, b.cfg, func(v complex64) complex64 { return complex(real(v), -imag(v)) })
		case tensor.Complex128:
			applyUnary(p, b.cfg, cmplx.Conj)
		default:
			return fmt.Errorf("%w: conj is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}

func (b *Backend) angleKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		switch p.DType() {
		case tensor.Float32:
			applyUnary(p, b.cfg, func(v float32) float32 { return float32(angleFloat(float64(v))) })
		case tensor.Float64:
			applyUnary(p, b.cfg, angleFloat)
		case tensor.Complex64:
			applyUnary(p, b.cfg, func(v complex64) complex64 {
				return complex(float32(cmplx.Phase(complex128(v))), 0)
			})
		case tensor.Complex128:
			applyUnary(p, b.cfg, func(v complex128) complex128 {
				return complex(cmplx.Phase(v), 0)
			})
		default:
			return fmt.Errorf("%w: angle is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}

// angleFloat is 0 for non-negative reals and pi for negatives, matching the
// phase of the value seen as a complex number. NaN stays NaN.
func angleFloat(v float64) float64 {
	return math.Atan2(0, v)
}

func (b *Backend) bitwiseNotKernel() dispatch.Kernel {
	return func(p *tensor.Plan, _ ...tensor.Scalar) error {
		switch p.DType() {
		case tensor.Int32:
			applyUnary(p, b.cfg, func(v int32) int32 { return ^v })
		case tensor.Int64:
			applyUnary(p, b.cfg, func(v int64) int64 { return ^v })
		case tensor.Uint8:
			applyUnary(p, b.cfg, func(v uint8) uint8 { return ^v })
		case tensor.Bool:
			applyUnary(p, b.cfg, func(v bool) bool { return !v })
		default:
			return fmt.Errorf("%w: bitwise_not is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}
