package cpu

import (
	"fmt"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

type ordered interface {
	~int32 | ~int64 | ~uint8 | ~float32 | ~float64
}

func (b *Backend) registerClamp(tbl *dispatch.Table) {
	tbl.Register(dispatch.OpClamp, tensor.CPU, func(p *tensor.Plan, args ...tensor.Scalar) error {
		if len(args) != 2 {
			return fmt.Errorf("%w: clamp expects min and max arguments", tensor.ErrInvalidArgument)
		}
		return b.clamp(p, args[0], true, args[1], true)
	})
	tbl.Register(dispatch.OpClampMin, tensor.CPU, func(p *tensor.Plan, args ...tensor.Scalar) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: clamp_min expects a min argument", tensor.ErrInvalidArgument)
		}
		return b.clamp(p, args[0], true, tensor.Scalar{}, false)
	})
	tbl.Register(dispatch.OpClampMax, tensor.CPU, func(p *tensor.Plan, args ...tensor.Scalar) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: clamp_max expects a max argument", tensor.ErrInvalidArgument)
		}
		return b.clamp(p, tensor.Scalar{}, false, args[0], true)
	})
}

// clamp converts the bounds to the plan dtype once and applies them
// elementwise. NaN input passes through either bound untouched.
func (b *Backend) clamp(p *tensor.Plan, lo tensor.Scalar, hasLo bool, hi tensor.Scalar, hasHi bool) error {
	var lof, hif float64
	var loi, hii int64
	if hasLo {
		if lo.IsComplex() {
			return fmt.Errorf("%w: clamp bounds must be real", tensor.ErrInvalidArgument)
		}
		lof, loi = lo.Float64(), lo.Int64()
	}
	if hasHi {
		if hi.IsComplex() {
			return fmt.Errorf("%w: clamp bounds must be real", tensor.ErrInvalidArgument)
		}
		hif, hii = hi.Float64(), hi.Int64()
	}

	switch p.DType() {
	case tensor.Float32:
		applyClamp(p, b.cfg, float32(lof), float32(hif), hasLo, hasHi)
	case tensor.Float64:
		applyClamp(p, b.cfg, lof, hif, hasLo, hasHi)
	case tensor.Int32:
		applyClamp(p, b.cfg, int32(loi), int32(hii), hasLo, hasHi)
	case tensor.Int64:
		applyClamp(p, b.cfg, loi, hii, hasLo, hasHi)
	case tensor.Uint8:
		applyClamp(p, b.cfg, uint8(loi), uint8(hii), hasLo, hasHi)
	default:
		return fmt.Errorf("%w: clamp is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
	}
	return nil
}

func applyClamp[T ordered](p *tensor.Plan, cfg parallel.Config, lo, hi T, hasLo, hasHi bool) {
	applyUnary(p, cfg, func(v T) T {
		if hasLo && v < lo {
			v = lo
		}
		if hasHi && v > hi {
			v = hi
		}
		return v
	})
}
