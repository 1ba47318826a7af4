package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mathext"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

func (b *Backend) registerSpecial(tbl *dispatch.Table) {
	tbl.Register(dispatch.OpDigamma, tensor.CPU, b.floatKernel("digamma", mathext.Digamma))
	tbl.Register(dispatch.OpPolygamma, tensor.CPU, b.polygammaKernel())
}

// polygammaKernel evaluates the n-th derivative of digamma. The order n
// arrives as the kernel's scalar argument; n = 0 is digamma itself, n >= 1
// uses the Hurwitz zeta identity psi^(n)(x) = (-1)^(n+1) n! zeta(n+1, x).
func (b *Backend) polygammaKernel() dispatch.Kernel {
	return func(p *tensor.Plan, args ...tensor.Scalar) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: polygamma expects an order argument", tensor.ErrInvalidArgument)
		}
		n := int(args[0].Int64())
		f := mathext.Digamma
		if n > 0 {
			f = func(x float64) float64 { return polygamma(n, x) }
		}
		switch p.DType() {
		case tensor.Float32:
			applyUnary(p, b.cfg, func(v float32) float32 { return float32(f(float64(v))) })
		case tensor.Float64:
			applyUnary(p, b.cfg, f)
		default:
			return fmt.Errorf("%w: polygamma is not implemented for %s", tensor.ErrUnsupportedDtype, p.DType())
		}
		return nil
	}
}

func polygamma(n int, x float64) float64 {
	sign := 1.0
	if n%2 == 0 {
		sign = -1.0
	}
	factorial := 1.0
	for k := 2; k <= n; k++ {
		factorial *= float64(k)
	}
	return sign * factorial * mathext.Zeta(float64(n+1), x)
}
