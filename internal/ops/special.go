package ops

import (
	"fmt"
	"math"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// Erf computes the Gauss error function elementwise.
func Erf(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpErf, floatingOnly, x) }

// ErfInto writes the error function of x into dst.
func ErfInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpErf, floatingOnly, dst, x)
}

// ErfInPlace computes the error function in place.
func ErfInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpErf, floatingOnly, x)
}

// Erfc computes the complementary error function 1-erf(x) elementwise.
func Erfc(x *tensor.Array) (*tensor.Array, error) { return unary(dispatch.OpErfc, floatingOnly, x) }

// ErfcInto writes the complementary error function of x into dst.
func ErfcInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpErfc, floatingOnly, dst, x)
}

// ErfcInPlace computes the complementary error function in place.
func ErfcInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpErfc, floatingOnly, x)
}

// Erfinv computes the inverse error function elementwise. Defined on
// (-1, 1); the boundary values map to -Inf and +Inf.
func Erfinv(x *tensor.Array) (*tensor.Array, error) {
	return unary(dispatch.OpErfinv, floatingOnly, x)
}

// ErfinvInto writes the inverse error function of x into dst.
func ErfinvInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpErfinv, floatingOnly, dst, x)
}

// ErfinvInPlace computes the inverse error function in place.
func ErfinvInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpErfinv, floatingOnly, x)
}

// Lgamma computes the natural logarithm of the absolute value of the gamma
// function elementwise.
func Lgamma(x *tensor.Array) (*tensor.Array, error) {
	return unary(dispatch.OpLgamma, floatingOnly, x)
}

// LgammaInto writes the log-gamma of x into dst.
func LgammaInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpLgamma, floatingOnly, dst, x)
}

// LgammaInPlace computes the log-gamma in place.
func LgammaInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpLgamma, floatingOnly, x)
}

// Digamma computes the logarithmic derivative of the gamma function
// elementwise. Non-floating input is rejected.
func Digamma(x *tensor.Array) (*tensor.Array, error) {
	return unary(dispatch.OpDigamma, floatingOnly, x)
}

// DigammaInto writes the digamma of x into dst.
func DigammaInto(dst, x *tensor.Array) (*tensor.Array, error) {
	return unaryOut(dispatch.OpDigamma, floatingOnly, dst, x)
}

// DigammaInPlace computes the digamma in place.
func DigammaInPlace(x *tensor.Array) (*tensor.Array, error) {
	return unaryInPlace(dispatch.OpDigamma, floatingOnly, x)
}

// Polygamma computes the n-th derivative of the digamma function
// elementwise. Order 0 is digamma itself. Negative orders are rejected.
func Polygamma(n int64, x *tensor.Array) (*tensor.Array, error) {
	if n < 0 {
		return nil, errNegativeOrder(n)
	}
	return unary(dispatch.OpPolygamma, floatingOnly, x, tensor.IntScalar(n))
}

// PolygammaInto writes the n-th polygamma of x into dst.
func PolygammaInto(dst, x *tensor.Array, n int64) (*tensor.Array, error) {
	if n < 0 {
		return nil, errNegativeOrder(n)
	}
	return unaryOut(dispatch.OpPolygamma, floatingOnly, dst, x, tensor.IntScalar(n))
}

// PolygammaInPlace computes the n-th polygamma in place.
func PolygammaInPlace(x *tensor.Array, n int64) (*tensor.Array, error) {
	if n < 0 {
		return nil, errNegativeOrder(n)
	}
	return unaryInPlace(dispatch.OpPolygamma, floatingOnly, x, tensor.IntScalar(n))
}

func errNegativeOrder(n int64) error {
	return fmt.Errorf("%w: polygamma order must be non-negative, got %d",
		tensor.ErrInvalidArgument, n)
}

// Mvlgamma computes the multivariate log-gamma function with multiplicity p
// elementwise:
//
//	mvlgamma(x, p) = p(p-1)/4 * log(pi) + sum_{i=0}^{p-1} lgamma(x - i/2)
//
// Every element of x must be greater than (p-1)/2 and p must be at least 1.
func Mvlgamma(x *tensor.Array, p int) (*tensor.Array, error) {
	return mvlgammaOut(nil, x, p)
}

// MvlgammaInto writes the multivariate log-gamma of x into dst.
func MvlgammaInto(dst, x *tensor.Array, p int) (*tensor.Array, error) {
	return mvlgammaOut(dst, x, p)
}

// MvlgammaInPlace computes the multivariate log-gamma in place.
func MvlgammaInPlace(x *tensor.Array, p int) (*tensor.Array, error) {
	return mvlgammaOut(x, x, p)
}

// mvlgammaOut builds the result from the elementwise pieces: offset the
// input by a half-integer ladder along a fresh trailing dimension, take
// lgamma in place, fold the trailing dimension back down with repeated adds
// and add the closed-form constant.
func mvlgammaOut(dst, x *tensor.Array, p int) (*tensor.Array, error) {
	if err := checkDomain("mvlgamma", x.DType(), floatingOnly); err != nil {
		return nil, err
	}
	if p < 1 {
		return nil, fmt.Errorf("%w: mvlgamma expects p >= 1, got %d",
			tensor.ErrInvalidArgument, p)
	}
	bound := float64(p-1) / 2
	ok, err := allGreater(x, bound)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: mvlgamma requires all elements to be greater than %g",
			tensor.ErrInvalidArgument, bound)
	}

	ladder, err := tensor.Arange(-float64(p)/2+0.5, 0.5, 0.5, x.DType(), x.Device())
	if err != nil {
		return nil, err
	}
	defer ladder.Release()
	xu, err := x.Unsqueeze(-1)
	if err != nil {
		return nil, err
	}
	defer xu.Release()
	terms, err := binaryOut(dispatch.OpAdd, nil, xu, ladder)
	if err != nil {
		return nil, err
	}
	defer terms.Release()
	if _, err := unaryInPlace(dispatch.OpLgamma, floatingOnly, terms); err != nil {
		return nil, err
	}
	acc, err := sumLastDim(terms)
	if err != nil {
		return nil, err
	}
	defer acc.Release()

	c := float64(p*(p-1)) / 4 * math.Log(math.Pi)
	shift, err := tensor.FloatScalar(c).ToArray(x.DType(), x.Device())
	if err != nil {
		return nil, err
	}
	defer shift.Release()
	return binaryOut(dispatch.OpAdd, dst, acc, shift)
}

// sumLastDim folds the trailing dimension of t into a fresh array by
// accumulating one slice at a time. The accumulator starts as a copy because
// sibling slices of t alias each other.
func sumLastDim(t *tensor.Array) (*tensor.Array, error) {
	first, err := t.Select(-1, 0)
	if err != nil {
		return nil, err
	}
	defer first.Release()
	acc, err := freshCopy(first)
	if err != nil {
		return nil, err
	}
	n := t.Shape()[len(t.Shape())-1]
	for k := 1; k < n; k++ {
		slice, err := t.Select(-1, k)
		if err != nil {
			acc.Release()
			return nil, err
		}
		if _, err := binaryOut(dispatch.OpAdd, acc, acc, slice); err != nil {
			slice.Release()
			acc.Release()
			return nil, err
		}
		slice.Release()
	}
	return acc, nil
}

// allGreater reports whether every element of x exceeds bound. NaN fails
// the comparison.
func allGreater(x *tensor.Array, bound float64) (bool, error) {
	c, err := x.Contiguous()
	if err != nil {
		return false, err
	}
	defer c.Release()
	switch x.DType() {
	case tensor.Float32:
		for _, v := range tensor.Data[float32](c)[:c.NumElements()] {
			if !(float64(v) > bound) {
				return false, nil
			}
		}
	case tensor.Float64:
		for _, v := range tensor.Data[float64](c)[:c.NumElements()] {
			if !(v > bound) {
				return false, nil
			}
		}
	default:
		return false, fmt.Errorf("%w: mvlgamma is not supported for %s",
			tensor.ErrUnsupportedDtype, x.DType())
	}
	return true, nil
}
