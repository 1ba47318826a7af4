package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-ml/stride/internal/tensor"
)

const eulerGamma = 0.57721566490153286

func TestDigamma_KnownValues(t *testing.T) {
	x := newF64(t, []float64{1, 0.5, 2}, tensor.Shape{3})

	got, err := Digamma(x)
	require.NoError(t, err)

	want := []float64{-eulerGamma, -eulerGamma - 2*math.Ln2, 1 - eulerGamma}
	for i, v := range tensor.Data[float64](got)[:got.NumElements()] {
		assert.InDelta(t, want[i], v, 1e-10, "element %d", i)
	}
}

func TestPolygamma_MatchesDigammaAtOrderZero(t *testing.T) {
	x := newF64(t, []float64{0.5, 1, 2.5, 7}, tensor.Shape{4})

	viaPolygamma, err := Polygamma(0, x)
	require.NoError(t, err)
	viaDigamma, err := Digamma(x)
	require.NoError(t, err)

	assert.Equal(t,
		tensor.Data[float64](viaDigamma)[:4],
		tensor.Data[float64](viaPolygamma)[:4])
}

func TestPolygamma_HigherOrders(t *testing.T) {
	x := newF64(t, []float64{1}, tensor.Shape{1})

	// Trigamma at 1 is pi^2/6.
	got, err := Polygamma(1, x)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*math.Pi/6, tensor.Data[float64](got)[0], 1e-10)

	// The second derivative at 1 is -2*zeta(3).
	got, err = Polygamma(2, x)
	require.NoError(t, err)
	assert.InDelta(t, -2.4041138063191885, tensor.Data[float64](got)[0], 1e-10)
}

func TestPolygamma_NegativeOrder(t *testing.T) {
	x := newF64(t, []float64{1}, tensor.Shape{1})

	_, err := Polygamma(-1, x)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
	_, err = PolygammaInPlace(x, -2)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	dst, err := tensor.Zeros(tensor.Shape{1}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	_, err = PolygammaInto(dst, x, -1)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

// TestMvlgamma_ReducesToLgamma checks the base case: multiplicity 1 is the
// ordinary log-gamma.
func TestMvlgamma_ReducesToLgamma(t *testing.T) {
	in := []float64{0.75, 1.5, 3}
	x := newF64(t, in, tensor.Shape{3})

	got, err := Mvlgamma(x, 1)
	require.NoError(t, err)

	for i, v := range tensor.Data[float64](got)[:got.NumElements()] {
		want, _ := math.Lgamma(in[i])
		assert.InDelta(t, want, v, 1e-10, "element %d", i)
	}
}

// TestMvlgamma_Bivariate checks multiplicity 2 against the closed form
// log(pi)/2 + lgamma(x) + lgamma(x - 1/2).
func TestMvlgamma_Bivariate(t *testing.T) {
	in := []float64{1.2, 2, 5.5}
	x := newF64(t, in, tensor.Shape{3})

	got, err := Mvlgamma(x, 2)
	require.NoError(t, err)

	for i, v := range tensor.Data[float64](got)[:got.NumElements()] {
		l1, _ := math.Lgamma(in[i])
		l2, _ := math.Lgamma(in[i] - 0.5)
		want := 0.5*math.Log(math.Pi) + l1 + l2
		assert.InDelta(t, want, v, 1e-10, "element %d", i)
	}
}

func TestMvlgamma_Validation(t *testing.T) {
	x := newF64(t, []float64{2, 3}, tensor.Shape{2})

	_, err := Mvlgamma(x, 0)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	// Elements must be strictly greater than (p-1)/2.
	edge := newF64(t, []float64{2, 0.5}, tensor.Shape{2})
	_, err = Mvlgamma(edge, 2)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	withNaN := newF64(t, []float64{2, math.NaN()}, tensor.Shape{2})
	_, err = Mvlgamma(withNaN, 2)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	ints, err := tensor.FromSlice([]int32{3, 4}, tensor.Shape{2}, tensor.CPU)
	require.NoError(t, err)
	_, err = Mvlgamma(ints, 2)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDtype)
}

func TestMvlgamma_FormsAgree(t *testing.T) {
	in := []float64{2.5, 3, 4.25}
	x := newF64(t, in, tensor.Shape{3})

	fresh, err := Mvlgamma(x, 3)
	require.NoError(t, err)
	assert.Equal(t, in, tensor.Data[float64](x)[:3], "out-of-place form mutated its input")

	dst, err := tensor.Zeros(tensor.Shape{0}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	into, err := MvlgammaInto(dst, x, 3)
	require.NoError(t, err)
	assert.Same(t, dst, into)
	assert.Equal(t, tensor.Shape{3}, into.Shape())

	self := newF64(t, in, tensor.Shape{3})
	_, err = MvlgammaInPlace(self, 3)
	require.NoError(t, err)

	want := tensor.Data[float64](fresh)[:3]
	assert.Equal(t, want, tensor.Data[float64](into)[:3])
	assert.Equal(t, want, tensor.Data[float64](self)[:3])
}

func TestErfinv_RoundTrip(t *testing.T) {
	in := []float64{-0.9, -0.5, 0, 0.3, 0.8}
	x := newF64(t, in, tensor.Shape{5})

	inv, err := Erfinv(x)
	require.NoError(t, err)
	back, err := Erf(inv)
	require.NoError(t, err)

	for i, v := range tensor.Data[float64](back)[:back.NumElements()] {
		assert.InDelta(t, in[i], v, 1e-12, "element %d", i)
	}
}

func TestLgamma_AbsoluteValue(t *testing.T) {
	// Gamma(-0.5) is negative; lgamma reports log of the absolute value.
	x := newF64(t, []float64{-0.5}, tensor.Shape{1})

	got, err := Lgamma(x)
	require.NoError(t, err)
	want, _ := math.Lgamma(-0.5)
	assert.InDelta(t, want, tensor.Data[float64](got)[0], 1e-12)
}
