package cpu

import (
	"errors"
	"math"
	"testing"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

const epsilon = 1e-5

func newTable(t *testing.T) *dispatch.Table {
	t.Helper()
	tbl := dispatch.NewTable()
	New(WithSequential()).Register(tbl)
	return tbl
}

// runUnary dispatches op over x into a fresh output and returns it.
func runUnary(t *testing.T, tbl *dispatch.Table, op dispatch.Op, x *tensor.Array, args ...tensor.Scalar) *tensor.Array {
	t.Helper()
	p, err := tensor.BuildUnary(nil, x)
	if err != nil {
		t.Fatalf("BuildUnary failed: %v", err)
	}
	k, err := tbl.Lookup(op, tensor.CPU)
	if err != nil {
		t.Fatalf("Lookup(%s) failed: %v", op, err)
	}
	if err := k(p, args...); err != nil {
		t.Fatalf("kernel %s failed: %v", op, err)
	}
	return p.Output()
}

func TestFloatKernels(t *testing.T) {
	tbl := newTable(t)

	tests := []struct {
		op    dispatch.Op
		input []float32
		want  func(float64) float64
	}{
		{dispatch.OpSin, []float32{0, 1, -1, 2}, math.Sin},
		{dispatch.OpCos, []float32{0, 1, -1, 2}, math.Cos},
		{dispatch.OpExp, []float32{0, 1, -1, 2}, math.Exp},
		{dispatch.OpLog, []float32{0.5, 1, 2, 8}, math.Log},
		{dispatch.OpSqrt, []float32{0, 1, 4, 9}, math.Sqrt},
		{dispatch.OpTanh, []float32{-2, -1, 0, 1}, math.Tanh},
		{dispatch.OpErf, []float32{-1, 0, 0.5, 1}, math.Erf},
		{dispatch.OpExpm1, []float32{-0.5, 0, 0.5, 1}, math.Expm1},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			x, err := tensor.FromSlice(tt.input, tensor.Shape{len(tt.input)}, tensor.CPU)
			if err != nil {
				t.Fatalf("FromSlice failed: %v", err)
			}
			out := runUnary(t, tbl, tt.op, x)
			for i, v := range tt.input {
				want := tt.want(float64(v))
				if got := float64(out.AsFloat32()[i]); math.Abs(got-want) > epsilon {
					t.Errorf("%s(%v) = %v, want %v", tt.op, v, got, want)
				}
			}
		})
	}
}

func TestFloatKernelFloat64(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]float64{0.25, 0.5, 0.75}, tensor.Shape{3}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpRsqrt, x)
	for i, v := range []float64{0.25, 0.5, 0.75} {
		want := 1 / math.Sqrt(v)
		if got := out.AsFloat64()[i]; math.Abs(got-want) > 1e-12 {
			t.Errorf("rsqrt(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestFloatKernelRejectsInt(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]int32{1, 2}, tensor.Shape{2}, tensor.CPU)
	p, _ := tensor.BuildUnary(nil, x)
	k, _ := tbl.Lookup(dispatch.OpSin, tensor.CPU)
	if err := k(p); !errors.Is(err, tensor.ErrUnsupportedDtype) {
		t.Errorf("sin over Int32 err = %v, want ErrUnsupportedDtype", err)
	}
}

func TestRoundHalfToEven(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]float32{0.5, 1.5, 2.5, -0.5, -1.5}, tensor.Shape{5}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpRound, x)
	want := []float32{0, 2, 2, 0, -2}
	for i, w := range want {
		if got := out.AsFloat32()[i]; got != w {
			t.Errorf("round[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestFracKeepsSign(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]float32{1.75, -1.75, 2.0, -0.25}, tensor.Shape{4}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpFrac, x)
	want := []float32{0.75, -0.75, 0, -0.25}
	for i, w := range want {
		if got := out.AsFloat32()[i]; math.Abs(float64(got-w)) > epsilon {
			t.Errorf("frac[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestStridedKernelRun(t *testing.T) {
	tbl := newTable(t)
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
	col, err := a.Select(1, 1) // elements 2 and 5
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	out := runUnary(t, tbl, dispatch.OpNeg, col)
	want := []float32{-2, -5}
	for i, w := range want {
		if got := out.AsFloat32()[i]; got != w {
			t.Errorf("neg over column[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestNegDtypes(t *testing.T) {
	tbl := newTable(t)

	xi, _ := tensor.FromSlice([]int64{1, -2, 3}, tensor.Shape{3}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpNeg, xi)
	for i, w := range []int64{-1, 2, -3} {
		if got := out.AsInt64()[i]; got != w {
			t.Errorf("neg int64[%d] = %v, want %v", i, got, w)
		}
	}

	xc, _ := tensor.FromSlice([]complex64{1 + 2i, -3 - 4i}, tensor.Shape{2}, tensor.CPU)
	outc := runUnary(t, tbl, dispatch.OpNeg, xc)
	for i, w := range []complex64{-1 - 2i, 3 + 4i} {
		if got := outc.AsComplex64()[i]; got != w {
			t.Errorf("neg complex[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestAbsComplexKernelKeepsComplexDtype(t *testing.T) {
	// At kernel level abs of a complex plan stays complex with zero
	// imaginary part; the facade extracts the real component.
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]complex64{3 + 4i, -5i}, tensor.Shape{2}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpAbs, x)
	if out.DType() != tensor.Complex64 {
		t.Fatalf("dtype = %v, want Complex64", out.DType())
	}
	for i, w := range []complex64{5, 5} {
		if got := out.AsComplex64()[i]; got != w {
			t.Errorf("abs complex[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestSignValues(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]float64{-3, -0.0, 0, 2, math.NaN()}, tensor.Shape{5}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpSign, x)
	d := out.AsFloat64()
	want := []float64{-1, 0, 0, 1}
	for i, w := range want {
		if d[i] != w {
			t.Errorf("sign[%d] = %v, want %v", i, d[i], w)
		}
	}
	if !math.IsNaN(d[4]) {
		t.Errorf("sign(NaN) = %v, want NaN", d[4])
	}
}

func TestAngleRealValues(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]float64{2, 0, -3, math.Inf(-1)}, tensor.Shape{4}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpAngle, x)
	want := []float64{0, 0, math.Pi, math.Pi}
	for i, w := range want {
		if got := out.AsFloat64()[i]; got != w {
			t.Errorf("angle[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestAngleComplexKernel(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]complex128{1i, -1, 1 + 1i}, tensor.Shape{3}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpAngle, x)
	want := []float64{math.Pi / 2, math.Pi, math.Pi / 4}
	for i, w := range want {
		if got := real(out.AsComplex128()[i]); math.Abs(got-w) > 1e-12 {
			t.Errorf("angle[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestConj(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]complex128{1 + 2i, -3 - 4i}, tensor.Shape{2}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpConj, x)
	for i, w := range []complex128{1 - 2i, -3 + 4i} {
		if got := out.AsComplex128()[i]; got != w {
			t.Errorf("conj[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestBitwiseNot(t *testing.T) {
	tbl := newTable(t)

	xi, _ := tensor.FromSlice([]int32{0, 1, -1}, tensor.Shape{3}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpBitwiseNot, xi)
	for i, w := range []int32{-1, -2, 0} {
		if got := out.AsInt32()[i]; got != w {
			t.Errorf("bitwise_not int32[%d] = %v, want %v", i, got, w)
		}
	}

	xb, _ := tensor.FromSlice([]bool{true, false}, tensor.Shape{2}, tensor.CPU)
	outb := runUnary(t, tbl, dispatch.OpBitwiseNot, xb)
	if outb.AsBool()[0] || !outb.AsBool()[1] {
		t.Errorf("bitwise_not bool = %v, want [false true]", outb.AsBool()[:2])
	}
}

func TestClampKernel(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpClamp, tensor.CPU)

	x, _ := tensor.FromSlice([]float32{-2, -0.5, 0.5, 2}, tensor.Shape{4}, tensor.CPU)
	p, _ := tensor.BuildUnary(nil, x)
	if err := k(p, tensor.FloatScalar(-1), tensor.FloatScalar(1)); err != nil {
		t.Fatalf("clamp failed: %v", err)
	}
	want := []float32{-1, -0.5, 0.5, 1}
	for i, w := range want {
		if got := p.Output().AsFloat32()[i]; got != w {
			t.Errorf("clamp[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestClampIntBoundsTruncate(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpClamp, tensor.CPU)

	x, _ := tensor.FromSlice([]int64{-5, 0, 5}, tensor.Shape{3}, tensor.CPU)
	p, _ := tensor.BuildUnary(nil, x)
	if err := k(p, tensor.FloatScalar(-1.9), tensor.FloatScalar(1.9)); err != nil {
		t.Fatalf("clamp failed: %v", err)
	}
	want := []int64{-1, 0, 1}
	for i, w := range want {
		if got := p.Output().AsInt64()[i]; got != w {
			t.Errorf("clamp int[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestClampNaNPassesThrough(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpClamp, tensor.CPU)

	x, _ := tensor.FromSlice([]float64{math.NaN()}, tensor.Shape{1}, tensor.CPU)
	p, _ := tensor.BuildUnary(nil, x)
	if err := k(p, tensor.FloatScalar(0), tensor.FloatScalar(1)); err != nil {
		t.Fatalf("clamp failed: %v", err)
	}
	if !math.IsNaN(p.Output().AsFloat64()[0]) {
		t.Errorf("clamp(NaN) = %v, want NaN", p.Output().AsFloat64()[0])
	}
}

func TestClampMinMaxKernels(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]float32{-2, 0, 2}, tensor.Shape{3}, tensor.CPU)

	kmin, _ := tbl.Lookup(dispatch.OpClampMin, tensor.CPU)
	p, _ := tensor.BuildUnary(nil, x)
	if err := kmin(p, tensor.FloatScalar(-1)); err != nil {
		t.Fatalf("clamp_min failed: %v", err)
	}
	for i, w := range []float32{-1, 0, 2} {
		if got := p.Output().AsFloat32()[i]; got != w {
			t.Errorf("clamp_min[%d] = %v, want %v", i, got, w)
		}
	}

	kmax, _ := tbl.Lookup(dispatch.OpClampMax, tensor.CPU)
	p2, _ := tensor.BuildUnary(nil, x)
	if err := kmax(p2, tensor.FloatScalar(1)); err != nil {
		t.Fatalf("clamp_max failed: %v", err)
	}
	for i, w := range []float32{-2, 0, 1} {
		if got := p2.Output().AsFloat32()[i]; got != w {
			t.Errorf("clamp_max[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestBinaryBroadcast(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpAdd, tensor.CPU)

	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
	s, err := tensor.FloatScalar(10).ToArray(tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("ToArray failed: %v", err)
	}
	p, err := tensor.Build(nil, []*tensor.Array{a, s})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := k(p); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	for i, w := range []float32{11, 12, 13} {
		if got := p.Output().AsFloat32()[i]; got != w {
			t.Errorf("add[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestMulComplex(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpMul, tensor.CPU)

	a, _ := tensor.FromSlice([]complex128{1 + 1i, 2i}, tensor.Shape{2}, tensor.CPU)
	b, _ := tensor.FromSlice([]complex128{1 - 1i, 3}, tensor.Shape{2}, tensor.CPU)
	p, _ := tensor.Build(nil, []*tensor.Array{a, b})
	if err := k(p); err != nil {
		t.Fatalf("mul failed: %v", err)
	}
	for i, w := range []complex128{2, 6i} {
		if got := p.Output().AsComplex128()[i]; got != w {
			t.Errorf("mul[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestLogicalNotKernel(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpLogicalNot, tensor.CPU)

	x, _ := tensor.FromSlice([]float64{0, 1.5, math.NaN()}, tensor.Shape{3}, tensor.CPU)
	p, err := tensor.BuildUnary(nil, x, tensor.WithDType(tensor.Bool), tensor.WithoutSameDType())
	if err != nil {
		t.Fatalf("BuildUnary failed: %v", err)
	}
	if err := k(p); err != nil {
		t.Fatalf("logical_not failed: %v", err)
	}
	want := []bool{true, false, false}
	for i, w := range want {
		if got := p.Output().AsBool()[i]; got != w {
			t.Errorf("logical_not[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestLogicalNotStoresIntoFloatOutput(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpLogicalNot, tensor.CPU)

	x, _ := tensor.FromSlice([]int32{0, 7}, tensor.Shape{2}, tensor.CPU)
	out, _ := tensor.New(tensor.Shape{2}, tensor.Float64, tensor.CPU)
	p, err := tensor.BuildUnary(out, x, tensor.WithoutSameDType())
	if err != nil {
		t.Fatalf("BuildUnary failed: %v", err)
	}
	if err := k(p); err != nil {
		t.Fatalf("logical_not failed: %v", err)
	}
	if out.AsFloat64()[0] != 1 || out.AsFloat64()[1] != 0 {
		t.Errorf("logical_not into float = %v, want [1 0]", out.AsFloat64()[:2])
	}
}

func TestCopyCastComplexToReal(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpCopy, tensor.CPU)

	x, _ := tensor.FromSlice([]complex64{3 + 4i, 1 - 2i}, tensor.Shape{2}, tensor.CPU)
	out, _ := tensor.New(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	p, err := tensor.BuildUnary(out, x, tensor.WithoutSameDType())
	if err != nil {
		t.Fatalf("BuildUnary failed: %v", err)
	}
	if err := k(p); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	for i, w := range []float32{3, 1} {
		if got := out.AsFloat32()[i]; got != w {
			t.Errorf("copy[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestCopyCastRealToComplex(t *testing.T) {
	tbl := newTable(t)
	k, _ := tbl.Lookup(dispatch.OpCopy, tensor.CPU)

	x, _ := tensor.FromSlice([]float64{1, -2}, tensor.Shape{2}, tensor.CPU)
	out, _ := tensor.New(tensor.Shape{2}, tensor.Complex128, tensor.CPU)
	p, _ := tensor.BuildUnary(out, x, tensor.WithoutSameDType())
	if err := k(p); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	for i, w := range []complex128{1, -2} {
		if got := out.AsComplex128()[i]; got != w {
			t.Errorf("copy[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestDigammaKnownValues(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]float64{1, 2, 0.5}, tensor.Shape{3}, tensor.CPU)
	out := runUnary(t, tbl, dispatch.OpDigamma, x)

	// digamma(1) = -gamma, digamma(2) = 1-gamma, digamma(1/2) = -gamma-2ln2.
	const gamma = 0.57721566490153286
	want := []float64{-gamma, 1 - gamma, -gamma - 2*math.Ln2}
	for i, w := range want {
		if got := out.AsFloat64()[i]; math.Abs(got-w) > 1e-10 {
			t.Errorf("digamma[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestPolygammaOrders(t *testing.T) {
	tbl := newTable(t)
	x, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, tensor.CPU)

	// Order 1 is trigamma: psi'(1) = pi^2/6, psi'(2) = pi^2/6 - 1.
	k, _ := tbl.Lookup(dispatch.OpPolygamma, tensor.CPU)
	p, _ := tensor.BuildUnary(nil, x)
	if err := k(p, tensor.IntScalar(1)); err != nil {
		t.Fatalf("polygamma failed: %v", err)
	}
	want := []float64{math.Pi * math.Pi / 6, math.Pi*math.Pi/6 - 1}
	for i, w := range want {
		if got := p.Output().AsFloat64()[i]; math.Abs(got-w) > 1e-10 {
			t.Errorf("polygamma(1)[%d] = %v, want %v", i, got, w)
		}
	}

	// Order 0 matches digamma.
	p0, _ := tensor.BuildUnary(nil, x)
	if err := k(p0, tensor.IntScalar(0)); err != nil {
		t.Fatalf("polygamma(0) failed: %v", err)
	}
	dig := runUnary(t, tbl, dispatch.OpDigamma, x)
	for i := range 2 {
		if got, w := p0.Output().AsFloat64()[i], dig.AsFloat64()[i]; math.Abs(got-w) > 1e-12 {
			t.Errorf("polygamma(0)[%d] = %v, want digamma %v", i, got, w)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := dispatch.NewTable()
	New(WithSequential()).Register(seq)
	par := dispatch.NewTable()
	New(WithWorkers(4), WithMinChunk(16)).Register(par)

	n := 1024
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(i)/64 - 8
	}
	x, _ := tensor.FromSlice(data, tensor.Shape{n}, tensor.CPU)

	a := runUnary(t, seq, dispatch.OpTanh, x)
	b := runUnary(t, par, dispatch.OpTanh, x)
	for i := range n {
		if a.AsFloat32()[i] != b.AsFloat32()[i] {
			t.Fatalf("parallel run diverged at %d: %v vs %v", i, a.AsFloat32()[i], b.AsFloat32()[i])
		}
	}
}
