//go:build windows

package webgpu

import (
	"math"
	"testing"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

const epsilon = 1e-5

func TestIsAvailable(t *testing.T) {
	// Reports status without failing; CI machines may have no adapter.
	t.Logf("WebGPU available: %v", IsAvailable())
}

func newBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	t.Cleanup(backend.Release)
	return backend
}

func newTable(t *testing.T) *dispatch.Table {
	t.Helper()
	tbl := dispatch.NewTable()
	newBackend(t).Register(tbl)
	return tbl
}

func TestNew(t *testing.T) {
	backend := newBackend(t)

	if backend.Name() == "" {
		t.Error("backend name should not be empty")
	}
	t.Logf("Backend name: %s", backend.Name())

	if backend.Device() != tensor.WebGPU {
		t.Errorf("expected device WebGPU, got %v", backend.Device())
	}
}

func runUnaryOp(t *testing.T, tbl *dispatch.Table, op dispatch.Op, data []float32) []float32 {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape{len(data)}, tensor.WebGPU)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	kernel, err := tbl.Lookup(op, tensor.WebGPU)
	if err != nil {
		t.Fatalf("Lookup(%s): %v", op, err)
	}
	plan, err := tensor.BuildUnary(nil, x)
	if err != nil {
		t.Fatalf("BuildUnary: %v", err)
	}
	if err := kernel(plan); err != nil {
		t.Fatalf("kernel(%s): %v", op, err)
	}
	out := plan.Output()
	return tensor.Data[float32](out)[:out.NumElements()]
}

func TestUnaryKernels(t *testing.T) {
	tbl := newTable(t)

	tests := []struct {
		op   dispatch.Op
		f    func(float64) float64
		data []float32
	}{
		{dispatch.OpSin, math.Sin, []float32{-1.5, -0.3, 0, 0.4, 1.2, 3.0}},
		{dispatch.OpCos, math.Cos, []float32{-1.5, -0.3, 0, 0.4, 1.2, 3.0}},
		{dispatch.OpExp, math.Exp, []float32{-2, -0.5, 0, 0.5, 2, 4}},
		{dispatch.OpSqrt, math.Sqrt, []float32{0, 0.25, 1, 4, 16, 100}},
		{dispatch.OpTanh, math.Tanh, []float32{-3, -1, 0, 0.5, 1, 3}},
		{dispatch.OpFloor, math.Floor, []float32{-1.5, -0.5, 0, 0.5, 1.5, 2.5}},
		{dispatch.OpTrunc, math.Trunc, []float32{-1.5, -0.5, 0, 0.5, 1.5, 2.5}},
		{dispatch.OpRound, math.RoundToEven, []float32{-1.5, -0.5, 0.5, 1.5, 2.5, 3.5}},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got := runUnaryOp(t, tbl, tt.op, tt.data)
			for i, v := range got {
				want := float32(tt.f(float64(tt.data[i])))
				if diff := float64(v - want); diff > epsilon || diff < -epsilon {
					t.Errorf("%s(%g) = %g, want %g", tt.op, tt.data[i], v, want)
				}
			}
		})
	}
}

func TestBinaryAdd(t *testing.T) {
	tbl := newTable(t)

	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, tensor.WebGPU)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	b, err := tensor.FromSlice([]float32{10, 20, 30, 40}, tensor.Shape{4}, tensor.WebGPU)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	kernel, err := tbl.Lookup(dispatch.OpAdd, tensor.WebGPU)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	plan, err := tensor.Build(nil, []*tensor.Array{a, b})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := kernel(plan); err != nil {
		t.Fatalf("kernel: %v", err)
	}

	want := []float32{11, 22, 33, 44}
	out := tensor.Data[float32](plan.Output())[:4]
	for i, v := range out {
		if v != want[i] {
			t.Errorf("element %d: got %g, want %g", i, v, want[i])
		}
	}
}

func TestClampKernel(t *testing.T) {
	tbl := newTable(t)

	x, err := tensor.FromSlice([]float32{-1, 0.5, 2}, tensor.Shape{3}, tensor.WebGPU)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	kernel, err := tbl.Lookup(dispatch.OpClamp, tensor.WebGPU)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	plan, err := tensor.BuildUnary(nil, x)
	if err != nil {
		t.Fatalf("BuildUnary: %v", err)
	}
	if err := kernel(plan, tensor.FloatScalar(0), tensor.FloatScalar(1)); err != nil {
		t.Fatalf("kernel: %v", err)
	}

	want := []float32{0, 0.5, 1}
	out := tensor.Data[float32](plan.Output())[:3]
	for i, v := range out {
		if v != want[i] {
			t.Errorf("element %d: got %g, want %g", i, v, want[i])
		}
	}
}

func TestRejectsUnsupportedPlans(t *testing.T) {
	tbl := newTable(t)

	kernel, err := tbl.Lookup(dispatch.OpSin, tensor.WebGPU)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	f64, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, tensor.WebGPU)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	plan, err := tensor.BuildUnary(nil, f64)
	if err != nil {
		t.Fatalf("BuildUnary: %v", err)
	}
	if err := kernel(plan); err == nil {
		t.Error("expected float64 input to be rejected")
	}

	// Broadcast plans are not dense and must be rejected too.
	x, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.WebGPU)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	dst, err := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32, tensor.WebGPU)
	if err != nil {
		t.Fatalf("Zeros: %v", err)
	}
	plan, err = tensor.BuildUnary(dst, x)
	if err != nil {
		t.Fatalf("BuildUnary: %v", err)
	}
	if err := kernel(plan); err == nil {
		t.Error("expected broadcast plan to be rejected")
	}
}
