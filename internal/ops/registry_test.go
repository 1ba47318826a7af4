package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

func TestTable_DefaultHasCPUKernels(t *testing.T) {
	tbl := Table()
	require.NotNil(t, tbl)

	for _, op := range []dispatch.Op{dispatch.OpSin, dispatch.OpAbs, dispatch.OpClamp, dispatch.OpCopy} {
		_, err := tbl.Lookup(op, tensor.CPU)
		assert.NoError(t, err, "%s must be registered for cpu", op)
	}
	assert.NotEmpty(t, tbl.Ops())
}

// TestSetTable_Injection swaps in a stub kernel, then restores the default.
func TestSetTable_Injection(t *testing.T) {
	custom := dispatch.NewTable()
	custom.Register(dispatch.OpSin, tensor.CPU, func(p *tensor.Plan, _ ...tensor.Scalar) error {
		out := tensor.Data[float32](p.Output())
		for i := 0; i < p.NumElements(); i++ {
			out[p.OutputOffset(i)] = 42
		}
		return nil
	})
	SetTable(custom)
	defer SetTable(nil)

	x := newF32(t, []float32{1, 2, 3}, tensor.Shape{3})
	got, err := Sin(x)
	require.NoError(t, err)
	assert.Equal(t, []float32{42, 42, 42}, f32Values(t, got))

	// Ops outside the custom table are now unavailable.
	_, err = Cos(x)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDevice)

	SetTable(nil)
	got, err = Sin(x)
	require.NoError(t, err)
	assert.InDelta(t, 0.841470985, got.At(0).(float32), 1e-6)
}
