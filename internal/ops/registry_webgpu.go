//go:build windows

package ops

import (
	"github.com/stride-ml/stride/internal/backend/webgpu"
	"github.com/stride-ml/stride/internal/dispatch"
)

// registerAccelerators wires the WebGPU kernels when a device is present.
// Initialization failure leaves the table CPU-only.
func registerAccelerators(t *dispatch.Table) {
	gpu, err := webgpu.New()
	if err != nil {
		return
	}
	gpu.Register(t)
}
