//go:build !windows

package ops

import "github.com/stride-ml/stride/internal/dispatch"

// registerAccelerators is a no-op on platforms without WebGPU support.
func registerAccelerators(_ *dispatch.Table) {}
