//go:build windows

package main

import (
	"fmt"

	"github.com/stride-ml/stride/internal/backend/webgpu"
)

// gpuStatus probes for a WebGPU adapter and describes it.
func gpuStatus() string {
	gpu, err := webgpu.New()
	if err != nil {
		return fmt.Sprintf("unavailable (%v)", err)
	}
	defer gpu.Release()
	return gpu.Name()
}
