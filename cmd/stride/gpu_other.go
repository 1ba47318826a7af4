//go:build !windows

package main

// gpuStatus reports that this build carries no WebGPU kernels.
func gpuStatus() string {
	return "unavailable (windows builds only)"
}
