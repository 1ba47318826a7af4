//go:build windows

// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the GPU backend over WebGPU compute shaders.
//
// The backend runs float32 kernels for the operations WGSL can express;
// everything else stays on the CPU. Data lives in host memory and moves
// to the device per operation.
//
// Example:
//
//	import (
//	    "github.com/stride-ml/stride/backend/cpu"
//	    "github.com/stride-ml/stride/backend/webgpu"
//	    "github.com/stride-ml/stride/dispatch"
//	    "github.com/stride-ml/stride/ops"
//	)
//
//	func main() {
//	    tbl := dispatch.NewTable()
//	    cpu.New().Register(tbl)
//	    if webgpu.IsAvailable() {
//	        gpu, err := webgpu.New()
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        defer gpu.Release()
//	        gpu.Register(tbl)
//	    }
//	    ops.SetTable(tbl)
//	}
package webgpu

import (
	internalwebgpu "github.com/stride-ml/stride/internal/backend/webgpu"
)

// Backend drives WebGPU compute kernels through one device and queue.
type Backend = internalwebgpu.Backend

// New initializes the WebGPU instance, adapter and device. Call Release
// when done to free GPU resources. Returns an error when no compatible
// adapter is present.
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable reports whether a WebGPU adapter can be acquired, for
// graceful fallback to the CPU kernels.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
