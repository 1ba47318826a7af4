//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/stride-ml/stride/internal/tensor"
)

// compileShader compiles WGSL into a shader module, caching by name.
func (b *Backend) compileShader(name, code string) *wgpu.ShaderModule {
	b.mu.RLock()
	if shader, exists := b.shaders[name]; exists {
		b.mu.RUnlock()
		return shader
	}
	b.mu.RUnlock()

	shader := b.device.CreateShaderModuleWGSL(code)

	b.mu.Lock()
	b.shaders[name] = shader
	b.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached compute pipeline or builds one with
// an auto layout.
func (b *Backend) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	b.mu.RLock()
	if pipeline, exists := b.pipelines[name]; exists {
		b.mu.RUnlock()
		return pipeline
	}
	b.mu.RUnlock()

	pipeline := b.device.CreateComputePipelineSimple(nil, shader, "main")

	b.mu.Lock()
	b.pipelines[name] = pipeline
	b.mu.Unlock()

	return pipeline
}

// createBuffer uploads data into a fresh storage buffer.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))

	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// createUniformBuffer pads the payload to the 16-byte uniform alignment.
func (b *Backend) createUniformBuffer(data []byte) *wgpu.Buffer {
	size := uint64(len(data))
	alignedSize := (size + 15) &^ 15

	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), alignedSize)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// readBuffer copies GPU results back to host memory through a staging
// buffer, since storage buffers cannot be mapped directly.
func (b *Backend) readBuffer(src *wgpu.Buffer, size uint64) ([]byte, error) {
	staging := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("failed to map staging buffer: %w", err)
	}

	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)
	staging.Unmap()

	return result, nil
}

// submitCompute encodes a single compute pass over n linear elements and
// submits it.
func (b *Backend) submitCompute(pipeline *wgpu.ComputePipeline, bindGroup *wgpu.BindGroup, n int) {
	encoder := b.device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // G115: workgroup count is non-negative
	workgroups := uint32((n + workgroupSize - 1) / workgroupSize)
	pass.DispatchWorkgroups(workgroups, 1, 1)
	pass.End()
	b.queue.Submit(encoder.Finish(nil))
}

// checkPlan rejects plans the flat shaders cannot iterate: the GPU kernels
// read and write dense float32 buffers without stride arithmetic.
func checkPlan(p *tensor.Plan) error {
	if p.DType() != tensor.Float32 || p.Output().DType() != tensor.Float32 {
		return fmt.Errorf("%w: webgpu kernels support float32 only, got %s",
			tensor.ErrUnsupportedDtype, p.DType())
	}
	if !p.Contiguous() {
		return fmt.Errorf("%w: webgpu kernels require dense same-shape operands",
			tensor.ErrUnsupportedLayout)
	}
	return nil
}

// sizeParams encodes the element count as a 16-byte uniform payload.
func sizeParams(n int) []byte {
	params := make([]byte, 16)
	//nolint:gosec // G115: element count is non-negative
	binary.LittleEndian.PutUint32(params[0:4], uint32(n))
	return params
}

// runUnary executes an elementwise unary shader over the plan.
func (b *Backend) runUnary(p *tensor.Plan, name, code string) error {
	if err := checkPlan(p); err != nil {
		return err
	}
	n := p.NumElements()
	if n == 0 {
		return nil
	}
	size := uint64(n) * 4

	shader := b.compileShader(name, code)
	pipeline := b.getOrCreatePipeline(name, shader)

	bufIn := b.createBuffer(p.Input(0).Bytes()[:size], wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufIn.Release()

	bufResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer bufResult.Release()

	bufParams := b.createUniformBuffer(sizeParams(n))
	defer bufParams.Release()

	bindGroup := b.device.CreateBindGroupSimple(pipeline.GetBindGroupLayout(0), []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufIn, 0, size),
		wgpu.BufferBindingEntry(1, bufResult, 0, size),
		wgpu.BufferBindingEntry(2, bufParams, 0, 16),
	})
	defer bindGroup.Release()

	b.submitCompute(pipeline, bindGroup, n)

	resultData, err := b.readBuffer(bufResult, size)
	if err != nil {
		return err
	}
	copy(p.Output().Bytes()[:size], resultData)
	return nil
}

// runBinary executes an elementwise binary shader over the plan. Both
// inputs must already share the plan shape.
func (b *Backend) runBinary(p *tensor.Plan, name, code string) error {
	if err := checkPlan(p); err != nil {
		return err
	}
	n := p.NumElements()
	if n == 0 {
		return nil
	}
	size := uint64(n) * 4

	shader := b.compileShader(name, code)
	pipeline := b.getOrCreatePipeline(name, shader)

	bufA := b.createBuffer(p.Input(0).Bytes()[:size], wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufA.Release()

	bufB := b.createBuffer(p.Input(1).Bytes()[:size], wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufB.Release()

	bufResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer bufResult.Release()

	bufParams := b.createUniformBuffer(sizeParams(n))
	defer bufParams.Release()

	bindGroup := b.device.CreateBindGroupSimple(pipeline.GetBindGroupLayout(0), []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufA, 0, size),
		wgpu.BufferBindingEntry(1, bufB, 0, size),
		wgpu.BufferBindingEntry(2, bufResult, 0, size),
		wgpu.BufferBindingEntry(3, bufParams, 0, 16),
	})
	defer bindGroup.Release()

	b.submitCompute(pipeline, bindGroup, n)

	resultData, err := b.readBuffer(bufResult, size)
	if err != nil {
		return err
	}
	copy(p.Output().Bytes()[:size], resultData)
	return nil
}

// runClamp executes the clamp shader. The bounds travel in the uniform
// buffer together with per-side enable flags, so one shader serves clamp,
// clamp_min and clamp_max.
func (b *Backend) runClamp(p *tensor.Plan, lo tensor.Scalar, hasLo bool, hi tensor.Scalar, hasHi bool) error {
	if err := checkPlan(p); err != nil {
		return err
	}
	if (hasLo && lo.IsComplex()) || (hasHi && hi.IsComplex()) {
		return fmt.Errorf("%w: clamp bounds must be real", tensor.ErrInvalidArgument)
	}
	n := p.NumElements()
	if n == 0 {
		return nil
	}
	size := uint64(n) * 4

	shader := b.compileShader("clamp", clampShader)
	pipeline := b.getOrCreatePipeline("clamp", shader)

	bufIn := b.createBuffer(p.Input(0).Bytes()[:size], wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufIn.Release()

	bufResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer bufResult.Release()

	// Layout: size, lo, hi, use_lo, use_hi. Padded to 32 bytes.
	params := make([]byte, 20)
	//nolint:gosec // G115: element count is non-negative
	binary.LittleEndian.PutUint32(params[0:4], uint32(n))
	var lof, hif float32
	var useLo, useHi uint32
	if hasLo {
		lof, useLo = float32(lo.Float64()), 1
	}
	if hasHi {
		hif, useHi = float32(hi.Float64()), 1
	}
	binary.LittleEndian.PutUint32(params[4:8], math.Float32bits(lof))
	binary.LittleEndian.PutUint32(params[8:12], math.Float32bits(hif))
	binary.LittleEndian.PutUint32(params[12:16], useLo)
	binary.LittleEndian.PutUint32(params[16:20], useHi)
	bufParams := b.createUniformBuffer(params)
	defer bufParams.Release()

	bindGroup := b.device.CreateBindGroupSimple(pipeline.GetBindGroupLayout(0), []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufIn, 0, size),
		wgpu.BufferBindingEntry(1, bufResult, 0, size),
		wgpu.BufferBindingEntry(2, bufParams, 0, 32),
	})
	defer bindGroup.Release()

	b.submitCompute(pipeline, bindGroup, n)

	resultData, err := b.readBuffer(bufResult, size)
	if err != nil {
		return err
	}
	copy(p.Output().Bytes()[:size], resultData)
	return nil
}
