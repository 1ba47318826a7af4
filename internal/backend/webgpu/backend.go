//go:build windows

// Package webgpu implements the GPU backend over WebGPU compute shaders,
// using github.com/go-webgpu/webgpu for zero-CGO bindings. Its kernels
// cover dense float32 operands; everything else stays on the CPU backend.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/stride-ml/stride/internal/dispatch"
	"github.com/stride-ml/stride/internal/tensor"
)

// Backend holds the WebGPU instance, device and queue, plus shader and
// pipeline caches keyed by operation name.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	adapterInfo wgpu.AdapterInfo
}

// New initializes WebGPU and binds the backend to the default
// high-performance adapter. Returns an error when the native library or a
// suitable adapter is missing.
func New() (backend *Backend, err error) {
	// The bindings panic when wgpu_native cannot be loaded.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}
	info := adapter.GetInfo()

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Backend{
		instance:    instance,
		adapter:     adapter,
		device:      device,
		queue:       queue,
		shaders:     make(map[string]*wgpu.ShaderModule),
		pipelines:   make(map[string]*wgpu.ComputePipeline),
		adapterInfo: info,
	}, nil
}

// Register installs every GPU kernel into the dispatch table.
func (b *Backend) Register(tbl *dispatch.Table) {
	for op, expr := range unaryExprs {
		name := string(op)
		code := fmt.Sprintf(unaryShaderTemplate, expr)
		tbl.Register(op, tensor.WebGPU, func(p *tensor.Plan, _ ...tensor.Scalar) error {
			return b.runUnary(p, name, code)
		})
	}

	tbl.Register(dispatch.OpAdd, tensor.WebGPU, func(p *tensor.Plan, _ ...tensor.Scalar) error {
		return b.runBinary(p, "add", fmt.Sprintf(binaryShaderTemplate, "+"))
	})
	tbl.Register(dispatch.OpMul, tensor.WebGPU, func(p *tensor.Plan, _ ...tensor.Scalar) error {
		return b.runBinary(p, "mul", fmt.Sprintf(binaryShaderTemplate, "*"))
	})

	tbl.Register(dispatch.OpClamp, tensor.WebGPU, func(p *tensor.Plan, args ...tensor.Scalar) error {
		if len(args) != 2 {
			return fmt.Errorf("%w: clamp expects min and max arguments", tensor.ErrInvalidArgument)
		}
		return b.runClamp(p, args[0], true, args[1], true)
	})
	tbl.Register(dispatch.OpClampMin, tensor.WebGPU, func(p *tensor.Plan, args ...tensor.Scalar) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: clamp_min expects a min argument", tensor.ErrInvalidArgument)
		}
		return b.runClamp(p, args[0], true, tensor.Scalar{}, false)
	})
	tbl.Register(dispatch.OpClampMax, tensor.WebGPU, func(p *tensor.Plan, args ...tensor.Scalar) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: clamp_max expects a max argument", tensor.ErrInvalidArgument)
		}
		return b.runClamp(p, tensor.Scalar{}, false, args[0], true)
	})
}

// Name identifies the adapter driving this backend.
func (b *Backend) Name() string {
	return fmt.Sprintf("WebGPU (%s %s)", b.adapterInfo.Device, b.adapterInfo.Vendor)
}

// Device returns the device tag GPU kernels are registered under.
func (b *Backend) Device() tensor.Device { return tensor.WebGPU }

// AdapterInfo returns information about the GPU adapter.
func (b *Backend) AdapterInfo() wgpu.AdapterInfo {
	return b.adapterInfo
}

// Release frees the cached pipelines and shaders along with the WebGPU
// objects. The backend must not be used afterwards.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.pipelines {
		p.Release()
	}
	b.pipelines = nil

	for _, s := range b.shaders {
		s.Release()
	}
	b.shaders = nil

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// IsAvailable checks whether a WebGPU adapter can be acquired on this
// system.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}
