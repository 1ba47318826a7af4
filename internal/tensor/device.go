package tensor

// Device identifies the compute backend whose kernels operate on an array.
// Array data always lives in host memory; the device tag selects the kernel
// path taken by the dispatch table, and accelerator backends move data to
// and from the device per operation.
type Device int

// Supported compute devices. CUDA is recognized but ships without kernels.
const (
	CPU Device = iota
	CUDA
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}
