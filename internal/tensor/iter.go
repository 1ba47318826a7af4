package tensor

import "fmt"

// Plan is the executable description of one elementwise traversal: the
// reconciled broadcast shape, the validated output, the inputs, and the
// stride tables kernels use to map a linear index onto every operand.
// Building a plan performs no computation beyond allocating or resizing
// the output.
type Plan struct {
	shape    Shape
	dtype    DataType
	device   Device
	out      *Array
	inputs   []*Array
	inStride [][]int
	contig   bool
}

type buildConfig struct {
	checkOverlap bool
	sameDType    bool
	dtype        DataType
	hasDType     bool
}

// BuildOption adjusts plan validation.
type BuildOption func(*buildConfig)

// WithoutOverlapCheck skips output/input aliasing validation. Only safe
// when the output is freshly allocated storage no input can alias.
func WithoutOverlapCheck() BuildOption {
	return func(c *buildConfig) { c.checkOverlap = false }
}

// WithoutSameDType allows the output dtype to differ from the computation
// dtype. Kernels registered for such plans convert as they store.
func WithoutSameDType() BuildOption {
	return func(c *buildConfig) { c.sameDType = false }
}

// WithDType sets the dtype used when the plan allocates its own output,
// instead of inheriting the input dtype. The computation dtype stays that
// of the inputs, so combine this with WithoutSameDType when they differ.
func WithDType(dt DataType) BuildOption {
	return func(c *buildConfig) {
		c.dtype = dt
		c.hasDType = true
	}
}

// BuildUnary builds a plan over a single input. See Build.
func BuildUnary(out, in *Array, opts ...BuildOption) (*Plan, error) {
	return Build(out, []*Array{in}, opts...)
}

// Build reconciles the inputs, and out when non-nil, into a Plan.
//
// The common shape is the broadcast of all input shapes. A nil out is
// allocated with that shape. An out with zero elements is resized to it.
// Any other out joins the broadcast on the condition that the merged shape
// equals its own, so a requested output may be larger than every input but
// never smaller, and is never silently reshaped. On any validation failure
// the output is left untouched.
func Build(out *Array, inputs []*Array, opts ...BuildOption) (*Plan, error) {
	cfg := buildConfig{checkOverlap: true, sameDType: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: a plan needs at least one input", ErrInvalidArgument)
	}

	device := inputs[0].device
	dtype := inputs[0].dtype
	for _, in := range inputs[1:] {
		if in.device != device {
			return nil, fmt.Errorf("%w: expected all operands on %s, found %s",
				ErrUnsupportedDevice, device, in.device)
		}
		if in.dtype != dtype {
			return nil, fmt.Errorf("%w: expected all inputs to share dtype %s, found %s",
				ErrInvalidCast, dtype, in.dtype)
		}
	}
	shapes := make([]Shape, len(inputs))
	for i, in := range inputs {
		shapes[i] = in.shape
	}
	common, err := BroadcastShapes(shapes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}

	switch {
	case out == nil:
		allocType := dtype
		if cfg.hasDType {
			allocType = cfg.dtype
		}
		out, err = New(common, allocType, device)
		if err != nil {
			return nil, err
		}
	case out.NumElements() == 0 && !out.shape.Equal(common):
		if out.device != device {
			return nil, fmt.Errorf("%w: output on %s, inputs on %s", ErrUnsupportedDevice, out.device, device)
		}
		if err := out.Resize(common); err != nil {
			return nil, err
		}
	default:
		if out.device != device {
			return nil, fmt.Errorf("%w: output on %s, inputs on %s", ErrUnsupportedDevice, out.device, device)
		}
		merged, mergeErr := BroadcastShapes(append(shapes, out.shape)...)
		if mergeErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, mergeErr)
		}
		if !merged.Equal(out.shape) {
			return nil, fmt.Errorf("%w: output shape %v cannot hold broadcast result %v",
				ErrShapeMismatch, out.shape, merged)
		}
		common = merged
	}

	if cfg.sameDType && out.dtype != dtype {
		return nil, fmt.Errorf("%w: output dtype %s does not match computation dtype %s",
			ErrInvalidCast, out.dtype, dtype)
	}
	if out.HasInternalOverlap() {
		return nil, fmt.Errorf("%w: output is a broadcast view where one element backs many indices; materialize it first",
			ErrUnsupportedLayout)
	}
	if cfg.checkOverlap {
		for _, in := range inputs {
			if err := checkPartialOverlap(out, in); err != nil {
				return nil, err
			}
		}
	}

	p := &Plan{
		shape:    common,
		dtype:    dtype,
		device:   device,
		out:      out,
		inputs:   inputs,
		inStride: make([][]int, len(inputs)),
	}
	for i, in := range inputs {
		p.inStride[i] = broadcastStrides(in.shape, in.stride, common)
	}
	p.contig = p.computeContiguous()
	return p, nil
}

// broadcastStrides right-aligns a view's strides against the plan shape,
// zeroing the stride wherever a size-1 or missing dimension is stretched.
func broadcastStrides(shape Shape, stride []int, to Shape) []int {
	result := make([]int, len(to))
	pad := len(to) - len(shape)
	for i := range to {
		src := i - pad
		if src < 0 || (shape[src] == 1 && to[i] != 1) {
			result[i] = 0
		} else {
			result[i] = stride[src]
		}
	}
	return result
}

func (p *Plan) computeContiguous() bool {
	if !p.out.IsContiguous() {
		return false
	}
	for _, in := range p.inputs {
		if !in.shape.Equal(p.shape) || !in.IsContiguous() {
			return false
		}
	}
	return true
}

// Shape returns the reconciled broadcast shape.
func (p *Plan) Shape() Shape { return p.shape }

// DType returns the computation dtype shared by all inputs.
func (p *Plan) DType() DataType { return p.dtype }

// Device returns the device every operand lives on.
func (p *Plan) Device() Device { return p.device }

// NumElements returns the element count of the broadcast shape.
func (p *Plan) NumElements() int { return p.shape.NumElements() }

// Contiguous reports whether every operand is dense over the plan shape,
// letting kernels iterate flat slices directly.
func (p *Plan) Contiguous() bool { return p.contig }

// Output returns the validated, possibly freshly allocated, output array.
func (p *Plan) Output() *Array { return p.out }

// NumInputs returns the input count.
func (p *Plan) NumInputs() int { return len(p.inputs) }

// Input returns the i-th input array.
func (p *Plan) Input(i int) *Array { return p.inputs[i] }

// OutputOffset maps a linear plan index to an element offset into the
// output's Data slice.
func (p *Plan) OutputOffset(i int) int {
	return flatOffset(i, p.shape, p.out.stride)
}

// InputOffset maps a linear plan index to an element offset into the k-th
// input's Data slice, honoring broadcast.
func (p *Plan) InputOffset(k, i int) int {
	return flatOffset(i, p.shape, p.inStride[k])
}

// flatOffset converts a linear index over shape into an element offset via
// the given strides, peeling dimensions from the innermost outward.
func flatOffset(i int, shape Shape, stride []int) int {
	off := 0
	for d := len(shape) - 1; d >= 0; d-- {
		off += (i % shape[d]) * stride[d]
		i /= shape[d]
	}
	return off
}
