package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// storage is a reference-counted byte buffer shared between array views.
type storage struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // guards deallocation
}

func newStorage(size int) *storage {
	st := &storage{data: make([]byte, size)}
	st.refCount.Store(1)
	return st
}

func (st *storage) addRef() {
	st.refCount.Add(1)
}

func (st *storage) release() {
	if st.refCount.Add(-1) == 0 {
		st.mu.Lock()
		defer st.mu.Unlock()
		st.data = nil
	}
}

// Array is an N-dimensional view over shared storage: a shape, per-dimension
// element strides, a byte offset, a dtype, and a device tag. Several views
// may alias one buffer; taking a view never copies elements.
type Array struct {
	buf    *storage
	shape  Shape
	stride []int // element strides, dense row-major for fresh allocations
	dtype  DataType
	device Device
	offset int // byte offset into buf.data
}

// New allocates a zero-filled array with the given shape and dtype.
func New(shape Shape, dtype DataType, device Device) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array{
		buf:    newStorage(shape.NumElements() * dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the dimensions of the view. Callers must not mutate it.
func (a *Array) Shape() Shape { return a.shape }

// Strides returns the per-dimension element strides of the view.
func (a *Array) Strides() []int { return a.stride }

// DType returns the element type.
func (a *Array) DType() DataType { return a.dtype }

// Device returns the device tag.
func (a *Array) Device() Device { return a.device }

// NumElements returns the number of elements addressed by the view.
func (a *Array) NumElements() int { return a.shape.NumElements() }

// Clone returns a new view with the same geometry sharing the same storage.
func (a *Array) Clone() *Array {
	a.buf.addRef()
	return &Array{
		buf:    a.buf,
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		dtype:  a.dtype,
		device: a.device,
		offset: a.offset,
	}
}

// Release decrements the storage reference count, freeing the buffer when
// the last view goes away.
func (a *Array) Release() {
	a.buf.release()
}

// view constructs a sibling view over the same storage with new geometry.
func (a *Array) view(shape Shape, stride []int, dtype DataType, offset int) *Array {
	a.buf.addRef()
	return &Array{
		buf:    a.buf,
		shape:  shape,
		stride: stride,
		dtype:  dtype,
		device: a.device,
		offset: offset,
	}
}

// Bytes returns the raw storage bytes from the view's offset to the end of
// the buffer.
func (a *Array) Bytes() []byte {
	return a.buf.data[a.offset:]
}

// Data returns the elements of a as a typed slice starting at the view's
// offset and running to the end of the underlying storage. Strided views
// index into this slice with their own strides, so the slice may hold more
// elements than the view addresses. Panics if T does not match the dtype.
func Data[T Elem](a *Array) []T {
	if want := DataTypeOf[T](); want != a.dtype {
		panic(fmt.Sprintf("array dtype is %s, not %s", a.dtype, want))
	}
	data := a.buf.data[a.offset:]
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy reinterpretation of the backing buffer
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/a.dtype.Size())
}

// AsFloat32 returns the underlying data as a float32 slice.
func (a *Array) AsFloat32() []float32 { return Data[float32](a) }

// AsFloat64 returns the underlying data as a float64 slice.
func (a *Array) AsFloat64() []float64 { return Data[float64](a) }

// AsInt32 returns the underlying data as an int32 slice.
func (a *Array) AsInt32() []int32 { return Data[int32](a) }

// AsInt64 returns the underlying data as an int64 slice.
func (a *Array) AsInt64() []int64 { return Data[int64](a) }

// AsUint8 returns the underlying data as a uint8 slice.
func (a *Array) AsUint8() []uint8 { return Data[uint8](a) }

// AsBool returns the underlying data as a bool slice.
func (a *Array) AsBool() []bool { return Data[bool](a) }

// AsComplex64 returns the underlying data as a complex64 slice.
func (a *Array) AsComplex64() []complex64 { return Data[complex64](a) }

// AsComplex128 returns the underlying data as a complex128 slice.
func (a *Array) AsComplex128() []complex128 { return Data[complex128](a) }

// IsContiguous reports whether the view lays its elements out in dense
// row-major order. Dimensions of size 0 or 1 impose no constraint.
func (a *Array) IsContiguous() bool {
	if a.NumElements() == 0 {
		return true
	}
	expected := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.stride[i] != expected {
			return false
		}
		expected *= a.shape[i]
	}
	return true
}

// HasInternalOverlap reports whether distinct indices of the view can map
// to the same memory location: any stride of 0 spanning a dimension larger
// than 1.
func (a *Array) HasInternalOverlap() bool {
	for i, st := range a.stride {
		if st == 0 && a.shape[i] > 1 {
			return true
		}
	}
	return false
}

// SameStorage reports whether two views share one underlying buffer.
func (a *Array) SameStorage(other *Array) bool {
	return a.buf == other.buf
}

// byteSpan returns the half-open byte interval of storage the view can
// touch. Strides are never negative in this package.
func (a *Array) byteSpan() (lo, hi int) {
	if a.NumElements() == 0 {
		return a.offset, a.offset
	}
	last := 0
	for i, dim := range a.shape {
		last += (dim - 1) * a.stride[i]
	}
	return a.offset, a.offset + (last+1)*a.dtype.Size()
}

// elemOffset resolves full indices to an element offset in Data order.
func (a *Array) elemOffset(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of range for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		off += idx * a.stride[i]
	}
	return off
}

// At returns the element at the given indices as its native Go value.
func (a *Array) At(indices ...int) any {
	off := a.elemOffset(indices)
	switch a.dtype {
	case Float32:
		return Data[float32](a)[off]
	case Float64:
		return Data[float64](a)[off]
	case Int32:
		return Data[int32](a)[off]
	case Int64:
		return Data[int64](a)[off]
	case Uint8:
		return Data[uint8](a)[off]
	case Bool:
		return Data[bool](a)[off]
	case Complex64:
		return Data[complex64](a)[off]
	case Complex128:
		return Data[complex128](a)[off]
	default:
		panic(fmt.Sprintf("unknown data type: %d", a.dtype))
	}
}

// Set stores v at the given indices. v must have the element type matching
// the array's dtype.
func (a *Array) Set(v any, indices ...int) {
	off := a.elemOffset(indices)
	switch a.dtype {
	case Float32:
		Data[float32](a)[off] = v.(float32)
	case Float64:
		Data[float64](a)[off] = v.(float64)
	case Int32:
		Data[int32](a)[off] = v.(int32)
	case Int64:
		Data[int64](a)[off] = v.(int64)
	case Uint8:
		Data[uint8](a)[off] = v.(uint8)
	case Bool:
		Data[bool](a)[off] = v.(bool)
	case Complex64:
		Data[complex64](a)[off] = v.(complex64)
	case Complex128:
		Data[complex128](a)[off] = v.(complex128)
	default:
		panic(fmt.Sprintf("unknown data type: %d", a.dtype))
	}
}

// Resize reshapes the array in place, reusing the storage when it is large
// enough and allocating fresh storage otherwise. Strides reset to dense
// row-major. Element values are only preserved when the storage is reused.
func (a *Array) Resize(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("invalid shape: %w", err)
	}
	needed := shape.NumElements() * a.dtype.Size()
	if needed > len(a.buf.data)-a.offset {
		a.buf.release()
		a.buf = newStorage(needed)
		a.offset = 0
	}
	a.shape = shape.Clone()
	a.stride = shape.ComputeStrides()
	return nil
}

// Contiguous returns a dense row-major array with the same elements: the
// receiver itself when it is already contiguous, a copy otherwise.
func (a *Array) Contiguous() (*Array, error) {
	if a.IsContiguous() {
		return a, nil
	}
	out, err := New(a.shape, a.dtype, a.device)
	if err != nil {
		return nil, err
	}
	copyElements(out, a)
	return out, nil
}

// copyElements copies src into dst elementwise. Shapes and dtypes must
// already match.
func copyElements(dst, src *Array) {
	switch dst.dtype {
	case Float32:
		copyStrided[float32](dst, src)
	case Float64:
		copyStrided[float64](dst, src)
	case Int32:
		copyStrided[int32](dst, src)
	case Int64:
		copyStrided[int64](dst, src)
	case Uint8:
		copyStrided[uint8](dst, src)
	case Bool:
		copyStrided[bool](dst, src)
	case Complex64:
		copyStrided[complex64](dst, src)
	case Complex128:
		copyStrided[complex128](dst, src)
	}
}

func copyStrided[T Elem](dst, src *Array) {
	d := Data[T](dst)
	s := Data[T](src)
	n := dst.NumElements()
	for i := 0; i < n; i++ {
		d[flatOffset(i, dst.shape, dst.stride)] = s[flatOffset(i, src.shape, src.stride)]
	}
}
