package tensor

import "fmt"

// normalizeDim resolves a possibly negative dimension index against rank n.
func normalizeDim(dim, n int) (int, error) {
	d := dim
	if d < 0 {
		d += n
	}
	if d < 0 || d >= n {
		return 0, fmt.Errorf("%w: dimension %d out of range for rank %d", ErrInvalidArgument, dim, n)
	}
	return d, nil
}

// Unsqueeze returns a view with a size-1 dimension inserted at dim. The
// index may range over [-(rank+1), rank], counting the new dimension.
func (a *Array) Unsqueeze(dim int) (*Array, error) {
	n := len(a.shape) + 1
	d, err := normalizeDim(dim, n)
	if err != nil {
		return nil, err
	}
	shape := make(Shape, 0, n)
	shape = append(shape, a.shape[:d]...)
	shape = append(shape, 1)
	shape = append(shape, a.shape[d:]...)

	inserted := 1
	if d < len(a.shape) {
		inserted = a.shape[d] * a.stride[d]
	}
	stride := make([]int, 0, n)
	stride = append(stride, a.stride[:d]...)
	stride = append(stride, inserted)
	stride = append(stride, a.stride[d:]...)
	return a.view(shape, stride, a.dtype, a.offset), nil
}

// Select returns a view with dimension dim removed, fixed at index. The
// index may be negative to count from the end.
func (a *Array) Select(dim, index int) (*Array, error) {
	d, err := normalizeDim(dim, len(a.shape))
	if err != nil {
		return nil, err
	}
	idx := index
	if idx < 0 {
		idx += a.shape[d]
	}
	if idx < 0 || idx >= a.shape[d] {
		return nil, fmt.Errorf("%w: index %d out of range for dimension %d (size %d)",
			ErrInvalidArgument, index, d, a.shape[d])
	}
	shape := make(Shape, 0, len(a.shape)-1)
	shape = append(shape, a.shape[:d]...)
	shape = append(shape, a.shape[d+1:]...)
	stride := make([]int, 0, len(a.shape)-1)
	stride = append(stride, a.stride[:d]...)
	stride = append(stride, a.stride[d+1:]...)
	offset := a.offset + idx*a.stride[d]*a.dtype.Size()
	return a.view(shape, stride, a.dtype, offset), nil
}

// Narrow returns a view of dimension dim restricted to the index range
// [start, start+length).
func (a *Array) Narrow(dim, start, length int) (*Array, error) {
	d, err := normalizeDim(dim, len(a.shape))
	if err != nil {
		return nil, err
	}
	if start < 0 || length < 0 || start+length > a.shape[d] {
		return nil, fmt.Errorf("%w: narrow range [%d, %d) out of bounds for dimension %d (size %d)",
			ErrInvalidArgument, start, start+length, d, a.shape[d])
	}
	shape := a.shape.Clone()
	shape[d] = length
	offset := a.offset + start*a.stride[d]*a.dtype.Size()
	return a.view(shape, append([]int(nil), a.stride...), a.dtype, offset), nil
}

// Expand returns a broadcast view with size-1 dimensions stretched to the
// target shape. Stretched dimensions get stride 0, so the view reads one
// element many times without copying.
func (a *Array) Expand(target Shape) (*Array, error) {
	if len(target) < len(a.shape) {
		return nil, fmt.Errorf("%w: cannot expand shape %v to lower-rank %v", ErrShapeMismatch, a.shape, target)
	}
	pad := len(target) - len(a.shape)
	stride := make([]int, len(target))
	for i := range target {
		src := i - pad
		switch {
		case src < 0:
			stride[i] = 0
		case a.shape[src] == target[i]:
			stride[i] = a.stride[src]
		case a.shape[src] == 1:
			stride[i] = 0
		default:
			return nil, fmt.Errorf("%w: cannot expand dimension %d from %d to %d",
				ErrShapeMismatch, src, a.shape[src], target[i])
		}
	}
	return a.view(target.Clone(), stride, a.dtype, a.offset), nil
}

// ViewAsReal reinterprets a complex array as a real one with a trailing
// dimension of size 2 holding the (real, imaginary) pair of each element.
// The result shares storage with the receiver.
func (a *Array) ViewAsReal() (*Array, error) {
	if !a.dtype.IsComplex() {
		return nil, fmt.Errorf("%w: view_as_real expects a complex array, got %s", ErrUnsupportedDtype, a.dtype)
	}
	shape := make(Shape, len(a.shape)+1)
	copy(shape, a.shape)
	shape[len(a.shape)] = 2

	stride := make([]int, len(a.shape)+1)
	for i, st := range a.stride {
		stride[i] = st * 2
	}
	stride[len(a.shape)] = 1
	return a.view(shape, stride, ValueType(a.dtype), a.offset), nil
}
