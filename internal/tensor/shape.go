package tensor

import "fmt"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements. A zero-rank shape is a
// scalar and has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	result := make(Shape, len(s))
	copy(result, s)
	return result
}

// ComputeStrides returns dense row-major element strides for the shape.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}

// String returns a human-readable representation.
func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// BroadcastShapes reconciles shapes pairwise from right to left following
// NumPy rules: dimensions match when they are equal or when one of them is
// 1, and missing leading dimensions count as 1.
//
// Examples:
//
//	(3, 1) and (3, 5) give (3, 5)
//	(2, 3) and ()     give (2, 3)
//	(3, 4) and (3, 5) cannot broadcast
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("no shapes to broadcast")
	}
	result := shapes[0].Clone()
	for _, s := range shapes[1:] {
		merged, err := broadcastPair(result, s)
		if err != nil {
			return nil, err
		}
		result = merged
	}
	return result, nil
}

func broadcastPair(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	for i := 0; i < maxLen; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}
		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, fmt.Errorf("shapes %v and %v are not compatible for broadcasting (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}
	return result, nil
}
