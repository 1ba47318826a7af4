package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 0, 3}, 0},
		{Shape{1, 1, 1}, 1},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate({2,3}) returned error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err != nil {
		t.Errorf("Validate({2,0}) should accept zero-size dimensions: %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("Validate({2,-1}) should reject negative dimensions")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{2, 3}, []int{3, 1}},
		{Shape{4}, []int{1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{}, []int{}},
	}
	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Errorf("ComputeStrides(%v) = %v, want %v", tt.shape, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ComputeStrides(%v) = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want Shape
	}{
		{"same", Shape{2, 3}, Shape{2, 3}, Shape{2, 3}},
		{"stretch left", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{"rank promote", Shape{2, 3}, Shape{3}, Shape{2, 3}},
		{"scalar", Shape{2, 3}, Shape{}, Shape{2, 3}},
		{"both stretch", Shape{1, 4}, Shape{3, 1}, Shape{3, 4}},
		{"zero size", Shape{0}, Shape{1}, Shape{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.a, tt.b)
			if err != nil {
				t.Fatalf("BroadcastShapes(%v, %v) error: %v", tt.a, tt.b, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBroadcastShapesIncompatible(t *testing.T) {
	if _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5}); err == nil {
		t.Error("BroadcastShapes({3,4}, {3,5}) should fail")
	}
	if _, err := BroadcastShapes(Shape{2}, Shape{3}); err == nil {
		t.Error("BroadcastShapes({2}, {3}) should fail")
	}
}

func TestBroadcastShapesThreeWay(t *testing.T) {
	got, err := BroadcastShapes(Shape{1, 3}, Shape{2, 1}, Shape{3})
	if err != nil {
		t.Fatalf("three-way broadcast error: %v", err)
	}
	if !got.Equal(Shape{2, 3}) {
		t.Errorf("three-way broadcast = %v, want [2 3]", got)
	}
}
