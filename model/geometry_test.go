package model

import (
	"math"
	"testing"
)

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(100, 50, 200, 100)

	if b.Left() != 0 {
		t.Errorf("Left() = %v, want 0", b.Left())
	}
	if b.Right() != 200 {
		t.Errorf("Right() = %v, want 200", b.Right())
	}
	if b.Top() != 0 {
		t.Errorf("Top() = %v, want 0", b.Top())
	}
	if b.Bottom() != 100 {
		t.Errorf("Bottom() = %v, want 100", b.Bottom())
	}
	if b.Area() != 20000 {
		t.Errorf("Area() = %v, want 20000", b.Area())
	}
}

func TestBBoxOverlapArea(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want float64
	}{
		{
			name: "identical boxes",
			a:    NewBBox(50, 50, 100, 100),
			b:    NewBBox(50, 50, 100, 100),
			want: 10000,
		},
		{
			name: "disjoint boxes",
			a:    NewBBox(50, 50, 20, 20),
			b:    NewBBox(500, 500, 20, 20),
			want: 0,
		},
		{
			name: "small inside large",
			a:    NewBBox(100, 60, 20, 10),
			b:    NewBBox(100, 50, 200, 100),
			want: 200,
		},
		{
			name: "partial overlap",
			a:    NewBBox(0, 0, 100, 100),
			b:    NewBBox(50, 50, 100, 100),
			want: 2500,
		},
		{
			name: "touching edges",
			a:    NewBBox(0, 0, 100, 100),
			b:    NewBBox(100, 0, 100, 100),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.OverlapArea(tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("OverlapArea() = %v, want %v", got, tt.want)
			}
			// Overlap area itself is symmetric.
			if got := tt.b.OverlapArea(tt.a); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("OverlapArea() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxOverlapRatioAsymmetry(t *testing.T) {
	small := NewBBox(100, 60, 20, 10)
	large := NewBBox(100, 50, 200, 100)

	if got := small.OverlapRatio(large); got != 1.0 {
		t.Errorf("small.OverlapRatio(large) = %v, want 1.0", got)
	}
	if got := large.OverlapRatio(small); got >= 0.5 {
		t.Errorf("large.OverlapRatio(small) = %v, want well below 0.5", got)
	}
}

func TestBBoxOverlapRatioZeroArea(t *testing.T) {
	degenerate := NewBBox(10, 10, 0, 5)
	other := NewBBox(10, 10, 50, 50)

	if got := degenerate.OverlapRatio(other); got != 0 {
		t.Errorf("OverlapRatio() with zero-area receiver = %v, want 0", got)
	}
}

func TestBBoxVerticallyClose(t *testing.T) {
	tests := []struct {
		name      string
		a, b      BBox
		proximity float64
		want      bool
	}{
		{
			name:      "small gap below threshold",
			a:         NewBBox(50, 120, 100, 20), // spans 110-130
			b:         NewBBox(50, 50, 100, 100), // spans 0-100
			proximity: 20,
			want:      true, // gap between 110 and 100 is 10
		},
		{
			name:      "gap above threshold",
			a:         NewBBox(50, 300, 100, 20),
			b:         NewBBox(50, 50, 100, 100),
			proximity: 20,
			want:      false,
		},
		{
			name:      "contained span",
			a:         NewBBox(50, 50, 100, 20),
			b:         NewBBox(50, 50, 100, 100),
			proximity: 1,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.VerticallyClose(tt.b, tt.proximity); got != tt.want {
				t.Errorf("VerticallyClose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxContainsPoint(t *testing.T) {
	b := NewBBox(100, 50, 200, 100)

	if !b.Contains(Point{X: 100, Y: 50}) {
		t.Error("Contains() should include the center")
	}
	if !b.Contains(Point{X: 0, Y: 0}) {
		t.Error("Contains() should include the top-left corner")
	}
	if b.Contains(Point{X: 201, Y: 50}) {
		t.Error("Contains() should exclude points past the right edge")
	}
}

func TestBBoxIntersection(t *testing.T) {
	a := NewBBox(0, 0, 100, 100)
	b := NewBBox(50, 50, 100, 100)

	got := a.Intersection(b)
	if got.Width != 50 || got.Height != 50 {
		t.Errorf("Intersection() extents = %vx%v, want 50x50", got.Width, got.Height)
	}
	if got.X != 25 || got.Y != 25 {
		t.Errorf("Intersection() center = (%v,%v), want (25,25)", got.X, got.Y)
	}

	disjoint := a.Intersection(NewBBox(500, 500, 10, 10))
	if !disjoint.IsEmpty() {
		t.Errorf("Intersection() of disjoint boxes = %+v, want empty", disjoint)
	}
}

func TestBBoxValidity(t *testing.T) {
	if !NewBBox(10, 10, 5, 5).IsValid() {
		t.Error("IsValid() = false for a positive-extent box")
	}
	if NewBBox(10, 10, 0, 5).IsValid() {
		t.Error("IsValid() = true for a zero-width box")
	}
	if NewBBox(10, 10, 5, -1).IsValid() {
		t.Error("IsValid() = true for a negative-height box")
	}
}
