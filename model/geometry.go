package model

import "math"

// Point represents a 2D point in image pixel coordinates.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box in image pixel coordinates. X and Y are the
// box center; the coordinate system has Y growing downward (the top of the
// image is Y=0), matching the detection model's output format.
type BBox struct {
	X      float64 // Center X
	Y      float64 // Center Y
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from a center point and extents.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X - b.Width/2
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width/2
}

// Top returns the top edge Y coordinate (smaller Y is higher on the page).
func (b BBox) Top() float64 {
	return b.Y - b.Height/2
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height/2
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{X: b.X, Y: b.Y}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Intersection returns the intersection of two bounding boxes, or a zero box
// if they do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	left := math.Max(b.Left(), other.Left())
	top := math.Max(b.Top(), other.Top())
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())

	if right <= left || bottom <= top {
		return BBox{}
	}

	return BBox{
		X:      (left + right) / 2,
		Y:      (top + bottom) / 2,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	left := math.Min(b.Left(), other.Left())
	top := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      (left + right) / 2,
		Y:      (top + bottom) / 2,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X:      b.X,
		Y:      b.Y,
		Width:  b.Width + 2*margin,
		Height: b.Height + 2*margin,
	}
}

// OverlapArea returns the area of the intersection with another box, or zero
// if the boxes do not intersect.
func (b BBox) OverlapArea(other BBox) float64 {
	return b.Intersection(other).Area()
}

// OverlapRatio calculates the overlap area as a fraction of this box's own
// area. The ratio is relative to the receiver, not symmetric: a small box
// fully inside a large one has ratio 1.0, while the large box measured
// against the small one does not.
func (b BBox) OverlapRatio(other BBox) float64 {
	area := b.Area()
	if area == 0 {
		return 0
	}
	return b.OverlapArea(other) / area
}

// VerticallyClose reports whether the vertical gap between this box and the
// other is below proximityPx, or this box's vertical span lies inside the
// other's.
func (b BBox) VerticallyClose(other BBox, proximityPx float64) bool {
	return math.Abs(b.Top()-other.Bottom()) < proximityPx ||
		math.Abs(b.Bottom()-other.Top()) < proximityPx ||
		(b.Top() >= other.Top() && b.Bottom() <= other.Bottom())
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}
