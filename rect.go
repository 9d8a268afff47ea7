package sketch

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned bounding rectangle.
//
// The zero value is not meaningful; start from [EmptyRect] when accumulating
// bounds. A non-empty rectangle maintains X0 ≤ X1 and Y0 ≤ Y1, and only ever
// grows under the Union operations.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// EmptyRect returns the empty rectangle, the identity element of the Union
// operations. Any point or arc unioned into it becomes the rectangle's
// initial extent.
func EmptyRect() Rect {
	return Rect{
		X0: math.Inf(1),
		Y0: math.Inf(1),
		X1: math.Inf(-1),
		Y1: math.Inf(-1),
	}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// IsEmpty reports whether the rectangle contains no points at all.
func (r Rect) IsEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("[(%g, %g), (%g, %g)]", r.X0, r.Y0, r.X1, r.Y1)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Width returns the rectangle's width. It is negative for empty rectangles.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height. It is negative for empty rectangles.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// UnionArc computes the union with a circular arc that sweeps
// counter-clockwise from startAngle to endAngle around center.
//
// The result includes the two arc endpoints and any of the four axis-extreme
// points (θ = 0, π/2, π, 3π/2) crossed by the sweep; an arc's bounding box is
// not the bounding box of its chord. Angles are normalized to [0, 2π) before
// the sweep test.
func (r Rect) UnionArc(center Point, radius, startAngle, endAngle float64) Rect {
	sweep := ccwSweep(startAngle, endAngle)
	r = r.UnionPoint(pointOnCircle(center, radius, startAngle))
	r = r.UnionPoint(pointOnCircle(center, radius, endAngle))
	for k := range 4 {
		axis := float64(k) * (math.Pi / 2)
		if angleInSweep(axis, startAngle, sweep) {
			r = r.UnionPoint(pointOnCircle(center, radius, axis))
		}
	}
	return r
}

// Inflate grows the rectangle by amount on all four sides. It is used for
// stroke-width padding. Inflating the empty rectangle is a no-op.
func (r Rect) Inflate(amount float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{
		X0: r.X0 - amount,
		Y0: r.Y0 - amount,
		X1: r.X1 + amount,
		Y1: r.Y1 + amount,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}
