package sketch

import (
	"iter"
	"math"
)

// Circle3Point is a circle through three perimeter points. When the three
// points are collinear there is no circle; the entity degrades to the line
// through A and C rather than failing, and reports the fact via
// [Circle3Point.IsLine].
type Circle3Point struct {
	A Point
	B Point
	C Point

	editState
}

var _ Entity = (*Circle3Point)(nil)

func NewCircle3Point(a, b, c Point) *Circle3Point {
	return &Circle3Point{A: a, B: b, C: c}
}

// IsLine reports whether the three points are collinear within [Epsilon] and
// the entity is currently degraded to a line.
func (c *Circle3Point) IsLine() bool {
	_, ok := circumcenter(c.A, c.B, c.C)
	return !ok
}

// Center returns the solved circle center. It is only meaningful when IsLine
// reports false; for collinear points it returns the midpoint of A and C,
// the anchor of the degraded line.
func (c *Circle3Point) Center() Point {
	center, ok := circumcenter(c.A, c.B, c.C)
	if !ok {
		return c.A.Midpoint(c.C)
	}
	return center
}

// Radius returns the solved circle radius, or 0 when degraded to a line.
func (c *Circle3Point) Radius() float64 {
	center, ok := circumcenter(c.A, c.B, c.C)
	if !ok {
		return 0
	}
	return center.Distance(c.A)
}

func (c *Circle3Point) Select() {
	c.attach(
		newHandle("a", Plain,
			func() Point { return c.A },
			func(pt Point) { c.OnControlPointChanged("a", pt) }),
		newHandle("b", Plain,
			func() Point { return c.B },
			func(pt Point) { c.OnControlPointChanged("b", pt) }),
		newHandle("c", Plain,
			func() Point { return c.C },
			func(pt Point) { c.OnControlPointChanged("c", pt) }),
	)
}

func (c *Circle3Point) OnControlPointChanged(name string, pt Point) {
	c.edit(func() {
		switch name {
		case "a":
			c.A = pt
		case "b":
			c.B = pt
		case "c":
			c.C = pt
		}
	})
}

func (c *Circle3Point) BoundingBox() Rect {
	return c.cachedBounds(func() Rect {
		center, ok := circumcenter(c.A, c.B, c.C)
		if !ok {
			return NewRectFromPoints(c.A, c.C).UnionPoint(c.B)
		}
		return circleBounds(center, center.Distance(c.A))
	})
}

func (c *Circle3Point) Contains(pt Point, tol float64) bool {
	center, ok := circumcenter(c.A, c.B, c.C)
	if !ok {
		return distanceToSegment(pt, c.A, c.C) <= tol
	}
	return onCircle(pt, center, center.Distance(c.A), tol)
}

func (c *Circle3Point) PathElements(tolerance float64) iter.Seq[PathElement] {
	center, ok := circumcenter(c.A, c.B, c.C)
	if !ok {
		return func(yield func(PathElement) bool) {
			_ = yield(MoveTo(c.A)) &&
				yield(LineTo(c.C))
		}
	}
	return circleElements(center, center.Distance(c.A), tolerance)
}

func (c *Circle3Point) Path(tolerance float64) BezPath {
	return collectPath(c.PathElements(tolerance))
}

func (c *Circle3Point) Record() Record {
	return Record{Kind: KindCircle3, Points: []Point{c.A, c.B, c.C}}
}

// circumcenter solves the center of the circle through three points by
// intersecting the perpendicular bisectors of the chords p1–p2 and p2–p3.
// It reports false for collinear points, tested with the cross product of
// the chord vectors against [Epsilon].
//
// A horizontal chord makes its bisector vertical and the slope form
// degenerate, so each chord is special-cased before falling back to the
// two-slope intersection.
func circumcenter(p1, p2, p3 Point) (Point, bool) {
	if math.Abs(p2.Sub(p1).Cross(p3.Sub(p1))) < Epsilon {
		return Point{}, false
	}

	mid1 := p1.Midpoint(p2)
	mid2 := p2.Midpoint(p3)
	dy1 := p2.Y - p1.Y
	dy2 := p3.Y - p2.Y

	// When both chords are near-horizontal the special case must go to the
	// more horizontal one: the other chord's dy is the larger of the two and
	// safe to divide by. Non-collinearity rules out both being exactly zero.
	switch {
	case math.Abs(dy1) < Epsilon && math.Abs(dy1) <= math.Abs(dy2):
		// First chord horizontal: its bisector is the vertical x = mid1.X.
		m2 := -(p3.X - p2.X) / dy2
		x := mid1.X
		y := mid2.Y + m2*(x-mid2.X)
		return Pt(x, y), true
	case math.Abs(dy2) < Epsilon:
		m1 := -(p2.X - p1.X) / dy1
		x := mid2.X
		y := mid1.Y + m1*(x-mid1.X)
		return Pt(x, y), true
	default:
		m1 := -(p2.X - p1.X) / dy1
		m2 := -(p3.X - p2.X) / dy2
		x := (m1*mid1.X - m2*mid2.X + mid2.Y - mid1.Y) / (m1 - m2)
		y := mid1.Y + m1*(x-mid1.X)
		return Pt(x, y), true
	}
}
