package sketch

import (
	"iter"
	"math"
)

// CircleCenterRadius is a circle defined by its center and one point on its
// perimeter; the radius is the distance between them.
type CircleCenterRadius struct {
	Center Point
	Rim    Point

	editState
}

var _ Entity = (*CircleCenterRadius)(nil)

func NewCircleCenterRadius(center, rim Point) *CircleCenterRadius {
	return &CircleCenterRadius{Center: center, Rim: rim}
}

func (c *CircleCenterRadius) Radius() float64 {
	return c.Center.Distance(c.Rim)
}

// SetRadius moves the rim point along its current direction from the center
// so the radius becomes r. A rim coincident with the center defaults to the
// positive x direction.
func (c *CircleCenterRadius) SetRadius(r float64) {
	c.edit(func() { c.setRadius(r) })
}

func (c *CircleCenterRadius) setRadius(r float64) {
	dir := c.Rim.Sub(c.Center)
	if dir.NearZero() {
		dir = Vec(1, 0)
	}
	c.Rim = c.Center.Translate(dir.Normalize().Mul(math.Abs(r)))
}

func (c *CircleCenterRadius) Select() {
	c.attach(
		newHandle("center", Square,
			func() Point { return c.Center },
			func(pt Point) { c.OnControlPointChanged("center", pt) }),
		newHandle("rim", Plain,
			func() Point { return c.Rim },
			func(pt Point) { c.OnControlPointChanged("rim", pt) }),
		newDatum("radius", "R",
			func() Point { return c.Center.Midpoint(c.Rim) },
			func(pt Point) { c.OnControlPointChanged("radius", pt) },
			c.Radius,
			c.SetRadius),
	)
}

func (c *CircleCenterRadius) OnControlPointChanged(name string, pt Point) {
	c.edit(func() {
		switch name {
		case "center":
			// Dragging the center translates the whole circle.
			c.Rim = c.Rim.Translate(pt.Sub(c.Center))
			c.Center = pt
		case "rim":
			c.Rim = pt
		case "radius":
			// The datum displays at the midpoint of center and rim, so the
			// dragged position maps to half the radius. Inverting that here
			// keeps a no-move drag a no-op.
			c.setRadius(2 * pt.Distance(c.Center))
		}
	})
}

func (c *CircleCenterRadius) BoundingBox() Rect {
	return c.cachedBounds(func() Rect {
		return circleBounds(c.Center, c.Radius())
	})
}

func (c *CircleCenterRadius) Contains(pt Point, tol float64) bool {
	return onCircle(pt, c.Center, c.Radius(), tol)
}

func (c *CircleCenterRadius) PathElements(tolerance float64) iter.Seq[PathElement] {
	return circleElements(c.Center, c.Radius(), tolerance)
}

func (c *CircleCenterRadius) Path(tolerance float64) BezPath {
	return collectPath(c.PathElements(tolerance))
}

func (c *CircleCenterRadius) Record() Record {
	return Record{Kind: KindCircle, Points: []Point{c.Center, c.Rim}}
}

// Circle2Point is a circle defined by two diametrically opposite perimeter
// points. Center and radius are derived. Two coinciding points give radius 0,
// which remains representable.
type Circle2Point struct {
	A Point
	B Point

	editState
}

var _ Entity = (*Circle2Point)(nil)

func NewCircle2Point(a, b Point) *Circle2Point {
	return &Circle2Point{A: a, B: b}
}

func (c *Circle2Point) Center() Point {
	return c.A.Midpoint(c.B)
}

func (c *Circle2Point) Radius() float64 {
	return 0.5 * c.A.Distance(c.B)
}

// SetRadius scales both diameter endpoints about the center. Coinciding
// endpoints default to the positive x direction.
func (c *Circle2Point) SetRadius(r float64) {
	c.edit(func() { c.setRadius(r) })
}

func (c *Circle2Point) setRadius(r float64) {
	center := c.Center()
	dir := c.B.Sub(c.A)
	if dir.NearZero() {
		dir = Vec(1, 0)
	}
	dir = dir.Normalize().Mul(math.Abs(r))
	c.A = center.Translate(dir.Negate())
	c.B = center.Translate(dir)
}

func (c *Circle2Point) Select() {
	c.attach(
		newHandle("a", Plain,
			func() Point { return c.A },
			func(pt Point) { c.OnControlPointChanged("a", pt) }),
		newHandle("b", Plain,
			func() Point { return c.B },
			func(pt Point) { c.OnControlPointChanged("b", pt) }),
		newHandle("center", Square,
			func() Point { return c.Center() },
			func(pt Point) { c.OnControlPointChanged("center", pt) }),
		newDatum("radius", "R",
			func() Point { return c.Center().Midpoint(c.B) },
			func(pt Point) { c.OnControlPointChanged("radius", pt) },
			c.Radius,
			c.SetRadius),
	)
}

func (c *Circle2Point) OnControlPointChanged(name string, pt Point) {
	c.edit(func() {
		switch name {
		case "a":
			c.A = pt
		case "b":
			c.B = pt
		case "center":
			d := pt.Sub(c.Center())
			c.A = c.A.Translate(d)
			c.B = c.B.Translate(d)
		case "radius":
			// Displayed at the midpoint of center and B, see "radius" in
			// [CircleCenterRadius.OnControlPointChanged].
			c.setRadius(2 * pt.Distance(c.Center()))
		}
	})
}

func (c *Circle2Point) BoundingBox() Rect {
	return c.cachedBounds(func() Rect {
		return circleBounds(c.Center(), c.Radius())
	})
}

func (c *Circle2Point) Contains(pt Point, tol float64) bool {
	return onCircle(pt, c.Center(), c.Radius(), tol)
}

func (c *Circle2Point) PathElements(tolerance float64) iter.Seq[PathElement] {
	return circleElements(c.Center(), c.Radius(), tolerance)
}

func (c *Circle2Point) Path(tolerance float64) BezPath {
	return collectPath(c.PathElements(tolerance))
}

func (c *Circle2Point) Record() Record {
	return Record{Kind: KindCircle2, Points: []Point{c.A, c.B}}
}

// onCircle reports whether pt lies on the circle's perimeter within tol.
func onCircle(pt, center Point, radius, tol float64) bool {
	return math.Abs(pt.Distance(center)-radius) <= tol
}

func circleBounds(center Point, radius float64) Rect {
	r := math.Abs(radius)
	return Rect{
		X0: center.X - r,
		Y0: center.Y - r,
		X1: center.X + r,
		Y1: center.Y + r,
	}
}
