package sketch

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path, used to answer entity path queries. The rendering
// layer consumes it; nothing in this package draws.
type BezPath []PathElement

// BoundingBox returns a rectangle enclosing the path. Curved segments are
// bounded by their control polygons, so the result is conservative, not tight.
// Entities compute their own tight bounds.
func (p BezPath) BoundingBox() Rect {
	bbox := EmptyRect()
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			bbox = bbox.UnionPoint(el.P0)
		case QuadToKind:
			bbox = bbox.UnionPoint(el.P0).UnionPoint(el.P1)
		case CubicToKind:
			bbox = bbox.UnionPoint(el.P0).UnionPoint(el.P1).UnionPoint(el.P2)
		}
	}
	return bbox
}

// Segments yields straight line segments approximating the path within
// roughly the given tolerance. Subpaths left open by a missing ClosePath stay
// open.
func (p BezPath) Segments(tolerance float64) iter.Seq[[2]Point] {
	return func(yield func([2]Point) bool) {
		var cur, start Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				cur = el.P0
				start = el.P0
			case LineToKind:
				if !yield([2]Point{cur, el.P0}) {
					return
				}
				cur = el.P0
			case QuadToKind:
				q := quadBez{cur, el.P0, el.P1}
				if !flattenCurve(q.eval, q.hull(), tolerance, yield) {
					return
				}
				cur = el.P1
			case CubicToKind:
				c := cubicBez{cur, el.P0, el.P1, el.P2}
				if !flattenCurve(c.eval, c.hull(), tolerance, yield) {
					return
				}
				cur = el.P2
			case ClosePathKind:
				if cur != start {
					if !yield([2]Point{cur, start}) {
						return
					}
				}
				cur = start
			}
		}
	}
}

type quadBez struct {
	p0, p1, p2 Point
}

func (q quadBez) eval(t float64) Point {
	mt := 1 - t
	x := mt*mt*q.p0.X + 2*mt*t*q.p1.X + t*t*q.p2.X
	y := mt*mt*q.p0.Y + 2*mt*t*q.p1.Y + t*t*q.p2.Y
	return Point{x, y}
}

func (q quadBez) hull() float64 {
	return q.p1.Sub(q.p0).Hypot() + q.p2.Sub(q.p1).Hypot()
}

type cubicBez struct {
	p0, p1, p2, p3 Point
}

func (c cubicBez) eval(t float64) Point {
	mt := 1 - t
	a := Vec2(c.p0).Mul(mt * mt * mt)
	b := Vec2(c.p1).Mul(mt * mt * 3.0)
	d := Vec2(c.p2).Mul(mt * 3.0)
	e := Vec2(c.p3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c cubicBez) hull() float64 {
	return c.p1.Sub(c.p0).Hypot() + c.p2.Sub(c.p1).Hypot() + c.p3.Sub(c.p2).Hypot()
}

// flattenCurve approximates one curve with uniform parameter steps. The step
// count grows with the ratio of control-polygon length to tolerance, capped so
// pathological input cannot explode the segment count.
func flattenCurve(eval func(float64) Point, hull, tolerance float64, yield func([2]Point) bool) bool {
	n := int(math.Ceil(math.Sqrt(hull / max(tolerance, 1e-9))))
	n = min(max(n, 1), 64)
	prev := eval(0)
	for i := 1; i <= n; i++ {
		next := eval(float64(i) / float64(n))
		if !yield([2]Point{prev, next}) {
			return false
		}
		prev = next
	}
	return true
}

// DistanceTo returns the distance from pt to the flattened path.
func (p BezPath) DistanceTo(pt Point, tolerance float64) float64 {
	best := math.Inf(1)
	for seg := range p.Segments(tolerance) {
		best = min(best, distanceToSegment(pt, seg[0], seg[1]))
	}
	return best
}

// distanceToSegment returns the distance from pt to the segment a–b.
func distanceToSegment(pt, a, b Point) float64 {
	d := b.Sub(a)
	dotp := d.Dot(pt.Sub(a))
	dSquared := d.Dot(d)
	switch {
	case dotp <= 0 || dSquared == 0:
		return pt.Distance(a)
	case dotp >= dSquared:
		return pt.Distance(b)
	default:
		t := dotp / dSquared
		return pt.Distance(a.Lerp(b, t))
	}
}

// circleElements yields a full circle as four cubic Bézier segments.
func circleElements(center Point, radius float64, tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		scaledError := math.Abs(radius) / tolerance
		var n int
		var armLength float64
		if scaledError < 1.0/1.9608e-4 {
			// Solution from http://spencermortensen.com/articles/bezier-circle/
			n = 4
			armLength = 0.551915024494
		} else {
			// This is empirically determined to fall within error tolerance.
			n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
		}

		x, y := center.Splat()
		r := radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		if !yield(ClosePath()) {
			return
		}
	}
}

// arcElements yields a circular arc as cubic Bézier segments, sweeping
// counter-clockwise by sweepAngle from startAngle.
func arcElements(center Point, radius, startAngle, sweepAngle, tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(pointOnCircle(center, radius, startAngle))) {
			return
		}

		scaledError := math.Abs(radius) / tolerance
		// Number of subdivisions per full circle based on error tolerance.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(sweepAngle) * (1.0 / (2.0 * math.Pi)))
		if n == 0 {
			return
		}
		angleStep := sweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweepAngle)
		angle0 := startAngle
		p0 := pointOnCircle(center, radius, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Translate(Vec2(pointOnCircle(Point{}, radius, angle0+math.Pi/2)).Mul(armLen))
			p3 := pointOnCircle(center, radius, angle1)
			p2 := p3.Translate(Vec2(pointOnCircle(Point{}, radius, angle1+math.Pi/2)).Mul(armLen).Negate())

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(p1, p2, p3)) {
				break
			}
		}
	}
}

func collectPath(seq iter.Seq[PathElement]) BezPath {
	return slices.Collect(seq)
}
