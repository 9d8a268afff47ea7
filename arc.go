package sketch

import "iter"

// Arc is a circular arc defined by its center, a start point that also fixes
// the radius, and an end point that fixes the span. The span runs
// counter-clockwise from the start point to the end point's angle; the end
// point itself is kept projected onto the circle.
type Arc struct {
	Center Point
	Start  Point
	End    Point

	editState
}

var _ Entity = (*Arc)(nil)

func NewArc(center, start, end Point) *Arc {
	a := &Arc{Center: center, Start: start, End: end}
	a.End = a.projected(end)
	return a
}

func (a *Arc) Radius() float64 {
	return a.Center.Distance(a.Start)
}

// Angles returns the start angle and the counter-clockwise sweep in [0, 2π).
func (a *Arc) Angles() (start, sweep float64) {
	start = a.Start.Sub(a.Center).Angle()
	end := a.End.Sub(a.Center).Angle()
	return start, ccwSweep(start, end)
}

// projected returns pt projected onto the arc's circle at pt's angle from
// the center. A pt on the center keeps the current end point.
func (a *Arc) projected(pt Point) Point {
	d := pt.Sub(a.Center)
	if d.NearZero() {
		return a.End
	}
	return a.Center.Translate(d.Normalize().Mul(a.Radius()))
}

func (a *Arc) Select() {
	a.attach(
		newHandle("center", Square,
			func() Point { return a.Center },
			func(pt Point) { a.OnControlPointChanged("center", pt) }),
		newHandle("start", Plain,
			func() Point { return a.Start },
			func(pt Point) { a.OnControlPointChanged("start", pt) }),
		newHandle("end", Plain,
			func() Point { return a.End },
			func(pt Point) { a.OnControlPointChanged("end", pt) }),
	)
}

func (a *Arc) OnControlPointChanged(name string, pt Point) {
	a.edit(func() {
		switch name {
		case "center":
			// Dragging the center translates the whole arc.
			d := pt.Sub(a.Center)
			a.Center = pt
			a.Start = a.Start.Translate(d)
			a.End = a.End.Translate(d)
		case "start":
			// The start point defines the radius; the end point follows
			// onto the new circle at its existing angle.
			a.Start = pt
			a.End = a.projected(a.End)
		case "end":
			a.End = a.projected(pt)
		}
	})
}

func (a *Arc) BoundingBox() Rect {
	return a.cachedBounds(func() Rect {
		start, sweep := a.Angles()
		return EmptyRect().UnionArc(a.Center, a.Radius(), start, start+sweep)
	})
}

func (a *Arc) Contains(pt Point, tol float64) bool {
	if !onCircle(pt, a.Center, a.Radius(), tol) {
		return false
	}
	start, sweep := a.Angles()
	return angleInSweep(pt.Sub(a.Center).Angle(), start, sweep)
}

func (a *Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	start, sweep := a.Angles()
	return arcElements(a.Center, a.Radius(), start, sweep, tolerance)
}

func (a *Arc) Path(tolerance float64) BezPath {
	return collectPath(a.PathElements(tolerance))
}

func (a *Arc) Record() Record {
	return Record{Kind: KindArc, Points: []Point{a.Center, a.Start, a.End}}
}
