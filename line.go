package sketch

import "iter"

// Line is a line segment between two draggable endpoints.
type Line struct {
	P0 Point
	P1 Point

	editState
}

var _ Entity = (*Line)(nil)

func NewLine(p0, p1 Point) *Line {
	return &Line{P0: p0, P1: p1}
}

func (l *Line) Select() {
	l.attach(
		newHandle("start", Plain,
			func() Point { return l.P0 },
			func(pt Point) { l.OnControlPointChanged("start", pt) }),
		newHandle("end", Plain,
			func() Point { return l.P1 },
			func(pt Point) { l.OnControlPointChanged("end", pt) }),
	)
}

func (l *Line) OnControlPointChanged(name string, pt Point) {
	l.edit(func() {
		switch name {
		case "start":
			l.P0 = pt
		case "end":
			l.P1 = pt
		}
	})
}

func (l *Line) BoundingBox() Rect {
	return l.cachedBounds(func() Rect {
		return NewRectFromPoints(l.P0, l.P1)
	})
}

func (l *Line) Contains(pt Point, tol float64) bool {
	return distanceToSegment(pt, l.P0, l.P1) <= tol
}

func (l *Line) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}

func (l *Line) Path(tolerance float64) BezPath {
	return collectPath(l.PathElements(tolerance))
}

func (l *Line) Record() Record {
	return Record{Kind: KindLine, Points: []Point{l.P0, l.P1}}
}
