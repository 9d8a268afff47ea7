package sketch

import "iter"

// Rectangle is an axis-aligned rectangle entity defined by its four corners.
// Moving any corner drags the two adjacent corners along with it: each
// adjacent corner adopts the moved corner's changed coordinate on their
// shared axis, so all four interior angles stay at 90°.
type Rectangle struct {
	TL Point
	TR Point
	BR Point
	BL Point

	editState
}

var _ Entity = (*Rectangle)(nil)

// NewRectangle builds a rectangle entity from two opposite corners.
func NewRectangle(p0, p1 Point) *Rectangle {
	r := NewRectFromPoints(p0, p1)
	return &Rectangle{
		TL: Pt(r.X0, r.Y0),
		TR: Pt(r.X1, r.Y0),
		BR: Pt(r.X1, r.Y1),
		BL: Pt(r.X0, r.Y1),
	}
}

func (r *Rectangle) corners() [4]Point {
	return [4]Point{r.TL, r.TR, r.BR, r.BL}
}

func (r *Rectangle) Select() {
	r.attach(
		newHandle("topleft", Plain,
			func() Point { return r.TL },
			func(pt Point) { r.OnControlPointChanged("topleft", pt) }),
		newHandle("topright", Plain,
			func() Point { return r.TR },
			func(pt Point) { r.OnControlPointChanged("topright", pt) }),
		newHandle("bottomright", Plain,
			func() Point { return r.BR },
			func(pt Point) { r.OnControlPointChanged("bottomright", pt) }),
		newHandle("bottomleft", Plain,
			func() Point { return r.BL },
			func(pt Point) { r.OnControlPointChanged("bottomleft", pt) }),
	)
}

func (r *Rectangle) OnControlPointChanged(name string, pt Point) {
	r.edit(func() {
		switch name {
		case "topleft":
			r.TL = pt
			r.TR.Y = pt.Y
			r.BL.X = pt.X
		case "topright":
			r.TR = pt
			r.TL.Y = pt.Y
			r.BR.X = pt.X
		case "bottomright":
			r.BR = pt
			r.BL.Y = pt.Y
			r.TR.X = pt.X
		case "bottomleft":
			r.BL = pt
			r.BR.Y = pt.Y
			r.TL.X = pt.X
		}
	})
}

func (r *Rectangle) BoundingBox() Rect {
	return r.cachedBounds(func() Rect {
		bbox := EmptyRect()
		for _, c := range r.corners() {
			bbox = bbox.UnionPoint(c)
		}
		return bbox
	})
}

func (r *Rectangle) Contains(pt Point, tol float64) bool {
	c := r.corners()
	for i := range c {
		if distanceToSegment(pt, c[i], c[(i+1)%4]) <= tol {
			return true
		}
	}
	return false
}

func (r *Rectangle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(r.TL)) &&
			yield(LineTo(r.TR)) &&
			yield(LineTo(r.BR)) &&
			yield(LineTo(r.BL)) &&
			yield(ClosePath())
	}
}

func (r *Rectangle) Path(tolerance float64) BezPath {
	return collectPath(r.PathElements(tolerance))
}

func (r *Rectangle) Record() Record {
	return Record{Kind: KindRectangle, Points: []Point{r.TL, r.TR, r.BR, r.BL}}
}
