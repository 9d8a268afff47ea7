package sketch

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Polyline is an open sequence of at least two vertices joined by line
// segments, each vertex a draggable control point.
type Polyline struct {
	Pts []Point

	editState
}

var _ Entity = (*Polyline)(nil)

func NewPolyline(pts ...Point) *Polyline {
	return &Polyline{Pts: slices.Clone(pts)}
}

func (p *Polyline) Select() {
	cps := make([]*ControlPoint, len(p.Pts))
	for i := range p.Pts {
		name := fmt.Sprintf("p%d", i)
		cps[i] = newHandle(name, Plain,
			func() Point { return p.Pts[i] },
			func(pt Point) { p.OnControlPointChanged(name, pt) })
	}
	p.attach(cps...)
}

func (p *Polyline) OnControlPointChanged(name string, pt Point) {
	p.edit(func() {
		idx, ok := strings.CutPrefix(name, "p")
		if !ok {
			return
		}
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i >= len(p.Pts) {
			return
		}
		p.Pts[i] = pt
	})
}

func (p *Polyline) BoundingBox() Rect {
	return p.cachedBounds(func() Rect {
		bbox := EmptyRect()
		for _, pt := range p.Pts {
			bbox = bbox.UnionPoint(pt)
		}
		return bbox
	})
}

func (p *Polyline) Contains(pt Point, tol float64) bool {
	for i := 0; i+1 < len(p.Pts); i++ {
		if distanceToSegment(pt, p.Pts[i], p.Pts[i+1]) <= tol {
			return true
		}
	}
	return false
}

func (p *Polyline) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p.Pts) == 0 {
			return
		}
		if !yield(MoveTo(p.Pts[0])) {
			return
		}
		for _, pt := range p.Pts[1:] {
			if !yield(LineTo(pt)) {
				return
			}
		}
	}
}

func (p *Polyline) Path(tolerance float64) BezPath {
	return collectPath(p.PathElements(tolerance))
}

func (p *Polyline) Record() Record {
	return Record{Kind: KindPolyline, Points: slices.Clone(p.Pts)}
}
