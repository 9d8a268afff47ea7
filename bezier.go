package sketch

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// PathPoint is one on-curve point of a [BezierPath], together with its
// incoming and outgoing control handles and its smoothness state. The In
// handle of the first point and the Out handle of the last point are unused
// and conventionally sit on the anchor.
type PathPoint struct {
	Anchor Point
	In     Point
	Out    Point
	State  PathPointState
}

// BezierPath is a chain of cubic Bézier segments between consecutive path
// points. Each interior path point's state governs how moving one of its
// handles updates the sibling handle; see [PathPointState].
type BezierPath struct {
	Points []PathPoint

	editState
}

var _ Entity = (*BezierPath)(nil)

// NewBezierPath builds a bezier path entity and classifies every interior
// path point's state from its handle geometry, as on document load.
func NewBezierPath(points ...PathPoint) *BezierPath {
	b := &BezierPath{Points: slices.Clone(points)}
	for i := range b.Points {
		if b.interior(i) {
			p := &b.Points[i]
			p.State = ClassifyHandles(p.Anchor, p.In, p.Out)
		} else {
			b.Points[i].State = Disjoint
		}
	}
	return b
}

func (b *BezierPath) interior(i int) bool {
	return i > 0 && i < len(b.Points)-1
}

// State returns the smoothness state of path point i.
func (b *BezierPath) State(i int) PathPointState {
	return b.Points[i].State
}

// CycleState advances path point i to its next smoothness state and reports
// the new state. Only interior path points cycle; end points are unaffected.
func (b *BezierPath) CycleState(i int) PathPointState {
	if !b.interior(i) {
		return b.Points[i].State
	}
	b.Points[i].State = b.Points[i].State.Next()
	if b.selected {
		// Handle kinds derive from the state; rebuild them.
		b.Select()
	}
	return b.Points[i].State
}

// ModifierClick handles a modifier-qualified click on the named control
// point: a click on an interior path point's anchor cycles its smoothness
// state and reports true. Clicks on handles or end anchors report false and
// change nothing.
func (b *BezierPath) ModifierClick(name string) bool {
	idx, ok := strings.CutPrefix(name, "anchor")
	if !ok {
		return false
	}
	i, err := strconv.Atoi(idx)
	if err != nil || !b.interior(i) {
		return false
	}
	b.CycleState(i)
	return true
}

func (b *BezierPath) Select() {
	var cps []*ControlPoint
	last := len(b.Points) - 1
	for i := range b.Points {
		kind := Square
		if b.interior(i) {
			kind = b.Points[i].State.HandleKind()
		}
		name := fmt.Sprintf("anchor%d", i)
		cps = append(cps, newHandle(name, kind,
			func() Point { return b.Points[i].Anchor },
			func(pt Point) { b.OnControlPointChanged(name, pt) }))
		if i > 0 {
			name := fmt.Sprintf("in%d", i)
			cps = append(cps, newHandle(name, Plain,
				func() Point { return b.Points[i].In },
				func(pt Point) { b.OnControlPointChanged(name, pt) }))
		}
		if i < last {
			name := fmt.Sprintf("out%d", i)
			cps = append(cps, newHandle(name, Plain,
				func() Point { return b.Points[i].Out },
				func(pt Point) { b.OnControlPointChanged(name, pt) }))
		}
	}
	b.attach(cps...)
}

func (b *BezierPath) OnControlPointChanged(name string, pt Point) {
	b.edit(func() {
		role, i, ok := splitHandleName(name, len(b.Points))
		if !ok {
			return
		}
		p := &b.Points[i]
		switch role {
		case "anchor":
			// The anchor carries its handles along.
			d := pt.Sub(p.Anchor)
			p.Anchor = pt
			p.In = p.In.Translate(d)
			p.Out = p.Out.Translate(d)
		case "in":
			p.In = pt
			if b.interior(i) {
				p.Out = coupleOpposite(p.Anchor, pt, p.Out, p.State)
			}
		case "out":
			p.Out = pt
			if b.interior(i) {
				p.In = coupleOpposite(p.Anchor, pt, p.In, p.State)
			}
		}
	})
}

func splitHandleName(name string, n int) (role string, i int, ok bool) {
	for _, r := range []string{"anchor", "in", "out"} {
		if idx, found := strings.CutPrefix(name, r); found {
			i, err := strconv.Atoi(idx)
			if err != nil || i < 0 || i >= n {
				return "", 0, false
			}
			return r, i, true
		}
	}
	return "", 0, false
}

// BoundingBox bounds the path by its anchors and used handles. Handles bound
// their curve segments, so the result always contains the path; it is not
// tight when a handle overshoots.
func (b *BezierPath) BoundingBox() Rect {
	return b.cachedBounds(func() Rect {
		bbox := EmptyRect()
		last := len(b.Points) - 1
		for i, p := range b.Points {
			bbox = bbox.UnionPoint(p.Anchor)
			if i > 0 {
				bbox = bbox.UnionPoint(p.In)
			}
			if i < last {
				bbox = bbox.UnionPoint(p.Out)
			}
		}
		return bbox
	})
}

func (b *BezierPath) Contains(pt Point, tol float64) bool {
	return b.Path(tol).DistanceTo(pt, tol) <= tol
}

func (b *BezierPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(b.Points) == 0 {
			return
		}
		if !yield(MoveTo(b.Points[0].Anchor)) {
			return
		}
		for i := 0; i+1 < len(b.Points); i++ {
			if !yield(CubicTo(b.Points[i].Out, b.Points[i+1].In, b.Points[i+1].Anchor)) {
				return
			}
		}
	}
}

func (b *BezierPath) Path(tolerance float64) BezPath {
	return collectPath(b.PathElements(tolerance))
}

func (b *BezierPath) Record() Record {
	rec := Record{Kind: KindBezier}
	for _, p := range b.Points {
		rec.Points = append(rec.Points, p.In, p.Anchor, p.Out)
		rec.States = append(rec.States, p.State)
	}
	return rec
}

// QuadPath is a chain of quadratic Bézier segments: anchors joined by one
// control handle per segment. Interior anchors classify and couple exactly
// like cubic path points, with the neighboring segment handles acting as the
// incoming and outgoing handles.
type QuadPath struct {
	Anchors []Point
	Ctrls   []Point
	States  []PathPointState

	editState
}

var _ Entity = (*QuadPath)(nil)

// NewQuadPath builds a quadratic chain from interleaved anchors and handles
// and classifies all interior anchors.
func NewQuadPath(anchors []Point, ctrls []Point) *QuadPath {
	q := &QuadPath{
		Anchors: slices.Clone(anchors),
		Ctrls:   slices.Clone(ctrls),
		States:  make([]PathPointState, len(anchors)),
	}
	for i := range q.Anchors {
		if q.interior(i) {
			q.States[i] = ClassifyHandles(q.Anchors[i], q.Ctrls[i-1], q.Ctrls[i])
		} else {
			q.States[i] = Disjoint
		}
	}
	return q
}

func (q *QuadPath) interior(i int) bool {
	return i > 0 && i < len(q.Anchors)-1
}

func (q *QuadPath) State(i int) PathPointState {
	return q.States[i]
}

func (q *QuadPath) CycleState(i int) PathPointState {
	if !q.interior(i) {
		return q.States[i]
	}
	q.States[i] = q.States[i].Next()
	if q.selected {
		q.Select()
	}
	return q.States[i]
}

func (q *QuadPath) ModifierClick(name string) bool {
	idx, ok := strings.CutPrefix(name, "anchor")
	if !ok {
		return false
	}
	i, err := strconv.Atoi(idx)
	if err != nil || !q.interior(i) {
		return false
	}
	q.CycleState(i)
	return true
}

func (q *QuadPath) Select() {
	var cps []*ControlPoint
	for i := range q.Anchors {
		kind := Square
		if q.interior(i) {
			kind = q.States[i].HandleKind()
		}
		name := fmt.Sprintf("anchor%d", i)
		cps = append(cps, newHandle(name, kind,
			func() Point { return q.Anchors[i] },
			func(pt Point) { q.OnControlPointChanged(name, pt) }))
	}
	for i := range q.Ctrls {
		name := fmt.Sprintf("ctrl%d", i)
		cps = append(cps, newHandle(name, Plain,
			func() Point { return q.Ctrls[i] },
			func(pt Point) { q.OnControlPointChanged(name, pt) }))
	}
	q.attach(cps...)
}

func (q *QuadPath) OnControlPointChanged(name string, pt Point) {
	q.edit(func() {
		if idx, ok := strings.CutPrefix(name, "anchor"); ok {
			i, err := strconv.Atoi(idx)
			if err != nil || i < 0 || i >= len(q.Anchors) {
				return
			}
			q.Anchors[i] = pt
			return
		}
		idx, ok := strings.CutPrefix(name, "ctrl")
		if !ok {
			return
		}
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i >= len(q.Ctrls) {
			return
		}
		q.Ctrls[i] = pt
		// A segment handle is the outgoing handle of anchor i and the
		// incoming handle of anchor i+1; couple the sibling handle at each
		// interior neighbor. Each coupling writes a different handle, so
		// the pass is a single deterministic sweep.
		if q.interior(i) {
			q.Ctrls[i-1] = coupleOpposite(q.Anchors[i], pt, q.Ctrls[i-1], q.States[i])
		}
		if q.interior(i + 1) {
			q.Ctrls[i+1] = coupleOpposite(q.Anchors[i+1], pt, q.Ctrls[i+1], q.States[i+1])
		}
	})
}

func (q *QuadPath) BoundingBox() Rect {
	return q.cachedBounds(func() Rect {
		bbox := EmptyRect()
		for _, pt := range q.Anchors {
			bbox = bbox.UnionPoint(pt)
		}
		for _, pt := range q.Ctrls {
			bbox = bbox.UnionPoint(pt)
		}
		return bbox
	})
}

func (q *QuadPath) Contains(pt Point, tol float64) bool {
	return q.Path(tol).DistanceTo(pt, tol) <= tol
}

func (q *QuadPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(q.Anchors) == 0 {
			return
		}
		if !yield(MoveTo(q.Anchors[0])) {
			return
		}
		for i := 0; i+1 < len(q.Anchors) && i < len(q.Ctrls); i++ {
			if !yield(QuadTo(q.Ctrls[i], q.Anchors[i+1])) {
				return
			}
		}
	}
}

func (q *QuadPath) Path(tolerance float64) BezPath {
	return collectPath(q.PathElements(tolerance))
}

func (q *QuadPath) Record() Record {
	rec := Record{Kind: KindQuad, States: slices.Clone(q.States)}
	for i, a := range q.Anchors {
		rec.Points = append(rec.Points, a)
		if i < len(q.Ctrls) {
			rec.Points = append(rec.Points, q.Ctrls[i])
		}
	}
	return rec
}
