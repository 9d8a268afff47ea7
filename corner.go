package sketch

import (
	"iter"
	"math"
)

// CornerTangent is the solution of the corner-tangent construction: the
// unique circle tangent to two rays leaving a corner, with its center on the
// angle bisector.
//
// When Valid is false the construction has no unique solution and the
// remaining fields hold the safe fallback: the corner itself as center,
// radius 0, and both tangent points on the corner.
type CornerTangent struct {
	Center   Point
	Radius   float64
	Tangent1 Point
	Tangent2 Point
	Valid    bool
}

// SolveCornerTangent computes the circle tangent to the rays corner→ray1 and
// corner→ray2 whose center lies on the angle bisector, at the projection of
// centerSpec onto the bisector.
//
// The construction is invalid, with no panic and no error, when a ray has
// near-zero length, the rays are parallel or exactly opposite, or centerSpec
// projects onto or behind the corner. A center spec behind the corner is
// rejected, not clamped.
func SolveCornerTangent(corner, ray1, ray2, centerSpec Point) CornerTangent {
	invalid := CornerTangent{
		Center:   corner,
		Tangent1: corner,
		Tangent2: corner,
	}

	v1 := ray1.Sub(corner)
	v2 := ray2.Sub(corner)
	if v1.NearZero() || v2.NearZero() {
		return invalid
	}
	u1 := v1.Normalize()
	u2 := v2.Normalize()

	// Parallel or antiparallel rays admit no unique tangent circle.
	if math.Abs(u1.Cross(u2)) < Epsilon {
		return invalid
	}

	bis := u1.Add(u2)
	if bis.NearZero() {
		// Rays at exactly 180°.
		return invalid
	}
	bis = bis.Normalize()

	t := centerSpec.Sub(corner).Dot(bis)
	if t <= 0 {
		// Requested center is behind the corner along the bisector.
		return invalid
	}

	center := corner.Translate(bis.Mul(t))
	// Perpendicular distance from the center to the first ray's line; by
	// construction it equals the distance to the second ray's line.
	radius := math.Abs(center.Sub(corner).Cross(u1))

	return CornerTangent{
		Center:   center,
		Radius:   radius,
		Tangent1: corner.Translate(u1.Mul(center.Sub(corner).Dot(u1))),
		Tangent2: corner.Translate(u2.Mul(center.Sub(corner).Dot(u2))),
		Valid:    true,
	}
}

// CornerDistanceForRadius is the inverse operation: the distance along the
// bisector at which the tangent circle has radius r. It reports false when
// the angle between the rays is degenerate (within [Epsilon] of 0 or π) or a
// ray has near-zero length.
func CornerDistanceForRadius(corner, ray1, ray2 Point, r float64) (float64, bool) {
	v1 := ray1.Sub(corner)
	v2 := ray2.Sub(corner)
	if v1.NearZero() || v2.NearZero() {
		return 0, false
	}
	dot := v1.Normalize().Dot(v2.Normalize())
	theta := math.Acos(min(max(dot, -1), 1))
	if theta < Epsilon || math.Pi-theta < Epsilon {
		return 0, false
	}
	return r / math.Sin(theta/2), true
}

// cornerGeom holds the raw defining points shared by [CircleFromCorner] and
// [ArcFromCorner]: the corner, one point on each ray, and the desired-center
// spec point. Everything else is derived.
type cornerGeom struct {
	Corner Point
	Ray1   Point
	Ray2   Point
	Spec   Point
}

func (g *cornerGeom) solve() CornerTangent {
	return SolveCornerTangent(g.Corner, g.Ray1, g.Ray2, g.Spec)
}

func (g *cornerGeom) applyCorner(name string, pt Point) {
	switch name {
	case "corner":
		g.Corner = pt
	case "ray1":
		g.Ray1 = pt
	case "ray2":
		g.Ray2 = pt
	case "center":
		g.Spec = pt
	case "radius":
		g.dragRadius(pt)
	}
}

// dragRadius maps a dragged datum position back to a radius. The datum
// displays at the first tangent point, which sits on the first ray at
// distance r/tan(θ/2) from the corner, so the drag's projection onto that
// ray inverts to r = d·tan(θ/2) and a no-move drag leaves the radius
// unchanged. Degenerate configurations and drags at or behind the corner
// leave the entity untouched.
func (g *cornerGeom) dragRadius(pt Point) {
	v1 := g.Ray1.Sub(g.Corner)
	v2 := g.Ray2.Sub(g.Corner)
	if v1.NearZero() || v2.NearZero() {
		return
	}
	u1 := v1.Normalize()
	dot := u1.Dot(v2.Normalize())
	theta := math.Acos(min(max(dot, -1), 1))
	if theta < Epsilon || math.Pi-theta < Epsilon {
		return
	}
	d := pt.Sub(g.Corner).Dot(u1)
	if d <= 0 {
		return
	}
	g.setRadius(d * math.Tan(theta/2))
}

// setRadius places the spec point on the bisector at the distance giving
// radius r. Degenerate ray configurations leave the spec point untouched.
func (g *cornerGeom) setRadius(r float64) {
	dist, ok := CornerDistanceForRadius(g.Corner, g.Ray1, g.Ray2, r)
	if !ok {
		return
	}
	bis := g.Ray1.Sub(g.Corner).Normalize().Add(g.Ray2.Sub(g.Corner).Normalize())
	if bis.NearZero() {
		return
	}
	g.Spec = g.Corner.Translate(bis.Normalize().Mul(dist))
}

// cornerHandles builds the control points shared by the two corner-tangent
// entities. The center handle displays the calculated on-bisector center
// while the construction is valid, so a drag visibly snaps onto the
// bisector; the raw spec point is what it edits.
func (g *cornerGeom) cornerHandles(changed func(name string, pt Point), radius func() float64, setRadius func(float64)) []*ControlPoint {
	return []*ControlPoint{
		newHandle("corner", Square,
			func() Point { return g.Corner },
			func(pt Point) { changed("corner", pt) }),
		newHandle("ray1", Plain,
			func() Point { return g.Ray1 },
			func(pt Point) { changed("ray1", pt) }),
		newHandle("ray2", Plain,
			func() Point { return g.Ray2 },
			func(pt Point) { changed("ray2", pt) }),
		newHandle("center", Diamond,
			func() Point {
				if sol := g.solve(); sol.Valid {
					return sol.Center
				}
				return g.Spec
			},
			func(pt Point) { changed("center", pt) }),
		newDatum("radius", "R",
			func() Point {
				if sol := g.solve(); sol.Valid {
					return sol.Tangent1
				}
				return g.Corner
			},
			func(pt Point) { changed("radius", pt) },
			radius,
			setRadius),
	}
}

// constructionElements yields the two construction rays, drawn (dashed, by
// the renderer) when the tangent construction is invalid.
func (g *cornerGeom) constructionElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(g.Corner)) &&
			yield(LineTo(g.Ray1)) &&
			yield(MoveTo(g.Corner)) &&
			yield(LineTo(g.Ray2))
	}
}

func (g *cornerGeom) constructionContains(pt Point, tol float64) bool {
	return distanceToSegment(pt, g.Corner, g.Ray1) <= tol ||
		distanceToSegment(pt, g.Corner, g.Ray2) <= tol
}

func (g *cornerGeom) constructionBounds() Rect {
	return EmptyRect().
		UnionPoint(g.Corner).
		UnionPoint(g.Ray1).
		UnionPoint(g.Ray2)
}

func (g *cornerGeom) points() []Point {
	return []Point{g.Corner, g.Ray1, g.Ray2, g.Spec}
}

// CircleFromCorner is a full circle tangent to two rays leaving a corner.
// While the construction is degenerate the entity stays drawable in
// construction-only mode: its outline is the two rays and Valid reports
// false.
type CircleFromCorner struct {
	cornerGeom

	editState
}

var _ Entity = (*CircleFromCorner)(nil)

func NewCircleFromCorner(corner, ray1, ray2, centerSpec Point) *CircleFromCorner {
	return &CircleFromCorner{cornerGeom: cornerGeom{
		Corner: corner,
		Ray1:   ray1,
		Ray2:   ray2,
		Spec:   centerSpec,
	}}
}

// Solve returns the current tangent solution.
func (c *CircleFromCorner) Solve() CornerTangent {
	return c.solve()
}

// Valid reports whether the tangent construction currently has a solution.
func (c *CircleFromCorner) Valid() bool {
	return c.solve().Valid
}

func (c *CircleFromCorner) Radius() float64 {
	return c.solve().Radius
}

// SetRadius sets the circle's radius via the inverse bisector-distance
// operation, keeping the tangency constraint. Degenerate ray configurations
// leave the entity unchanged.
func (c *CircleFromCorner) SetRadius(r float64) {
	c.edit(func() { c.setRadius(r) })
}

func (c *CircleFromCorner) Select() {
	c.attach(c.cornerHandles(c.OnControlPointChanged, c.Radius, c.SetRadius)...)
}

func (c *CircleFromCorner) OnControlPointChanged(name string, pt Point) {
	c.edit(func() { c.applyCorner(name, pt) })
}

func (c *CircleFromCorner) BoundingBox() Rect {
	return c.cachedBounds(func() Rect {
		sol := c.solve()
		if !sol.Valid {
			return c.constructionBounds()
		}
		return circleBounds(sol.Center, sol.Radius)
	})
}

func (c *CircleFromCorner) Contains(pt Point, tol float64) bool {
	sol := c.solve()
	if !sol.Valid {
		return c.constructionContains(pt, tol)
	}
	return onCircle(pt, sol.Center, sol.Radius, tol)
}

func (c *CircleFromCorner) PathElements(tolerance float64) iter.Seq[PathElement] {
	sol := c.solve()
	if !sol.Valid {
		return c.constructionElements()
	}
	return circleElements(sol.Center, sol.Radius, tolerance)
}

func (c *CircleFromCorner) Path(tolerance float64) BezPath {
	return collectPath(c.PathElements(tolerance))
}

func (c *CircleFromCorner) Record() Record {
	return Record{Kind: KindCornerCircle, Points: c.points()}
}

// ArcFromCorner is the arc variant of the corner-tangent construction: only
// the sweep between the two tangent points is drawn, joining the rays as a
// fillet. Of the two possible sweeps the shorter one (at most π) is used.
type ArcFromCorner struct {
	cornerGeom

	editState
}

var _ Entity = (*ArcFromCorner)(nil)

func NewArcFromCorner(corner, ray1, ray2, centerSpec Point) *ArcFromCorner {
	return &ArcFromCorner{cornerGeom: cornerGeom{
		Corner: corner,
		Ray1:   ray1,
		Ray2:   ray2,
		Spec:   centerSpec,
	}}
}

func (a *ArcFromCorner) Solve() CornerTangent {
	return a.solve()
}

func (a *ArcFromCorner) Valid() bool {
	return a.solve().Valid
}

func (a *ArcFromCorner) Radius() float64 {
	return a.solve().Radius
}

// SetRadius sets the fillet radius via the inverse bisector-distance
// operation.
func (a *ArcFromCorner) SetRadius(r float64) {
	a.edit(func() { a.setRadius(r) })
}

// Angles returns the arc's start angle and counter-clockwise sweep about the
// calculated center. The sweep between the two tangent points that measures
// at most π is chosen; the opposite sweep is not persisted.
func (a *ArcFromCorner) Angles() (start, sweep float64) {
	sol := a.solve()
	if !sol.Valid {
		return 0, 0
	}
	a1 := sol.Tangent1.Sub(sol.Center).Angle()
	a2 := sol.Tangent2.Sub(sol.Center).Angle()
	s := ccwSweep(a1, a2)
	if s <= math.Pi {
		return a1, s
	}
	return a2, 2*math.Pi - s
}

func (a *ArcFromCorner) Select() {
	a.attach(a.cornerHandles(a.OnControlPointChanged, a.Radius, a.SetRadius)...)
}

func (a *ArcFromCorner) OnControlPointChanged(name string, pt Point) {
	a.edit(func() { a.applyCorner(name, pt) })
}

func (a *ArcFromCorner) BoundingBox() Rect {
	return a.cachedBounds(func() Rect {
		sol := a.solve()
		if !sol.Valid {
			return a.constructionBounds()
		}
		start, sweep := a.Angles()
		return EmptyRect().UnionArc(sol.Center, sol.Radius, start, start+sweep)
	})
}

func (a *ArcFromCorner) Contains(pt Point, tol float64) bool {
	sol := a.solve()
	if !sol.Valid {
		return a.constructionContains(pt, tol)
	}
	if !onCircle(pt, sol.Center, sol.Radius, tol) {
		return false
	}
	start, sweep := a.Angles()
	return angleInSweep(pt.Sub(sol.Center).Angle(), start, sweep)
}

func (a *ArcFromCorner) PathElements(tolerance float64) iter.Seq[PathElement] {
	sol := a.solve()
	if !sol.Valid {
		return a.constructionElements()
	}
	start, sweep := a.Angles()
	return arcElements(sol.Center, sol.Radius, start, sweep, tolerance)
}

func (a *ArcFromCorner) Path(tolerance float64) BezPath {
	return collectPath(a.PathElements(tolerance))
}

func (a *ArcFromCorner) Record() Record {
	return Record{Kind: KindCornerArc, Points: a.points()}
}
