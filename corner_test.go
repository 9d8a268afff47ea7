package sketch

import (
	"math"
	"testing"
)

func TestSolveCornerTangent(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-6
	}

	tests := []struct {
		name                    string
		corner, ray1, ray2, spec Point
	}{
		{"right angle at origin", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(0.5, 0.5)},
		{"right angle off axis", Pt(1, 1), Pt(4, 1), Pt(1, 5), Pt(3, 3)},
		{"acute", Pt(0, 0), Pt(3, 1), Pt(1, 3), Pt(2, 2)},
		{"obtuse", Pt(-2, 1), Pt(5, 1), Pt(-5, 5), Pt(-1, 4)},
		{"spec off bisector", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(2, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := SolveCornerTangent(tt.corner, tt.ray1, tt.ray2, tt.spec)
			if !sol.Valid {
				t.Fatal("got invalid solution, expected valid")
			}

			u1 := tt.ray1.Sub(tt.corner).Normalize()
			u2 := tt.ray2.Sub(tt.corner).Normalize()
			d := sol.Center.Sub(tt.corner)

			// The radius is the perpendicular distance from the center to
			// either ray's line.
			if got := math.Abs(d.Cross(u1)); !approxEqual(got, sol.Radius) {
				t.Errorf("distance to ray1 is %v, expected radius %v", got, sol.Radius)
			}
			if got := math.Abs(d.Cross(u2)); !approxEqual(got, sol.Radius) {
				t.Errorf("distance to ray2 is %v, expected radius %v", got, sol.Radius)
			}

			// The center lies on the bisector: equidistant from both rays is
			// exactly that, but also check the tangent points project back
			// onto the rays.
			if got := sol.Tangent1.Sub(tt.corner).Cross(u1); !approxEqual(got, 0) {
				t.Errorf("tangent point 1 %v is off ray1", sol.Tangent1)
			}
			if got := sol.Tangent2.Sub(tt.corner).Cross(u2); !approxEqual(got, 0) {
				t.Errorf("tangent point 2 %v is off ray2", sol.Tangent2)
			}

			// Tangent points touch the circle.
			if got := sol.Center.Distance(sol.Tangent1); !approxEqual(got, sol.Radius) {
				t.Errorf("tangent point 1 is at distance %v, expected %v", got, sol.Radius)
			}
			if got := sol.Center.Distance(sol.Tangent2); !approxEqual(got, sol.Radius) {
				t.Errorf("tangent point 2 is at distance %v, expected %v", got, sol.Radius)
			}
		})
	}
}

func TestSolveCornerTangentExample(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-6
	}

	sol := SolveCornerTangent(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(0.5, 0.5))
	if !sol.Valid {
		t.Fatal("got invalid solution, expected valid")
	}
	r := sol.Radius
	if !approxEqual(sol.Center.X, r) || !approxEqual(sol.Center.Y, r) {
		t.Errorf("got center %v, expected (r, r) with r = %v", sol.Center, r)
	}
	if !approxEqual(sol.Tangent1.X, r) || !approxEqual(sol.Tangent1.Y, 0) {
		t.Errorf("got tangent point %v, expected (%v, 0)", sol.Tangent1, r)
	}
	if !approxEqual(sol.Tangent2.X, 0) || !approxEqual(sol.Tangent2.Y, r) {
		t.Errorf("got tangent point %v, expected (0, %v)", sol.Tangent2, r)
	}
}

func TestSolveCornerTangentDegenerate(t *testing.T) {
	tests := []struct {
		name                    string
		corner, ray1, ray2, spec Point
	}{
		{"zero-length ray1", Pt(1, 1), Pt(1, 1), Pt(2, 2), Pt(3, 3)},
		{"zero-length ray2", Pt(1, 1), Pt(2, 2), Pt(1, 1), Pt(3, 3)},
		{"parallel rays", Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(1, 1)},
		{"opposite rays", Pt(0, 0), Pt(1, 0), Pt(-1, 0), Pt(0, 1)},
		{"spec behind corner", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(-1, -1)},
		{"spec on corner", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := SolveCornerTangent(tt.corner, tt.ray1, tt.ray2, tt.spec)
			if sol.Valid {
				t.Error("got valid solution, expected invalid")
			}
			// The fallback keeps the entity queryable.
			if sol.Center != tt.corner {
				t.Errorf("got fallback center %v, expected the corner %v", sol.Center, tt.corner)
			}
			if sol.Radius != 0 {
				t.Errorf("got fallback radius %v, expected 0", sol.Radius)
			}
		})
	}
}

func TestCornerRadiusRoundTrip(t *testing.T) {
	tests := []struct {
		name               string
		corner, ray1, ray2 Point
		r                  float64
	}{
		{"right angle", Pt(1, 1), Pt(4, 1), Pt(1, 5), 2},
		{"acute", Pt(0, 0), Pt(3, 1), Pt(1, 3), 0.25},
		{"obtuse", Pt(-2, 1), Pt(5, 1), Pt(-5, 5), 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCircleFromCorner(tt.corner, tt.ray1, tt.ray2, tt.corner.Midpoint(tt.ray1))
			c.SetRadius(tt.r)
			if !c.Valid() {
				t.Fatal("entity invalid after SetRadius")
			}
			if got := c.Radius(); math.Abs(got-tt.r) > 1e-6 {
				t.Errorf("got radius %v, expected %v", got, tt.r)
			}
		})
	}
}

func TestCornerRadiusDatumDrag(t *testing.T) {
	c := NewCircleFromCorner(Pt(0, 0), Pt(4, 0), Pt(0, 4), Pt(1, 1))
	c.Select()
	defer c.Deselect()

	var datum *ControlPoint
	for _, cp := range c.ControlPoints() {
		if cp.IsDatum() {
			datum = cp
		}
	}
	if datum == nil {
		t.Fatal("expected a radius datum")
	}
	// The datum sits at the first tangent point; for a right angle the
	// tangent distance along the ray equals the radius.
	if got := datum.Position(); got.Distance(Pt(1, 0)) > 1e-9 {
		t.Errorf("got datum at %v, expected the tangent point (1, 0)", got)
	}

	datum.Set(Pt(3, 0))
	if got := c.Radius(); math.Abs(got-3) > 1e-9 {
		t.Errorf("got radius %v after datum drag, expected 3", got)
	}
	// Off-ray drops use the projection onto the first ray.
	datum.Set(Pt(2, 5))
	if got := c.Radius(); math.Abs(got-2) > 1e-9 {
		t.Errorf("got radius %v after off-ray drag, expected 2", got)
	}
	// Drops at or behind the corner leave the entity untouched.
	datum.Set(Pt(-1, 0))
	if got := c.Radius(); math.Abs(got-2) > 1e-9 {
		t.Errorf("got radius %v after a behind-corner drag, expected 2", got)
	}
}

func TestCornerDistanceForRadiusDegenerate(t *testing.T) {
	if _, ok := CornerDistanceForRadius(Pt(0, 0), Pt(1, 0), Pt(2, 0), 1); ok {
		t.Error("expected no distance for parallel rays")
	}
	if _, ok := CornerDistanceForRadius(Pt(0, 0), Pt(1, 0), Pt(-1, 0), 1); ok {
		t.Error("expected no distance for opposite rays")
	}
	if _, ok := CornerDistanceForRadius(Pt(0, 0), Pt(0, 0), Pt(0, 1), 1); ok {
		t.Error("expected no distance for a zero-length ray")
	}
}

func TestCircleFromCornerConstructionMode(t *testing.T) {
	// Parallel rays: no circle, but the entity stays queryable in
	// construction-only mode.
	c := NewCircleFromCorner(Pt(0, 0), Pt(4, 0), Pt(2, 0), Pt(1, 1))
	if c.Valid() {
		t.Fatal("expected invalid construction")
	}
	if got := c.BoundingBox(); got.IsEmpty() {
		t.Error("expected non-empty bounding box from raw points")
	}
	if !c.Contains(Pt(3, 0), 0.1) {
		t.Error("expected a hit on the first construction ray")
	}
	if c.Contains(Pt(3, 2), 0.1) {
		t.Error("expected no hit away from the rays")
	}
	// Two open subpaths, one per ray.
	moves := 0
	for _, el := range c.Path(DefaultTolerance) {
		if el.Kind == MoveToKind {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("got %d subpaths, expected 2", moves)
	}
}

func TestCircleFromCornerCenterHandleSnaps(t *testing.T) {
	c := NewCircleFromCorner(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(0.5, 0.5))
	c.Select()
	defer c.Deselect()

	var center *ControlPoint
	for _, cp := range c.ControlPoints() {
		if cp.Name == "center" {
			center = cp
		}
	}
	if center == nil {
		t.Fatal("no center control point")
	}

	// Drag the center spec off the bisector; the handle must display the
	// calculated on-bisector center, not the drop position.
	center.Set(Pt(2, 1))
	got := center.Position()
	want := c.Solve().Center
	if got != want {
		t.Errorf("got handle position %v, expected calculated center %v", got, want)
	}
	if math.Abs(got.X-got.Y) > 1e-9 {
		t.Errorf("calculated center %v is off the 45° bisector", got)
	}
	// The raw spec point keeps the drop position.
	if c.Spec != Pt(2, 1) {
		t.Errorf("got spec %v, expected the drop position (2, 1)", c.Spec)
	}
}

func TestArcFromCornerShortSweep(t *testing.T) {
	a := NewArcFromCorner(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(0.5, 0.5))
	if !a.Valid() {
		t.Fatal("expected valid construction")
	}
	_, sweep := a.Angles()
	if sweep > math.Pi+1e-9 {
		t.Errorf("got sweep %v, expected the shorter sweep (at most π)", sweep)
	}
	// For the right-angle fillet the arc spans a quarter turn... of the
	// opposite side: from (r, 0) around to (0, r) the short way is π/2.
	if math.Abs(sweep-math.Pi/2) > 1e-6 {
		t.Errorf("got sweep %v, expected π/2", sweep)
	}

	// A point on the short sweep hits, a point on the long sweep doesn't.
	sol := a.Solve()
	onShort := pointOnCircle(sol.Center, sol.Radius, math.Pi+math.Pi/4)
	onLong := pointOnCircle(sol.Center, sol.Radius, math.Pi/4)
	if !a.Contains(onShort, 1e-6) {
		t.Errorf("expected %v on the short sweep to hit", onShort)
	}
	if a.Contains(onLong, 1e-6) {
		t.Errorf("expected %v on the long sweep to miss", onLong)
	}
}
