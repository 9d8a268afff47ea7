package sketch

import (
	"math"
	"testing"
)

func TestCircleCenterRadius(t *testing.T) {
	c := NewCircleCenterRadius(Pt(1, 1), Pt(4, 1))
	if got := c.Radius(); got != 3 {
		t.Errorf("got radius %v, expected 3", got)
	}

	// Dragging the center translates the whole circle.
	c.OnControlPointChanged("center", Pt(2, 3))
	if got := c.Radius(); got != 3 {
		t.Errorf("got radius %v after center drag, expected 3", got)
	}
	if c.Rim != Pt(5, 3) {
		t.Errorf("got rim %v, expected (5, 3)", c.Rim)
	}

	// Dragging the rim changes the radius.
	c.OnControlPointChanged("rim", Pt(2, 4))
	if got := c.Radius(); got != 1 {
		t.Errorf("got radius %v after rim drag, expected 1", got)
	}

	if !c.Contains(Pt(3, 3), 1e-9) {
		t.Error("expected perimeter point (3, 3) to hit")
	}
	if c.Contains(Pt(2, 3), 0.5) {
		t.Error("expected the center to miss: hit testing picks the outline")
	}
}

func TestCircleSetRadius(t *testing.T) {
	c := NewCircleCenterRadius(Pt(0, 0), Pt(3, 4))
	c.SetRadius(10)
	if got := c.Radius(); math.Abs(got-10) > 1e-9 {
		t.Errorf("got radius %v, expected 10", got)
	}
	// The rim keeps its direction from the center.
	if got := c.Rim; got.Distance(Pt(6, 8)) > 1e-9 {
		t.Errorf("got rim %v, expected (6, 8)", got)
	}

	// Degenerate rim: direction defaults to +x.
	d := NewCircleCenterRadius(Pt(2, 2), Pt(2, 2))
	d.SetRadius(1)
	if got := d.Rim; got.Distance(Pt(3, 2)) > 1e-9 {
		t.Errorf("got rim %v, expected (3, 2)", got)
	}
}

func TestCircleRadiusDatumDrag(t *testing.T) {
	c := NewCircleCenterRadius(Pt(0, 0), Pt(4, 0))
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
	if got := datum.Position(); got != Pt(2, 0) {
		t.Errorf("got datum at %v, expected the midpoint (2, 0)", got)
	}

	// The datum displays halfway between center and rim, so a drop maps to
	// twice its distance from the center.
	datum.Set(Pt(3, 0))
	if got := c.Radius(); math.Abs(got-6) > 1e-9 {
		t.Errorf("got radius %v after datum drag, expected 6", got)
	}
}

func TestCircle2Point(t *testing.T) {
	c := NewCircle2Point(Pt(-1, 0), Pt(3, 0))
	if got := c.Center(); got != Pt(1, 0) {
		t.Errorf("got center %v, expected (1, 0)", got)
	}
	if got := c.Radius(); got != 2 {
		t.Errorf("got radius %v, expected 2", got)
	}

	// Dragging the derived center translates both endpoints.
	c.OnControlPointChanged("center", Pt(1, 5))
	diff(t, Pt(-1, 5), c.A)
	diff(t, Pt(3, 5), c.B)

	// Coinciding points: radius 0 is representable, nothing blows up.
	z := NewCircle2Point(Pt(2, 2), Pt(2, 2))
	if got := z.Radius(); got != 0 {
		t.Errorf("got radius %v, expected 0", got)
	}
	if got := z.BoundingBox(); got.IsEmpty() {
		t.Error("expected a point-sized bounding box, got empty")
	}
	z.SetRadius(3)
	if got := z.Radius(); math.Abs(got-3) > 1e-9 {
		t.Errorf("got radius %v after SetRadius, expected 3", got)
	}
}

func TestCircleBoundingBox(t *testing.T) {
	c := NewCircleCenterRadius(Pt(1, -2), Pt(1, 1))
	approxRect(t, Rect{-2, -5, 4, 1}, c.BoundingBox())

	// Lazy invalidation: bounds follow the edit.
	c.OnControlPointChanged("rim", Pt(1, -1))
	approxRect(t, Rect{0, -3, 2, -1}, c.BoundingBox())
}
