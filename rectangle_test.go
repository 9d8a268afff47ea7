package sketch

import (
	"math"
	"testing"
)

// rightAngles reports whether all four interior angles of the rectangle are
// exactly 90°, by checking that adjacent edge vectors are perpendicular.
func rightAngles(r *Rectangle) bool {
	c := r.corners()
	for i := range c {
		prev := c[(i+3)%4].Sub(c[i])
		next := c[(i+1)%4].Sub(c[i])
		if math.Abs(prev.Dot(next)) > 1e-9 {
			return false
		}
	}
	return true
}

func TestRectangleCornerDrag(t *testing.T) {
	corners := []string{"topleft", "topright", "bottomright", "bottomleft"}
	targets := []Point{Pt(-2, 3), Pt(7, -1), Pt(0.5, 0.25), Pt(-4, -4)}

	for _, name := range corners {
		for _, target := range targets {
			r := NewRectangle(Pt(0, 0), Pt(4, 2))
			r.OnControlPointChanged(name, target)
			if !rightAngles(r) {
				t.Errorf("moving %s to %v broke the right angles: %v", name, target, r.corners())
			}
		}
	}
}

func TestRectangleAdjacentCornersFollow(t *testing.T) {
	r := NewRectangle(Pt(0, 0), Pt(4, 2))
	r.OnControlPointChanged("topright", Pt(5, -1))
	diff(t, Pt(5, -1), r.TR)
	// The adjacent corners adopt the moved corner's coordinate on their
	// shared axis; the opposite corner stays put.
	diff(t, Pt(0, -1), r.TL)
	diff(t, Pt(5, 2), r.BR)
	diff(t, Pt(0, 2), r.BL)
}

func TestRectangleHitAndBounds(t *testing.T) {
	r := NewRectangle(Pt(0, 0), Pt(4, 2))
	approxRect(t, Rect{0, 0, 4, 2}, r.BoundingBox())

	if !r.Contains(Pt(2, 0), 1e-9) {
		t.Error("expected a point on the top edge to hit")
	}
	if r.Contains(Pt(2, 1), 0.5) {
		t.Error("expected an interior point to miss: hit testing picks the outline")
	}
}
