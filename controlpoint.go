package sketch

import "math"

// ControlPointKind selects a control point's on-screen footprint and glyph.
// The mapping from kind to visual shape is a presentation concern; hit-testing
// by footprint is not, and lives here.
type ControlPointKind int

const (
	// Plain marks an ordinary draggable handle.
	Plain ControlPointKind = iota + 1
	// Square marks a primary handle, such as a center or a smooth bezier
	// path point.
	Square
	// Diamond marks a secondary handle, such as a disjoint bezier path
	// point or a center-spec point. Its footprint is a rotated square.
	Diamond
	// Datum marks a handle that additionally carries a directly editable
	// numeric value, such as a typed radius.
	Datum
)

func (k ControlPointKind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Square:
		return "Square"
	case Diamond:
		return "Diamond"
	case Datum:
		return "Datum"
	default:
		return "InvalidControlPointKind"
	}
}

// diamondScale widens the Diamond taxicab footprint so its area is about 44%
// larger than the Plain/Square box of the same half size, by convention.
const diamondScale = 1.7

// A ControlPoint is a named, draggable proxy handle onto one editable
// parameter of its owning entity. It owns no geometry: Get reads the
// authoritative position from the entity, and Set routes a new position
// through the entity's edit logic. Control points exist only while the owning
// entity is selected.
type ControlPoint struct {
	Name string
	Kind ControlPointKind

	// Position getter and setter, bound to the owning entity.
	Get func() Point
	Set func(Point)

	// Numeric value access, only for Datum control points. Label names the
	// value in a property panel, e.g. "R" for a radius.
	Label    string
	GetValue func() float64
	SetValue func(float64)

	// pos is the authoritative display location, refreshed from Get before
	// any hit-test or paint query.
	pos Point
}

// Position refreshes the control point's display location from its owning
// entity and returns it.
func (cp *ControlPoint) Position() Point {
	cp.pos = cp.Get()
	return cp.pos
}

// Hit reports whether pt falls inside the control point's footprint, given
// the half size of a plain handle in the caller's coordinates. Diamond
// handles use taxicab containment.
func (cp *ControlPoint) Hit(pt Point, halfSize float64) bool {
	d := pt.Sub(cp.Position())
	if cp.Kind == Diamond {
		return math.Abs(d.X)+math.Abs(d.Y) <= halfSize*diamondScale
	}
	return math.Abs(d.X) <= halfSize && math.Abs(d.Y) <= halfSize
}

// IsDatum reports whether the control point carries a numeric value.
func (cp *ControlPoint) IsDatum() bool {
	return cp.Kind == Datum && cp.GetValue != nil && cp.SetValue != nil
}

func newHandle(name string, kind ControlPointKind, get func() Point, set func(Point)) *ControlPoint {
	return &ControlPoint{
		Name: name,
		Kind: kind,
		Get:  get,
		Set:  set,
	}
}

func newDatum(name, label string, get func() Point, set func(Point), getv func() float64, setv func(float64)) *ControlPoint {
	return &ControlPoint{
		Name:     name,
		Kind:     Datum,
		Get:      get,
		Set:      set,
		Label:    label,
		GetValue: getv,
		SetValue: setv,
	}
}
