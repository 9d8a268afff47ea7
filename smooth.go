package sketch

import "math"

// PathPointState classifies a bezier path point that has both an incoming and
// an outgoing control handle, and governs how moving one handle updates its
// sibling.
type PathPointState int

const (
	// Smooth keeps the two handles collinear through the path point:
	// moving one handle forces the opposite handle onto the opposite
	// direction, preserving that handle's own distance.
	Smooth PathPointState = iota
	// Equidistant keeps the handles collinear and additionally forces the
	// opposite handle's distance to match the moved handle's.
	Equidistant
	// Disjoint leaves the handles independent.
	Disjoint
)

func (s PathPointState) String() string {
	switch s {
	case Smooth:
		return "SMOOTH"
	case Equidistant:
		return "EQUIDISTANT"
	case Disjoint:
		return "DISJOINT"
	default:
		return "InvalidPathPointState"
	}
}

// Next returns the state a modifier-qualified click advances to:
// SMOOTH → EQUIDISTANT → DISJOINT → SMOOTH.
func (s PathPointState) Next() PathPointState {
	switch s {
	case Smooth:
		return Equidistant
	case Equidistant:
		return Disjoint
	default:
		return Smooth
	}
}

// HandleKind maps a path-point state to the control-point shape used to
// display it. The mapping is queryable without side effects.
func (s PathPointState) HandleKind() ControlPointKind {
	if s == Disjoint {
		return Diamond
	}
	return Square
}

// classifyAngleTol is the handle-angle tolerance for automatic path-point
// classification, 5 degrees.
const classifyAngleTol = 5 * math.Pi / 180

// ClassifyHandles derives a path point's state from its current handle
// geometry. It runs on load and construction, not during live dragging: a
// point whose handles are opposite within 5° is Smooth, or Equidistant when
// the handle distances also agree within [Epsilon]; anything else is
// Disjoint. A handle coincident with the anchor cannot define a direction and
// forces Disjoint.
func ClassifyHandles(anchor, in, out Point) PathPointState {
	vin := in.Sub(anchor)
	vout := out.Sub(anchor)
	if vin.NearZero() || vout.NearZero() {
		return Disjoint
	}
	if !oppositeAngles(vin.Angle(), vout.Angle(), classifyAngleTol) {
		return Disjoint
	}
	if math.Abs(vin.Hypot()-vout.Hypot()) < Epsilon {
		return Equidistant
	}
	return Smooth
}

// coupleOpposite returns the new position for the handle opposite a moved
// handle, both relative to their shared anchor. A moved handle that sits
// exactly on the anchor has no direction, so the opposite handle stays put.
func coupleOpposite(anchor, moved, opposite Point, state PathPointState) Point {
	if state == Disjoint {
		return opposite
	}
	dir := moved.Sub(anchor)
	if dir.NearZero() {
		return opposite
	}
	dist := opposite.Sub(anchor).Hypot()
	if state == Equidistant {
		dist = dir.Hypot()
	}
	return anchor.Translate(VecFromAngle(dir.Angle() + math.Pi).Mul(dist))
}
