package sketch

import "iter"

// Epsilon is the tolerance used by geometric degeneracy checks: zero-length
// rays, parallel rays, collinear points.
const Epsilon = 1e-6

// DefaultTolerance is a default flattening tolerance for path queries. It is
// suitable for display purposes.
const DefaultTolerance = 0.1

// maxSyncPasses bounds the control-point re-synchronization loop that runs
// after an edit. A setter may move points other than the one dragged, which
// in turn shifts dependent handle positions; each pass re-reads every handle
// until none moves. The budget guarantees termination; an overrun abandons
// the pass and logs, keeping the last-good display positions.
const maxSyncPasses = 8

// Entity is the contract every CAD entity satisfies.
//
// Entities are mutable and are edited exclusively through
// [Entity.OnControlPointChanged]; all geometric recomputation happens inline
// in that call, single-threaded. Degenerate input never panics or errors: it
// degrades the entity (see [CircleFromCorner.Valid], [Circle3Point.IsLine])
// while keeping it queryable.
type Entity interface {
	// BoundingBox returns the smallest axis-aligned rectangle enclosing
	// the entity. It is cached and recomputed lazily after edits.
	BoundingBox() Rect

	// Contains reports whether pt hits the entity's outline within tol.
	// CAD selection picks strokes, not fills, so this is a
	// distance-to-outline test.
	Contains(pt Point, tol float64) bool

	// PathElements returns the entity's outline as path elements for the
	// rendering layer. The tolerance parameter controls the accuracy of
	// converting circles and arcs to Bézier segments.
	PathElements(tolerance float64) iter.Seq[PathElement]

	// Path collects PathElements into a BezPath.
	Path(tolerance float64) BezPath

	// ControlPoints returns the entity's live control points, or nil while
	// the entity is deselected.
	ControlPoints() []*ControlPoint

	// OnControlPointChanged applies a new position for the named control
	// point and recomputes all dependent state. Calls re-entered as a side
	// effect of a running edit are dropped by the entity's updating guard.
	// Unknown names are ignored.
	OnControlPointChanged(name string, pt Point)

	// Select instantiates the entity's control points, positioned from
	// current geometry. Deselect tears them down again.
	Select()
	Deselect()
	Selected() bool

	// Record returns the entity's raw defining points for persistence.
	// Derived state (centers, radii, tangent points, validity) is never
	// persisted; it is recomputed on load.
	Record() Record
}

// editState is the edit-session state shared by all entities: the selection
// lifecycle, the re-entrancy guard, and the lazy bounding-box cache. Entities
// embed it by value.
type editState struct {
	selected bool
	updating bool
	handles  []*ControlPoint
	bounds   Rect
	boundsOK bool
}

func (s *editState) Selected() bool {
	return s.selected
}

func (s *editState) ControlPoints() []*ControlPoint {
	return s.handles
}

func (s *editState) Deselect() {
	s.selected = false
	s.handles = nil
}

// attach completes the Deselected → Selected transition with the entity's
// freshly built control points.
func (s *editState) attach(cps ...*ControlPoint) {
	s.selected = true
	s.handles = cps
	s.syncHandles()
}

// edit runs apply under the re-entrancy guard, then invalidates caches and
// re-synchronizes handle display positions. It reports whether apply ran;
// re-entered calls are dropped.
func (s *editState) edit(apply func()) bool {
	if s.updating {
		return false
	}
	s.updating = true
	apply()
	s.updating = false
	s.boundsOK = false
	s.syncHandles()
	return true
}

func (s *editState) syncHandles() {
	for range maxSyncPasses {
		settled := true
		for _, cp := range s.handles {
			if p := cp.Get(); p != cp.pos {
				cp.pos = p
				settled = false
			}
		}
		if settled {
			return
		}
	}
	Logger().Warn("control point positions did not settle, abandoning sync",
		"passes", maxSyncPasses)
}

// cachedBounds returns the cached bounding box, computing it on first use
// after an edit.
func (s *editState) cachedBounds(compute func() Rect) Rect {
	if !s.boundsOK {
		s.bounds = compute()
		s.boundsOK = true
	}
	return s.bounds
}
