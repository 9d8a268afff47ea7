// Package sketch implements the geometric model of a 2D parametric CAD
// editor: entities defined by a small set of raw points, each exposing
// draggable control points whose edits deterministically recompute the rest
// of the entity so its defining constraint keeps holding.
//
// # Entities and control points
//
// Every entity satisfies [Entity]: it can report its bounding box, answer
// outline hit tests, describe itself as Bézier path elements for an external
// renderer, and, while selected, expose [ControlPoint] handles. A control
// point is a proxy: it owns no geometry, it reads its position from the
// entity and routes new positions through the entity's edit logic.
//
// The package contains the following entities:
//   - [Line] and [Polyline]
//   - [CircleCenterRadius], [Circle2Point], and [Circle3Point]
//   - [CircleFromCorner] and [ArcFromCorner], built on [SolveCornerTangent]
//   - [Arc]
//   - [Rectangle]
//   - [BezierPath] and [QuadPath], governed by [PathPointState]
//
// # Degenerate geometry
//
// Constructions without a unique solution (zero-length or parallel rays,
// collinear perimeter points, a center spec behind its corner) never panic
// and never return errors. The affected entity degrades: [CircleFromCorner]
// reports Valid() == false and draws its construction rays, [Circle3Point]
// becomes the line through its outer points. The one hard failure in the
// package is [Decode] on a malformed persistence record.
//
// # Concurrency
//
// Nothing in the package is safe for concurrent use, with the exception of
// [SetLogger] and [Logger]. All recomputation happens inline
// in the control-point edit call; a per-entity guard drops edits re-entered
// as a side effect of a running edit, and the bounded handle
// re-synchronization pass is the only retry-like mechanism.
package sketch
