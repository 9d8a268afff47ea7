package sketch

import (
	"encoding/json"
	"fmt"
)

// Entity kind identifiers used in persistence records.
const (
	KindLine         = "line"
	KindPolyline     = "polyline"
	KindCircle       = "circle"
	KindCircle2      = "circle-2point"
	KindCircle3      = "circle-3point"
	KindCornerCircle = "corner-circle"
	KindCornerArc    = "corner-arc"
	KindArc          = "arc"
	KindRectangle    = "rectangle"
	KindBezier       = "bezier"
	KindQuad         = "quad"
)

// Record is the persisted form of an entity: its kind and its raw defining
// points, nothing derived. Centers, radii, tangent points and validity flags
// are always recomputed from the raw points on load, so they can never go
// stale or disagree with the geometry.
//
// States carries the per-path-point smoothness states of bezier and quad
// entities and is empty for every other kind.
type Record struct {
	Kind   string           `json:"kind"`
	Points []Point          `json:"points"`
	States []PathPointState `json:"states,omitempty"`
}

// MarshalJSON encodes the state under its display name.
func (s PathPointState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PathPointState) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "SMOOTH":
		*s = Smooth
	case "EQUIDISTANT":
		*s = Equidistant
	case "DISJOINT":
		*s = Disjoint
	default:
		return fmt.Errorf("unknown path point state %q", name)
	}
	return nil
}

// Decode reconstructs an entity from its record. Malformed records, such as
// an unknown kind or a wrong point count, fail fast with a descriptive error;
// fabricating geometry for a broken record would corrupt the document. The
// failure is local to this one record, not to the caller's whole load.
func Decode(rec Record) (Entity, error) {
	exactly := func(n int) error {
		if len(rec.Points) != n {
			return fmt.Errorf("decode %s: got %d points, need %d", rec.Kind, len(rec.Points), n)
		}
		return nil
	}

	switch rec.Kind {
	case KindLine:
		if err := exactly(2); err != nil {
			return nil, err
		}
		return NewLine(rec.Points[0], rec.Points[1]), nil

	case KindPolyline:
		if len(rec.Points) < 2 {
			return nil, fmt.Errorf("decode %s: got %d points, need at least 2", rec.Kind, len(rec.Points))
		}
		return NewPolyline(rec.Points...), nil

	case KindCircle:
		if err := exactly(2); err != nil {
			return nil, err
		}
		return NewCircleCenterRadius(rec.Points[0], rec.Points[1]), nil

	case KindCircle2:
		if err := exactly(2); err != nil {
			return nil, err
		}
		return NewCircle2Point(rec.Points[0], rec.Points[1]), nil

	case KindCircle3:
		if err := exactly(3); err != nil {
			return nil, err
		}
		return NewCircle3Point(rec.Points[0], rec.Points[1], rec.Points[2]), nil

	case KindCornerCircle:
		if err := exactly(4); err != nil {
			return nil, err
		}
		return NewCircleFromCorner(rec.Points[0], rec.Points[1], rec.Points[2], rec.Points[3]), nil

	case KindCornerArc:
		if err := exactly(4); err != nil {
			return nil, err
		}
		return NewArcFromCorner(rec.Points[0], rec.Points[1], rec.Points[2], rec.Points[3]), nil

	case KindArc:
		if err := exactly(3); err != nil {
			return nil, err
		}
		return NewArc(rec.Points[0], rec.Points[1], rec.Points[2]), nil

	case KindRectangle:
		if err := exactly(4); err != nil {
			return nil, err
		}
		r := &Rectangle{
			TL: rec.Points[0],
			TR: rec.Points[1],
			BR: rec.Points[2],
			BL: rec.Points[3],
		}
		return r, nil

	case KindBezier:
		if len(rec.Points) == 0 || len(rec.Points)%3 != 0 {
			return nil, fmt.Errorf("decode %s: got %d points, need a positive multiple of 3", rec.Kind, len(rec.Points))
		}
		n := len(rec.Points) / 3
		if n < 2 {
			return nil, fmt.Errorf("decode %s: got %d path points, need at least 2", rec.Kind, n)
		}
		pts := make([]PathPoint, n)
		for i := range pts {
			pts[i] = PathPoint{
				In:     rec.Points[3*i],
				Anchor: rec.Points[3*i+1],
				Out:    rec.Points[3*i+2],
			}
		}
		b := NewBezierPath(pts...)
		if len(rec.States) != 0 {
			// Persisted states override the automatic classification.
			if len(rec.States) != n {
				return nil, fmt.Errorf("decode %s: got %d states for %d path points", rec.Kind, len(rec.States), n)
			}
			for i := range b.Points {
				if b.interior(i) {
					b.Points[i].State = rec.States[i]
				}
			}
		}
		return b, nil

	case KindQuad:
		if len(rec.Points) < 3 || len(rec.Points)%2 != 1 {
			return nil, fmt.Errorf("decode %s: got %d points, need an odd count of at least 3", rec.Kind, len(rec.Points))
		}
		n := (len(rec.Points) + 1) / 2
		anchors := make([]Point, 0, n)
		ctrls := make([]Point, 0, n-1)
		for i, pt := range rec.Points {
			if i%2 == 0 {
				anchors = append(anchors, pt)
			} else {
				ctrls = append(ctrls, pt)
			}
		}
		q := NewQuadPath(anchors, ctrls)
		if len(rec.States) != 0 {
			if len(rec.States) != n {
				return nil, fmt.Errorf("decode %s: got %d states for %d anchors", rec.Kind, len(rec.States), n)
			}
			for i := range q.States {
				if q.interior(i) {
					q.States[i] = rec.States[i]
				}
			}
		}
		return q, nil

	default:
		return nil, fmt.Errorf("decode: unknown entity kind %q", rec.Kind)
	}
}
