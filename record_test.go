package sketch

import (
	"encoding/json"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	entities := []Entity{
		NewLine(Pt(0, 0), Pt(4, 3)),
		NewPolyline(Pt(0, 0), Pt(1, 1), Pt(2, 0)),
		NewCircleCenterRadius(Pt(1, 1), Pt(4, 1)),
		NewCircle2Point(Pt(-2, 0), Pt(2, 0)),
		NewCircle3Point(Pt(0, 0), Pt(4, 0), Pt(2, 2)),
		NewCircleFromCorner(Pt(0, 0), Pt(5, 0), Pt(0, 5), Pt(2, 2)),
		NewArcFromCorner(Pt(0, 0), Pt(5, 0), Pt(0, 5), Pt(2, 2)),
		NewArc(Pt(0, 0), Pt(3, 0), Pt(0, 3)),
		NewRectangle(Pt(0, 0), Pt(4, 3)),
		NewBezierPath(
			PathPoint{Anchor: Pt(0, 0), In: Pt(0, 0), Out: Pt(1, 1)},
			PathPoint{Anchor: Pt(4, 0), In: Pt(3, 1), Out: Pt(6, -2)},
			PathPoint{Anchor: Pt(8, 0), In: Pt(7, -1), Out: Pt(8, 0)},
		),
		NewQuadPath(
			[]Point{Pt(0, 0), Pt(4, 0), Pt(8, 0)},
			[]Point{Pt(2, 1), Pt(6, -1)},
		),
	}

	for _, e := range entities {
		rec := e.Record()
		t.Run(rec.Kind, func(t *testing.T) {
			got, err := Decode(rec)
			if err != nil {
				t.Fatalf("got error %q, expected the record to decode", err)
			}
			diff(t, rec, got.Record())
		})
	}
}

func TestRecordRoundTripPreservesStates(t *testing.T) {
	b := NewBezierPath(
		PathPoint{Anchor: Pt(0, 0), In: Pt(0, 0), Out: Pt(1, 1)},
		PathPoint{Anchor: Pt(4, 0), In: Pt(3, 1), Out: Pt(6, -2)},
		PathPoint{Anchor: Pt(8, 0), In: Pt(7, -1), Out: Pt(8, 0)},
	)
	// Force a state the handle geometry would not classify to, to prove
	// that persisted states win over reclassification.
	b.CycleState(1)
	b.CycleState(1)

	got, err := Decode(b.Record())
	if err != nil {
		t.Fatalf("got error %q, expected the record to decode", err)
	}
	if got := got.(*BezierPath).State(1); got != Disjoint {
		t.Errorf("got %v after a round trip, expected %v", got, Disjoint)
	}
}

func TestRecordJSON(t *testing.T) {
	rec := Record{
		Kind:   KindQuad,
		Points: []Point{Pt(0, 0), Pt(2, 1), Pt(4, 0)},
		States: []PathPointState{Disjoint, Smooth, Disjoint},
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	diff(t, rec, back)
}

func TestRecordJSONStateNames(t *testing.T) {
	data, err := json.Marshal([]PathPointState{Smooth, Equidistant, Disjoint})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `["SMOOTH","EQUIDISTANT","DISJOINT"]`; got != want {
		t.Errorf("got %s, expected %s", got, want)
	}

	var s PathPointState
	if err := json.Unmarshal([]byte(`"SLIGHTLY_BENT"`), &s); err == nil {
		t.Error("got no error, expected unknown state names to fail")
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"unknown kind", Record{Kind: "hexagon", Points: []Point{Pt(0, 0)}}},
		{"line with one point", Record{Kind: KindLine, Points: []Point{Pt(0, 0)}}},
		{"line with three points", Record{Kind: KindLine, Points: []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}}},
		{"empty polyline", Record{Kind: KindPolyline}},
		{"corner circle with three points", Record{Kind: KindCornerCircle, Points: []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}}},
		{"bezier point count not a multiple of 3", Record{Kind: KindBezier, Points: []Point{Pt(0, 0), Pt(1, 0)}}},
		{"bezier with one path point", Record{Kind: KindBezier, Points: []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}}},
		{"bezier with mismatched states", Record{
			Kind:   KindBezier,
			Points: []Point{Pt(0, 0), Pt(0, 0), Pt(1, 1), Pt(3, 1), Pt(4, 0), Pt(6, -2)},
			States: []PathPointState{Smooth},
		}},
		{"quad with even point count", Record{Kind: KindQuad, Points: []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.rec); err == nil {
				t.Error("got no error, expected the record to be rejected")
			}
		})
	}
}

func TestDecodeRecomputesDerivedState(t *testing.T) {
	// Corner-tangent records persist only the four defining points; validity
	// and the solved circle come back from the solver on load.
	c := NewCircleFromCorner(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1))
	got, err := Decode(c.Record())
	if err != nil {
		t.Fatal(err)
	}
	back := got.(*CircleFromCorner)
	if !back.Valid() {
		t.Error("got invalid, expected the solved circle to be recomputed")
	}
	approxEqual := func(a, b float64) bool { return a-b < 1e-9 && b-a < 1e-9 }
	if want := c.Radius(); !approxEqual(back.Radius(), want) {
		t.Errorf("got radius %v, expected %v", back.Radius(), want)
	}
}
