package sketch

import (
	"fmt"
	"slices"
)

// Scene is an ordered collection of entities with at most one selected at a
// time. It is the minimal document collaborator: the selection/input layer
// drives it, and the persistence layer round-trips it through records.
//
// A Scene, like the entities it holds, is confined to a single logical edit
// call stack; nothing in it is safe for concurrent use.
type Scene struct {
	Entities []Entity

	selected int // index into Entities, or -1
}

func NewScene(entities ...Entity) *Scene {
	return &Scene{Entities: slices.Clone(entities), selected: -1}
}

func (s *Scene) Append(e Entity) {
	s.Entities = append(s.Entities, e)
}

// Select makes entity i the selected one, instantiating its control points
// and tearing down the previous selection's. Out-of-range i clears the
// selection.
func (s *Scene) Select(i int) {
	if prev := s.Selected(); prev != nil {
		prev.Deselect()
	}
	if i < 0 || i >= len(s.Entities) {
		s.selected = -1
		return
	}
	s.selected = i
	s.Entities[i].Select()
}

func (s *Scene) SelectNone() {
	s.Select(-1)
}

// Selected returns the selected entity, or nil.
func (s *Scene) Selected() Entity {
	if s.selected < 0 || s.selected >= len(s.Entities) {
		return nil
	}
	return s.Entities[s.selected]
}

// SelectedIndex returns the selected entity's index, or -1.
func (s *Scene) SelectedIndex() int {
	if s.selected >= len(s.Entities) {
		return -1
	}
	return s.selected
}

// Pick returns the index of the top-most entity whose outline passes within
// tol of pt, or -1. Later entities sit on top of earlier ones.
func (s *Scene) Pick(pt Point, tol float64) int {
	for i := len(s.Entities) - 1; i >= 0; i-- {
		if s.Entities[i].Contains(pt, tol) {
			return i
		}
	}
	return -1
}

// BoundingBox returns the union of all entity bounding boxes, or the empty
// rectangle for an empty scene.
func (s *Scene) BoundingBox() Rect {
	bbox := EmptyRect()
	for _, e := range s.Entities {
		bbox = bbox.Union(e.BoundingBox())
	}
	return bbox
}

// Records returns the persistence records of all entities in order.
func (s *Scene) Records() []Record {
	recs := make([]Record, len(s.Entities))
	for i, e := range s.Entities {
		recs[i] = e.Record()
	}
	return recs
}

// DecodeScene rebuilds a scene from records. A malformed record fails that
// entity's load with its index attached; the error is returned after all
// well-formed records have been decoded, so one corrupt entity does not take
// down the whole document.
func DecodeScene(recs []Record) (*Scene, error) {
	s := NewScene()
	var firstErr error
	for i, rec := range recs {
		e, err := Decode(rec)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("entity %d: %w", i, err)
			}
			continue
		}
		s.Append(e)
	}
	return s, firstErr
}
