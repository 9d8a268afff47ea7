package main

import (
	"encoding/json"
	"fmt"
	"os"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gocad/sketch"
)

type model struct {
	width  int
	height int

	scene *sketch.Scene
	path  string // document path, empty for the demo document

	// handle is the index of the active control point of the selected
	// entity, or -1.
	handle int

	zoom float64
	panX float64 // pan offset in world units
	panY float64

	status      string
	helpVisible bool

	// datum entry
	entering bool
	input    textinput.Model
}

func newModel(s *sketch.Scene, path string) model {
	in := textinput.New()
	in.Placeholder = "radius"
	in.CharLimit = 16
	in.Width = 12
	return model{
		scene:       s,
		path:        path,
		handle:      -1,
		zoom:        1.0,
		status:      "sketchtui ready",
		helpVisible: true,
		input:       in,
	}
}

func newModelFromFile(path string) (model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model{}, err
	}
	var recs []sketch.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return model{}, fmt.Errorf("%s: %w", path, err)
	}
	s, err := sketch.DecodeScene(recs)
	m := newModel(s, path)
	if err != nil {
		// Well-formed entities loaded anyway; surface the rest.
		m.status = "partial load: " + err.Error()
	} else {
		m.status = fmt.Sprintf("loaded %s (%d entities)", path, len(s.Entities))
	}
	return m, nil
}

func (m model) save() model {
	if m.path == "" {
		m.status = "no document path to save to"
		return m
	}
	data, err := json.MarshalIndent(m.scene.Records(), "", "  ")
	if err != nil {
		m.status = "save error: " + err.Error()
		return m
	}
	if err := os.WriteFile(m.path, append(data, '\n'), 0o644); err != nil {
		m.status = "save error: " + err.Error()
		return m
	}
	m.status = "saved " + m.path
	return m
}

// demoScene builds a document showing off each entity family.
func demoScene() *sketch.Scene {
	return sketch.NewScene(
		sketch.NewRectangle(sketch.Pt(-14, -8), sketch.Pt(-4, -1)),
		sketch.NewLine(sketch.Pt(-14, 1), sketch.Pt(-4, 7)),
		sketch.NewCircleCenterRadius(sketch.Pt(1, 4), sketch.Pt(4, 4)),
		sketch.NewCircle3Point(sketch.Pt(-1, -6), sketch.Pt(3, -6), sketch.Pt(1, -2)),
		sketch.NewArcFromCorner(sketch.Pt(7, -8), sketch.Pt(14, -8), sketch.Pt(7, -2), sketch.Pt(9, -6)),
		sketch.NewBezierPath(
			sketch.PathPoint{Anchor: sketch.Pt(6, 2), In: sketch.Pt(6, 2), Out: sketch.Pt(8, 6)},
			sketch.PathPoint{Anchor: sketch.Pt(10, 4), In: sketch.Pt(9, 5), Out: sketch.Pt(11, 3)},
			sketch.PathPoint{Anchor: sketch.Pt(14, 6), In: sketch.Pt(12, 4), Out: sketch.Pt(14, 6)},
		),
	)
}

func (m model) Init() tea.Cmd { return nil }
