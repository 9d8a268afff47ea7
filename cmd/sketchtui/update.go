package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gocad/sketch"
)

// modifierClicker is satisfied by entities whose control points react to a
// modifier-qualified click, such as bezier smoothness cycling.
type modifierClicker interface {
	ModifierClick(name string) bool
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.entering {
			return m.updateDatumEntry(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m = m.cycleSelection(1)
		case "shift+tab":
			m = m.cycleSelection(-1)
		case "esc":
			m.scene.SelectNone()
			m.handle = -1
			m.status = "selection cleared"

		case "n":
			m = m.cycleHandle(1)
		case "p":
			m = m.cycleHandle(-1)

		case "up":
			m = m.move(sketch.Vec(0, m.worldStep()))
		case "down":
			m = m.move(sketch.Vec(0, -m.worldStep()))
		case "left":
			m = m.move(sketch.Vec(-m.worldStep(), 0))
		case "right":
			m = m.move(sketch.Vec(m.worldStep(), 0))

		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}

		case "s":
			m = m.modifierClick()
		case "r":
			m = m.startDatumEntry()
		case "w":
			m = m.save()
		case "h":
			m.helpVisible = !m.helpVisible
		}
	}
	return m, nil
}

func (m model) updateDatumEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.input.Blur()
		m.status = "datum entry cancelled"
		return m, nil
	case "enter":
		m.entering = false
		m.input.Blur()
		v, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
		if err != nil {
			m.status = "bad value: " + err.Error()
			return m, nil
		}
		if cp := m.activeHandle(); cp != nil && cp.IsDatum() {
			cp.SetValue(v)
			m.status = fmt.Sprintf("%s = %g", cp.Label, v)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) cycleSelection(dir int) model {
	n := len(m.scene.Entities)
	if n == 0 {
		return m
	}
	i := m.scene.SelectedIndex() + dir
	if i >= n {
		i = 0
	}
	if i < 0 {
		i = n - 1
	}
	m.scene.Select(i)
	m.handle = -1
	if cps := m.scene.Entities[i].ControlPoints(); len(cps) > 0 {
		m.handle = 0
	}
	m.status = fmt.Sprintf("selected %s (%d/%d)", m.scene.Entities[i].Record().Kind, i+1, n)
	return m
}

func (m model) cycleHandle(dir int) model {
	e := m.scene.Selected()
	if e == nil {
		return m
	}
	cps := e.ControlPoints()
	if len(cps) == 0 {
		return m
	}
	m.handle = ((m.handle+dir)%len(cps) + len(cps)) % len(cps)
	cp := cps[m.handle]
	if cp.IsDatum() {
		m.status = fmt.Sprintf("handle: %s (%s = %g)", cp.Name, cp.Label, cp.GetValue())
	} else {
		m.status = "handle: " + cp.Name
	}
	return m
}

func (m model) activeHandle() *sketch.ControlPoint {
	e := m.scene.Selected()
	if e == nil {
		return nil
	}
	cps := e.ControlPoints()
	if m.handle < 0 || m.handle >= len(cps) {
		return nil
	}
	return cps[m.handle]
}

// move drags the active control point, or pans the view when nothing is
// selected.
func (m model) move(d sketch.Vec2) model {
	if cp := m.activeHandle(); cp != nil {
		cp.Set(cp.Position().Translate(d))
		m.status = fmt.Sprintf("%s → %v", cp.Name, cp.Position())
		return m
	}
	m.panX -= d.X
	m.panY -= d.Y
	return m
}

func (m model) modifierClick() model {
	e := m.scene.Selected()
	cp := m.activeHandle()
	if e == nil || cp == nil {
		return m
	}
	mc, ok := e.(modifierClicker)
	if !ok {
		m.status = "entity has no smoothness states"
		return m
	}
	if !mc.ModifierClick(cp.Name) {
		m.status = "no smoothness state on " + cp.Name
		return m
	}
	// The click may have rebuilt the control points; re-resolve by name.
	for i, c := range e.ControlPoints() {
		if c.Name == cp.Name {
			m.handle = i
			m.status = fmt.Sprintf("%s: %v kind", cp.Name, c.Kind)
			break
		}
	}
	return m
}

func (m model) startDatumEntry() model {
	cp := m.activeHandle()
	if cp == nil || !cp.IsDatum() {
		m.status = "active handle carries no value"
		return m
	}
	m.entering = true
	m.input.SetValue(strconv.FormatFloat(cp.GetValue(), 'g', -1, 64))
	m.input.CursorEnd()
	m.input.Focus()
	m.status = "enter " + cp.Label
	return m
}
