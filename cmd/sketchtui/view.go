package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gocad/sketch"
)

const (
	headerHeight = 1
	footerHeight = 2
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	w, h := m.mapSize()

	header := titleStyle.Render(" sketchtui ─ parametric sketch editor ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	body := lipgloss.NewStyle().Width(m.width).Height(h).Render(m.renderCanvas(w, h))

	status := dimStyle.Render(" " + m.status + " ")
	if m.entering {
		status = lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.input.View())
	}
	footer := lipgloss.NewStyle().Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

func (m model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"Tab select",
		"n/p handle",
		"↑↓←→ drag/pan",
		"+/- zoom",
		"s smoothness",
		"r radius",
		"w save",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}

func (m model) mapSize() (w, h int) {
	w = max(10, m.width)
	h = max(4, m.height-headerHeight-footerHeight)
	return w, h
}

// viewTransform maps world coordinates onto the micro-pixel grid of a w×h
// cell canvas. The sketch plane is y-up, the grid y-down.
func (m model) viewTransform(w, h int) sketch.Affine {
	bbox := m.scene.BoundingBox()
	if bbox.IsEmpty() {
		bbox = sketch.Rect{X0: -10, Y0: -10, X1: 10, Y1: 10}
	}
	bbox = bbox.Inflate(1)

	wMic, hMic := float64(2*w), float64(4*h)
	s := min(wMic/bbox.Width(), hMic/bbox.Height()) * m.zoom
	center := bbox.Center()

	return sketch.Translate(sketch.Vec(-center.X-m.panX, -center.Y-m.panY)).
		ThenScale(s, -s).
		ThenTranslate(sketch.Vec(wMic/2, hMic/2))
}

// viewScale is the current world-to-micro-pixel scale factor, the x scale
// coefficient of the view transform.
func (m model) viewScale() float64 {
	if m.width == 0 {
		return 1
	}
	w, h := m.mapSize()
	return m.viewTransform(w, h).N0
}

// worldStep is the world-space distance of one arrow key press, two
// micro-pixels.
func (m model) worldStep() float64 {
	s := m.viewScale()
	if s <= 0 {
		return 1
	}
	return 2 / s
}

func (m model) renderCanvas(w, h int) string {
	aff := m.viewTransform(w, h)
	s := aff.N0

	// Flatten within roughly one micro-pixel.
	tol := sketch.DefaultTolerance
	if s > 0 {
		tol = max(1/s, 1e-3)
	}

	c := newCanvas(w, h)
	for _, e := range m.scene.Entities {
		for seg := range e.Path(tol).Segments(tol) {
			a := seg[0].Transform(aff)
			b := seg[1].Transform(aff)
			c.line(int(a.X), int(a.Y), int(b.X), int(b.Y))
		}
	}

	rows := c.rows()

	// Overlay the selected entity's control point glyphs.
	overlays := make(map[[2]int]string)
	if e := m.scene.Selected(); e != nil {
		for i, cp := range e.ControlPoints() {
			p := cp.Position().Transform(aff)
			cx, cy := int(p.X)/2, int(p.Y)/4
			if cx < 0 || cx >= w || cy < 0 || cy >= h {
				continue
			}
			style := handleStyle
			if i == m.handle {
				style = activeStyle
			}
			overlays[[2]int{cx, cy}] = style.Render(string(handleGlyphs[cp.Kind]))
		}
	}

	lines := make([]string, len(rows))
	for y, row := range rows {
		var b strings.Builder
		for x, r := range row {
			if ov, ok := overlays[[2]int{x, y}]; ok {
				b.WriteString(ov)
				continue
			}
			b.WriteRune(r)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
