package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gocad/sketch"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	activeFg  = lipgloss.Color("#FFA500")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	handleStyle = lipgloss.NewStyle().Foreground(accentFg)
	activeStyle = lipgloss.NewStyle().Foreground(activeFg).Bold(true)
)

// handleGlyphs maps control point kinds to their overlay glyphs.
var handleGlyphs = map[sketch.ControlPointKind]rune{
	sketch.Plain:   '●',
	sketch.Square:  '■',
	sketch.Diamond: '◆',
	sketch.Datum:   '◎',
}
