// Package theme holds the shared color palette and text styles. Screens
// never hardcode colors; everything visual routes through here so the whole
// app can be retinted in one place.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Bright enough for a kids' app, dark background for terminals.
var (
	Primary   = lipgloss.Color("#7C3AED") // violet
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Accent    = lipgloss.Color("#FACC15") // sunshine yellow
	Success   = lipgloss.Color("#4ADE80") // spring green
	Error     = lipgloss.Color("#FB7185") // soft red
	Text      = lipgloss.Color("#F5F3FF")
	TextDim   = lipgloss.Color("#9CA3AF")
	BgCard    = lipgloss.Color("#1F2430")
	Border    = lipgloss.Color("#3F3F46")
)

// Text styles.
var (
	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Answer and selection states.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Buttons.
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
