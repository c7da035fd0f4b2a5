// Package screen declares the contract every funlearn screen implements.
// The router owns a stack of these and the app shell wraps the active one
// in the shared header and footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/ui/layout"
)

// Screen is one full-window view: welcome, dashboard, a lesson, and so on.
type Screen interface {
	// Init runs when the screen becomes active for the first time.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body. The header and footer are drawn around it.
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer
// instead of the default set.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
