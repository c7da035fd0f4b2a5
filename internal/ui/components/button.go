package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/ui/theme"
)

// Button is a single action triggered by Enter. Inactive buttons render
// flat and ignore input.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton builds a button that fires onPress when Enter is pressed.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	label := " " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
