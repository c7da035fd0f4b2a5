package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput. The underlying Model stays exported so
// screens can toggle echo mode or preset values.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput creates a focused input with a placeholder and a rune limit.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}
