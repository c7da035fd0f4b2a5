// Package welcome implements the login and registration screen shown at
// startup.
package welcome

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/profile"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/store"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/layout"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// mode selects between the login and register forms.
type mode int

const (
	modeLogin mode = iota
	modeRegister
)

// field tracks which input has focus.
type field int

const (
	fieldUsername field = iota
	fieldPassword
)

// authDoneMsg carries the result of an async login or register attempt.
type authDoneMsg struct {
	Profile *profile.Profile
	Err     error
}

// WelcomeScreen collects credentials and emits nav.LoggedInMsg on success.
type WelcomeScreen struct {
	deps *nav.Deps

	mode     mode
	focus    field
	username components.TextInput
	password components.TextInput
	errText  string
	busy     bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen.
func New(deps *nav.Deps) *WelcomeScreen {
	w := &WelcomeScreen{
		deps:     deps,
		username: components.NewTextInput("Username", 24),
		password: components.NewTextInput("Password", 24),
	}
	w.password.Model.EchoMode = textinput.EchoPassword
	w.password.Model.EchoCharacter = '•'
	w.password.Model.Blur()
	return w
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.username.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch Login/Register"},
		{Key: "↑↓", Description: "Change field"},
		{Key: "Enter", Description: "Submit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		w.busy = false
		if msg.Err != nil {
			w.errText = authErrorText(msg.Err)
			return w, nil
		}
		return w, func() tea.Msg {
			return nav.LoggedInMsg{Profile: msg.Profile}
		}

	case tea.KeyMsg:
		if w.busy {
			return w, nil
		}
		switch msg.String() {
		case "tab":
			if w.mode == modeLogin {
				w.mode = modeRegister
			} else {
				w.mode = modeLogin
			}
			w.errText = ""
			return w, nil
		case "up", "down":
			w.toggleFocus()
			return w, nil
		case "enter":
			if w.focus == fieldUsername {
				w.toggleFocus()
				return w, nil
			}
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	if w.focus == fieldUsername {
		w.username, cmd = w.username.Update(msg)
	} else {
		w.password, cmd = w.password.Update(msg)
	}
	return w, cmd
}

func (w *WelcomeScreen) toggleFocus() {
	if w.focus == fieldUsername {
		w.focus = fieldPassword
		w.username.Model.Blur()
		w.password.Model.Focus()
	} else {
		w.focus = fieldUsername
		w.password.Model.Blur()
		w.username.Model.Focus()
	}
}

// submit runs the login or register flow off the UI loop.
func (w *WelcomeScreen) submit() tea.Cmd {
	username := strings.TrimSpace(w.username.Value())
	password := w.password.Value()
	if username == "" || password == "" {
		w.errText = "Please fill in both fields."
		return nil
	}

	w.busy = true
	w.errText = ""
	deps := w.deps
	register := w.mode == modeRegister

	return func() tea.Msg {
		ctx := context.Background()
		c := deps.Engine.Catalog()

		if register {
			p := profile.New(username)
			p.Repair(c.AllSkills(), c.Subjects())
			if err := deps.Profiles.Create(ctx, password, p); err != nil {
				return authDoneMsg{Err: err}
			}
			return authDoneMsg{Profile: p}
		}

		p, err := deps.Profiles.Authenticate(ctx, username, password)
		if err != nil {
			return authDoneMsg{Err: err}
		}
		// Backfill structure added since the profile was stored.
		p.Repair(c.AllSkills(), c.Subjects())
		return authDoneMsg{Profile: p}
	}
}

func authErrorText(err error) string {
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return "That username is taken. Pick another one!"
	case errors.Is(err, store.ErrInvalidCredentials):
		return "Wrong username or password. Try again!"
	default:
		return "Something went wrong: " + err.Error()
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Learning made fun!"))
	sections = append(sections, "")

	loginTab := "  Login  "
	registerTab := "  Register  "
	if w.mode == modeLogin {
		loginTab = theme.ButtonActive.Render(loginTab)
		registerTab = theme.ButtonInactive.Render(registerTab)
	} else {
		loginTab = theme.ButtonInactive.Render(loginTab)
		registerTab = theme.ButtonActive.Render(registerTab)
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, loginTab, "  ", registerTab))
	sections = append(sections, "")

	sections = append(sections, renderField("Username", w.username.View(), w.focus == fieldUsername))
	sections = append(sections, renderField("Password", w.password.View(), w.focus == fieldPassword))

	if w.busy {
		sections = append(sections, "", theme.Hint.Render("One moment..."))
	} else if w.errText != "" {
		sections = append(sections, "", theme.Incorrect.Render(w.errText))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderField(label, input string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(label+": ") + input
}
