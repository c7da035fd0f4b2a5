package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/quiz"
	"github.com/ritika/funlearn/internal/router"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/dashboard"
	"github.com/ritika/funlearn/internal/screens/diagnostic"
	"github.com/ritika/funlearn/internal/screens/drill"
	"github.com/ritika/funlearn/internal/screens/lesson"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/screens/session"
	"github.com/ritika/funlearn/internal/screens/welcome"
	"github.com/ritika/funlearn/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the screen stack and
// translates navigation directives into screen changes.
type AppModel struct {
	deps   *nav.Deps
	router *router.Router
	width  int
	height int
	err    error
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(deps *nav.Deps) AppModel {
	return AppModel{
		deps:   deps,
		router: router.New(welcome.New(deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case nav.LoggedInMsg:
		m.deps.Profile = msg.Profile
		if !quiz.DiagnosticDone(m.deps.Engine.Catalog(), msg.Profile) {
			return m, m.router.Replace(diagnostic.New(m.deps))
		}
		return m, m.router.Replace(dashboard.New(m.deps))

	case nav.DiagnosticCompleteMsg:
		return m, m.router.Replace(dashboard.New(m.deps))

	case nav.GoDashboardMsg:
		m.popToDashboard()
		return m, nil

	case nav.DirectiveMsg:
		return m, m.navigate(msg.Directive)

	case nav.ErrorMsg:
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// navigate maps a progression directive to a screen change. From the
// dashboard the target is pushed so Esc returns there; deeper in a
// lesson → quiz → result chain the top screen is replaced instead.
func (m AppModel) navigate(d progression.Directive) tea.Cmd {
	var next screen.Screen
	switch d.Kind {
	case progression.GoToLesson:
		next = lesson.New(m.deps, d.ContentID)
	case progression.GoToQuiz:
		next = session.New(m.deps, d.ContentID)
	case progression.GoToPractice:
		next = drill.New(m.deps, d.Skills)
	default:
		m.popToDashboard()
		return nil
	}

	if m.router.Depth() == 1 {
		return m.router.Push(next)
	}
	return m.router.Replace(next)
}

func (m AppModel) popToDashboard() {
	for m.router.Depth() > 1 {
		m.router.Pop()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	points, mathLevel, literacyLevel := 0, 0, 0
	if p := m.deps.Profile; p != nil {
		points = p.Points
		mathLevel = p.Level(catalog.SubjectMath)
		literacyLevel = p.Level(catalog.SubjectLiteracy)
	}
	header := layout.RenderHeader(title, points, mathLevel, literacyLevel, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program with the given dependencies.
func Run(deps *nav.Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	if m, ok := final.(AppModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
