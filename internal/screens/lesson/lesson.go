// Package lesson implements the activity screen: lesson reading plus the
// drag-and-drop matching and fill-in-the-blanks exercises.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/layout"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// openedMsg carries the opened content item or the open error.
type openedMsg struct {
	Item catalog.ContentItem
	Err  error
}

// submittedMsg carries the result of checking an exercise submission.
type submittedMsg struct {
	Correct bool
	Err     error
}

// completedMsg carries the follow-up directive after completion.
type completedMsg struct {
	Directive progression.Directive
	Err       error
}

// doneElapsedMsg fires when the success feedback has been on screen long
// enough to move on.
type doneElapsedMsg struct{}

// feedbackDelay is how long the success message stays up before the screen
// advances on its own. Enter skips the wait.
const feedbackDelay = 1500 * time.Millisecond

// LessonScreen shows one activity item and walks the learner through it.
type LessonScreen struct {
	deps      *nav.Deps
	contentID string

	item    catalog.ContentItem
	loaded  bool
	locked  string
	errText string

	// exercise state
	cursor     int
	choice     int
	answers    map[string]string
	input      components.TextInput
	wrong      bool
	done       bool
	completing bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen for the given activity ID.
func New(deps *nav.Deps, contentID string) *LessonScreen {
	return &LessonScreen{
		deps:      deps,
		contentID: contentID,
		answers:   make(map[string]string),
		input:     components.NewTextInput("Type your answer...", 24),
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	deps := l.deps
	contentID := l.contentID
	return tea.Batch(
		func() tea.Msg {
			item, err := deps.Engine.OpenActivity(context.Background(), deps.Profile, contentID)
			return openedMsg{Item: item, Err: err}
		},
		l.input.Init(),
	)
}

func (l *LessonScreen) Title() string {
	if !l.loaded {
		return "Lesson"
	}
	return l.item.Title
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.done {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	switch l.item.Type {
	case catalog.TypeDragDrop:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose match"},
			{Key: "Enter", Description: "Next pair"},
		}
	case catalog.TypeFillBlanks:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next blank"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Done reading"}}
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		if msg.Err != nil {
			var locked *progression.ContentLockedError
			if errors.As(msg.Err, &locked) {
				l.locked = fmt.Sprintf(
					"This is level %d content and you're at level %d. Keep going to unlock it!",
					locked.ContentLevel, locked.SubjectLevel)
			} else {
				l.errText = msg.Err.Error()
			}
			return l, nil
		}
		l.item = msg.Item
		l.loaded = true
		return l, nil

	case submittedMsg:
		if msg.Err != nil {
			l.errText = msg.Err.Error()
			return l, nil
		}
		if !msg.Correct {
			// Wrong answers reset the exercise for another try.
			l.wrong = true
			l.cursor = 0
			l.choice = 0
			l.answers = make(map[string]string)
			l.input.Model.SetValue("")
			return l, nil
		}
		l.done = true
		l.wrong = false
		return l, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
			return doneElapsedMsg{}
		})

	case doneElapsedMsg:
		if !l.done || l.completing {
			return l, nil
		}
		l.completing = true
		return l, l.complete()

	case completedMsg:
		if msg.Err != nil {
			l.completing = false
			l.errText = msg.Err.Error()
			return l, nil
		}
		directive := msg.Directive
		return l, func() tea.Msg {
			return nav.DirectiveMsg{Directive: directive}
		}

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	if l.loaded && l.item.Type == catalog.TypeFillBlanks && !l.done {
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !l.loaded {
		return l, nil
	}
	if l.done {
		if msg.String() == "enter" && !l.completing {
			l.completing = true
			return l, l.complete()
		}
		return l, nil
	}

	switch l.item.Type {
	case catalog.TypeLesson:
		if msg.String() == "enter" {
			// A lesson counts as complete the moment it is read through.
			l.done = true
			l.completing = true
			return l, l.complete()
		}

	case catalog.TypeDragDrop:
		return l.updateMatching(msg)

	case catalog.TypeFillBlanks:
		return l.updateBlanks(msg)
	}
	return l, nil
}

// complete records progress and resolves what comes next.
func (l *LessonScreen) complete() tea.Cmd {
	deps := l.deps
	item := l.item
	return func() tea.Msg {
		d, err := deps.Engine.CompleteActivity(context.Background(), deps.Profile, item)
		return completedMsg{Directive: d, Err: err}
	}
}

// submit checks the collected answers against the exercise.
func (l *LessonScreen) submit() tea.Cmd {
	deps := l.deps
	item := l.item
	answers := l.answers
	return func() tea.Msg {
		correct, err := deps.Engine.SubmitActivityAnswers(context.Background(), deps.Profile, item, answers)
		return submittedMsg{Correct: correct, Err: err}
	}
}

func (l *LessonScreen) View(width, height int) string {
	if l.locked != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("🔒 "+l.locked))
	}
	if l.errText != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(l.errText))
	}
	if !l.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}

	cw := components.ContentWidth(width)
	var body string
	switch l.item.Type {
	case catalog.TypeLesson:
		body = l.viewLesson(cw)
	case catalog.TypeDragDrop:
		body = l.viewMatching(cw)
	case catalog.TypeFillBlanks:
		body = l.viewBlanks(cw)
	}

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(l.item.Title)
	sections := []string{title, body}

	if l.wrong {
		sections = append(sections, theme.Incorrect.Render("Not quite right. Give it another go!"))
	}
	if l.done {
		sections = append(sections, theme.Correct.Render("Great job! Press Enter to keep going."))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LessonScreen) viewLesson(cw int) string {
	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw - 6).
		Render(l.item.Lesson.Text)
	return components.Card(text, cw)
}
