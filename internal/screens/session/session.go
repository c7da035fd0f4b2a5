// Package session implements the quiz screen: one multiple-choice
// question at a time with instant feedback, ending on the result screen.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/quiz"
	"github.com/ritika/funlearn/internal/router"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/screens/result"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/layout"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// quizOpenedMsg carries the opened quiz item or the open error.
type quizOpenedMsg struct {
	Item catalog.ContentItem
	Err  error
}

// answerScoredMsg carries the feedback for a submitted answer.
type answerScoredMsg struct {
	Feedback quiz.Feedback
	Err      error
}

// advancedMsg reports whether the session finished after advancing.
type advancedMsg struct {
	Finished bool
	Err      error
}

// feedbackElapsedMsg fires when the feedback pause for a question is over.
// It carries the question index so a stale tick cannot skip a later question.
type feedbackElapsedMsg struct {
	index int
}

// feedbackDelay is how long per-question feedback stays on screen before
// the session moves on. Enter skips the wait.
const feedbackDelay = 1500 * time.Millisecond

// QuizScreen runs a quiz or boss battle session.
type QuizScreen struct {
	deps      *nav.Deps
	contentID string

	sess     *quiz.Session
	mc       components.MultiChoice
	feedback *quiz.Feedback
	locked   string
	errText  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given quiz or boss battle ID.
func New(deps *nav.Deps, contentID string) *QuizScreen {
	return &QuizScreen{deps: deps, contentID: contentID}
}

func (q *QuizScreen) Init() tea.Cmd {
	deps := q.deps
	contentID := q.contentID
	return func() tea.Msg {
		item, err := deps.Engine.OpenQuiz(context.Background(), deps.Profile, contentID)
		return quizOpenedMsg{Item: item, Err: err}
	}
}

func (q *QuizScreen) Title() string {
	if q.sess == nil {
		return "Quiz"
	}
	if q.sess.Item().Type == catalog.TypeBossBattle {
		return "Boss Battle"
	}
	return q.sess.Item().Title
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.feedback != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizOpenedMsg:
		if msg.Err != nil {
			var locked *progression.ContentLockedError
			if errors.As(msg.Err, &locked) {
				q.locked = fmt.Sprintf(
					"This quiz needs level %d and you're at level %d. Keep learning!",
					locked.ContentLevel, locked.SubjectLevel)
			} else {
				q.errText = msg.Err.Error()
			}
			return q, nil
		}
		q.sess = quiz.NewSession(q.deps.Engine, q.deps.Attempts, q.deps.Profile, msg.Item)
		q.loadQuestion()
		return q, nil

	case answerScoredMsg:
		if msg.Err != nil {
			q.errText = msg.Err.Error()
			return q, nil
		}
		fb := msg.Feedback
		q.feedback = &fb
		index := q.sess.Index()
		return q, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
			return feedbackElapsedMsg{index: index}
		})

	case feedbackElapsedMsg:
		if q.sess == nil || q.feedback == nil || q.sess.Index() != msg.index {
			return q, nil
		}
		return q, q.advance()

	case advancedMsg:
		if msg.Err != nil {
			q.errText = msg.Err.Error()
			return q, nil
		}
		q.feedback = nil
		if msg.Finished {
			outcome := q.sess.Outcome()
			deps := q.deps
			return q, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: result.New(deps, outcome)}
			}
		}
		q.loadQuestion()
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

// loadQuestion resets the choice component for the session's current
// question.
func (q *QuizScreen) loadQuestion() {
	question := q.sess.Question()
	correct := 0
	for i, opt := range question.Options {
		if opt == question.Answer {
			correct = i
			break
		}
	}
	q.mc = components.NewMultiChoice(question.Prompt, question.Options, correct)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.sess == nil {
		return q, nil
	}

	if q.feedback != nil {
		if msg.String() == "enter" {
			return q, q.advance()
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.mc, cmd = q.mc.Update(msg)
	if q.mc.Submitted {
		sess := q.sess
		option := q.sess.Question().Options[q.mc.ChosenIndex]
		return q, func() tea.Msg {
			fb, err := sess.SubmitAnswer(context.Background(), option)
			return answerScoredMsg{Feedback: fb, Err: err}
		}
	}
	return q, cmd
}

// advance moves the session past the current feedback.
func (q *QuizScreen) advance() tea.Cmd {
	sess := q.sess
	return func() tea.Msg {
		finished, err := sess.Advance(context.Background())
		return advancedMsg{Finished: finished, Err: err}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.locked != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("🔒 "+q.locked))
	}
	if q.errText != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(q.errText))
	}
	if q.sess == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}

	cw := components.ContentWidth(width)

	progress := theme.Hint.Render(fmt.Sprintf(
		"Question %d of %d", q.sess.Index()+1, q.sess.Total()))

	body := q.mc.View()
	if q.feedback != nil {
		if q.feedback.Correct {
			body += "\n" + theme.Correct.Render(fmt.Sprintf("%s +%d points", q.feedback.Text, quiz.PointsPerCorrectAnswer))
		} else {
			body += "\n" + theme.Incorrect.Render(q.feedback.Text)
		}
	}

	content := progress + "\n\n" + components.Card(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
