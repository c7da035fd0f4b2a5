// Package quiz runs scored question sessions: level quizzes, boss battles
// and the diagnostic placement quiz.
package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/profile"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/store"
)

// ErrNoSelection is returned when an answer is submitted without an
// option selected.
var ErrNoSelection = errors.New("no option selected")

// State tracks where a session is in its lifecycle.
type State int

const (
	// StateAwaitingAnswer means the current question is open.
	StateAwaitingAnswer State = iota
	// StateScoring means the current question was answered and feedback
	// is showing; Advance moves on.
	StateScoring
	// StateFinished means the last question was scored and the outcome
	// is available.
	StateFinished
)

// PointsPerCorrectAnswer is awarded and persisted per correct quiz answer.
const PointsPerCorrectAnswer = 2

// Feedback is the per-question response shown between answer and advance.
type Feedback struct {
	Correct bool
	Text    string
}

// Session is a single run through a quiz or boss battle. Questions are
// answered one at a time; each correct answer banks points immediately,
// and the final score is applied to the profile through the engine when
// the session finishes.
type Session struct {
	id       string
	engine   *progression.Engine
	attempts store.AttemptRepo
	profile  *profile.Profile
	item     catalog.ContentItem

	index   int
	answers []string
	state   State
	outcome progression.QuizOutcome
}

// NewSession starts a session over an opened quiz item. attempts may be
// nil to skip the attempt log.
func NewSession(engine *progression.Engine, attempts store.AttemptRepo, p *profile.Profile, item catalog.ContentItem) *Session {
	return &Session{
		id:       uuid.NewString(),
		engine:   engine,
		attempts: attempts,
		profile:  p,
		item:     item,
		answers:  make([]string, len(item.Questions)),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Item returns the quiz content item.
func (s *Session) Item() catalog.ContentItem { return s.item }

// Index returns the zero-based index of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions.
func (s *Session) Total() int { return len(s.item.Questions) }

// Question returns the current question.
func (s *Session) Question() catalog.QuizQuestion {
	return s.item.Questions[s.index]
}

// SubmitAnswer scores the current question. The chosen option must be
// non-empty; ErrNoSelection otherwise. A correct answer banks points and
// persists them before feedback is returned. Feedback text comes from the
// question's configured strings, falling back to the defaults.
func (s *Session) SubmitAnswer(ctx context.Context, option string) (Feedback, error) {
	if s.state != StateAwaitingAnswer {
		return Feedback{}, fmt.Errorf("session not awaiting an answer")
	}
	if option == "" {
		return Feedback{}, ErrNoSelection
	}

	q := s.Question()
	s.answers[s.index] = option
	correct := option == q.Answer

	if correct {
		if err := s.engine.AwardPoints(ctx, s.profile, PointsPerCorrectAnswer); err != nil {
			return Feedback{}, err
		}
	}

	s.state = StateScoring
	return Feedback{Correct: correct, Text: feedbackText(q, correct)}, nil
}

// feedbackText picks the per-question feedback line, or a default when
// the question does not configure one.
func feedbackText(q catalog.QuizQuestion, correct bool) string {
	if correct {
		if q.FeedbackCorrect != "" {
			return q.FeedbackCorrect
		}
		return "Correct!"
	}
	if q.FeedbackIncorrect != "" {
		return q.FeedbackIncorrect
	}
	return fmt.Sprintf("Not quite. The answer was %q.", q.Answer)
}

// Advance moves past a scored question. On the last question it computes
// the final score, applies the quiz result through the engine, records the
// attempt and finishes. Returns true once the session is finished.
func (s *Session) Advance(ctx context.Context) (bool, error) {
	if s.state != StateScoring {
		return false, fmt.Errorf("no scored question to advance past")
	}

	if s.index < len(s.item.Questions)-1 {
		s.index++
		s.state = StateAwaitingAnswer
		return false, nil
	}

	score := 0
	for i, q := range s.item.Questions {
		if s.answers[i] == q.Answer {
			score++
		}
	}

	outcome, err := s.engine.ApplyQuizResult(ctx, s.profile, s.item, score, len(s.item.Questions))
	if err != nil {
		return false, err
	}
	s.outcome = outcome
	s.state = StateFinished

	if s.attempts != nil {
		kind := store.AttemptQuiz
		if s.item.Type == catalog.TypeBossBattle {
			kind = store.AttemptBossBattle
		}
		err := s.attempts.Append(ctx, store.Attempt{
			Username:  s.profile.Username,
			SessionID: s.id,
			Kind:      kind,
			Subject:   string(s.item.Subject),
			Level:     s.item.Level,
			Score:     score,
			Total:     len(s.item.Questions),
			Passed:    outcome.Passed,
		})
		if err != nil {
			return false, fmt.Errorf("record attempt: %w", err)
		}
	}

	return true, nil
}

// Outcome returns the final result. Only valid once finished.
func (s *Session) Outcome() progression.QuizOutcome {
	return s.outcome
}
