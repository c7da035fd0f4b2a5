package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/profile"
	"github.com/ritika/funlearn/internal/store"
)

// Diagnostic placement: a short untimed check that decides each subject's
// starting level. Scoring at least half of a subject's questions places
// the learner at level 2, anything less at level 1. Placement is computed
// per subject and never moves a level outside [1, 2].
const (
	diagnosticPassFraction = 0.5
	placedLevelHigh        = 2
	placedLevelLow         = 1
)

// DiagnosticQuestion is one flattened question with its subject attached.
type DiagnosticQuestion struct {
	Subject  catalog.Subject
	Question catalog.QuizQuestion
}

// DiagnosticQuestions flattens the catalog's level-0 diagnostic items into
// a single ordered question list across all subjects.
func DiagnosticQuestions(c *catalog.Catalog) []DiagnosticQuestion {
	var out []DiagnosticQuestion
	for _, subject := range c.Subjects() {
		for _, item := range c.DiagnosticQuestions(subject) {
			for _, q := range item.Questions {
				out = append(out, DiagnosticQuestion{Subject: subject, Question: q})
			}
		}
	}
	return out
}

// PlaceLevel maps a subject's diagnostic score to a starting level.
func PlaceLevel(score, total int) int {
	if total > 0 && float64(score)/float64(total) >= diagnosticPassFraction {
		return placedLevelHigh
	}
	return placedLevelLow
}

// ApplyDiagnostic scores the answers per subject, places each subject's
// level and persists the profile in one save. answers is indexed like the
// question list; missing entries count as wrong. Returns the placed level
// per subject.
func ApplyDiagnostic(ctx context.Context, profiles store.ProfileRepo, attempts store.AttemptRepo, p *profile.Profile, questions []DiagnosticQuestion, answers map[int]string) (map[catalog.Subject]int, error) {
	scores := make(map[catalog.Subject]int)
	totals := make(map[catalog.Subject]int)
	for i, dq := range questions {
		totals[dq.Subject]++
		if answers[i] == dq.Question.Answer {
			scores[dq.Subject]++
		}
	}

	placed := make(map[catalog.Subject]int, len(totals))
	for subject, total := range totals {
		level := PlaceLevel(scores[subject], total)
		placed[subject] = level
		p.SubjectLevels[subject] = level
		p.Diagnostic[subject] = true
	}

	if err := profiles.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save diagnostic placement: %w", err)
	}

	if attempts != nil {
		sessionID := uuid.NewString()
		for subject, total := range totals {
			err := attempts.Append(ctx, store.Attempt{
				Username:  p.Username,
				SessionID: sessionID,
				Kind:      store.AttemptDiagnostic,
				Subject:   string(subject),
				Level:     0,
				Score:     scores[subject],
				Total:     total,
				Passed:    placed[subject] == placedLevelHigh,
			})
			if err != nil {
				return nil, fmt.Errorf("record diagnostic attempt: %w", err)
			}
		}
	}

	return placed, nil
}

// DiagnosticDone reports whether every subject with diagnostic questions
// has been placed.
func DiagnosticDone(c *catalog.Catalog, p *profile.Profile) bool {
	for _, subject := range c.Subjects() {
		if len(c.DiagnosticQuestions(subject)) == 0 {
			continue
		}
		if !p.Diagnostic[subject] {
			return false
		}
	}
	return true
}
