package quiz

import (
	"context"
	"testing"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/profile"
)

func TestPlaceLevel(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 2, 1},
		{1, 2, 2}, // exactly half places high
		{2, 2, 2},
		{0, 0, 1}, // no questions places low
		{1, 3, 1},
		{2, 3, 2},
	}
	for _, tt := range tests {
		if got := PlaceLevel(tt.score, tt.total); got != tt.want {
			t.Errorf("PlaceLevel(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestDiagnosticQuestionsCoverSubjects(t *testing.T) {
	qs := DiagnosticQuestions(catalog.Default())
	if len(qs) == 0 {
		t.Fatal("expected diagnostic questions")
	}
	seen := make(map[catalog.Subject]bool)
	for _, dq := range qs {
		seen[dq.Subject] = true
	}
	for _, subject := range catalog.Default().Subjects() {
		if !seen[subject] {
			t.Errorf("no diagnostic questions for %s", subject)
		}
	}
}

func TestApplyDiagnosticPlacesPerSubject(t *testing.T) {
	repo := newMemRepo()
	attempts := &memAttempts{}
	c := catalog.Default()
	p := profile.New("t")
	repo.profiles[p.Username] = p.Clone()

	qs := DiagnosticQuestions(c)
	// Answer all math questions correctly, all literacy wrong.
	answers := make(map[int]string)
	for i, dq := range qs {
		if dq.Subject == catalog.SubjectMath {
			answers[i] = dq.Question.Answer
		} else {
			answers[i] = "wrong"
		}
	}

	placed, err := ApplyDiagnostic(context.Background(), repo, attempts, p, qs, answers)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if placed[catalog.SubjectMath] != 2 {
		t.Errorf("math placed at %d, want 2", placed[catalog.SubjectMath])
	}
	if placed[catalog.SubjectLiteracy] != 1 {
		t.Errorf("literacy placed at %d, want 1", placed[catalog.SubjectLiteracy])
	}
	if p.SubjectLevels[catalog.SubjectMath] != 2 {
		t.Errorf("profile math level = %d, want 2", p.SubjectLevels[catalog.SubjectMath])
	}
	if !p.Diagnostic[catalog.SubjectMath] || !p.Diagnostic[catalog.SubjectLiteracy] {
		t.Error("diagnostic flags not set")
	}
	if repo.profiles["t"].SubjectLevels[catalog.SubjectMath] != 2 {
		t.Error("placement not persisted")
	}
	if len(attempts.attempts) != 2 {
		t.Errorf("attempt entries = %d, want one per subject", len(attempts.attempts))
	}
}

func TestApplyDiagnosticMissingAnswersCountWrong(t *testing.T) {
	repo := newMemRepo()
	c := catalog.Default()
	p := profile.New("t")
	repo.profiles[p.Username] = p.Clone()

	qs := DiagnosticQuestions(c)
	placed, err := ApplyDiagnostic(context.Background(), repo, nil, p, qs, nil)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	for subject, level := range placed {
		if level != 1 {
			t.Errorf("%s placed at %d, want 1 with no answers", subject, level)
		}
	}
}

func TestDiagnosticDone(t *testing.T) {
	c := catalog.Default()
	p := profile.New("t")

	if DiagnosticDone(c, p) {
		t.Error("fresh profile should not be done")
	}
	for _, subject := range c.Subjects() {
		p.Diagnostic[subject] = true
	}
	if !DiagnosticDone(c, p) {
		t.Error("all subjects placed should be done")
	}
}
