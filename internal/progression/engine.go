// Package progression decides what a learner sees next and how their
// subject levels move. Every operation that changes the profile persists
// it before returning; on a save error the stored profile is unchanged
// and the in-memory profile must be discarded by the caller.
package progression

import (
	"context"
	"fmt"
	"strings"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/proficiency"
	"github.com/ritika/funlearn/internal/profile"
	"github.com/ritika/funlearn/internal/store"
)

// Engine resolves content and applies progression rules.
type Engine struct {
	catalog  *catalog.Catalog
	profiles store.ProfileRepo
}

// New creates an engine over the given catalog and profile store.
func New(c *catalog.Catalog, profiles store.ProfileRepo) *Engine {
	return &Engine{catalog: c, profiles: profiles}
}

// Catalog returns the engine's content catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// NextContent resolves the next item for a subject:
//
//  1. If the subject has a last-completed item with a next link, follow it.
//  2. Otherwise the first item at the learner's current subject level.
//  3. Otherwise the first item at level 1 (a level raised past the end of
//     the content falls back to the start).
//  4. Otherwise ErrNoContentAvailable.
func (e *Engine) NextContent(p *profile.Profile, subject catalog.Subject) (catalog.ContentItem, error) {
	if lastID := p.SubjectProgress[subject]; lastID != "" {
		if last, ok := e.catalog.FindByID(lastID); ok {
			if next, ok := e.catalog.Next(last); ok {
				return next, nil
			}
		}
	}

	level := p.Level(subject)
	if item, ok := e.firstAtLevel(subject, level); ok {
		return item, nil
	}
	if level != 1 {
		if item, ok := e.firstAtLevel(subject, 1); ok {
			return item, nil
		}
	}
	return catalog.ContentItem{}, fmt.Errorf("subject %s: %w", subject, ErrNoContentAvailable)
}

func (e *Engine) firstAtLevel(subject catalog.Subject, level int) (catalog.ContentItem, bool) {
	return e.catalog.Find(func(item catalog.ContentItem) bool {
		return item.Subject == subject && item.Level == level && item.Type.IsActivity()
	})
}

// ContinueSubject resolves the next item for a subject and returns the
// directive that opens it. SubjectComplete when nothing is left.
func (e *Engine) ContinueSubject(p *profile.Profile, subject catalog.Subject) Directive {
	item, err := e.NextContent(p, subject)
	if err != nil {
		return Directive{Kind: SubjectComplete, Subject: subject}
	}
	return directiveFor(item)
}

// EnterSubject applies the general level advancement rule before the
// learner continues a subject: when the current level is fully mastered
// and the resolved next content sits at a strictly higher level, the
// subject level adopts that content's level. A next item still at the
// current level means the level has material left and nothing moves.
// Returns true if the level changed.
func (e *Engine) EnterSubject(ctx context.Context, p *profile.Profile, subject catalog.Subject) (bool, error) {
	level := p.Level(subject)
	if !proficiency.LevelMastered(p, e.catalog, subject, level) {
		return false, nil
	}
	next, err := e.NextContent(p, subject)
	if err != nil || next.Level <= level {
		return false, nil
	}
	p.SubjectLevels[subject] = next.Level
	if err := e.profiles.Save(ctx, p); err != nil {
		return false, fmt.Errorf("save level advance: %w", err)
	}
	return true, nil
}

// OpenActivity fetches a lesson, drag_drop or fill_blanks item, enforcing
// the level gate. Viewing the item floors its tagged skills and persists
// the profile, matching how a lesson counts as seen the moment it opens.
func (e *Engine) OpenActivity(ctx context.Context, p *profile.Profile, contentID string) (catalog.ContentItem, error) {
	item, ok := e.catalog.FindByID(contentID)
	if !ok || item.Type.IsQuiz() || !item.Type.IsActivity() {
		return catalog.ContentItem{}, fmt.Errorf("activity %q: %w", contentID, ErrContentNotFound)
	}
	if err := e.gate(p, item); err != nil {
		return catalog.ContentItem{}, err
	}

	if len(item.SkillTags) > 0 {
		proficiency.RecordLessonCompletion(p, item.SkillTags)
		if err := e.profiles.Save(ctx, p); err != nil {
			return catalog.ContentItem{}, fmt.Errorf("save lesson floor: %w", err)
		}
	}
	return item, nil
}

// OpenQuiz fetches a quiz or boss_battle item, enforcing the level gate.
func (e *Engine) OpenQuiz(ctx context.Context, p *profile.Profile, contentID string) (catalog.ContentItem, error) {
	item, ok := e.catalog.FindByID(contentID)
	if !ok || !item.Type.IsQuiz() {
		return catalog.ContentItem{}, fmt.Errorf("quiz %q: %w", contentID, ErrContentNotFound)
	}
	if err := e.gate(p, item); err != nil {
		return catalog.ContentItem{}, err
	}
	return item, nil
}

// gate rejects content above the learner's subject level.
func (e *Engine) gate(p *profile.Profile, item catalog.ContentItem) error {
	if item.Level > p.Level(item.Subject) {
		return &ContentLockedError{
			ContentID:    item.ID,
			ContentLevel: item.Level,
			SubjectLevel: p.Level(item.Subject),
		}
	}
	return nil
}

// CheckActivityAnswers scores a drag_drop or fill_blanks submission.
// Matching is case-insensitive after trimming; every answer must match.
func CheckActivityAnswers(item catalog.ContentItem, answers map[string]string) bool {
	switch item.Type {
	case catalog.TypeDragDrop:
		expected := item.DragDrop.ExpectedAnswers()
		for id, want := range expected {
			if !answerEqual(answers[id], want) {
				return false
			}
		}
		return true
	case catalog.TypeFillBlanks:
		for i, q := range item.FillBlanks.Questions {
			key := fmt.Sprintf("%d", i)
			if !answerEqual(answers[key], q.Answer) {
				return false
			}
		}
		return true
	}
	return false
}

func answerEqual(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}

// SubmitActivityAnswers checks an interactive activity submission. A fully
// correct submission floors the tagged skills and persists; anything else
// leaves the profile untouched so the learner can retry.
func (e *Engine) SubmitActivityAnswers(ctx context.Context, p *profile.Profile, item catalog.ContentItem, answers map[string]string) (bool, error) {
	if !CheckActivityAnswers(item, answers) {
		return false, nil
	}
	if len(item.SkillTags) > 0 {
		proficiency.RecordLessonCompletion(p, item.SkillTags)
		if err := e.profiles.Save(ctx, p); err != nil {
			return false, fmt.Errorf("save activity result: %w", err)
		}
	}
	return true, nil
}

// CompleteActivity marks an item as the subject's last completed content
// and returns the directive for what follows: the linked item, or
// SubjectComplete at the end of a chain.
func (e *Engine) CompleteActivity(ctx context.Context, p *profile.Profile, item catalog.ContentItem) (Directive, error) {
	p.SubjectProgress[item.Subject] = item.ID
	if err := e.profiles.Save(ctx, p); err != nil {
		return Directive{}, fmt.Errorf("save progress: %w", err)
	}

	next, ok := e.catalog.Next(item)
	if !ok {
		return Directive{Kind: SubjectComplete, Subject: item.Subject}, nil
	}
	return directiveFor(next), nil
}

// QuizOutcome is the result payload produced when a quiz session ends.
type QuizOutcome struct {
	Score         int
	Total         int
	Percentage    float64
	Passed        bool
	Subject       catalog.Subject
	OldLevel      int
	NewLevel      int
	SkillTags     []string
	NextContentID string
}

// ApplyQuizResult applies a finished quiz to the profile: proficiency is
// overwritten with the percentage, the item becomes the subject's last
// completed content, the last-quiz record is updated and the level rule
// runs. All changes persist in one save.
//
// Level rule: a passed quiz whose next item sits at a higher level adopts
// that level; a passed quiz with no next item bumps the level by one; a
// failed quiz never moves the level.
func (e *Engine) ApplyQuizResult(ctx context.Context, p *profile.Profile, item catalog.ContentItem, score, total int) (QuizOutcome, error) {
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total)
	}
	passed := proficiency.Passed(percentage)

	oldLevel := p.Level(item.Subject)
	newLevel := oldLevel
	if passed {
		if next, ok := e.catalog.Next(item); ok {
			if next.Level > oldLevel {
				newLevel = next.Level
			}
		} else {
			newLevel = oldLevel + 1
		}
	}

	proficiency.RecordQuizResult(p, item.SkillTags, percentage)
	p.SubjectProgress[item.Subject] = item.ID
	p.LastQuizResult[item.Subject] = &profile.QuizResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Level:      item.Level,
	}
	p.SubjectLevels[item.Subject] = newLevel

	if err := e.profiles.Save(ctx, p); err != nil {
		return QuizOutcome{}, fmt.Errorf("save quiz result: %w", err)
	}

	return QuizOutcome{
		Score:         score,
		Total:         total,
		Percentage:    percentage,
		Passed:        passed,
		Subject:       item.Subject,
		OldLevel:      oldLevel,
		NewLevel:      newLevel,
		SkillTags:     item.SkillTags,
		NextContentID: item.NextID,
	}, nil
}

// ResultDirective maps a quiz outcome to where the learner goes from the
// result screen: the next content on a pass, practice on weak skills on a
// fail, the dashboard when neither applies.
func (e *Engine) ResultDirective(p *profile.Profile, out QuizOutcome) Directive {
	if !out.Passed {
		if weak := proficiency.WeakSkills(p, out.SkillTags); len(weak) > 0 {
			return Directive{Kind: GoToPractice, Skills: weak}
		}
		return Directive{Kind: StayOnDashboard}
	}
	if out.NextContentID != "" {
		if next, ok := e.catalog.FindByID(out.NextContentID); ok {
			return directiveFor(next)
		}
	}
	return Directive{Kind: StayOnDashboard}
}

// AwardPoints adds points and persists immediately.
func (e *Engine) AwardPoints(ctx context.Context, p *profile.Profile, points int) error {
	p.Points += points
	if err := e.profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("save points: %w", err)
	}
	return nil
}

// RecordPractice applies one practice answer: proficiency moves by the
// practice delta and a correct answer earns a point. One save covers both.
func (e *Engine) RecordPractice(ctx context.Context, p *profile.Profile, skill string, correct bool) error {
	proficiency.RecordPracticeOutcome(p, skill, correct)
	if correct {
		p.Points++
	}
	if err := e.profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("save practice result: %w", err)
	}
	return nil
}
