// Package proficiency implements the per-skill proficiency updates that
// drive level progression. All functions mutate the profile in place;
// persistence is the caller's concern.
package proficiency

import (
	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/profile"
)

const (
	// MasteryThreshold is the proficiency at or above which a skill
	// counts as mastered.
	MasteryThreshold = 0.75

	// LessonFloor is the minimum proficiency granted by completing a
	// lesson or activity that exercises a skill.
	LessonFloor = 0.6

	// PracticeDelta is the proficiency step applied per practice answer.
	PracticeDelta = 0.10

	// QuizPassThreshold is the fraction of correct answers needed to
	// pass a quiz. The comparison is inclusive.
	QuizPassThreshold = 0.70
)

// RecordLessonCompletion floors each tagged skill at LessonFloor. A skill
// already above the floor keeps its value.
func RecordLessonCompletion(p *profile.Profile, skillTags []string) {
	for _, skill := range skillTags {
		if p.Proficiency[skill] < LessonFloor {
			p.Proficiency[skill] = LessonFloor
		}
	}
}

// RecordQuizResult overwrites each tagged skill with the quiz percentage.
// Unlike lessons this can lower a skill: the quiz is the authoritative
// measurement.
func RecordQuizResult(p *profile.Profile, skillTags []string, percentage float64) {
	for _, skill := range skillTags {
		p.Proficiency[skill] = percentage
	}
}

// RecordPracticeOutcome nudges a skill by PracticeDelta, up for a correct
// answer and down for an incorrect one, clamped to [0, 1].
func RecordPracticeOutcome(p *profile.Profile, skill string, correct bool) {
	v := p.Proficiency[skill]
	if correct {
		v += PracticeDelta
		if v > 1 {
			v = 1
		}
	} else {
		v -= PracticeDelta
		if v < 0 {
			v = 0
		}
	}
	p.Proficiency[skill] = v
}

// IsMastered reports whether a single skill is at or above the mastery
// threshold.
func IsMastered(p *profile.Profile, skill string) bool {
	return p.Proficiency[skill] >= MasteryThreshold
}

// Passed reports whether a quiz percentage meets the pass threshold.
func Passed(percentage float64) bool {
	return percentage >= QuizPassThreshold
}

// LevelMastered reports whether every skill attached to a subject's
// content at the given level is mastered. A level with no tagged skills
// is vacuously mastered.
func LevelMastered(p *profile.Profile, c *catalog.Catalog, subject catalog.Subject, level int) bool {
	for _, skill := range c.SkillsAtLevel(subject, level) {
		if !IsMastered(p, skill) {
			return false
		}
	}
	return true
}

// WeakSkills returns the tagged skills below the mastery threshold, in the
// order given.
func WeakSkills(p *profile.Profile, skillTags []string) []string {
	var out []string
	for _, skill := range skillTags {
		if !IsMastered(p, skill) {
			out = append(out, skill)
		}
	}
	return out
}

// SubjectProgress returns the mean proficiency across all skills attached
// to a subject's playable content, in [0, 1]. A subject with no skills
// reports 0.
func SubjectProgress(p *profile.Profile, c *catalog.Catalog, subject catalog.Subject) float64 {
	skills := c.SubjectSkills(subject)
	if len(skills) == 0 {
		return 0
	}
	var sum float64
	for _, skill := range skills {
		sum += p.Proficiency[skill]
	}
	return sum / float64(len(skills))
}
