// Package profile defines the learner record persisted by the store.
package profile

import (
	"maps"

	"github.com/ritika/funlearn/internal/catalog"
)

// QuizResult is the most recent quiz outcome for a subject.
type QuizResult struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Level      int     `json:"level"`
}

// Profile is the full learner record. It round-trips through JSON
// field-for-field; the store persists it as a single document.
type Profile struct {
	Username        string                             `json:"username"`
	Points          int                                `json:"points"`
	SubjectLevels   map[catalog.Subject]int            `json:"subjectLevels"`
	Proficiency     map[string]float64                 `json:"proficiency"`
	SubjectProgress map[catalog.Subject]string         `json:"subjectProgress"`
	LastQuizResult  map[catalog.Subject]*QuizResult    `json:"lastQuizResult"`
	Diagnostic      map[catalog.Subject]bool           `json:"diagnosticDone,omitempty"`
}

// New creates a fresh profile with every subject at level 1.
func New(username string) *Profile {
	p := &Profile{
		Username:        username,
		SubjectLevels:   make(map[catalog.Subject]int),
		Proficiency:     make(map[string]float64),
		SubjectProgress: make(map[catalog.Subject]string),
		LastQuizResult:  make(map[catalog.Subject]*QuizResult),
		Diagnostic:      make(map[catalog.Subject]bool),
	}
	for _, s := range catalog.AllSubjects() {
		p.SubjectLevels[s] = 1
	}
	return p
}

// Repair fills in any structure a stored profile is missing: nil maps,
// unknown skills and subjects added since the profile was written. Every
// skill in allSkills ends up with a proficiency entry (zero if new) and
// every subject with a level of at least 1. Runs on load and before save.
func (p *Profile) Repair(allSkills []string, subjects []catalog.Subject) {
	if p.SubjectLevels == nil {
		p.SubjectLevels = make(map[catalog.Subject]int)
	}
	if p.Proficiency == nil {
		p.Proficiency = make(map[string]float64)
	}
	if p.SubjectProgress == nil {
		p.SubjectProgress = make(map[catalog.Subject]string)
	}
	if p.LastQuizResult == nil {
		p.LastQuizResult = make(map[catalog.Subject]*QuizResult)
	}
	if p.Diagnostic == nil {
		p.Diagnostic = make(map[catalog.Subject]bool)
	}

	for _, skill := range allSkills {
		if _, ok := p.Proficiency[skill]; !ok {
			p.Proficiency[skill] = 0
		}
	}
	for _, s := range subjects {
		if p.SubjectLevels[s] < 1 {
			p.SubjectLevels[s] = 1
		}
	}
}

// Clone returns a deep copy. Engine operations mutate a clone and only
// publish it once the save succeeds.
func (p *Profile) Clone() *Profile {
	out := &Profile{
		Username:        p.Username,
		Points:          p.Points,
		SubjectLevels:   maps.Clone(p.SubjectLevels),
		Proficiency:     maps.Clone(p.Proficiency),
		SubjectProgress: maps.Clone(p.SubjectProgress),
		Diagnostic:      maps.Clone(p.Diagnostic),
	}
	if p.LastQuizResult != nil {
		out.LastQuizResult = make(map[catalog.Subject]*QuizResult, len(p.LastQuizResult))
		for k, v := range p.LastQuizResult {
			if v == nil {
				out.LastQuizResult[k] = nil
				continue
			}
			cp := *v
			out.LastQuizResult[k] = &cp
		}
	}
	return out
}

// Level returns the learner's level for a subject, defaulting to 1.
func (p *Profile) Level(subject catalog.Subject) int {
	if lvl, ok := p.SubjectLevels[subject]; ok && lvl >= 1 {
		return lvl
	}
	return 1
}
