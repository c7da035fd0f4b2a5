package catalog

import "encoding/json"

// Subject identifies a learning subject.
type Subject string

const (
	SubjectMath     Subject = "math"
	SubjectLiteracy Subject = "literacy"
)

// AllSubjects returns the subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectMath, SubjectLiteracy}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectMath:
		return "Math"
	case SubjectLiteracy:
		return "Reading"
	default:
		return string(s)
	}
}

// ContentType identifies the kind of a content item.
type ContentType string

const (
	TypeDiagnosticQuiz ContentType = "diagnostic_quiz"
	TypeLesson         ContentType = "lesson"
	TypeDragDrop       ContentType = "drag_drop"
	TypeFillBlanks     ContentType = "fill_blanks"
	TypeQuiz           ContentType = "quiz"
	TypeBossBattle     ContentType = "boss_battle"
)

// IsActivity reports whether the type is playable course content.
// Diagnostic questions live at level 0 and are never part of a subject's
// content chain.
func (t ContentType) IsActivity() bool {
	switch t {
	case TypeLesson, TypeDragDrop, TypeFillBlanks, TypeQuiz, TypeBossBattle:
		return true
	}
	return false
}

// IsQuiz reports whether completing the item runs a scored quiz session.
func (t ContentType) IsQuiz() bool {
	return t == TypeQuiz || t == TypeBossBattle
}

// LessonData is the payload of a lesson item.
type LessonData struct {
	Text string `json:"text"`
	Img  string `json:"img,omitempty"`
}

// MatchItem is one tile in a matching activity. Drag tiles are prompts,
// drop tiles hold the values the learner must type.
type MatchItem struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"` // "drag" or "drop"
	Value string `json:"value"`
}

// DragDropData is the payload of a matching activity. Matches maps each
// drag tile ID to the drop tile it pairs with; the expected answer for a
// drag tile is the paired drop tile's value.
type DragDropData struct {
	Instructions string            `json:"instructions"`
	Items        []MatchItem       `json:"items"`
	Matches      map[string]string `json:"matches"`
}

// ExpectedAnswers returns drag tile ID -> expected value.
func (d DragDropData) ExpectedAnswers() map[string]string {
	byID := make(map[string]string, len(d.Items))
	for _, it := range d.Items {
		byID[it.ID] = it.Value
	}
	out := make(map[string]string, len(d.Matches))
	for dragID, dropID := range d.Matches {
		out[dragID] = byID[dropID]
	}
	return out
}

// BlankQuestion is one sentence with a gap to fill. SentenceParts holds the
// text before and after the gap.
type BlankQuestion struct {
	SentenceParts [2]string `json:"sentence_parts"`
	Answer        string    `json:"answer"`
	Options       []string  `json:"options,omitempty"`
}

// FillBlanksData is the payload of a fill-in-the-blanks activity.
type FillBlanksData struct {
	Instructions string          `json:"instructions"`
	Questions    []BlankQuestion `json:"questions"`
}

// QuizQuestion is a single multiple-choice question. The feedback fields
// override the session's default response lines when set.
type QuizQuestion struct {
	Prompt            string   `json:"q"`
	Options           []string `json:"options"`
	Answer            string   `json:"answer"`
	Img               string   `json:"img,omitempty"`
	FeedbackCorrect   string   `json:"feedback_correct,omitempty"`
	FeedbackIncorrect string   `json:"feedback_incorrect,omitempty"`
}

// ContentItem is one node in a subject's content chain.
type ContentItem struct {
	ID        string
	Type      ContentType
	Subject   Subject
	Level     int
	Title     string
	SkillTags []string
	NextID    string // empty at the end of a chain

	// Exactly one of these is set, matching Type.
	Lesson     *LessonData
	DragDrop   *DragDropData
	FillBlanks *FillBlanksData
	Questions  []QuizQuestion // quiz, boss_battle and diagnostic_quiz
}

// rawItem is the wire form of a content item in the seed file.
type rawItem struct {
	ID        string          `json:"id"`
	Type      ContentType     `json:"type"`
	Subject   Subject         `json:"subject"`
	Level     int             `json:"level"`
	Title     string          `json:"title,omitempty"`
	SkillTags []string        `json:"skill_tags,omitempty"`
	NextID    string          `json:"next_content_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}
