package progression

import "github.com/ritika/funlearn/internal/catalog"

// DirectiveKind tells the caller where to send the learner next. The
// engine decides; the view layer only renders.
type DirectiveKind string

const (
	GoToLesson      DirectiveKind = "go_to_lesson"
	GoToQuiz        DirectiveKind = "go_to_quiz"
	GoToResult      DirectiveKind = "go_to_result"
	GoToPractice    DirectiveKind = "go_to_practice"
	StayOnDashboard DirectiveKind = "stay_on_dashboard"
	SubjectComplete DirectiveKind = "subject_complete"
)

// Directive is a navigation instruction emitted by engine operations.
type Directive struct {
	Kind      DirectiveKind
	ContentID string          // set for GoToLesson and GoToQuiz
	Subject   catalog.Subject // set for SubjectComplete
	Skills    []string        // set for GoToPractice
}

// directiveFor maps a content item to the directive that opens it.
func directiveFor(item catalog.ContentItem) Directive {
	if item.Type.IsQuiz() {
		return Directive{Kind: GoToQuiz, ContentID: item.ID}
	}
	return Directive{Kind: GoToLesson, ContentID: item.ID}
}
