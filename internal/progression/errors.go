package progression

import (
	"errors"
	"fmt"
)

var (
	// ErrContentNotFound is returned when a content ID does not resolve
	// to an item of the expected kind.
	ErrContentNotFound = errors.New("content not found")

	// ErrNoContentAvailable is returned by NextContent when a subject
	// has nothing left to serve.
	ErrNoContentAvailable = errors.New("no content available")
)

// ContentLockedError is returned when a learner requests content above
// their subject level.
type ContentLockedError struct {
	ContentID    string
	ContentLevel int
	SubjectLevel int
}

func (e *ContentLockedError) Error() string {
	return fmt.Sprintf("content %q is locked: level %d, learner at level %d",
		e.ContentID, e.ContentLevel, e.SubjectLevel)
}
