package catalog

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Catalog holds the content items with precomputed indices. Items keep
// their declaration order; Find and Filter scan in that order, which makes
// "first matching item" deterministic.
type Catalog struct {
	items []ContentItem
	byID  map[string]*ContentItem
}

// New builds a catalog from decoded seed items. It decodes every payload
// and validates the content chains.
func New(raw []rawItem) (*Catalog, error) {
	items := make([]ContentItem, 0, len(raw))
	for _, r := range raw {
		item, err := decodeItem(r)
		if err != nil {
			return nil, fmt.Errorf("content %q: %w", r.ID, err)
		}
		items = append(items, item)
	}

	if err := validateItems(items); err != nil {
		return nil, err
	}

	c := &Catalog{
		items: items,
		byID:  make(map[string]*ContentItem, len(items)),
	}
	for i := range c.items {
		c.byID[c.items[i].ID] = &c.items[i]
	}
	return c, nil
}

// decodeItem parses the payload for its declared type.
func decodeItem(r rawItem) (ContentItem, error) {
	item := ContentItem{
		ID:        r.ID,
		Type:      r.Type,
		Subject:   r.Subject,
		Level:     r.Level,
		Title:     r.Title,
		SkillTags: r.SkillTags,
		NextID:    r.NextID,
	}

	switch r.Type {
	case TypeLesson:
		var d LessonData
		if err := json.Unmarshal(r.Data, &d); err != nil {
			return ContentItem{}, fmt.Errorf("lesson data: %w", err)
		}
		item.Lesson = &d
	case TypeDragDrop:
		var d DragDropData
		if err := json.Unmarshal(r.Data, &d); err != nil {
			return ContentItem{}, fmt.Errorf("drag_drop data: %w", err)
		}
		item.DragDrop = &d
	case TypeFillBlanks:
		var d FillBlanksData
		if err := json.Unmarshal(r.Data, &d); err != nil {
			return ContentItem{}, fmt.Errorf("fill_blanks data: %w", err)
		}
		item.FillBlanks = &d
	case TypeQuiz, TypeBossBattle, TypeDiagnosticQuiz:
		var qs []QuizQuestion
		if err := json.Unmarshal(r.Data, &qs); err != nil {
			return ContentItem{}, fmt.Errorf("quiz data: %w", err)
		}
		item.Questions = qs
	default:
		return ContentItem{}, fmt.Errorf("unknown content type %q", r.Type)
	}

	return item, nil
}

// FindByID returns the item with the given ID, or false if absent.
func (c *Catalog) FindByID(id string) (ContentItem, bool) {
	item, ok := c.byID[id]
	if !ok {
		return ContentItem{}, false
	}
	return *item, true
}

// Find returns the first item in declaration order matching pred.
func (c *Catalog) Find(pred func(ContentItem) bool) (ContentItem, bool) {
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	return ContentItem{}, false
}

// Filter returns all items matching pred, in declaration order.
func (c *Catalog) Filter(pred func(ContentItem) bool) []ContentItem {
	var out []ContentItem
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Next returns the item linked by next_content_id, or false at the end of
// a chain.
func (c *Catalog) Next(item ContentItem) (ContentItem, bool) {
	if item.NextID == "" {
		return ContentItem{}, false
	}
	return c.FindByID(item.NextID)
}

// Items returns all items in declaration order.
func (c *Catalog) Items() []ContentItem {
	return slices.Clone(c.items)
}

// Subjects returns the subjects that have playable content, in display order.
func (c *Catalog) Subjects() []Subject {
	seen := make(map[Subject]bool)
	for _, item := range c.items {
		if item.Type.IsActivity() {
			seen[item.Subject] = true
		}
	}
	var out []Subject
	for _, s := range AllSubjects() {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out
}

// AllSkills returns every skill tag used by any item, sorted.
func (c *Catalog) AllSkills() []string {
	seen := make(map[string]bool)
	for _, item := range c.items {
		for _, tag := range item.SkillTags {
			seen[tag] = true
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// SkillsAtLevel returns the skill tags attached to a subject's items at the
// given level, sorted.
func (c *Catalog) SkillsAtLevel(subject Subject, level int) []string {
	seen := make(map[string]bool)
	for _, item := range c.items {
		if item.Subject != subject || item.Level != level {
			continue
		}
		for _, tag := range item.SkillTags {
			seen[tag] = true
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// SubjectSkills returns every skill tag used by a subject's playable items,
// sorted.
func (c *Catalog) SubjectSkills(subject Subject) []string {
	seen := make(map[string]bool)
	for _, item := range c.items {
		if item.Subject != subject || !item.Type.IsActivity() {
			continue
		}
		for _, tag := range item.SkillTags {
			seen[tag] = true
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// MaxLevel returns the highest level with playable content for a subject.
func (c *Catalog) MaxLevel(subject Subject) int {
	max := 0
	for _, item := range c.items {
		if item.Subject == subject && item.Type.IsActivity() && item.Level > max {
			max = item.Level
		}
	}
	return max
}

// DiagnosticQuestions returns the level-0 diagnostic items for a subject,
// in declaration order.
func (c *Catalog) DiagnosticQuestions(subject Subject) []ContentItem {
	return c.Filter(func(item ContentItem) bool {
		return item.Type == TypeDiagnosticQuiz && item.Subject == subject
	})
}
