package catalog

import (
	"fmt"
	"strings"
)

// validateItems performs all structural checks on the decoded item set.
// Returns a combined error describing all problems found, or nil if valid.
func validateItems(items []ContentItem) error {
	var errs []string

	idSet := make(map[string]bool, len(items))
	for _, item := range items {
		if idSet[item.ID] {
			errs = append(errs, fmt.Sprintf("duplicate content ID: %q", item.ID))
		}
		idSet[item.ID] = true
	}

	for _, item := range items {
		if item.NextID != "" && !idSet[item.NextID] {
			errs = append(errs, fmt.Sprintf("content %q links to nonexistent item %q", item.ID, item.NextID))
		}
		if item.Type == TypeDiagnosticQuiz && item.Level != 0 {
			errs = append(errs, fmt.Sprintf("diagnostic item %q must be level 0, got %d", item.ID, item.Level))
		}
		if item.Type.IsActivity() && item.Level < 1 {
			errs = append(errs, fmt.Sprintf("content %q must have level >= 1, got %d", item.ID, item.Level))
		}
	}

	// Walk every chain to detect cycles. Chains are short, so a per-item
	// walk with a visited set is fine.
	byID := indexByID(items)
	for _, item := range items {
		seen := map[string]bool{item.ID: true}
		next := item.NextID
		for next != "" {
			if seen[next] {
				errs = append(errs, fmt.Sprintf("content chain starting at %q cycles through %q", item.ID, next))
				break
			}
			seen[next] = true
			cur, ok := byID[next]
			if !ok {
				break
			}
			next = cur.NextID
		}
	}

	// Quiz answers must be members of their option sets.
	for _, item := range items {
		for i, q := range item.Questions {
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("content %q question %d has no options", item.ID, i))
				continue
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.Answer {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, fmt.Sprintf("content %q question %d answer %q not among options", item.ID, i, q.Answer))
			}
		}
	}

	// Matching activities must pair every drag tile with a real drop tile.
	for _, item := range items {
		if item.DragDrop == nil {
			continue
		}
		tiles := make(map[string]string, len(item.DragDrop.Items))
		for _, t := range item.DragDrop.Items {
			tiles[t.ID] = t.Kind
		}
		for dragID, dropID := range item.DragDrop.Matches {
			if tiles[dragID] != "drag" {
				errs = append(errs, fmt.Sprintf("content %q match key %q is not a drag tile", item.ID, dragID))
			}
			if tiles[dropID] != "drop" {
				errs = append(errs, fmt.Sprintf("content %q match value %q is not a drop tile", item.ID, dropID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func indexByID(items []ContentItem) map[string]ContentItem {
	byID := make(map[string]ContentItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID
}
