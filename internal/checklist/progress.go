package checklist

import (
	"math"
	"strings"

	"flatfinder/internal/domain"
)

// ItemCompleted is the completion predicate for a single item. All progress
// and report call sites go through this function. Unknown item types never
// count as completed.
func ItemCompleted(item domain.ChecklistItem) bool {
	switch item.Type {
	case domain.ItemCheckbox:
		return item.Value.Bool != nil && *item.Value.Bool
	case domain.ItemText:
		return item.Value.Text != nil && strings.TrimSpace(*item.Value.Text) != ""
	case domain.ItemNumber:
		return item.Value.Number != nil
	case domain.ItemSelect:
		return item.Value.Text != nil
	case domain.ItemRating:
		return item.Value.Number != nil && *item.Value.Number != 0
	default:
		return false
	}
}

// CompletedCount returns how many items in the slice are completed.
func CompletedCount(items []domain.ChecklistItem) int {
	count := 0
	for _, item := range items {
		if ItemCompleted(item) {
			count++
		}
	}
	return count
}

// Progress totals completion across all categories. Percent is the rounded
// completed/total ratio and is 0 for an empty checklist.
func Progress(checklist []domain.ChecklistCategory) (completed, total, percent int) {
	for _, cat := range checklist {
		completed += CompletedCount(cat.Items)
		total += len(cat.Items)
	}
	if total == 0 {
		return 0, 0, 0
	}
	percent = int(math.Round(float64(completed) / float64(total) * 100))
	return completed, total, percent
}

// RedFlagRaised reports whether an item is a raised concern: marked as a red
// flag and checked true. Only checkbox items ever carry boolean values, so no
// other type can raise a flag.
func RedFlagRaised(item domain.ChecklistItem) bool {
	return item.RedFlag && item.Value.Bool != nil && *item.Value.Bool
}

// RedFlags returns every raised red flag across the checklist, in display order.
func RedFlags(checklist []domain.ChecklistCategory) []domain.ChecklistItem {
	var flags []domain.ChecklistItem
	for _, cat := range checklist {
		for _, item := range cat.Items {
			if RedFlagRaised(item) {
				flags = append(flags, item)
			}
		}
	}
	return flags
}
