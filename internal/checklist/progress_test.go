package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatfinder/internal/domain"
)

func TestItemCompleted(t *testing.T) {
	cases := []struct {
		name string
		item domain.ChecklistItem
		want bool
	}{
		{"checkbox checked", domain.ChecklistItem{Type: domain.ItemCheckbox, Value: domain.BoolValue(true)}, true},
		{"checkbox unchecked", domain.ChecklistItem{Type: domain.ItemCheckbox, Value: domain.BoolValue(false)}, false},
		{"checkbox unanswered", domain.ChecklistItem{Type: domain.ItemCheckbox}, false},
		{"text filled", domain.ChecklistItem{Type: domain.ItemText, Value: domain.TextValue("marble")}, true},
		{"text empty", domain.ChecklistItem{Type: domain.ItemText, Value: domain.TextValue("")}, false},
		{"text whitespace", domain.ChecklistItem{Type: domain.ItemText, Value: domain.TextValue("   ")}, false},
		{"text unanswered", domain.ChecklistItem{Type: domain.ItemText}, false},
		{"number set", domain.ChecklistItem{Type: domain.ItemNumber, Value: domain.NumberValue(0)}, true},
		{"number unanswered", domain.ChecklistItem{Type: domain.ItemNumber}, false},
		{"select chosen", domain.ChecklistItem{Type: domain.ItemSelect, Value: domain.TextValue("Good")}, true},
		{"select unanswered", domain.ChecklistItem{Type: domain.ItemSelect}, false},
		{"rating set", domain.ChecklistItem{Type: domain.ItemRating, Value: domain.NumberValue(3)}, true},
		{"rating zero", domain.ChecklistItem{Type: domain.ItemRating, Value: domain.NumberValue(0)}, false},
		{"rating unanswered", domain.ChecklistItem{Type: domain.ItemRating}, false},
		{"unknown type", domain.ChecklistItem{Type: domain.ItemType("slider"), Value: domain.NumberValue(3)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ItemCompleted(tc.item))
		})
	}
}

func TestCompletedCountAndRedFlags(t *testing.T) {
	category := domain.ChecklistCategory{
		ID: "structural",
		Items: []domain.ChecklistItem{
			{ID: "wall-cracks", Type: domain.ItemCheckbox, Value: domain.BoolValue(true), RedFlag: true},
			{ID: "flooring", Type: domain.ItemText, Value: domain.TextValue("")},
		},
	}

	assert.Equal(t, 1, CompletedCount(category.Items))

	flags := RedFlags([]domain.ChecklistCategory{category})
	require.Len(t, flags, 1)
	assert.Equal(t, "wall-cracks", flags[0].ID)
}

func TestRedFlagRequiresTrueValue(t *testing.T) {
	unchecked := domain.ChecklistItem{Type: domain.ItemCheckbox, Value: domain.BoolValue(false), RedFlag: true}
	unanswered := domain.ChecklistItem{Type: domain.ItemCheckbox, RedFlag: true}
	notFlagged := domain.ChecklistItem{Type: domain.ItemCheckbox, Value: domain.BoolValue(true)}

	assert.False(t, RedFlagRaised(unchecked))
	assert.False(t, RedFlagRaised(unanswered))
	assert.False(t, RedFlagRaised(notFlagged))
}

func TestProgressEmptyChecklist(t *testing.T) {
	completed, total, percent := Progress(nil)
	assert.Zero(t, completed)
	assert.Zero(t, total)
	assert.Zero(t, percent)

	completed, total, percent = Progress([]domain.ChecklistCategory{{ID: "empty"}})
	assert.Zero(t, completed)
	assert.Zero(t, total)
	assert.Zero(t, percent)
}

func TestProgressRounding(t *testing.T) {
	checklist := []domain.ChecklistCategory{
		{Items: []domain.ChecklistItem{
			{Type: domain.ItemCheckbox, Value: domain.BoolValue(true)},
			{Type: domain.ItemCheckbox},
			{Type: domain.ItemCheckbox},
		}},
	}
	completed, total, percent := Progress(checklist)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 3, total)
	assert.Equal(t, 33, percent)
}

func TestProgressNeverDecreasesOnCompletion(t *testing.T) {
	checklist := DefaultTemplate()
	_, _, before := Progress(checklist)

	checklist[0].Items[0].Value = domain.NumberValue(5)
	_, _, after := Progress(checklist)

	assert.GreaterOrEqual(t, after, before)
	assert.Greater(t, after, 0)
}
