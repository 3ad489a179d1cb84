package domain

import "time"

// ItemType identifies how a checklist item is answered. It is fixed when the
// template is defined and never changes for an existing item.
type ItemType string

const (
	ItemCheckbox ItemType = "checkbox"
	ItemText     ItemType = "text"
	ItemNumber   ItemType = "number"
	ItemSelect   ItemType = "select"
	ItemRating   ItemType = "rating"
)

// ChecklistItem is a single evaluable question on a property visit.
type ChecklistItem struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Type    ItemType `json:"type"`
	Value   Value    `json:"value"`
	Options []string `json:"options,omitempty"`
	Note    string   `json:"note,omitempty"`
	RedFlag bool     `json:"redFlag,omitempty"`
}

// ChecklistCategory groups related items. Item order is display-significant.
type ChecklistCategory struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Items []ChecklistItem `json:"items"`
}

// Property is the root aggregate: one visited property with its checklist
// state, tags, notes and overall rating.
type Property struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	BuilderName string              `json:"builderName"`
	VisitDate   string              `json:"visitDate"`
	Tags        []string            `json:"tags"`
	Notes       string              `json:"notes"`
	Rating      int                 `json:"rating"`
	Checklist   []ChecklistCategory `json:"checklist"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// VisitDateFormat is the calendar-date layout used for Property.VisitDate.
const VisitDateFormat = "2006-01-02"

// Tag is an entry in the fixed tag vocabulary.
type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultTags is the closed vocabulary of property tags. Tag membership on a
// property is by ID; labels are for display and reports.
var DefaultTags = []Tag{
	{ID: "favorite", Label: "Favorite"},
	{ID: "shortlisted", Label: "Shortlisted"},
	{ID: "rejected", Label: "Rejected"},
	{ID: "under-review", Label: "Under Review"},
	{ID: "negotiating", Label: "Negotiating"},
	{ID: "visited", Label: "Visited"},
	{ID: "needs-second-visit", Label: "Needs Second Visit"},
}

// TagLabel returns the display label for a tag ID.
func TagLabel(id string) (string, bool) {
	for _, t := range DefaultTags {
		if t.ID == id {
			return t.Label, true
		}
	}
	return "", false
}

// ValidTag reports whether id belongs to the tag vocabulary.
func ValidTag(id string) bool {
	_, ok := TagLabel(id)
	return ok
}
