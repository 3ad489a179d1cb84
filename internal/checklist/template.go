// Package checklist defines the canonical evaluation template assigned to
// every new property and the single completion predicate shared by progress
// bars, summaries and report generation.
package checklist

import "flatfinder/internal/domain"

// DefaultTemplate returns a fresh copy of the default checklist. Every call
// builds new categories and items, so callers can mutate the result without
// aliasing the template or any other property's checklist.
func DefaultTemplate() []domain.ChecklistCategory {
	return []domain.ChecklistCategory{
		{
			ID:   "first-impressions",
			Name: "First Impressions",
			Icon: "🏠",
			Items: []domain.ChecklistItem{
				{ID: "overall-impression", Label: "Overall first impression", Type: domain.ItemRating},
				{ID: "liked-property", Label: "Liked the property", Type: domain.ItemCheckbox},
				{ID: "stood-out", Label: "What stood out", Type: domain.ItemText},
			},
		},
		{
			ID:   "location",
			Name: "Location",
			Icon: "📍",
			Items: []domain.ChecklistItem{
				{ID: "connectivity", Label: "Connectivity to main roads", Type: domain.ItemSelect,
					Options: []string{"Excellent", "Good", "Average", "Poor"}},
				{ID: "commute-distance", Label: "Distance to workplace (km)", Type: domain.ItemNumber},
				{ID: "schools-hospitals", Label: "Schools and hospitals nearby", Type: domain.ItemCheckbox},
				{ID: "noise-levels", Label: "High noise levels", Type: domain.ItemCheckbox, RedFlag: true},
				{ID: "neighbourhood", Label: "Neighbourhood quality", Type: domain.ItemRating},
			},
		},
		{
			ID:   "structural",
			Name: "Structural",
			Icon: "🏗️",
			Items: []domain.ChecklistItem{
				{ID: "wall-cracks", Label: "Visible cracks in walls", Type: domain.ItemCheckbox, RedFlag: true},
				{ID: "seepage", Label: "Water seepage or damp patches", Type: domain.ItemCheckbox, RedFlag: true},
				{ID: "construction-quality", Label: "Construction quality", Type: domain.ItemSelect,
					Options: []string{"Excellent", "Good", "Average", "Poor"}},
				{ID: "building-age", Label: "Age of building (years)", Type: domain.ItemNumber},
				{ID: "flooring", Label: "Flooring type and condition", Type: domain.ItemText},
			},
		},
		{
			ID:   "interiors",
			Name: "Interiors",
			Icon: "🛋️",
			Items: []domain.ChecklistItem{
				{ID: "carpet-area", Label: "Carpet area (sq ft)", Type: domain.ItemNumber},
				{ID: "natural-light", Label: "Natural light", Type: domain.ItemSelect,
					Options: []string{"Abundant", "Adequate", "Poor"}},
				{ID: "ventilation", Label: "Adequate ventilation", Type: domain.ItemCheckbox},
				{ID: "layout", Label: "Layout and space utilisation", Type: domain.ItemRating},
				{ID: "kitchen-condition", Label: "Kitchen condition", Type: domain.ItemText},
			},
		},
		{
			ID:   "amenities",
			Name: "Amenities",
			Icon: "🏊",
			Items: []domain.ChecklistItem{
				{ID: "lift", Label: "Lift available", Type: domain.ItemCheckbox},
				{ID: "parking", Label: "Dedicated parking", Type: domain.ItemCheckbox},
				{ID: "power-backup", Label: "Power backup", Type: domain.ItemCheckbox},
				{ID: "water-supply", Label: "Water supply", Type: domain.ItemSelect,
					Options: []string{"24x7", "Scheduled", "Erratic"}},
				{ID: "common-areas", Label: "Common areas and maintenance", Type: domain.ItemRating},
			},
		},
		{
			ID:   "legal",
			Name: "Legal & Documentation",
			Icon: "📜",
			Items: []domain.ChecklistItem{
				{ID: "title-deed", Label: "Title deed verified", Type: domain.ItemCheckbox},
				{ID: "occupancy-certificate", Label: "Occupancy certificate available", Type: domain.ItemCheckbox},
				{ID: "litigation", Label: "Pending litigation on property", Type: domain.ItemCheckbox, RedFlag: true},
				{ID: "rera", Label: "RERA registration", Type: domain.ItemSelect,
					Options: []string{"Registered", "Not registered", "Not applicable"}},
				{ID: "bank-approvals", Label: "Banks that approved the project", Type: domain.ItemText},
			},
		},
		{
			ID:   "financials",
			Name: "Financials",
			Icon: "💰",
			Items: []domain.ChecklistItem{
				{ID: "asking-price", Label: "Asking price (lakhs)", Type: domain.ItemNumber},
				{ID: "maintenance-cost", Label: "Monthly maintenance", Type: domain.ItemNumber},
				{ID: "negotiable", Label: "Price negotiable", Type: domain.ItemSelect,
					Options: []string{"Yes", "Somewhat", "No"}},
				{ID: "hidden-charges", Label: "Undisclosed extra charges", Type: domain.ItemCheckbox, RedFlag: true},
				{ID: "value-for-money", Label: "Value for money", Type: domain.ItemRating},
			},
		},
	}
}
