// Package report renders a property record as a plain-text evaluation report.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"flatfinder/internal/checklist"
	"flatfinder/internal/domain"
)

const (
	heavyRule = "════════════════════════════════════════════════════════════════════"
	lightRule = "────────────────────────────────────────────────────────────────────"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename returns the download filename for a property's report: the name
// with every non-alphanumeric character replaced by an underscore, plus a
// fixed suffix.
func Filename(name string) string {
	return nonAlphanumeric.ReplaceAllString(name, "_") + "_Report.txt"
}

// Generate produces the full report text for a property. It is a pure
// function of the record and the generation time.
func Generate(p *domain.Property, now time.Time) string {
	completed, total, percent := checklist.Progress(p.Checklist)

	var labels []string
	for _, tagID := range p.Tags {
		if label, ok := domain.TagLabel(tagID); ok {
			labels = append(labels, label)
		}
	}

	var b strings.Builder
	b.WriteString("\n╔══════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║              PROPERTY EVALUATION REPORT                          ║\n")
	b.WriteString("╚══════════════════════════════════════════════════════════════════╝\n\n")

	b.WriteString(lightRule + "\n")
	b.WriteString("                       PROPERTY DETAILS\n")
	b.WriteString(lightRule + "\n\n")
	fmt.Fprintf(&b, "Property Name:    %s\n", p.Name)
	fmt.Fprintf(&b, "Address:          %s\n", orDefault(p.Address, "Not specified"))
	fmt.Fprintf(&b, "Builder:          %s\n", orDefault(p.BuilderName, "Not specified"))
	fmt.Fprintf(&b, "Visit Date:       %s\n", p.VisitDate)
	fmt.Fprintf(&b, "Overall Rating:   %s (%d/5)\n", stars(p.Rating), p.Rating)
	fmt.Fprintf(&b, "Tags:             %s\n", orDefault(strings.Join(labels, ", "), "None"))
	fmt.Fprintf(&b, "Progress:         %d%% (%d/%d items completed)\n\n", percent, completed, total)

	b.WriteString(lightRule + "\n")
	b.WriteString("                        CUSTOM NOTES\n")
	b.WriteString(lightRule + "\n\n")
	b.WriteString(orDefault(p.Notes, "No notes added.") + "\n")

	for _, cat := range p.Checklist {
		fmt.Fprintf(&b, "\n%s\n%s %s (%d/%d)\n%s\n\n",
			heavyRule, cat.Icon, strings.ToUpper(cat.Name),
			checklist.CompletedCount(cat.Items), len(cat.Items), heavyRule)

		for _, item := range cat.Items {
			marker := ""
			if checklist.RedFlagRaised(item) {
				marker = " ⚠️ RED FLAG"
			}
			fmt.Fprintf(&b, "• %s: %s%s\n", item.Label, renderValue(item), marker)
			if item.Note != "" {
				fmt.Fprintf(&b, "  └─ Note: %s\n", item.Note)
			}
		}
	}

	if flags := checklist.RedFlags(p.Checklist); len(flags) > 0 {
		fmt.Fprintf(&b, "\n%s\n⚠️  RED FLAGS SUMMARY\n%s\n\n", heavyRule, heavyRule)
		for _, flag := range flags {
			fmt.Fprintf(&b, "• %s\n", flag.Label)
		}
	}

	fmt.Fprintf(&b, "\n%s\nGenerated on: %s\n%s\n", lightRule, now.Format("02 Jan 2006 15:04:05"), lightRule)
	return b.String()
}

func renderValue(item domain.ChecklistItem) string {
	switch item.Type {
	case domain.ItemCheckbox:
		if item.Value.Bool != nil && *item.Value.Bool {
			return "✓ Yes"
		}
		return "✗ No"
	case domain.ItemRating:
		rating := 0
		if item.Value.Number != nil {
			rating = int(*item.Value.Number)
		}
		return stars(rating)
	default:
		switch {
		case item.Value.Text != nil && *item.Value.Text != "":
			return *item.Value.Text
		case item.Value.Number != nil:
			return trimFloat(*item.Value.Number)
		default:
			return "—"
		}
	}
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func trimFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
