package domain

import (
	"strings"
)

// SummaryHeader opens every rendered release note.
const SummaryHeader = "## Summary"

// Render formats grouped entries as a markdown release note. Categories
// are emitted in AllCategories order and empty ones are skipped.
func Render(groups CategoryGroups) string {
	var b strings.Builder
	b.WriteString(SummaryHeader)
	b.WriteString("\n")

	for _, c := range AllCategories() {
		entries := groups[c]
		if len(entries) == 0 {
			continue
		}
		b.WriteString("\n## ")
		b.WriteString(c.DisplayName())
		b.WriteString("\n")
		for _, entry := range entries {
			b.WriteString(FormatBullet(entry))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatBullet formats one entry as "- <text> (#<pr1> #<pr2> ...)".
func FormatBullet(entry *ReleaseEntry) string {
	refs := make([]string, len(entry.PullRequests))
	for i, pr := range entry.PullRequests {
		refs[i] = "#" + pr
	}

	var b strings.Builder
	b.WriteString("- ")
	if entry.HasText() {
		b.WriteString(entry.Text)
		b.WriteString(" ")
	}
	b.WriteString("(")
	b.WriteString(strings.Join(refs, " "))
	b.WriteString(")")
	return b.String()
}
