package domain

import "strings"

// nullCategoryMarker is prepended to the text of entries that reached
// aggregation without a category.
const nullCategoryMarker = "[Category is null]"

// ReleaseEntry is one line of the rendered release note.
// PullRequests[0] is the pull request the entry was extracted from;
// later elements were merged in from same-as references.
type ReleaseEntry struct {
	Category     Category
	Text         string // Empty means no note text was found
	PullRequests []string
}

// NewReleaseEntry creates an entry owned by the given pull request.
func NewReleaseEntry(category Category, text, prNumber string) *ReleaseEntry {
	return &ReleaseEntry{
		Category:     category,
		Text:         text,
		PullRequests: []string{prNumber},
	}
}

// Owner returns the pull request the entry was extracted from.
func (e *ReleaseEntry) Owner() string {
	if len(e.PullRequests) == 0 {
		return ""
	}
	return e.PullRequests[0]
}

// HasText reports whether the entry carries note text.
func (e *ReleaseEntry) HasText() bool {
	return e.Text != ""
}

// Normalize repairs an entry without a category: it becomes Miscellaneous
// and its text is prefixed with a visible marker.
func (e *ReleaseEntry) Normalize() {
	if e.Category.IsSet() {
		return
	}
	e.Category = CategoryMiscellaneous
	e.Text = joinText(nullCategoryMarker, e.Text)
}

// Absorb appends another entry's text and pull requests to this one.
func (e *ReleaseEntry) Absorb(from *ReleaseEntry) {
	e.Text = joinText(e.Text, from.Text)
	e.PullRequests = append(e.PullRequests, from.PullRequests...)
}

func joinText(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
