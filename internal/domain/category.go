package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Category classifies a release-note entry. The zero value means the
// category has not been assigned yet.
type Category string

const (
	CategoryEnhancement   Category = "enhancement"
	CategoryImprovement   Category = "improvement"
	CategoryBugfix        Category = "bugfix"
	CategoryDocumentation Category = "documentation"
	CategoryMiscellaneous Category = "miscellaneous"

	categoryUnset Category = ""
)

// AllCategories returns every category in rendering order.
func AllCategories() []Category {
	return []Category{
		CategoryEnhancement,
		CategoryImprovement,
		CategoryBugfix,
		CategoryDocumentation,
		CategoryMiscellaneous,
	}
}

// categoryIndex maps a case-folded machine name to its category.
var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]Category {
	index := make(map[string]Category, len(AllCategories()))
	for _, c := range AllCategories() {
		index[foldName(string(c))] = c
	}
	return index
}

func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// LookupCategory returns the category whose machine name matches name,
// ignoring case.
func LookupCategory(name string) (Category, bool) {
	c, ok := categoryIndex[foldName(name)]
	return c, ok
}

// CategoryFromLabels picks the first label naming a known category.
// Pull requests without such a label are Miscellaneous.
func CategoryFromLabels(labels []string) Category {
	for _, label := range labels {
		if c, ok := LookupCategory(label); ok {
			return c
		}
	}
	return CategoryMiscellaneous
}

// IsSet reports whether the category has been assigned.
func (c Category) IsSet() bool {
	return c != categoryUnset
}

// IsValid returns true if the category is a known value.
func (c Category) IsValid() bool {
	_, ok := categoryIndex[string(c)]
	return ok
}

// DisplayName returns the section header used in the rendered document.
func (c Category) DisplayName() string {
	switch c {
	case CategoryEnhancement:
		return "Enhancements"
	case CategoryImprovement:
		return "Improvements"
	case CategoryBugfix:
		return "Bug fixes"
	case CategoryDocumentation:
		return "Documentation"
	case CategoryMiscellaneous:
		return "Miscellaneous"
	default:
		return string(c)
	}
}
