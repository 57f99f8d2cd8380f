package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllCategories_Order(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryEnhancement,
		CategoryImprovement,
		CategoryBugfix,
		CategoryDocumentation,
		CategoryMiscellaneous,
	}, AllCategories())
}

func TestLookupCategory(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Category
		wantOK bool
	}{
		{"exact", "bugfix", CategoryBugfix, true},
		{"upper case", "ENHANCEMENT", CategoryEnhancement, true},
		{"mixed case", "Documentation", CategoryDocumentation, true},
		{"surrounding spaces", "  improvement ", CategoryImprovement, true},
		{"unknown", "feature", "", false},
		{"display name is not a machine name", "Bug fixes", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupCategory(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryFromLabels(t *testing.T) {
	t.Run("first known label wins", func(t *testing.T) {
		got := CategoryFromLabels([]string{"dependencies", "Bugfix", "enhancement"})
		assert.Equal(t, CategoryBugfix, got)
	})

	t.Run("no known label defaults to miscellaneous", func(t *testing.T) {
		got := CategoryFromLabels([]string{"dependencies", "backport"})
		assert.Equal(t, CategoryMiscellaneous, got)
	})

	t.Run("no labels defaults to miscellaneous", func(t *testing.T) {
		assert.Equal(t, CategoryMiscellaneous, CategoryFromLabels(nil))
	})
}

func TestCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "Enhancements", CategoryEnhancement.DisplayName())
	assert.Equal(t, "Improvements", CategoryImprovement.DisplayName())
	assert.Equal(t, "Bug fixes", CategoryBugfix.DisplayName())
	assert.Equal(t, "Documentation", CategoryDocumentation.DisplayName())
	assert.Equal(t, "Miscellaneous", CategoryMiscellaneous.DisplayName())
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.IsValid(), c)
		assert.True(t, c.IsSet(), c)
	}
	assert.False(t, Category("").IsValid())
	assert.False(t, Category("").IsSet())
	assert.False(t, Category("feature").IsValid())
}
