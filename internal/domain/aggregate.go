package domain

import "slices"

// CategoryGroups holds the top-level entries of each category in
// encounter order.
type CategoryGroups map[Category][]*ReleaseEntry

// Len returns the number of entries across all categories.
func (g CategoryGroups) Len() int {
	n := 0
	for _, entries := range g {
		n += len(entries)
	}
	return n
}

// UnresolvedReference records same-as entries whose referenced pull
// request never produced a top-level entry.
type UnresolvedReference struct {
	ReferencedPR string
	Entries      []*ReleaseEntry
}

// Aggregator accumulates extracted entries and same-as relations over one
// scan of a project board.
//
// An entry is either listed in a category group or recorded as a
// same-as reference, never both.
type Aggregator struct {
	groups CategoryGroups
	sameAs map[string][]*ReleaseEntry
	keys   []string // sameAs keys in insertion order
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		groups: make(CategoryGroups),
		sameAs: make(map[string][]*ReleaseEntry),
	}
}

// AddReference records that entry duplicates the entry of referencedPR.
func (a *Aggregator) AddReference(entry *ReleaseEntry, referencedPR string) {
	if _, ok := a.sameAs[referencedPR]; !ok {
		a.keys = append(a.keys, referencedPR)
	}
	a.sameAs[referencedPR] = append(a.sameAs[referencedPR], entry)
}

// Add normalizes entry and lists it under its category unless it is
// already recorded as a same-as reference.
func (a *Aggregator) Add(entry *ReleaseEntry) {
	entry.Normalize()
	if a.isReference(entry) {
		return
	}
	a.groups[entry.Category] = append(a.groups[entry.Category], entry)
}

func (a *Aggregator) isReference(entry *ReleaseEntry) bool {
	for _, entries := range a.sameAs {
		if slices.Contains(entries, entry) {
			return true
		}
	}
	return false
}

// References returns the entries recorded as referencing referencedPR.
func (a *Aggregator) References(referencedPR string) []*ReleaseEntry {
	return a.sameAs[referencedPR]
}

// Resolve merges every same-as reference into the top-level entries owned
// by the referenced pull request. References whose target has no
// top-level entry are dropped from the output and returned.
func (a *Aggregator) Resolve() []UnresolvedReference {
	var unresolved []UnresolvedReference
	for _, referencedPR := range a.keys {
		refs := a.sameAs[referencedPR]
		targets := a.owners(referencedPR)
		if len(targets) == 0 {
			unresolved = append(unresolved, UnresolvedReference{
				ReferencedPR: referencedPR,
				Entries:      refs,
			})
			continue
		}
		for _, target := range targets {
			for _, from := range refs {
				target.Absorb(from)
			}
		}
	}
	return unresolved
}

func (a *Aggregator) owners(prNumber string) []*ReleaseEntry {
	var owners []*ReleaseEntry
	for _, c := range AllCategories() {
		for _, entry := range a.groups[c] {
			if entry.Owner() == prNumber {
				owners = append(owners, entry)
			}
		}
	}
	return owners
}

// Groups returns the top-level entries by category.
func (a *Aggregator) Groups() CategoryGroups {
	return a.groups
}
