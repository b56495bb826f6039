// Package matcher provides the query matching strategies used by the
// search session. A matcher maps a query and an item list to an ordered
// list of indices into that list, best match first. Matchers never
// fail: a query that matches nothing yields an empty result.
package matcher

import "shuttle/internal/domain"

// Matcher is a strategy turning (query, items) into a ranked subsequence.
type Matcher interface {
	// Match returns indices into items, ordered by relevance, with no
	// index duplicated. The result is deterministic for identical input.
	Match(query string, items []domain.Item) []int
}

// New returns the matcher registered under name, defaulting to the
// substring matcher for unknown names.
func New(name string) Matcher {
	switch name {
	case "fuzzy":
		return NewFuzzy()
	default:
		return NewSimple()
	}
}

// Select resolves indices to the items they refer to.
func Select(items []domain.Item, indices []int) []domain.Item {
	selected := make([]domain.Item, 0, len(indices))
	for _, idx := range indices {
		selected = append(selected, items[idx])
	}
	return selected
}
