package matcher

import (
	"strings"

	"shuttle/internal/domain"
)

// Simple is the substring-AND strategy: the query is split on
// whitespace and an item matches iff every token is a contiguous
// substring of its haystack. Matches keep their original relative
// order; nothing is re-ranked.
type Simple struct{}

// NewSimple creates a substring-AND matcher.
func NewSimple() *Simple {
	return &Simple{}
}

// Match implements Matcher. An empty query matches every item.
func (s *Simple) Match(query string, items []domain.Item) []int {
	tokens := strings.Fields(strings.ToLower(query))

	indices := make([]int, 0, len(items))
	for i, item := range items {
		if containsAll(item.Haystack, tokens) {
			indices = append(indices, i)
		}
	}
	return indices
}

func containsAll(haystack string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}
