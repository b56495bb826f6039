package matcher

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"shuttle/internal/domain"
)

// Fuzzy scores the query as a subsequence of each haystack and returns
// matching items ordered by descending score. Ties keep their original
// relative order so results are reproducible across calls.
//
// An empty query matches every item in original order. Neither
// behavior of the two plausible choices (all vs. none) is forced by
// the matcher contract; returning everything keeps "clear the query"
// equivalent between strategies.
type Fuzzy struct{}

// NewFuzzy creates a fuzzy-scored matcher.
func NewFuzzy() *Fuzzy {
	return &Fuzzy{}
}

type haystackSource []domain.Item

func (h haystackSource) String(i int) string { return h[i].Haystack }
func (h haystackSource) Len() int            { return len(h) }

// Match implements Matcher.
func (f *Fuzzy) Match(query string, items []domain.Item) []int {
	query = strings.ToLower(query)
	if query == "" {
		indices := make([]int, len(items))
		for i := range items {
			indices[i] = i
		}
		return indices
	}

	matches := fuzzy.FindFromNoSort(query, haystackSource(items))

	// FindFromNoSort keeps input order, so a stable sort on score alone
	// preserves original relative order among equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	indices := make([]int, 0, len(matches))
	for _, m := range matches {
		indices = append(indices, m.Index)
	}
	return indices
}
