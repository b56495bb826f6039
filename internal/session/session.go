// Package session holds the interactive search state: the current
// query, the full and filtered item lists, and the selection. The host
// UI drives it with a single stream of commands and renders from
// read-only snapshots.
package session

import (
	"log"
	"strings"
	"sync"

	"shuttle/internal/domain"
	"shuttle/internal/matcher"
)

// Session is the stateful search core. All methods are safe to call
// from the load goroutine and the UI goroutine; one mutex serializes
// every mutation so edits apply strictly in arrival order.
type Session struct {
	mu      sync.Mutex
	matcher matcher.Matcher

	query  string
	loaded bool
	all    []domain.Item

	// filtered is only meaningful while filteredValid. Invalid filtered
	// state means "recompute from all with the current query before the
	// next read"; it is flagged on load completion and after widening
	// edits.
	filtered      []domain.Item
	filteredValid bool
	selected      int
}

// Snapshot is the read-only view the host renders from.
type Snapshot struct {
	Loading  bool
	Query    string
	Filtered []domain.Item
	Selected int
}

// Outcome tells the host what a command produced. Zero value means
// "keep going".
type Outcome struct {
	// Activated is the value of the chosen item, set by Activate.
	Activated string

	// Quit is set when the session should end without activating.
	Quit bool
}

// New creates a session in the loading state. The matcher is fixed for
// the session's lifetime.
func New(m matcher.Matcher) *Session {
	return &Session{matcher: m}
}

// SetItems publishes the aggregated item list, moving the session from
// loading to loaded. It takes effect exactly once; later calls are
// ignored.
func (s *Session) SetItems(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		log.Printf("Session items already set, ignoring %d new items", len(items))
		return
	}

	s.all = items
	s.loaded = true
	s.filteredValid = false
	s.selected = 0
	s.ensureFiltered()
}

// Apply processes one command. Commands arriving while loading only
// touch the query; navigation and activation need items.
func (s *Session) Apply(cmd Command) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c := cmd.(type) {
	case AppendText:
		s.appendText(c.Text)
	case Backspace:
		s.backspace()
	case DeleteWord:
		s.deleteWord()
	case Clear:
		s.setQuery("")
	case MoveUp:
		s.move(-1)
	case MoveDown:
		s.move(1)
	case Activate:
		if value, ok := s.activate(); ok {
			return Outcome{Activated: value}
		}
	case Quit:
		return Outcome{Quit: true}
	}
	return Outcome{}
}

// Snapshot returns a consistent post-edit view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return Snapshot{Loading: true, Query: s.query}
	}

	s.ensureFiltered()
	filtered := make([]domain.Item, len(s.filtered))
	copy(filtered, s.filtered)

	return Snapshot{
		Query:    s.query,
		Filtered: filtered,
		Selected: s.selected,
	}
}

// appendText extends the query and narrows the current filtered list.
// Filtering over the previous result is only sound because an appended
// query can never widen the match set.
func (s *Session) appendText(text string) {
	if text == "" {
		return
	}
	s.query += text
	if !s.loaded {
		return
	}
	if !s.filteredValid {
		// No valid base to narrow; recompute from the full list.
		s.refilter(s.all)
		return
	}
	s.refilter(s.filtered)
}

// backspace removes the last codepoint and recomputes from the full
// list, since a shorter query can match more.
func (s *Session) backspace() {
	runes := []rune(s.query)
	if len(runes) == 0 {
		return
	}
	s.setQuery(string(runes[:len(runes)-1]))
}

// deleteWord truncates the query to just after the last space of its
// trimmed form, or to empty when there is none.
func (s *Session) deleteWord() {
	trimmed := strings.TrimRight(s.query, " ")
	if idx := strings.LastIndex(trimmed, " "); idx >= 0 {
		s.setQuery(trimmed[:idx+1])
	} else {
		s.setQuery("")
	}
}

// setQuery replaces the query after a widening edit and resets the
// filtered list from the full set.
func (s *Session) setQuery(query string) {
	s.query = query
	if !s.loaded {
		return
	}
	s.filteredValid = false
	s.ensureFiltered()
}

// ensureFiltered recomputes the filtered list from the full set when it
// has been flagged stale. An empty query keeps the full list as-is.
func (s *Session) ensureFiltered() {
	if s.filteredValid {
		return
	}
	if s.query == "" {
		s.restoreSelection(s.all)
		s.filtered = s.all
		s.filteredValid = true
		return
	}
	s.refilter(s.all)
}

// refilter runs the matcher over base and installs the result,
// carrying the selection over by item identity.
func (s *Session) refilter(base []domain.Item) {
	indices := s.matcher.Match(s.query, base)
	next := matcher.Select(base, indices)
	s.restoreSelection(next)
	s.filtered = next
	s.filteredValid = true
}

// restoreSelection points selected at the same item it was on before
// the list changed, falling back to the top when that item no longer
// matches.
func (s *Session) restoreSelection(next []domain.Item) {
	if s.selected >= len(s.filtered) {
		s.selected = 0
		return
	}
	previous := s.filtered[s.selected]
	for i, item := range next {
		if item.Same(previous) {
			s.selected = i
			return
		}
	}
	s.selected = 0
}

// move shifts the selection with wraparound. No-op while loading or on
// an empty list.
func (s *Session) move(delta int) {
	if !s.loaded {
		return
	}
	s.ensureFiltered()
	n := len(s.filtered)
	if n == 0 {
		return
	}
	s.selected = ((s.selected+delta)%n + n) % n
}

// activate returns the selected item's value, if there is one.
func (s *Session) activate() (string, bool) {
	if !s.loaded {
		return "", false
	}
	s.ensureFiltered()
	if len(s.filtered) == 0 {
		return "", false
	}
	return s.filtered[s.selected].Value, true
}
