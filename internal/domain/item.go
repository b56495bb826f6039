package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyValue is returned when an item is constructed from a blank string.
var ErrEmptyValue = errors.New("empty item value")

// Item represents one launchable entry.
type Item struct {
	// Label is shown in the UI list.
	Label string `json:"label"`

	// Value is the target that gets opened on activation, e.g. a URL.
	// Two items are the same item iff their values are equal.
	Value string `json:"value"`

	// Haystack is the normalized string queries are matched against.
	// It is computed once at construction, never per keystroke.
	Haystack string `json:"haystack"`
}

// Same reports whether two items are the same launchable target.
// Label and Haystack are derived fields and do not identify an item.
func (i Item) Same(other Item) bool {
	return i.Value == other.Value
}

// NewItem builds an item from provider-native fields. The searchable
// string is normalized into the haystack; the label is kept verbatim.
func NewItem(label, value, searchable string) (Item, error) {
	if strings.TrimSpace(value) == "" {
		return Item{}, fmt.Errorf("item %q: %w", label, ErrEmptyValue)
	}
	return Item{
		Label:    label,
		Value:    value,
		Haystack: Normalize(searchable),
	}, nil
}

// ParseItem builds an item from a raw freeform value such as a URL line.
// The label is the last non-empty path segment, or the value itself when
// it contains no separator.
func ParseItem(raw string) (Item, error) {
	if strings.TrimSpace(raw) == "" {
		return Item{}, fmt.Errorf("parse item: %w", ErrEmptyValue)
	}

	label := raw
	trimmed := strings.TrimRight(raw, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		label = trimmed[idx+1:]
	}

	return Item{
		Label:    label,
		Value:    raw,
		Haystack: Normalize(raw),
	}, nil
}

// Normalize lower-cases s and replaces underscores and path separators
// with single spaces. No other rewriting happens here; matcher scores
// depend on this exact form.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "/", " ")
	return strings.ToLower(s)
}
