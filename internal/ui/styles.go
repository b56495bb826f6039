package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the launcher surface
type Styles struct {
	Query    lipgloss.Style
	Cursor   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Counter  lipgloss.Style
	Loading  lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Query: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")), // gold, like the query prompt deserves
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Blink(true),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		Counter:  lipgloss.NewStyle().Faint(true),
		Loading:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}
