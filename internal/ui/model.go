package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"shuttle/internal/eventbus"
	"shuttle/internal/session"
)

const defaultListHeight = 20

// Model is the Bubble Tea model for the launcher. It owns no search
// state itself: every keystroke becomes a session command and every
// frame renders from a fresh session snapshot.
type Model struct {
	session *session.Session
	styles  *Styles
	spinner spinner.Model

	width  int
	height int

	// activated holds the value chosen by the user; main launches it
	// after the program exits.
	activated string
	loadErr   error
}

// NewModel creates a new UI model driving the given session
func NewModel(s *session.Session) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		session: s,
		styles:  NewStyles(),
		spinner: sp,
		height:  defaultListHeight,
	}
}

// Activated returns the value of the item the user chose, or "" when
// the session ended without an activation.
func (m *Model) Activated() string {
	return m.activated
}

// LoadErr returns the load-phase error that ended the session, if any.
func (m *Model) LoadErr() error {
	return m.loadErr
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := commandForKey(msg)
	if !ok {
		return m, nil
	}

	outcome := m.session.Apply(cmd)
	if outcome.Activated != "" {
		m.activated = outcome.Activated
		return m, tea.Quit
	}
	if outcome.Quit {
		return m, tea.Quit
	}
	return m, nil
}

// commandForKey translates a key press into the session command
// vocabulary. Keys outside the vocabulary are ignored.
func commandForKey(msg tea.KeyMsg) (session.Command, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return session.AppendText{Text: string(msg.Runes)}, true
	case tea.KeySpace:
		return session.AppendText{Text: " "}, true
	case tea.KeyBackspace:
		return session.Backspace{}, true
	case tea.KeyCtrlW:
		return session.DeleteWord{}, true
	case tea.KeyCtrlU:
		return session.Clear{}, true
	case tea.KeyUp:
		return session.MoveUp{}, true
	case tea.KeyDown:
		return session.MoveDown{}, true
	case tea.KeyEnter:
		return session.Activate{}, true
	case tea.KeyEsc, tea.KeyCtrlC:
		return session.Quit{}, true
	}
	return nil, false
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.LoadCompletedEvent:
		m.session.SetItems(e.Items)
		return m, nil

	case eventbus.LoadFailedEvent:
		m.loadErr = e.Err
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Query.Render("> " + snap.Query))
	b.WriteString(m.styles.Cursor.Render("▌"))
	b.WriteString("\n\n")

	if snap.Loading {
		b.WriteString(m.styles.Loading.Render(m.spinner.View() + " loading sources…"))
		b.WriteString("\n")
		return b.String()
	}

	listHeight := m.height - 4
	if listHeight < 1 {
		listHeight = defaultListHeight
	}

	start, end := window(len(snap.Filtered), snap.Selected, listHeight)
	for i := start; i < end; i++ {
		item := snap.Filtered[i]
		if i == snap.Selected {
			b.WriteString(m.styles.Selected.Render("▶ " + item.Label))
		} else {
			b.WriteString(m.styles.Item.Render("  " + item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Counter.Render(fmt.Sprintf("%d items", len(snap.Filtered))))
	return b.String()
}

// window picks the slice of the list to draw so the selected row stays
// visible within height rows.
func window(total, selected, height int) (start, end int) {
	if total <= height {
		return 0, total
	}
	start = selected - height/2
	if start < 0 {
		start = 0
	}
	end = start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}
