// Package columnpicker implements the column visibility selector for
// the list view.
package columnpicker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadline/internal/ui/leadtable"
	"leadline/internal/ui/overlay"
	"leadline/internal/ui/styles"
)

// ChangedMsg reports the new visible column set.
type ChangedMsg struct {
	Columns map[string]bool
}

// CloseMsg asks the owner to close the picker.
type CloseMsg struct{}

// Model holds the picker state.
type Model struct {
	visible map[string]bool
	cursor  int

	width  int
	height int
}

// New opens the picker seeded with the currently visible columns.
func New(visible map[string]bool) Model {
	set := make(map[string]bool, len(visible))
	for key, on := range visible {
		if on {
			set[key] = true
		}
	}
	return Model{visible: set}
}

// SetSize sets the viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(leadtable.Columns)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.toggle()
	case "r":
		m.visible = leadtable.DefaultVisible()
		return m, m.emit()
	}
	return m, nil
}

func (m Model) toggle() (Model, tea.Cmd) {
	key := leadtable.Columns[m.cursor].Key
	if m.visible[key] {
		// At least one column stays visible.
		if len(m.visible) == 1 {
			return m, nil
		}
		delete(m.visible, key)
	} else {
		m.visible[key] = true
	}
	return m, m.emit()
}

func (m Model) emit() tea.Cmd {
	columns := make(map[string]bool, len(m.visible))
	for key := range m.visible {
		columns[key] = true
	}
	return func() tea.Msg { return ChangedMsg{Columns: columns} }
}

// View renders the picker box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)

	var rows []string
	for i, col := range leadtable.Columns {
		check := "[ ]"
		style := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
		if m.visible[col.Key] {
			check = "[x]"
			style = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
		}
		prefix := "  "
		if i == m.cursor {
			prefix = styles.SelectionIndicatorStyle.Render("> ")
			style = style.Bold(true)
		}
		rows = append(rows, prefix+style.Render(check+" "+col.Title))
	}

	help := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render("space toggle · r reset · esc close")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Columns"),
		strings.Join(rows, "\n"),
		help,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2).
		Render(content)
}

// Overlay renders the picker centered over a background view.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
