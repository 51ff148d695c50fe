// Package confirm provides a destructive-action confirmation modal.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadline/internal/ui/overlay"
	"leadline/internal/ui/styles"
)

// ConfirmedMsg is sent when the user confirms the action.
type ConfirmedMsg struct{}

// CancelledMsg is sent when the user dismisses the modal.
type CancelledMsg struct{}

// Model holds the confirmation modal state.
type Model struct {
	title   string
	message string
	confirm string
	focused int // 0 = confirm, 1 = cancel
	width   int
	height  int
}

// New creates a confirmation modal. confirmLabel is the destructive
// button label, e.g. "Delete".
func New(title, message, confirmLabel string) Model {
	return Model{
		title:   title,
		message: message,
		confirm: confirmLabel,
		focused: 1, // default to the safe choice
	}
}

// SetSize sets the viewport dimensions for overlay rendering.
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
	case "left", "right", "tab", "shift+tab", "h", "l":
		m.focused = 1 - m.focused
	case "enter":
		if m.focused == 0 {
			return m, func() tea.Msg { return ConfirmedMsg{} }
		}
		return m, func() tea.Msg { return CancelledMsg{} }
	case "esc", "q":
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	return m, nil
}

// View renders the modal box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor)

	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondaryColor).
		MarginTop(1).
		MarginBottom(1)

	danger := lipgloss.NewStyle().Padding(0, 2).Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#922B21"))
	dangerFocused := danger.
		Background(lipgloss.Color("#E74C3C")).
		Underline(true)
	secondary := lipgloss.NewStyle().Padding(0, 2).Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#2D3436"))
	secondaryFocused := secondary.
		Background(lipgloss.Color("#636E72")).
		Underline(true)

	var confirmBtn, cancelBtn string
	if m.focused == 0 {
		confirmBtn = dangerFocused.Render(m.confirm)
		cancelBtn = secondary.Render("Cancel")
	} else {
		confirmBtn = danger.Render(m.confirm)
		cancelBtn = secondaryFocused.Render("Cancel")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, confirmBtn, "  ", cancelBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		messageStyle.Render(m.message),
		buttons,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.StatusErrorColor).
		Padding(1, 2).
		Render(content)

	return box
}

// Overlay renders the modal centered over a background view.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
