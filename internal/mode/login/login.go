// Package login implements the sign-in mode.
package login

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadline/internal/auth"
	"leadline/internal/mode"
	"leadline/internal/ui/styles"
)

const (
	fieldUsername = iota
	fieldPassword
)

// Model is the login mode controller.
type Model struct {
	services mode.Services

	username textinput.Model
	password textinput.Model
	focused  int
	errMsg   string

	width  int
	height int
}

// New creates the login mode.
func New(services mode.Services) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 28
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 28
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		services: services,
		username: username,
		password: password,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		m = m.focus((m.focused + 1) % 2)
		return m, nil
	case "shift+tab", "up":
		m = m.focus((m.focused + 1) % 2)
		return m, nil
	case "enter":
		if m.focused == fieldUsername {
			m = m.focus(fieldPassword)
			return m, nil
		}
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m Model) focus(field int) Model {
	m.focused = field
	if field == fieldUsername {
		m.username.Focus()
		m.password.Blur()
	} else {
		m.username.Blur()
		m.password.Focus()
	}
	return m
}

func (m Model) updateInputs(msg tea.Msg) (mode.Controller, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) submit() (mode.Controller, tea.Cmd) {
	session, err := m.services.Gate.Login(m.username.Value(), m.password.Value())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			m.errMsg = "Invalid username or password"
		} else {
			m.errMsg = err.Error()
		}
		m.password.SetValue("")
		m = m.focus(fieldPassword)
		return m, nil
	}
	m.errMsg = ""
	return m, func() tea.Msg { return mode.LoggedInMsg{Session: session} }
}

// View renders the login box centered on screen.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)
	labelStyle := lipgloss.NewStyle().Foreground(styles.FormLabelColor)

	rows := []string{
		titleStyle.Render("LeadLine"),
		"",
		labelStyle.Render("Username"),
		m.username.View(),
		"",
		labelStyle.Render("Password"),
		m.password.View(),
	}
	if m.errMsg != "" {
		rows = append(rows, "",
			lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Render(m.errMsg))
	}
	rows = append(rows, "",
		lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("enter sign in · ctrl+c quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if m.width == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
