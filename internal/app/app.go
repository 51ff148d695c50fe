// Package app contains the root application model.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"leadline/internal/auth"
	"leadline/internal/log"
	"leadline/internal/mode"
	"leadline/internal/mode/browse"
	"leadline/internal/mode/login"
	"leadline/internal/mutation"
)

// Model is the root application state. It owns mode switching; each
// mode controller owns everything inside it.
type Model struct {
	currentMode mode.AppMode
	active      mode.Controller

	services  mode.Services
	mutations *mutation.Controller

	width  int
	height int
}

// New creates the application model. A persisted identity skips the
// login screen.
func New(services mode.Services) Model {
	m := Model{
		services:  services,
		mutations: mutation.New(services.API, services.Hook),
	}

	if session, ok := services.Gate.Restore(); ok {
		m.currentMode = mode.ModeBrowse
		m.active = browse.New(services, session, m.mutations)
		return m
	}

	m.currentMode = mode.ModeLogin
	m.active = login.New(services)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.active.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.active = m.active.SetSize(msg.Width, msg.Height)
		return m, nil

	case mode.LoggedInMsg:
		return m.enterBrowse(msg.Session)

	case mode.LogoutMsg:
		log.Info(log.CatUI, "switching mode", "from", "browse", "to", "login")
		m.currentMode = mode.ModeLogin
		m.active = login.New(m.services).SetSize(m.width, m.height)
		return m, m.active.Init()
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m Model) enterBrowse(session auth.Session) (tea.Model, tea.Cmd) {
	log.Info(log.CatUI, "switching mode", "from", "login", "to", "browse", "user", session.Username)
	m.currentMode = mode.ModeBrowse
	m.active = browse.New(m.services, session, m.mutations).SetSize(m.width, m.height)
	return m, m.active.Init()
}

// View implements tea.Model.
func (m Model) View() string {
	return m.active.View()
}
