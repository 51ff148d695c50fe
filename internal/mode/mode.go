// Package mode defines the mode controller interface and shared services.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"leadline/internal/auth"
	"leadline/internal/cache"
	"leadline/internal/clipboard"
	"leadline/internal/config"
	"leadline/internal/leadapi"
	"leadline/internal/prefs"
	"leadline/internal/webhook"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeLogin AppMode = iota
	ModeBrowse
)

// Controller defines the interface all modes must implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Config    *config.Config
	API       *leadapi.Client
	Hook      *webhook.Client
	Prefs     *prefs.Store
	Gate      *auth.Gate
	Results   *cache.ResultCache
	Clipboard clipboard.Clipboard

	// DeepLinkID is a lead identifier passed on the command line; the
	// browse mode opens it for editing once the first fetch lands.
	DeepLinkID int
}

// LoggedInMsg signals a successful login; the app switches to browse.
type LoggedInMsg struct {
	Session auth.Session
}

// LogoutMsg signals an explicit logout; the app switches to login.
type LogoutMsg struct{}
