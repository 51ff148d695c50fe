package login

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/auth"
	"leadline/internal/mode"
	"leadline/internal/prefs"
)

func newModel(t *testing.T) Model {
	t.Helper()
	store := prefs.Open(filepath.Join(t.TempDir(), "state.yaml"))
	return New(mode.Services{
		Prefs: store,
		Gate:  auth.NewGate(store),
	})
}

func typeString(m mode.Controller, s string) mode.Controller {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func enter(m mode.Controller) (mode.Controller, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestLogin_Success(t *testing.T) {
	var m mode.Controller = newModel(t)

	m = typeString(m, "Yogesh")
	m, _ = enter(m) // moves focus to password
	m = typeString(m, "yogesh123")
	_, cmd := enter(m)

	require.NotNil(t, cmd)
	msg, ok := cmd().(mode.LoggedInMsg)
	require.True(t, ok)
	assert.Equal(t, "Yogesh", msg.Session.Username)
	assert.True(t, msg.Session.Admin)
}

func TestLogin_WrongPasswordShowsError(t *testing.T) {
	var m mode.Controller = newModel(t)

	m = typeString(m, "Yogesh")
	m, _ = enter(m)
	m = typeString(m, "wrong")
	m, cmd := enter(m)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Invalid username or password")
}

func TestLogin_FailureClearsPassword(t *testing.T) {
	var m mode.Controller = newModel(t)

	m = typeString(m, "Yogesh")
	m, _ = enter(m)
	m = typeString(m, "wrong")
	m, _ = enter(m)

	// A corrected password on its own now succeeds.
	m = typeString(m, "yogesh123")
	_, cmd := enter(m)
	require.NotNil(t, cmd)
	assert.IsType(t, mode.LoggedInMsg{}, cmd())
}

func TestEnterOnUsernameMovesFocus(t *testing.T) {
	var m mode.Controller = newModel(t)

	m = typeString(m, "Mohit")
	m, cmd := enter(m)
	assert.Nil(t, cmd)

	// Typing now lands in the password field, so submitting with the
	// right password succeeds.
	m = typeString(m, "mohit123")
	_, cmd = enter(m)
	require.NotNil(t, cmd)
}
