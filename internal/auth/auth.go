// Package auth gates access behind a static username/password table
// with per-role (admin vs non-admin) visibility rules. This is not a
// security boundary: credentials ship with the binary and are compared
// in plaintext. It only scopes what each account sees.
package auth

import (
	"errors"

	"leadline/internal/log"
	"leadline/internal/prefs"
)

// ErrInvalidCredentials is returned when no table row matches both
// the username and the password exactly.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Credential is one row of the static user table.
type Credential struct {
	Username string
	Password string
	Admin    bool
}

var credentials = []Credential{
	{Username: "Yogesh", Password: "yogesh123", Admin: true},
	{Username: "Mohit", Password: "mohit123", Admin: true},
	{Username: "Sharvan", Password: "sharvan123", Admin: false},
	{Username: "Parmod", Password: "parmod123", Admin: false},
	{Username: "Telecaller", Password: "telecaller123", Admin: false},
	{Username: "Other", Password: "other123", Admin: false},
}

// Session is the signed-in identity.
type Session struct {
	Username string
	Admin    bool
}

// Gate performs logins against the static table and persists the
// identity for auto-login on subsequent runs.
type Gate struct {
	store *prefs.Store
}

// NewGate creates a gate backed by the given preference store.
func NewGate(store *prefs.Store) *Gate {
	return &Gate{store: store}
}

// Login succeeds only on an exact match of both fields against one
// table row. On success the username is persisted with no expiry.
func (g *Gate) Login(username, password string) (Session, error) {
	for _, c := range credentials {
		if c.Username == username && c.Password == password {
			g.store.SetUser(username)
			log.Info(log.CatAuth, "login", "user", username, "admin", c.Admin)
			return Session{Username: c.Username, Admin: c.Admin}, nil
		}
	}
	log.Warn(log.CatAuth, "login rejected", "user", username)
	return Session{}, ErrInvalidCredentials
}

// Restore resumes a persisted session, if any. Unknown persisted
// usernames (for example after a credential-table change) are dropped.
func (g *Gate) Restore() (Session, bool) {
	username := g.store.User()
	if username == "" {
		return Session{}, false
	}
	for _, c := range credentials {
		if c.Username == username {
			log.Info(log.CatAuth, "session restored", "user", username)
			return Session{Username: c.Username, Admin: c.Admin}, true
		}
	}
	g.store.ClearUser()
	return Session{}, false
}

// Logout clears the persisted identity.
func (g *Gate) Logout() {
	log.Info(log.CatAuth, "logout", "user", g.store.User())
	g.store.ClearUser()
}
