// Package prefs persists view preferences between runs: view mode,
// page, search term, sort, filters, tags, column visibility, the last
// opened record, and the logged-in user. All reads and writes are
// best-effort; a corrupt or missing state file degrades to defaults
// and never surfaces an error to the user.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"leadline/internal/lead"
	"leadline/internal/log"
)

// Preference keys.
const (
	KeyView       = "view"
	KeyPage       = "page"
	KeySearch     = "search"
	KeySortField  = "sort_field"
	KeySortDir    = "sort_dir"
	KeyFilters    = "filters"
	KeyTags       = "tags"
	KeyColumns    = "columns"
	KeyLastOpened = "last_opened"
	KeyUser       = "user"
)

// Defaults applied when a key is missing or unparseable.
const (
	DefaultView      = "list"
	DefaultPage      = 1
	DefaultSortField = lead.FieldID
	DefaultSortDir   = "desc"
)

// Store is a file-backed key-value preference store.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// Open loads the store from path. Missing or corrupt files yield an
// empty store; the error is logged only.
func Open(path string) *Store {
	s := &Store{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path) //nolint:gosec // G304: path comes from config
	if err != nil {
		if !os.IsNotExist(err) {
			log.ErrorErr(log.CatPrefs, "reading state file", err, "path", path)
		}
		return s
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		log.ErrorErr(log.CatPrefs, "parsing state file", err, "path", path)
		s.data = make(map[string]string)
	}
	return s
}

// Get returns the raw value for key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key]
}

// Set stores a value and writes through to disk.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	s.save()
}

// Delete removes keys and writes through to disk.
func (s *Store) Delete(keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.data, key)
	}
	s.mu.Unlock()
	s.save()
}

func (s *Store) save() {
	s.mu.Lock()
	raw, err := yaml.Marshal(s.data)
	s.mu.Unlock()
	if err != nil {
		log.ErrorErr(log.CatPrefs, "encoding state", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.ErrorErr(log.CatPrefs, "creating state dir", err, "path", s.path)
		return
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil { //nolint:gosec // G306: preference file, not a secret
		log.ErrorErr(log.CatPrefs, "writing state file", err, "path", s.path)
	}
}

// View returns the saved view mode ("list" or "grid").
func (s *Store) View() string {
	if v := s.Get(KeyView); v == "list" || v == "grid" {
		return v
	}
	return DefaultView
}

// SetView saves the view mode.
func (s *Store) SetView(view string) { s.Set(KeyView, view) }

// Page returns the saved page number, defaulting to 1.
func (s *Store) Page() int {
	n, err := strconv.Atoi(s.Get(KeyPage))
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}

// SetPage saves the current page number.
func (s *Store) SetPage(page int) { s.Set(KeyPage, strconv.Itoa(page)) }

// Search returns the saved search term.
func (s *Store) Search() string { return s.Get(KeySearch) }

// SetSearch saves the search term.
func (s *Store) SetSearch(term string) { s.Set(KeySearch, term) }

// Sort returns the saved sort field and direction.
func (s *Store) Sort() (field, dir string) {
	field = s.Get(KeySortField)
	if field == "" {
		field = DefaultSortField
	}
	dir = s.Get(KeySortDir)
	if dir != "asc" && dir != "desc" {
		dir = DefaultSortDir
	}
	return field, dir
}

// SetSort saves the sort field and direction.
func (s *Store) SetSort(field, dir string) {
	s.mu.Lock()
	s.data[KeySortField] = field
	s.data[KeySortDir] = dir
	s.mu.Unlock()
	s.save()
}

// Filters returns the saved filter map, or an empty map.
func (s *Store) Filters() map[string]string {
	filters := make(map[string]string)
	s.getJSON(KeyFilters, &filters)
	return filters
}

// SetFilters saves the filter map.
func (s *Store) SetFilters(filters map[string]string) { s.setJSON(KeyFilters, filters) }

// Tags returns the saved tag list, or nil.
func (s *Store) Tags() []string {
	var tags []string
	s.getJSON(KeyTags, &tags)
	return tags
}

// SetTags saves the tag list.
func (s *Store) SetTags(tags []string) { s.setJSON(KeyTags, tags) }

// Columns returns the saved column-visibility map, or nil when the
// user has never customized columns.
func (s *Store) Columns() map[string]bool {
	var cols map[string]bool
	if !s.getJSON(KeyColumns, &cols) {
		return nil
	}
	return cols
}

// SetColumns saves the column-visibility map.
func (s *Store) SetColumns(cols map[string]bool) { s.setJSON(KeyColumns, cols) }

// LastOpened returns the snapshot of the last lead open in the form.
func (s *Store) LastOpened() (lead.Lead, bool) {
	var l lead.Lead
	if !s.getJSON(KeyLastOpened, &l) {
		return lead.Lead{}, false
	}
	return l, true
}

// SetLastOpened saves a snapshot of the lead open in the form so it
// can be restored after a reload.
func (s *Store) SetLastOpened(l lead.Lead) { s.setJSON(KeyLastOpened, l) }

// ClearLastOpened removes the open-lead snapshot.
func (s *Store) ClearLastOpened() { s.Delete(KeyLastOpened) }

// User returns the persisted logged-in username, or "".
func (s *Store) User() string { return s.Get(KeyUser) }

// SetUser persists the logged-in username. There is no expiry: the
// user stays signed in until an explicit logout.
func (s *Store) SetUser(username string) { s.Set(KeyUser, username) }

// ClearUser removes the persisted identity.
func (s *Store) ClearUser() { s.Delete(KeyUser) }

func (s *Store) getJSON(key string, out any) bool {
	raw := s.Get(key)
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.ErrorErr(log.CatPrefs, "parsing stored value", err, "key", key)
		return false
	}
	return true
}

func (s *Store) setJSON(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.ErrorErr(log.CatPrefs, "encoding stored value", err, "key", key)
		return
	}
	s.Set(key, string(raw))
}
