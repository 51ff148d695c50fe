package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/lead"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "state.yaml"))
}

func TestOpen_MissingFileYieldsDefaults(t *testing.T) {
	s := newStore(t)

	assert.Equal(t, "list", s.View())
	assert.Equal(t, 1, s.Page())
	assert.Empty(t, s.Search())

	field, dir := s.Sort()
	assert.Equal(t, lead.FieldID, field)
	assert.Equal(t, "desc", dir)

	assert.Empty(t, s.Filters())
	assert.Nil(t, s.Tags())
	assert.Nil(t, s.Columns())
	assert.Empty(t, s.User())
}

func TestOpen_CorruptFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not yaml"), 0644))

	s := Open(path)
	assert.Equal(t, "list", s.View())
	assert.Equal(t, 1, s.Page())
}

func TestRoundTrip_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	s := Open(path)
	s.SetView("grid")
	s.SetPage(7)
	s.SetSearch("9876543210")
	s.SetSort(lead.FieldBudget, "asc")
	s.SetFilters(map[string]string{lead.FieldStage: "Visit Done"})
	s.SetTags([]string{"Hot Lead", "NRI"})
	s.SetUser("Yogesh")

	reopened := Open(path)
	assert.Equal(t, "grid", reopened.View())
	assert.Equal(t, 7, reopened.Page())
	assert.Equal(t, "9876543210", reopened.Search())

	field, dir := reopened.Sort()
	assert.Equal(t, lead.FieldBudget, field)
	assert.Equal(t, "asc", dir)

	assert.Equal(t, map[string]string{lead.FieldStage: "Visit Done"}, reopened.Filters())
	assert.Equal(t, []string{"Hot Lead", "NRI"}, reopened.Tags())
	assert.Equal(t, "Yogesh", reopened.User())
}

func TestView_UnknownValueFallsBack(t *testing.T) {
	s := newStore(t)
	s.Set(KeyView, "kanban")
	assert.Equal(t, "list", s.View())
}

func TestPage_UnparseableFallsBack(t *testing.T) {
	s := newStore(t)
	s.Set(KeyPage, "first")
	assert.Equal(t, 1, s.Page())

	s.Set(KeyPage, "-3")
	assert.Equal(t, 1, s.Page())
}

func TestSort_InvalidDirectionFallsBack(t *testing.T) {
	s := newStore(t)
	s.Set(KeySortDir, "sideways")
	_, dir := s.Sort()
	assert.Equal(t, "desc", dir)
}

func TestFilters_CorruptValueYieldsEmpty(t *testing.T) {
	s := newStore(t)
	s.Set(KeyFilters, "not-json")
	assert.Empty(t, s.Filters())
}

func TestColumns_NeverCustomizedIsNil(t *testing.T) {
	s := newStore(t)
	assert.Nil(t, s.Columns())

	s.SetColumns(map[string]bool{"id": true, "name": true})
	assert.Equal(t, map[string]bool{"id": true, "name": true}, s.Columns())
}

func TestLastOpened_RoundTrip(t *testing.T) {
	s := newStore(t)

	_, ok := s.LastOpened()
	require.False(t, ok)

	s.SetLastOpened(lead.Lead{ID: 12, Name: "Ramesh", Phone: "9876543210"})
	got, ok := s.LastOpened()
	require.True(t, ok)
	assert.Equal(t, 12, got.ID)
	assert.Equal(t, "Ramesh", got.Name)

	s.ClearLastOpened()
	_, ok = s.LastOpened()
	assert.False(t, ok)
}

func TestClearUser(t *testing.T) {
	s := newStore(t)
	s.SetUser("Mohit")
	s.ClearUser()
	assert.Empty(t, s.User())
}
