package leadform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/lead"
	"leadline/internal/mutation"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// focusField moves the cursor to the row editing the given field key.
func focusField(t *testing.T, m Model, fieldKey string) Model {
	t.Helper()
	for i, f := range Fields {
		if f.Key == fieldKey {
			for range i {
				m, _ = m.Update(key("down"))
			}
			return m
		}
	}
	t.Fatalf("no form field %q", fieldKey)
	return m
}

func TestTextEdit_SavesOnBlurWhenDirty(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 1, Name: "Ramesh"}))

	m, _ = m.Update(key("enter"))
	require.True(t, m.Editing())

	m = typeString(m, " Kumar")
	m, cmd := m.Update(key("enter"))

	assert.False(t, m.Editing())
	assert.Equal(t, "Ramesh Kumar", m.Session().Lead().Name)
	require.NotNil(t, cmd)
	assert.Equal(t, SaveFieldMsg{Field: lead.FieldName}, cmd())
}

func TestTextEdit_KeystrokesStageImmediately(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 1}))

	m, _ = m.Update(key("enter"))
	m = typeString(m, "Ram")

	// The working copy tracks every keystroke before any save fires.
	assert.Equal(t, "Ram", m.Session().Lead().Name)
	assert.Equal(t, "", m.Session().Confirmed().Name)
}

func TestTextEdit_UnchangedBlurDoesNotSave(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 1, Name: "Ramesh"}))

	m, _ = m.Update(key("enter"))
	_, cmd := m.Update(key("esc"))
	assert.Nil(t, cmd)
}

func TestSelectField_CyclingSavesImmediately(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 1, Stage: lead.Stages[0]}))
	m = focusField(t, m, lead.FieldStage)

	m, cmd := m.Update(key("enter"))

	assert.Equal(t, lead.Stages[1], m.Session().Lead().Stage)
	require.NotNil(t, cmd)
	assert.Equal(t, SaveFieldMsg{Field: lead.FieldStage}, cmd())
}

func TestDraft_EditsStageLocallyWithoutSaving(t *testing.T) {
	m := New(mutation.NewSession(lead.NewDraft()))
	m = focusField(t, m, lead.FieldStage)

	m, cmd := m.Update(key("enter"))

	assert.Nil(t, cmd, "drafts must not fire per-field saves")
	assert.NotEmpty(t, m.Session().Lead().Stage)
}

func TestDraft_CtrlSSubmits(t *testing.T) {
	m := New(mutation.NewSession(lead.NewDraft()))

	_, cmd := m.Update(key("ctrl+s"))
	require.NotNil(t, cmd)
	assert.IsType(t, SubmitMsg{}, cmd())
}

func TestPersistent_CtrlSDoesNothing(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 1}))

	_, cmd := m.Update(key("ctrl+s"))
	assert.Nil(t, cmd)
}

func TestPersistent_CtrlDRequestsDelete(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 7}))

	_, cmd := m.Update(key("ctrl+d"))
	require.NotNil(t, cmd)
	assert.Equal(t, DeleteMsg{ID: 7}, cmd())
}

func TestDraft_CtrlDDoesNothing(t *testing.T) {
	m := New(mutation.NewSession(lead.NewDraft()))

	_, cmd := m.Update(key("ctrl+d"))
	assert.Nil(t, cmd)
}

func TestEsc_ClosesWhenNotEditing(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 1}))

	_, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, CloseMsg{}, cmd())
}

func TestDataFields_EditableOnBlur(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 1}))
	m = focusField(t, m, lead.FieldData1)

	m, _ = m.Update(key("enter"))
	m = typeString(m, "campaign-42")
	m, cmd := m.Update(key("enter"))

	assert.Equal(t, "campaign-42", m.Session().Lead().Data1)
	require.NotNil(t, cmd)
	assert.Equal(t, SaveFieldMsg{Field: lead.FieldData1}, cmd())
}

func TestInvalidNumericInput_RevertsOnBlur(t *testing.T) {
	m := New(mutation.NewSession(lead.Lead{ID: 1, Budget: 100000}))
	m = focusField(t, m, lead.FieldBudget)

	m, _ = m.Update(key("enter"))
	m = typeString(m, "xyz")
	m, cmd := m.Update(key("enter"))

	assert.Nil(t, cmd)
	assert.EqualValues(t, 100000, m.Session().Lead().Budget)
}
