// Package leadform implements the create/edit modal. It edits a
// mutation.Session: text fields stage locally on every keystroke and
// save on blur when dirty (deferred mode); select and tag-style fields
// save immediately on every value change. Drafts stage everything
// locally and submit once.
package leadform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"leadline/internal/lead"
	"leadline/internal/mutation"
	"leadline/internal/ui/overlay"
	"leadline/internal/ui/styles"
)

// Kind classifies how a field is edited and saved.
type Kind int

const (
	// KindText is free text: deferred save on blur.
	KindText Kind = iota
	// KindNumber is numeric text: deferred save on blur.
	KindNumber
	// KindSelect is a single choice cycled in place: immediate save.
	KindSelect
	// KindMulti is a comma-joined multi-value edited as text but
	// saved immediately on commit, like the original's tag inputs.
	KindMulti
)

// Field describes one editable form field.
type Field struct {
	Key     string
	Label   string
	Kind    Kind
	Options []string
}

// Fields is the form layout, top to bottom.
var Fields = []Field{
	{Key: lead.FieldName, Label: "Name", Kind: KindText},
	{Key: lead.FieldPhone, Label: "Phone", Kind: KindText},
	{Key: lead.FieldAlternativeContactDetails, Label: "Alt. Contact", Kind: KindText},
	{Key: lead.FieldAddress, Label: "Address", Kind: KindText},
	{Key: lead.FieldAboutHim, Label: "About", Kind: KindText},
	{Key: lead.FieldRequirementDescription, Label: "Requirement", Kind: KindText},
	{Key: lead.FieldBudget, Label: "Budget", Kind: KindNumber},
	{Key: lead.FieldPreferredType, Label: "Property Type", Kind: KindMulti, Options: lead.PropertyTypes},
	{Key: lead.FieldSize, Label: "Size", Kind: KindMulti, Options: lead.Sizes},
	{Key: lead.FieldPurposes, Label: "Purposes", Kind: KindMulti, Options: lead.Purposes},
	{Key: lead.FieldPreferredArea, Label: "Preferred Area", Kind: KindText},
	{Key: lead.FieldStage, Label: "Stage", Kind: KindSelect, Options: lead.Stages},
	{Key: lead.FieldPriority, Label: "Priority", Kind: KindSelect, Options: []string{"1", "2", "3"}},
	{Key: lead.FieldIntent, Label: "Intent", Kind: KindNumber},
	{Key: lead.FieldNextAction, Label: "Next Action", Kind: KindSelect, Options: lead.NextActions},
	{Key: lead.FieldNextActionTime, Label: "Action Time", Kind: KindText},
	{Key: lead.FieldNextActionNote, Label: "Action Note", Kind: KindText},
	{Key: lead.FieldAssignedTo, Label: "Assigned To", Kind: KindMulti, Options: lead.Assignees},
	{Key: lead.FieldSource, Label: "Source", Kind: KindSelect, Options: lead.Sources},
	{Key: lead.FieldMedium, Label: "Medium", Kind: KindSelect, Options: lead.Mediums},
	{Key: lead.FieldPlacement, Label: "Placement", Kind: KindSelect, Options: lead.Placements},
	{Key: lead.FieldListName, Label: "List", Kind: KindMulti, Options: lead.ListNames},
	{Key: lead.FieldSegment, Label: "Segment", Kind: KindSelect, Options: lead.Segments},
	{Key: lead.FieldTags, Label: "Tags", Kind: KindMulti, Options: lead.SuggestedTags},
	{Key: lead.FieldNote, Label: "Note", Kind: KindText},
	{Key: lead.FieldInterestedIn, Label: "Interested In", Kind: KindText},
	{Key: lead.FieldNotInterestedIn, Label: "Not Interested In", Kind: KindText},
	{Key: lead.FieldData1, Label: "Data 1", Kind: KindText},
	{Key: lead.FieldData2, Label: "Data 2", Kind: KindText},
	{Key: lead.FieldData3, Label: "Data 3", Kind: KindText},
}

// SaveFieldMsg asks the owner to persist one dirty field of an
// existing lead (the deferred-blur and immediate save paths).
type SaveFieldMsg struct {
	Field string
}

// SubmitMsg asks the owner to create the draft.
type SubmitMsg struct{}

// DeleteMsg asks the owner to delete the lead after confirmation.
type DeleteMsg struct {
	ID int
}

// CloseMsg asks the owner to close the form.
type CloseMsg struct{}

// Model holds the form state.
type Model struct {
	session *mutation.Session

	focused int
	editing bool
	input   textinput.Model
	scroll  int

	width  int
	height int
}

// New opens the form over an edit session.
func New(session *mutation.Session) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	return Model{session: session, input: ti}
}

// Session exposes the underlying edit session.
func (m Model) Session() *mutation.Session { return m.session }

// SetSize sets the viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Editing reports whether a text edit is in progress.
func (m Model) Editing() bool { return m.editing }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}
	return m.updateBrowsing(keyMsg)
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (Model, tea.Cmd) {
	field := Fields[m.focused]
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "up", "k":
		if m.focused > 0 {
			m.focused--
		}
	case "down", "j", "tab":
		if m.focused < len(Fields)-1 {
			m.focused++
		}
	case "shift+tab":
		if m.focused > 0 {
			m.focused--
		}
	case "enter":
		if field.Kind == KindSelect {
			return m.cycleOption(field, 1)
		}
		m.editing = true
		m.input.SetValue(m.session.Lead().Get(field.Key))
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	case "left", "h":
		if field.Kind == KindSelect {
			return m.cycleOption(field, -1)
		}
	case "right", "l":
		if field.Kind == KindSelect {
			return m.cycleOption(field, 1)
		}
	case "ctrl+s":
		if m.session.IsDraft() {
			return m, func() tea.Msg { return SubmitMsg{} }
		}
	case "ctrl+d":
		if !m.session.IsDraft() {
			id := m.session.Lead().ID
			return m, func() tea.Msg { return DeleteMsg{ID: id} }
		}
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	field := Fields[m.focused]
	switch msg.String() {
	case "enter", "esc":
		// Blur: stage the value, then save if it actually changed.
		m.editing = false
		m.input.Blur()
		if err := m.session.Stage(field.Key, m.input.Value()); err != nil {
			// Unparseable numeric input stays local; the field reverts.
			m.session.Rollback(field.Key)
			return m, nil
		}
		return m, m.saveIfDirty(field.Key)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		// Local state updates on every keystroke.
		_ = m.session.Stage(field.Key, m.input.Value())
		return m, cmd
	}
}

func (m Model) cycleOption(field Field, dir int) (Model, tea.Cmd) {
	options := field.Options
	if len(options) == 0 {
		return m, nil
	}
	current := m.session.Lead().Get(field.Key)
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = (i + dir + len(options)) % len(options)
			break
		}
	}
	if err := m.session.Stage(field.Key, options[idx]); err != nil {
		return m, nil
	}
	// Single-choice fields save immediately on every change.
	return m, m.saveIfDirty(field.Key)
}

func (m Model) saveIfDirty(key string) tea.Cmd {
	if m.session.IsDraft() {
		return nil // drafts submit once via ctrl+s
	}
	if !m.session.Dirty(key) {
		return nil // no-op save
	}
	return func() tea.Msg { return SaveFieldMsg{Field: key} }
}

// View renders the form box.
func (m Model) View() string {
	l := m.session.Lead()

	title := "Edit Lead"
	if m.session.IsDraft() {
		title = "New Lead"
	} else if l.ID != 0 {
		title = fmt.Sprintf("Edit Lead #%d", l.ID)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)
	labelStyle := lipgloss.NewStyle().Foreground(styles.FormLabelColor).Width(18)
	labelFocusStyle := lipgloss.NewStyle().Foreground(styles.FormLabelFocusedColor).Bold(true).Width(18)

	boxWidth := min(m.width-4, 76)
	if boxWidth < 40 {
		boxWidth = 40
	}
	valueWidth := boxWidth - 22

	visibleRows := m.height - 8
	if visibleRows < 5 {
		visibleRows = 5
	}
	scroll := m.scroll
	if m.focused < scroll {
		scroll = m.focused
	}
	if m.focused >= scroll+visibleRows {
		scroll = m.focused - visibleRows + 1
	}

	var rows []string
	for i := scroll; i < len(Fields) && i < scroll+visibleRows; i++ {
		f := Fields[i]
		value := l.Get(f.Key)
		if f.Key == lead.FieldPriority {
			value = lead.PriorityLabel(l.Priority)
		}
		if value == "" {
			value = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor).Render("—")
		}

		label := labelStyle.Render(f.Label)
		prefix := "  "
		if i == m.focused {
			label = labelFocusStyle.Render(f.Label)
			prefix = styles.SelectionIndicatorStyle.Render("> ")
			if m.editing {
				value = m.input.View()
			} else if f.Kind == KindSelect {
				value = "◂ " + value + " ▸"
			}
		}
		rows = append(rows, prefix+label+runewidth.Truncate(value, valueWidth, "…"))
	}

	help := "enter edit · ◂▸ cycle · esc close"
	if m.session.IsDraft() {
		help = "enter edit · ctrl+s create · esc discard"
	} else {
		help += " · ctrl+d delete"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		strings.Join(rows, "\n"),
		lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(help),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2).
		Width(boxWidth).
		Render(content)
}

// Overlay renders the form centered over a background view.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
