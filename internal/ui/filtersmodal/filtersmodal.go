// Package filtersmodal implements the filter panel. Each change is
// emitted to the owner immediately; the owner stages it on the query
// state and schedules the debounced refetch.
package filtersmodal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadline/internal/lead"
	"leadline/internal/ui/overlay"
	"leadline/internal/ui/styles"
)

// Kind selects the row behavior.
type Kind int

const (
	// KindSelect cycles through a fixed option list.
	KindSelect Kind = iota
	// KindText accepts a typed value.
	KindText
)

// Budget bounds are query-only keys: they constrain a range on the
// server instead of matching a lead field exactly.
const (
	FilterBudgetMin = "budget_min"
	FilterBudgetMax = "budget_max"
)

// Filter describes one filterable field and its allowed values.
type Filter struct {
	Key     string
	Label   string
	Kind    Kind
	Options []string
	// Editable marks a select that also accepts a typed value, used
	// for the next_action_time custom date.
	Editable bool
}

// Filters is the panel layout. The empty value means "any".
var Filters = []Filter{
	{Key: lead.FieldStage, Label: "Stage", Options: lead.Stages},
	{Key: lead.FieldPriority, Label: "Priority", Options: []string{"1", "2", "3"}},
	{Key: lead.FieldIntent, Label: "Intent", Options: lead.IntentScores},
	{Key: lead.FieldNextAction, Label: "Next Action", Options: lead.NextActions},
	{Key: lead.FieldNextActionTime, Label: "Action Time", Options: lead.NextActionTimes, Editable: true},
	{Key: lead.FieldPreferredType, Label: "Type", Options: lead.PropertyTypes},
	{Key: lead.FieldSize, Label: "Size", Options: lead.Sizes},
	{Key: lead.FieldPurposes, Label: "Purpose", Options: lead.Purposes},
	{Key: FilterBudgetMin, Label: "Budget Min", Kind: KindText},
	{Key: FilterBudgetMax, Label: "Budget Max", Kind: KindText},
	{Key: lead.FieldAssignedTo, Label: "Assigned To", Options: lead.Assignees},
	{Key: lead.FieldSource, Label: "Source", Options: lead.Sources},
	{Key: lead.FieldMedium, Label: "Medium", Options: lead.Mediums},
	{Key: lead.FieldSegment, Label: "Segment", Options: lead.Segments},
	{Key: lead.FieldListName, Label: "List", Options: lead.ListNames},
	{Key: lead.FieldPlacement, Label: "Placement", Options: lead.Placements},
}

// FilterSetMsg reports a filter value change. An empty Value removes
// the filter.
type FilterSetMsg struct {
	Key   string
	Value string
}

// TagsChangedMsg reports the new full tag selection.
type TagsChangedMsg struct {
	Tags []string
}

// ClearMsg asks the owner to reset all filters and tags.
type ClearMsg struct{}

// CloseMsg asks the owner to close the panel.
type CloseMsg struct{}

// Model holds the panel state. Values mirror the owner's query state;
// the owner is the source of truth and refreshes the panel on open.
type Model struct {
	values map[string]string
	tags   []string

	// Non-admin users cannot change the assigned_to filter.
	lockedAssignee string

	focused   int
	tagCursor int
	editing   bool
	input     textinput.Model

	width  int
	height int
}

// New opens the panel seeded with the active filters and tags.
func New(values map[string]string, tags []string, lockedAssignee string) Model {
	seeded := make(map[string]string, len(values))
	for k, v := range values {
		seeded[k] = v
	}
	return Model{
		values:         seeded,
		tags:           append([]string(nil), tags...),
		lockedAssignee: lockedAssignee,
	}
}

// SetSize sets the viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// tagsRow is the focus index of the tag selector, one past the last
// filter field.
func tagsRow() int { return len(Filters) }

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
		return m.handleEditKey(keyMsg)
	}

	switch keyMsg.String() {
	case "esc", "q", "f":
		return m, func() tea.Msg { return CloseMsg{} }
	case "up", "k":
		if m.focused > 0 {
			m.focused--
		}
	case "down", "j", "tab":
		if m.focused < tagsRow() {
			m.focused++
		}
	case "left", "h":
		if m.focused == tagsRow() {
			if m.tagCursor > 0 {
				m.tagCursor--
			}
			return m, nil
		}
		return m.cycle(-1)
	case "right", "l":
		if m.focused == tagsRow() {
			if m.tagCursor < len(lead.SuggestedTags)-1 {
				m.tagCursor++
			}
			return m, nil
		}
		return m.cycle(1)
	case "enter", " ":
		if m.focused == tagsRow() {
			return m.toggleTag()
		}
		if f := Filters[m.focused]; keyMsg.String() == "enter" && (f.Kind == KindText || f.Editable) {
			return m.startEdit(f)
		}
		return m.cycle(1)
	case "backspace", "x":
		if m.focused < tagsRow() {
			return m.set(Filters[m.focused], "")
		}
	case "c":
		return m, func() tea.Msg { return ClearMsg{} }
	}
	return m, nil
}

// Reset replaces the panel values, used after the owner clears filters.
func (m Model) Reset(values map[string]string, tags []string) Model {
	m.values = make(map[string]string, len(values))
	for k, v := range values {
		m.values[k] = v
	}
	m.tags = append([]string(nil), tags...)
	return m
}

// startEdit opens inline text entry on the focused row, seeded with
// the current value.
func (m Model) startEdit(f Filter) (Model, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.SetValue(m.values[f.Key])
	ti.CursorEnd()
	ti.Focus()
	m.input = ti
	m.editing = true
	return m, textinput.Blink
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		return m.set(Filters[m.focused], strings.TrimSpace(m.input.Value()))
	case "esc":
		m.editing = false
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) cycle(dir int) (Model, tea.Cmd) {
	f := Filters[m.focused]
	if f.Kind == KindText {
		return m, nil
	}
	if f.Key == lead.FieldAssignedTo && m.lockedAssignee != "" {
		return m, nil
	}
	// "any" sits before the first option in the cycle order.
	options := append([]string{""}, f.Options...)
	idx := 0
	for i, opt := range options {
		if opt == m.values[f.Key] {
			idx = (i + dir + len(options)) % len(options)
			break
		}
	}
	return m.set(f, options[idx])
}

func (m Model) set(f Filter, value string) (Model, tea.Cmd) {
	if f.Key == lead.FieldAssignedTo && m.lockedAssignee != "" {
		return m, nil
	}
	if value == "" {
		delete(m.values, f.Key)
	} else {
		m.values[f.Key] = value
	}
	return m, func() tea.Msg { return FilterSetMsg{Key: f.Key, Value: value} }
}

func (m Model) toggleTag() (Model, tea.Cmd) {
	tag := lead.SuggestedTags[m.tagCursor]
	next := make([]string, 0, len(m.tags)+1)
	found := false
	for _, t := range m.tags {
		if t == tag {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		next = append(next, tag)
	}
	m.tags = next
	tags := append([]string(nil), next...)
	return m, func() tea.Msg { return TagsChangedMsg{Tags: tags} }
}

func (m Model) hasTag(tag string) bool {
	for _, t := range m.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// View renders the panel box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)
	labelStyle := lipgloss.NewStyle().Foreground(styles.FormLabelColor).Width(14)
	labelFocusStyle := lipgloss.NewStyle().Foreground(styles.FormLabelFocusedColor).Bold(true).Width(14)
	anyStyle := lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)

	var rows []string
	for i, f := range Filters {
		value := m.values[f.Key]
		display := value
		if display == "" {
			display = anyStyle.Render("any")
		}
		label := labelStyle.Render(f.Label)
		prefix := "  "
		if i == m.focused {
			label = labelFocusStyle.Render(f.Label)
			prefix = styles.SelectionIndicatorStyle.Render("> ")
			switch {
			case m.editing:
				display = m.input.View()
			case f.Kind == KindText:
				// Typed rows have no option cycle to arrow through.
			default:
				display = "◂ " + display + " ▸"
			}
		}
		if f.Key == lead.FieldAssignedTo && m.lockedAssignee != "" {
			display = m.lockedAssignee + " 🔒"
		}
		rows = append(rows, prefix+label+display)
	}

	var chips []string
	for i, tag := range lead.SuggestedTags {
		chip := tag
		if m.hasTag(tag) {
			chip = "✓" + chip
		}
		style := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
		if m.hasTag(tag) {
			style = lipgloss.NewStyle().Foreground(styles.StatusSuccessColor)
		}
		if m.focused == tagsRow() && i == m.tagCursor {
			style = style.Bold(true).Underline(true)
		}
		chips = append(chips, style.Render(chip))
	}
	tagLabel := labelStyle.Render("Tags")
	tagPrefix := "  "
	if m.focused == tagsRow() {
		tagLabel = labelFocusStyle.Render("Tags")
		tagPrefix = styles.SelectionIndicatorStyle.Render("> ")
	}
	rows = append(rows, tagPrefix+tagLabel+strings.Join(chips, " "))

	help := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render("◂▸ change · enter type a value · x clear field · c clear all · esc close")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Filters"),
		strings.Join(rows, "\n"),
		help,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2).
		Render(content)
}

// Overlay renders the panel centered over a background view.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
