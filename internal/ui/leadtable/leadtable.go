// Package leadtable renders the list view: one lead per row with
// customizable column visibility and sort indicators.
package leadtable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"leadline/internal/lead"
	"leadline/internal/ui/styles"
)

// Column describes one table column. Key doubles as the sort field.
type Column struct {
	Key   string
	Title string
	Width int
}

// Columns is every available column, in display order.
var Columns = []Column{
	{Key: lead.FieldID, Title: "ID", Width: 6},
	{Key: lead.FieldName, Title: "Name", Width: 18},
	{Key: lead.FieldPhone, Title: "Phone", Width: 13},
	{Key: lead.FieldStage, Title: "Stage", Width: 16},
	{Key: lead.FieldPriority, Title: "Priority", Width: 8},
	{Key: lead.FieldNextAction, Title: "Next Action", Width: 16},
	{Key: lead.FieldNextActionTime, Title: "Action Time", Width: 16},
	{Key: lead.FieldBudget, Title: "Budget", Width: 10},
	{Key: lead.FieldIntent, Title: "Intent", Width: 6},
	{Key: lead.FieldAssignedTo, Title: "Assigned", Width: 12},
	{Key: lead.FieldTags, Title: "Tags", Width: 16},
	{Key: lead.FieldSegment, Title: "Segment", Width: 10},
	{Key: lead.FieldSource, Title: "Source", Width: 14},
	{Key: lead.FieldPreferredType, Title: "Type", Width: 14},
	{Key: lead.FieldCreatedAt, Title: "Created", Width: 16},
}

// DefaultVisible is the out-of-the-box column set.
func DefaultVisible() map[string]bool {
	return map[string]bool{
		lead.FieldID:         true,
		lead.FieldName:       true,
		lead.FieldPhone:      true,
		lead.FieldStage:      true,
		lead.FieldPriority:   true,
		lead.FieldNextAction: true,
		lead.FieldBudget:     true,
		lead.FieldAssignedTo: true,
		lead.FieldTags:       true,
	}
}

// Model holds the table state.
type Model struct {
	leads     []lead.Lead
	visible   map[string]bool
	selected  int
	sortField string
	sortDir   string
	width     int
	height    int
}

// New creates an empty table with the given column visibility.
func New(visible map[string]bool) Model {
	if visible == nil {
		visible = DefaultVisible()
	}
	return Model{visible: visible}
}

// SetLeads replaces the rows, clamping the selection.
func (m Model) SetLeads(leads []lead.Lead) Model {
	m.leads = leads
	if m.selected >= len(leads) {
		m.selected = len(leads) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

// SetVisible replaces the column-visibility map.
func (m Model) SetVisible(visible map[string]bool) Model {
	m.visible = visible
	return m
}

// Visible returns the current column-visibility map.
func (m Model) Visible() map[string]bool { return m.visible }

// SetSort records the sort state for the header indicator.
func (m Model) SetSort(field, dir string) Model {
	m.sortField = field
	m.sortDir = dir
	return m
}

// SetSize updates the rendering area.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// MoveUp moves the selection up one row.
func (m Model) MoveUp() Model {
	if m.selected > 0 {
		m.selected--
	}
	return m
}

// MoveDown moves the selection down one row.
func (m Model) MoveDown() Model {
	if m.selected < len(m.leads)-1 {
		m.selected++
	}
	return m
}

// Selected returns the selected lead, if any.
func (m Model) Selected() (lead.Lead, bool) {
	if m.selected < 0 || m.selected >= len(m.leads) {
		return lead.Lead{}, false
	}
	return m.leads[m.selected], true
}

// SelectByID moves the selection to the lead with the given id.
func (m Model) SelectByID(id int) Model {
	for i := range m.leads {
		if m.leads[i].ID == id {
			m.selected = i
			break
		}
	}
	return m
}

func (m Model) columns() []Column {
	cols := make([]Column, 0, len(Columns))
	for _, c := range Columns {
		if m.visible[c.Key] {
			cols = append(cols, c)
		}
	}
	return cols
}

// View renders the table.
func (m Model) View() string {
	cols := m.columns()
	if len(cols) == 0 {
		return styles.StatusBarStyle.Render("No columns selected")
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextMutedColor)
	var header strings.Builder
	for _, c := range cols {
		title := c.Title
		if c.Key == m.sortField {
			if m.sortDir == "asc" {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		header.WriteString(pad(title, c.Width))
		header.WriteString(" ")
	}

	rows := []string{headerStyle.Render(header.String())}
	selectedStyle := lipgloss.NewStyle().
		Foreground(styles.SelectionIndicatorColor).
		Bold(true)

	maxRows := len(m.leads)
	if m.height > 0 && maxRows > m.height-1 {
		maxRows = m.height - 1
	}
	start := 0
	if m.selected >= maxRows {
		start = m.selected - maxRows + 1
	}

	for i := start; i < len(m.leads) && i < start+maxRows; i++ {
		line := m.renderRow(m.leads[i], cols)
		if i == m.selected {
			rows = append(rows, selectedStyle.Render("▸ "+line))
		} else {
			rows = append(rows, "  "+line)
		}
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderRow(l lead.Lead, cols []Column) string {
	var row strings.Builder
	for _, c := range cols {
		row.WriteString(pad(cellValue(l, c.Key), c.Width))
		row.WriteString(" ")
	}
	return row.String()
}

func cellValue(l lead.Lead, key string) string {
	switch key {
	case lead.FieldPriority:
		return lead.PriorityLabel(l.Priority)
	case lead.FieldBudget:
		if l.Budget == 0 {
			return "-"
		}
		return fmt.Sprintf("%.0f", l.Budget)
	default:
		if v := l.Get(key); v != "" {
			return v
		}
		return "-"
	}
}

func pad(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	return s + strings.Repeat(" ", max(0, width-runewidth.StringWidth(s)))
}
