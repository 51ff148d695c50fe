// Package leadcard renders the grid view: one bordered card per lead.
package leadcard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"leadline/internal/lead"
	"leadline/internal/ui/styles"
)

const cardWidth = 34

// Render renders a single lead card. selected controls the border
// highlight.
func Render(l lead.Lead, selected bool) string {
	borderColor := styles.BorderDefaultColor
	if selected {
		borderColor = styles.BorderHighlightFocusColor
	}

	name := l.Name
	if name == "" {
		name = "(unnamed)"
	}
	title := lipgloss.NewStyle().Bold(true).Render(name)
	if l.ID != 0 {
		title += lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Render(fmt.Sprintf(" #%d", l.ID))
	}

	var lines []string
	lines = append(lines, title)
	if l.Phone != "" {
		lines = append(lines, "📞 "+l.Phone)
	}

	badges := []string{}
	if l.Stage != "" {
		badges = append(badges, styles.StageStyle.Render(l.Stage))
	}
	badges = append(badges, styles.PriorityStyle(l.Priority).Render(lead.PriorityLabel(l.Priority)))
	lines = append(lines, strings.Join(badges, " · "))

	if l.Budget != 0 {
		lines = append(lines, fmt.Sprintf("Budget: %.0f", l.Budget))
	}
	if l.NextAction != "" {
		next := l.NextAction
		if l.NextActionTime != "" {
			next += " @ " + l.NextActionTime
		}
		lines = append(lines, "Next: "+next)
	}
	if l.RequirementDescription != "" {
		desc := wordwrap.String(l.RequirementDescription, cardWidth-4)
		parts := strings.Split(desc, "\n")
		if len(parts) > 2 {
			parts = parts[:2]
			parts[1] += "…"
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Render(strings.Join(parts, "\n")))
	}
	if tags := lead.SplitList(l.Tags); len(tags) > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Render("⏵ "+strings.Join(tags, ", ")))
	}
	if l.AssignedTo != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Render("→ "+l.AssignedTo))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(cardWidth).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// PerRow returns how many cards fit in one row at the given width.
// Keyboard navigation uses it to move the selection by whole rows.
func PerRow(width int) int {
	return max(1, width/(cardWidth+2))
}

// Grid lays cards out in rows sized to the viewport width.
func Grid(leads []lead.Lead, selected, width int) string {
	if len(leads) == 0 {
		return ""
	}
	perRow := PerRow(width)

	var rows []string
	for start := 0; start < len(leads); start += perRow {
		end := min(start+perRow, len(leads))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, Render(leads[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}
