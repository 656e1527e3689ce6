package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// displayKeys are the downstream fields tried, in order, for a card label.
var displayKeys = []string{"title", "name", "company", "company_name"}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pipeline"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.summary()))
	b.WriteString("\n")

	width := m.columnWidth()
	cols := make([]string, 0, len(m.view.Columns))
	for i := range m.view.Columns {
		cols = append(cols, m.renderColumn(i, width))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// summary is the one-line board state shown next to the title.
func (m Model) summary() string {
	v := m.view
	parts := []string{string(v.Status)}
	if v.Caller.Role != "" {
		parts = append(parts, fmt.Sprintf("%s #%s", v.Caller.Role, v.Caller.ProfileID))
	}
	if v.Pending > 0 {
		parts = append(parts, fmt.Sprintf("%d saving", v.Pending))
	}
	if v.Status != board.StatusLoaded && v.Error != "" {
		parts = append(parts, v.Error)
	}
	return strings.Join(parts, " · ")
}

func (m Model) columnWidth() int {
	n := len(m.view.Columns)
	if n == 0 || m.width == 0 {
		return minColumnWidth
	}
	// Border and padding take four cells per column.
	w := (m.width-columnGap*(n-1))/n - 4
	return max(w, minColumnWidth)
}

func (m Model) renderColumn(i, width int) string {
	col := m.view.Columns[i]

	lines := []string{
		headerStyle.Render(truncate(fmt.Sprintf("%s (%d)", col.Stage, len(col.Leads)), width)),
		totalStyle.Render(truncate(col.Total.StringFixed(2), width)),
		"",
	}
	for r := range col.Leads {
		style := cardStyle
		if i == m.col && r == m.row {
			style = selectedCardStyle
		}
		lines = append(lines, style.Width(width).Render(truncate(cardLabel(&col.Leads[r]), width)))
	}

	style := columnStyle
	if i == m.col {
		style = activeColumnStyle
	}
	out := style.Width(width + 2).Render(strings.Join(lines, "\n"))
	if i > 0 {
		out = lipgloss.NewStyle().MarginLeft(columnGap).Render(out)
	}
	return out
}

// cardLabel names a lead by the first display field it carries, then its
// amount.
func cardLabel(l *lead.Lead) string {
	label := "#" + l.ID
	for _, k := range displayKeys {
		if s, ok := l.Display[k].(string); ok && s != "" {
			label = s
			break
		}
	}
	if l.Amount != nil {
		label += " " + l.Amount.StringFixed(0)
	}
	return label
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 || len(r) <= 1 {
		return string(r[:min(len(r), width)])
	}
	return string(r[:width-1]) + "…"
}
