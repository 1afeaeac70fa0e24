package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quentinmace/datagrid/internal/grid"
)

// Column titles are truncated beyond this width so one wide header cannot
// push the rest of the table off screen.
const maxColumnWidth = 24

// View renders the current model state.
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderTitle())
	content.WriteString("\n")

	if m.filtering || m.filterInput.Value() != "" {
		content.WriteString(m.filterInput.View())
		content.WriteString("\n")
	}

	if m.errMsg != "" {
		content.WriteString(errorStyle.Render(m.errMsg))
		content.WriteString("\n")
	}

	content.WriteString(m.renderTable())
	content.WriteString("\n")
	content.WriteString(m.renderStatusBar())

	return content.String()
}

func (m Model) renderTitle() string {
	return titleStyle.Render(fmt.Sprintf("%s — %d rows", m.name, len(m.grid.Rows())))
}

func (m Model) renderTable() string {
	visible := m.grid.VisibleRows()
	if len(visible) == 0 {
		return emptyStateStyle.Render("no rows to show")
	}

	widths := m.columnWidths(visible)

	var lines []string
	lines = append(lines, headerRowStyle.Render(m.renderHeaderRow(widths)))

	for i, row := range visible {
		lines = append(lines, m.renderRow(row, i == m.cursor, widths))
		if m.grid.Spacing() == grid.SpacingRegular && i < len(visible)-1 {
			lines = append(lines, "")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderHeaderRow(widths []int) string {
	cells := []string{m.headerCheckbox()}

	state := m.grid.SortOrder()
	for i, col := range m.grid.Columns() {
		title := truncate(col.Title, widths[i])
		marker := "  "
		if state.HasSorted && state.Column == i {
			if state.Ascending {
				marker = " ▲"
			} else {
				marker = " ▼"
			}
		}
		cell := pad(title, widths[i]) + marker
		if i == m.sortCol && m.grid.Sortable() {
			cell = sortCursorStyle.Render(cell)
		}
		cells = append(cells, cell)
	}

	return strings.Join(cells, "  ")
}

// headerCheckbox renders the select-all control's tri-state.
func (m Model) headerCheckbox() string {
	switch m.grid.HeaderState() {
	case grid.HeaderAll:
		return "[x]"
	case grid.HeaderSome:
		return "[-]"
	default:
		return "[ ]"
	}
}

func (m Model) renderRow(row *grid.Row, underCursor bool, widths []int) string {
	checkbox := "[ ]"
	if row.Selected() {
		checkbox = "[x]"
	}

	cells := []string{checkbox}
	for i, cell := range row.Cells() {
		cells = append(cells, pad(truncate(cell, widths[i]), widths[i])+"  ")
	}
	line := strings.Join(cells, "  ")

	switch {
	case underCursor:
		return cursorRowStyle.Render(line)
	case row.Selected():
		return selectedRowStyle.Render(line)
	default:
		return rowStyle.Render(line)
	}
}

func (m Model) renderStatusBar() string {
	parts := make([]string, 0, 4)

	if m.grid.PageCount() > 0 {
		prev := disabledControlStyle.Render("‹ prev")
		if m.grid.CanPrevPage() {
			prev = enabledControlStyle.Render("‹ prev")
		}
		next := disabledControlStyle.Render("next ›")
		if m.grid.CanNextPage() {
			next = enabledControlStyle.Render("next ›")
		}
		parts = append(parts, fmt.Sprintf("%s page %d/%d %s", prev, m.grid.CurrentPage(), m.grid.PageCount(), next))
	}

	parts = append(parts, fmt.Sprintf("%d visible", len(m.grid.VisibleRows())))
	if count := m.grid.SelectedCount(); count > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", count))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, "/ filter  s sort  n/p page  space select  a all  d density  q quit")

	return statusStyle.Width(m.width - 2).Render(strings.Join(parts, "  •  "))
}

// columnWidths sizes each column to its widest visible cell, capped.
func (m Model) columnWidths(visible []*grid.Row) []int {
	columns := m.grid.Columns()
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = lipgloss.Width(col.Title)
	}
	for _, row := range visible {
		for i, cell := range row.Cells() {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
