package viewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quentinmace/datagrid/internal/grid"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case "esc":
		m.grid.Filter("")
		m.filterInput.SetValue("")
		m.afterGridOp()
		return m, nil

	case "up", "k":
		m.cursor--
		m.clampCursor()
		return m, nil

	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "left", "h":
		if m.sortCol > 0 {
			m.sortCol--
		}
		return m, nil

	case "right", "l":
		if m.sortCol < len(m.grid.Columns())-1 {
			m.sortCol++
		}
		return m, nil

	case "s", "enter":
		if err := m.grid.ToggleSort(m.sortCol); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.afterGridOp()
		return m, nil

	case "n", "pgdown":
		m.grid.NextPage()
		m.afterGridOp()
		return m, nil

	case "p", "pgup":
		m.grid.PrevPage()
		m.afterGridOp()
		return m, nil

	case " ":
		position, ok := m.displayPosition(m.cursor)
		if !ok {
			return m, nil
		}
		row := m.grid.Rows()[position]
		if err := m.grid.SetRowSelected(position, !row.Selected()); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.afterGridOp()
		return m, nil

	case "a":
		m.grid.SelectAll(m.grid.HeaderState() != grid.HeaderAll)
		m.afterGridOp()
		return m, nil

	case "d":
		spacing := m.grid.ToggleSpacing()
		m.status = fmt.Sprintf("spacing: %s", spacing)
		return m, nil
	}

	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		m.grid.Filter(m.filterInput.Value())
		m.afterGridOp()
		return m, nil

	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.grid.Filter("")
		m.afterGridOp()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// afterGridOp drains emitted grid events into the status line and keeps the
// cursor inside the new visible slice.
func (m *Model) afterGridOp() {
	m.clampCursor()
	for _, ev := range m.events.drain() {
		switch ev := ev.(type) {
		case grid.SortedEvent:
			m.status = fmt.Sprintf("sorted column %d %s", ev.Column, ev.Direction)
		case grid.PaginatedEvent:
			m.status = fmt.Sprintf("page %d, %d rows shown", ev.Page, len(ev.Items))
		case grid.FilteredEvent:
			if ev.Query == "" {
				m.status = "filter cleared"
			} else {
				m.status = fmt.Sprintf("filter %q matched %d rows", ev.Query, ev.Matches)
			}
		case grid.SelectionEvent:
			m.status = fmt.Sprintf("%d of %d selected (%s)", ev.Selected, ev.Total, ev.Header)
		}
	}
}
