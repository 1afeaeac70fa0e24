package grid

import (
	datagriderrors "github.com/quentinmace/datagrid/pkg/errors"
)

// HeaderState is the tri-state of the select-all control.
type HeaderState int

const (
	// HeaderNone means no rows are selected.
	HeaderNone HeaderState = iota
	// HeaderSome means some but not all rows are selected; the select-all
	// control renders indeterminate and unchecked.
	HeaderSome
	// HeaderAll means every row is selected.
	HeaderAll
)

// String returns the string representation of a HeaderState.
func (h HeaderState) String() string {
	switch h {
	case HeaderNone:
		return "none"
	case HeaderSome:
		return "some"
	case HeaderAll:
		return "all"
	default:
		return "unknown"
	}
}

// SetRowSelected toggles the checkbox of the row at the given display
// position. Selection is tracked against the row's identity, so it survives
// sorting and page changes; it is cleared whenever the filter predicate
// changes. Emits a SelectionEvent when the state changes.
func (g *Grid) SetRowSelected(position int, selected bool) error {
	if position < 0 || position >= len(g.rows) {
		return datagriderrors.NewBoundsError("row", position, len(g.rows))
	}
	row := g.rows[position]
	if row.selected == selected {
		return nil
	}
	row.selected = selected
	g.publishSelection()
	return nil
}

// SelectAll checks or unchecks every row, matching the header checkbox.
func (g *Grid) SelectAll(selected bool) {
	changed := false
	for _, r := range g.rows {
		if r.selected != selected {
			r.selected = selected
			changed = true
		}
	}
	if changed {
		g.publishSelection()
	}
}

// SelectedRows returns the selected rows in display order.
func (g *Grid) SelectedRows() []*Row {
	selected := make([]*Row, 0)
	for _, r := range g.rows {
		if r.selected {
			selected = append(selected, r)
		}
	}
	return selected
}

// SelectedCount returns the number of selected rows.
func (g *Grid) SelectedCount() int {
	count := 0
	for _, r := range g.rows {
		if r.selected {
			count++
		}
	}
	return count
}

// HeaderState derives the select-all control's tri-state from the selected
// count against the total row count.
func (g *Grid) HeaderState() HeaderState {
	count := g.SelectedCount()
	switch {
	case count == 0:
		return HeaderNone
	case count == len(g.rows):
		return HeaderAll
	default:
		return HeaderSome
	}
}

// clearSelection unchecks every row without treating it as a user action.
func (g *Grid) clearSelection() {
	changed := false
	for _, r := range g.rows {
		if r.selected {
			r.selected = false
			changed = true
		}
	}
	if changed {
		g.publishSelection()
	}
}

func (g *Grid) publishSelection() {
	g.publish(SelectionEvent{
		Selected: g.SelectedCount(),
		Total:    len(g.rows),
		Header:   g.HeaderState(),
	})
}
