// Package viewer is the interactive host for the grid component. It renders
// the visible page, feeds key events into the grid's public API and shows the
// grid's emitted notifications in the status bar.
package viewer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quentinmace/datagrid/internal/grid"
	"github.com/quentinmace/datagrid/internal/logger"
)

// Model is the viewer's bubbletea model.
type Model struct {
	grid *grid.Grid
	name string

	// UI state
	cursor      int // position within the visible rows
	sortCol     int // column the sort cursor points at
	filtering   bool
	filterInput textinput.Model

	// Last grid notifications, drained into the status line each update.
	events *eventSink

	// Dimensions
	width  int
	height int

	status string
	errMsg string

	log *logger.Logger
}

// eventSink collects grid events emitted during an update. The model value is
// copied by bubbletea, so the sink is shared by pointer.
type eventSink struct {
	pending []grid.Event
}

func (s *eventSink) drain() []grid.Event {
	events := s.pending
	s.pending = nil
	return events
}

// NewModel creates a viewer over a constructed grid.
func NewModel(g *grid.Grid, name string, log *logger.Logger) Model {
	if log == nil {
		log = logger.Discard()
	}

	input := textinput.New()
	input.Placeholder = "filter rows"
	input.Prompt = "/ "
	input.CharLimit = 120

	sink := &eventSink{}
	g.Subscribe(func(ev grid.Event) {
		sink.pending = append(sink.pending, ev)
	})

	return Model{
		grid:        g,
		name:        name,
		filterInput: input,
		events:      sink,
		width:       80,
		height:      24,
		log:         log.WithComponent("viewer"),
	}
}

// Init satisfies tea.Model. The grid is fully constructed, nothing to load.
func (m Model) Init() tea.Cmd {
	return nil
}

// Grid exposes the underlying component, mainly for tests.
func (m Model) Grid() *grid.Grid {
	return m.grid
}

// clampCursor keeps the row cursor inside the visible slice.
func (m *Model) clampCursor() {
	visible := len(m.grid.VisibleRows())
	if visible == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// displayPosition maps a visible-row cursor to the row's position in the
// grid's display order.
func (m *Model) displayPosition(visibleIndex int) (int, bool) {
	visible := m.grid.VisibleRows()
	if visibleIndex < 0 || visibleIndex >= len(visible) {
		return 0, false
	}
	target := visible[visibleIndex]
	for i, r := range m.grid.Rows() {
		if r == target {
			return i, true
		}
	}
	return 0, false
}
