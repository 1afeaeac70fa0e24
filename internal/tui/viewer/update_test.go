package viewer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quentinmace/datagrid/internal/grid"
)

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()

	columns := []grid.Column{
		{Title: "Name", Sortable: true, Type: grid.ColumnText},
		{Title: "Score", Sortable: true, Type: grid.ColumnText},
	}
	data := [][]string{
		{"Charlie", "30"},
		{"alice", "5"},
		{"Bob", "100"},
	}

	g, err := grid.New(columns, data, grid.DefaultOptions(), nil, nil)
	require.NoError(t, err)
	return g
}

func testModel(t *testing.T) Model {
	t.Helper()
	return NewModel(testGrid(t), "people", nil)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func updateKeys(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestUpdateWindowSize(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t), tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestSortKeyTogglesSortOnCursorColumn(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t), keyRunes("s"))

	state := m.Grid().SortOrder()
	assert.True(t, state.HasSorted)
	assert.Equal(t, 0, state.Column)
	assert.True(t, state.Ascending)

	m = updateKeys(t, m, keyRunes("s"))
	assert.False(t, m.Grid().SortOrder().Ascending)
}

func TestArrowKeysMoveSortCursor(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t), tea.KeyMsg{Type: tea.KeyRight}, keyRunes("s"))

	assert.Equal(t, 1, m.Grid().SortOrder().Column)

	// Cursor clamps at the last column.
	m = updateKeys(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.sortCol)
}

func TestPageKeys(t *testing.T) {
	t.Parallel()

	g := testGrid(t)
	require.NoError(t, g.Paginate(2))
	m := NewModel(g, "people", nil)

	m = updateKeys(t, m, keyRunes("n"))
	assert.Equal(t, 2, m.Grid().CurrentPage())

	m = updateKeys(t, m, keyRunes("p"))
	assert.Equal(t, 1, m.Grid().CurrentPage())

	// Boundary no-op.
	m = updateKeys(t, m, keyRunes("p"))
	assert.Equal(t, 1, m.Grid().CurrentPage())
}

func TestSpaceTogglesRowUnderCursor(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t), tea.KeyMsg{Type: tea.KeyDown}, keyRunes(" "))

	selected := m.Grid().SelectedRows()
	require.Len(t, selected, 1)
	assert.Equal(t, "alice", selected[0].Cell(0))

	m = updateKeys(t, m, keyRunes(" "))
	assert.Empty(t, m.Grid().SelectedRows())
}

func TestSelectAllKey(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t), keyRunes("a"))
	assert.Equal(t, grid.HeaderAll, m.Grid().HeaderState())

	m = updateKeys(t, m, keyRunes("a"))
	assert.Equal(t, grid.HeaderNone, m.Grid().HeaderState())
}

func TestDensityKey(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t), keyRunes("d"))

	assert.Equal(t, grid.SpacingCondensed, m.Grid().Spacing())
	assert.Contains(t, m.status, "condensed")
}

func TestFilterFlow(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t), keyRunes("/"))
	require.True(t, m.filtering)

	m = updateKeys(t, m, keyRunes("bob"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.filtering)
	require.Len(t, m.Grid().VisibleRows(), 1)
	assert.Equal(t, "Bob", m.Grid().VisibleRows()[0].Cell(0))
	assert.Contains(t, m.status, "matched 1")
}

func TestEscClearsFilter(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t),
		keyRunes("/"), keyRunes("bob"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.Grid().VisibleRows(), 1)

	m = updateKeys(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Len(t, m.Grid().VisibleRows(), 3)
	assert.Empty(t, m.filterInput.Value())
}

func TestCursorClampsToVisibleRows(t *testing.T) {
	t.Parallel()

	m := updateKeys(t, testModel(t),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 2, m.cursor)

	m = updateKeys(t, m, keyRunes("/"), keyRunes("bob"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, m.cursor)
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	_, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
