package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequenceData(n int) [][]string {
	data := make([][]string, 0, n)
	for i := 1; i <= n; i++ {
		data = append(data, []string{fmt.Sprintf("row%d", i)})
	}
	return data
}

func TestPaginateSevenRowsByThree(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, textColumns("name"), sequenceData(7), DefaultOptions())
	require.NoError(t, g.Paginate(3))

	assert.Equal(t, 3, g.PageCount())
	assert.Equal(t, 1, g.CurrentPage())
	assert.Equal(t, []string{"row1", "row2", "row3"}, firstCells(g.VisibleRows()))

	g.NextPage()
	assert.Equal(t, []string{"row4", "row5", "row6"}, firstCells(g.VisibleRows()))

	g.NextPage()
	assert.Equal(t, 3, g.CurrentPage())
	assert.Equal(t, []string{"row7"}, firstCells(g.VisibleRows()))

	// Last page: advancing is a no-op.
	g.NextPage()
	assert.Equal(t, 3, g.CurrentPage())
	assert.Equal(t, []string{"row7"}, firstCells(g.VisibleRows()))
}

func TestPrevPageOnFirstPageIsNoOp(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, textColumns("name"), sequenceData(5), DefaultOptions())
	require.NoError(t, g.Paginate(2))

	g.PrevPage()

	assert.Equal(t, 1, g.CurrentPage())
	assert.Equal(t, []string{"row1", "row2"}, firstCells(g.VisibleRows()))
}

func TestPaginationCoversUniverseExactlyOnce(t *testing.T) {
	t.Parallel()

	for _, pageSize := range []int{1, 2, 3, 4, 7, 10} {
		t.Run(fmt.Sprintf("pageSize=%d", pageSize), func(t *testing.T) {
			t.Parallel()

			g := mustGrid(t, textColumns("name"), sequenceData(7), DefaultOptions())
			require.NoError(t, g.Paginate(pageSize))

			wantPages := (7 + pageSize - 1) / pageSize
			assert.Equal(t, wantPages, g.PageCount())

			seen := make(map[string]int)
			for {
				for _, cell := range firstCells(g.VisibleRows()) {
					seen[cell]++
				}
				if !g.CanNextPage() {
					break
				}
				g.NextPage()
			}

			require.Len(t, seen, 7)
			for cell, count := range seen {
				assert.Equal(t, 1, count, "row %s appeared %d times", cell, count)
			}
		})
	}
}

func TestPaginateRejectsInvalidPageSize(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, textColumns("name"), sequenceData(3), DefaultOptions())

	require.Error(t, g.Paginate(0))
	require.Error(t, g.Paginate(-2))
}

func TestSinglePageDisablesBothControls(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, textColumns("name"), sequenceData(3), DefaultOptions())
	require.NoError(t, g.Paginate(10))

	assert.Equal(t, 1, g.PageCount())
	assert.False(t, g.CanNextPage())
	assert.False(t, g.CanPrevPage())
	assert.Len(t, g.VisibleRows(), 3)
}

func TestPaginateEmptyUniverse(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, textColumns("name"), nil, DefaultOptions())
	require.NoError(t, g.Paginate(5))

	assert.Equal(t, 1, g.PageCount())
	assert.Equal(t, 1, g.CurrentPage())
	assert.Empty(t, g.VisibleRows())
	assert.False(t, g.CanNextPage())
	assert.False(t, g.CanPrevPage())
}

func TestPaginateOverFilteredUniverse(t *testing.T) {
	t.Parallel()

	data := [][]string{
		{"alpha one"},
		{"beta"},
		{"alpha two"},
		{"gamma"},
		{"alpha three"},
	}
	g := mustGrid(t, textColumns("name"), data, DefaultOptions())
	require.NoError(t, g.Paginate(2))

	g.Filter("alpha")

	assert.Equal(t, 2, g.PageCount())
	assert.Equal(t, []string{"alpha one", "alpha two"}, firstCells(g.VisibleRows()))

	g.NextPage()
	assert.Equal(t, []string{"alpha three"}, firstCells(g.VisibleRows()))
}

func TestPaginatedEventCarriesPageAndItems(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, textColumns("name"), sequenceData(5), DefaultOptions())

	var got []PaginatedEvent
	g.Subscribe(func(ev Event) {
		if paged, ok := ev.(PaginatedEvent); ok {
			got = append(got, paged)
		}
	})

	require.NoError(t, g.Paginate(2))
	g.NextPage()

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Page)
	assert.Equal(t, []string{"row1", "row2"}, firstCells(got[0].Items))
	assert.Equal(t, 2, got[1].Page)
	assert.Equal(t, []string{"row3", "row4"}, firstCells(got[1].Items))
}

func TestClampCurrentPageWhenUniverseShrinks(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, textColumns("name"), sequenceData(9), DefaultOptions())
	require.NoError(t, g.Paginate(3))
	g.NextPage()
	g.NextPage()
	require.Equal(t, 3, g.CurrentPage())

	// Shrinking the page size recomputes against page one.
	require.NoError(t, g.Paginate(5))
	assert.Equal(t, 1, g.CurrentPage())
	assert.Equal(t, 2, g.PageCount())
}
