package grid

import (
	"strconv"

	datagriderrors "github.com/quentinmace/datagrid/pkg/errors"
)

// Paginate enables pagination with the given page size, resets to page one
// and shows exactly the first page of the active row universe. The page size
// is persisted when preference saving is enabled. Emits a PaginatedEvent.
func (g *Grid) Paginate(pageSize int) error {
	if pageSize < 1 {
		return datagriderrors.NewValidationError("page_size", "must be at least 1", nil)
	}
	g.page.active = true
	g.page.size = pageSize
	g.opts.ItemsPerPage = pageSize
	g.savePreference(prefKeyItemsPerPage, strconv.Itoa(pageSize))
	g.repaginate(true)
	return nil
}

// NextPage advances to the next page. On the last page it is a no-op.
func (g *Grid) NextPage() {
	if !g.CanNextPage() {
		return
	}
	g.page.current++
	g.projectPage()
	g.publish(PaginatedEvent{Page: g.page.current, Items: g.pageSlice()})
	g.log.Debugf("page %d of %d", g.page.current, g.page.total)
}

// PrevPage retreats to the previous page. On page one it is a no-op.
func (g *Grid) PrevPage() {
	if !g.CanPrevPage() {
		return
	}
	g.page.current--
	g.projectPage()
	g.publish(PaginatedEvent{Page: g.page.current, Items: g.pageSlice()})
	g.log.Debugf("page %d of %d", g.page.current, g.page.total)
}

// CanNextPage reports whether the next-page control should be enabled.
func (g *Grid) CanNextPage() bool {
	return g.page.active && g.page.current < g.page.total
}

// CanPrevPage reports whether the previous-page control should be enabled.
func (g *Grid) CanPrevPage() bool {
	return g.page.active && g.page.current > 1
}

// CurrentPage returns the 1-based current page, or 0 when pagination is off.
func (g *Grid) CurrentPage() int {
	if !g.page.active {
		return 0
	}
	return g.page.current
}

// PageCount returns the total number of pages, or 0 when pagination is off.
func (g *Grid) PageCount() int {
	if !g.page.active {
		return 0
	}
	return g.page.total
}

// ItemsPerPage returns the configured page size.
func (g *Grid) ItemsPerPage() int {
	return g.opts.ItemsPerPage
}

// repaginate recomputes the page count from the active universe, optionally
// resets to page one, clamps the current page and re-projects visibility.
// Called after every filter, sort or page-size change so stale visibility
// never persists.
func (g *Grid) repaginate(resetPage bool) {
	universe := g.universe()
	g.page.total = (len(universe) + g.page.size - 1) / g.page.size
	if g.page.total < 1 {
		// An empty universe still has one (empty) page so the invariant
		// 1 <= current <= total holds.
		g.page.total = 1
	}
	if resetPage || g.page.current < 1 {
		g.page.current = 1
	}
	if g.page.current > g.page.total {
		g.page.current = g.page.total
	}
	g.projectPage()
	g.publish(PaginatedEvent{Page: g.page.current, Items: g.pageSlice()})
}

// pageSlice returns the current page's rows from the active universe.
func (g *Grid) pageSlice() []*Row {
	universe := g.universe()
	start := g.page.size * (g.page.current - 1)
	if start >= len(universe) {
		return nil
	}
	end := start + g.page.size
	if end > len(universe) {
		end = len(universe)
	}
	return universe[start:end]
}

// projectPage makes exactly the current page's slice visible.
func (g *Grid) projectPage() {
	slice := g.pageSlice()
	onPage := make(map[*Row]struct{}, len(slice))
	for _, r := range slice {
		onPage[r] = struct{}{}
	}
	for _, r := range g.rows {
		_, ok := onPage[r]
		r.visible = ok
	}
}
