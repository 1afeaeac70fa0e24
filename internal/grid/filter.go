package grid

import (
	"strings"

	datagriderrors "github.com/quentinmace/datagrid/pkg/errors"
)

// Filter applies a case-insensitive containment predicate across every cell
// of each row and returns the matching subset in display order. An empty
// query clears the filter entirely, restoring the full row set as the
// pagination universe. Side effect: exactly the matching rows (or, with
// pagination active, the first page of them) become visible.
func (g *Grid) Filter(query string) []*Row {
	return g.applyFilter(query, nil)
}

// FilterColumn behaves like Filter but restricts matching to a single cell.
// The restriction is explicit, so column zero is a valid target. Out-of-range
// columns fail fast with a BoundsError and leave all state unchanged.
func (g *Grid) FilterColumn(query string, column int) ([]*Row, error) {
	if column < 0 || column >= len(g.columns) {
		return nil, datagriderrors.NewBoundsError("column", column, len(g.columns))
	}
	return g.applyFilter(query, &column), nil
}

func (g *Grid) applyFilter(query string, column *int) []*Row {
	// Any change to the predicate invalidates selection bookkeeping, since
	// the visible universe no longer corresponds to what was selected. An
	// empty query means no filter regardless of any column restriction, so
	// empty-to-empty is never a change.
	changed := query != g.filter.query || !sameColumnRestriction(column, g.filter.column)
	if query == "" && g.filter.query == "" {
		changed = false
	}
	if changed {
		g.clearSelection()
	}

	if query == "" {
		g.filter = filterState{}
		if g.page.active {
			g.repaginate(true)
		} else {
			g.project()
		}
		g.publish(FilteredEvent{Query: "", Matches: len(g.rows)})
		g.log.Debugf("filter cleared, %d rows restored", len(g.rows))
		return g.rows
	}

	needle := strings.ToLower(query)
	matching := make([]*Row, 0, len(g.rows))
	for _, r := range g.rows {
		target := r.text()
		if column != nil {
			target = r.Cell(*column)
		}
		if strings.Contains(strings.ToLower(target), needle) {
			matching = append(matching, r)
		}
	}

	g.filter = filterState{query: query, column: column, matching: matching}
	if g.page.active {
		g.repaginate(true)
	} else {
		g.project()
	}
	g.publish(FilteredEvent{Query: query, Column: column, Matches: len(matching)})
	g.log.Debugf("filter %q matched %d of %d rows", query, len(matching), len(g.rows))
	return matching
}

// resyncFilterOrder rebuilds the matching slice in current display order.
// Sorting reorders rows in place, so the stored universe has to follow.
func (g *Grid) resyncFilterOrder() {
	if g.filter.matching == nil {
		return
	}
	inUniverse := make(map[*Row]struct{}, len(g.filter.matching))
	for _, r := range g.filter.matching {
		inUniverse[r] = struct{}{}
	}
	reordered := make([]*Row, 0, len(g.filter.matching))
	for _, r := range g.rows {
		if _, ok := inUniverse[r]; ok {
			reordered = append(reordered, r)
		}
	}
	g.filter.matching = reordered
}

func sameColumnRestriction(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
