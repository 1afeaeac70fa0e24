// Package grid implements the tabular data component: a row store with
// filtering, sorting, pagination and checkbox selection, plus optional
// persistence of display preferences. The component owns its state; hosts
// render from the accessors and feed user events into the public operations.
package grid

import (
	"fmt"
	"strconv"

	"github.com/quentinmace/datagrid/internal/logger"
	"github.com/quentinmace/datagrid/internal/prefs"
	datagriderrors "github.com/quentinmace/datagrid/pkg/errors"
)

// Order is a sort direction.
type Order string

const (
	// OrderAsc sorts smallest key first.
	OrderAsc Order = "ASC"
	// OrderDesc sorts largest key first.
	OrderDesc Order = "DESC"
)

// Spacing is the row density preference.
type Spacing string

const (
	// SpacingRegular is the default row density.
	SpacingRegular Spacing = "regular"
	// SpacingCondensed is the compact row density.
	SpacingCondensed Spacing = "condensed"
)

// Preference store keys, fixed for the lifetime of the component.
const (
	prefKeyItemsPerPage = "items_per_page"
	prefKeyDensity      = "density"
)

// Options configures a Grid at construction.
type Options struct {
	Sortable        bool
	SortOnLoad      bool
	SortColumn      int
	Order           Order
	Paginate        bool
	ItemsPerPage    int
	SavePreferences bool
}

// DefaultOptions returns the configuration used when the host supplies none.
func DefaultOptions() Options {
	return Options{
		Sortable:     true,
		Order:        OrderAsc,
		ItemsPerPage: 10,
	}
}

// SortState records the last sort applied to the grid.
type SortState struct {
	Column    int
	Ascending bool
	HasSorted bool
}

// filterState tracks the active predicate. A nil matching slice means no
// filter is active and pagination operates over all rows. The column
// restriction is an explicit optional so index zero is a valid restriction.
type filterState struct {
	query    string
	column   *int
	matching []*Row
}

// pageState tracks pagination. active is false until Paginate is called.
type pageState struct {
	active  bool
	size    int
	current int
	total   int
}

// Grid is the tabular data component. A single host instance owns it; it is
// not internally synchronized.
type Grid struct {
	columns []Column
	rows    []*Row
	opts    Options

	sortState SortState
	filter    filterState
	page      pageState
	spacing   Spacing

	store prefs.Store
	log   *logger.Logger

	subscribers map[int]Listener
	nextSubID   int
}

// New constructs a Grid over the given columns and cell data. The store and
// log dependencies are optional and may be nil. Construction fails with a
// ValidationError when the data does not match the column set or the options
// are inconsistent.
func New(columns []Column, data [][]string, opts Options, store prefs.Store, log *logger.Logger) (*Grid, error) {
	if log == nil {
		log = logger.Discard()
	}
	if len(columns) == 0 {
		return nil, datagriderrors.NewValidationError("columns", "at least one column is required", nil)
	}
	for i, row := range data {
		if len(row) != len(columns) {
			return nil, datagriderrors.NewValidationError(
				fmt.Sprintf("rows[%d]", i),
				fmt.Sprintf("has %d cells, expected %d", len(row), len(columns)),
				nil,
			)
		}
	}
	if opts.Order == "" {
		opts.Order = OrderAsc
	}
	if opts.Order != OrderAsc && opts.Order != OrderDesc {
		return nil, datagriderrors.NewValidationError("order", fmt.Sprintf("unknown order %q", opts.Order), nil)
	}
	if opts.Paginate && opts.ItemsPerPage < 1 {
		return nil, datagriderrors.NewValidationError("items_per_page", "must be at least 1 when pagination is enabled", nil)
	}
	if opts.SortOnLoad && (opts.SortColumn < 0 || opts.SortColumn >= len(columns)) {
		return nil, datagriderrors.NewBoundsError("column", opts.SortColumn, len(columns))
	}

	g := &Grid{
		columns:     append([]Column(nil), columns...),
		rows:        make([]*Row, 0, len(data)),
		opts:        opts,
		sortState:   SortState{Column: -1, Ascending: opts.Order == OrderAsc},
		spacing:     SpacingRegular,
		store:       store,
		log:         log.WithComponent("grid"),
		subscribers: make(map[int]Listener),
	}
	for i, cells := range data {
		g.rows = append(g.rows, newRow(i, cells))
	}

	if opts.SavePreferences && store != nil {
		g.applyStoredPreferences()
	}
	if opts.Paginate {
		if err := g.Paginate(g.opts.ItemsPerPage); err != nil {
			return nil, err
		}
	}
	if opts.Sortable && opts.SortOnLoad {
		if err := g.Sort(opts.SortColumn, opts.Order); err != nil {
			return nil, err
		}
	}

	g.log.Debugf("constructed with %d columns, %d rows", len(g.columns), len(g.rows))
	return g, nil
}

// applyStoredPreferences overrides display options with persisted choices.
func (g *Grid) applyStoredPreferences() {
	if raw, ok := g.store.Get(prefKeyItemsPerPage); ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			g.opts.ItemsPerPage = n
		}
	}
	if raw, ok := g.store.Get(prefKeyDensity); ok {
		switch Spacing(raw) {
		case SpacingRegular, SpacingCondensed:
			g.spacing = Spacing(raw)
		}
	}
}

// Columns returns the grid's column definitions.
func (g *Grid) Columns() []Column {
	return append([]Column(nil), g.columns...)
}

// Rows returns the live row sequence in current display order.
func (g *Grid) Rows() []*Row {
	return g.rows
}

// OriginalOrder returns the rows sorted by their immutable original index.
func (g *Grid) OriginalOrder() []*Row {
	ordered := make([]*Row, len(g.rows))
	for _, r := range g.rows {
		ordered[r.index] = r
	}
	return ordered
}

// VisibleRows returns the rows currently shown, in display order.
func (g *Grid) VisibleRows() []*Row {
	visible := make([]*Row, 0, len(g.rows))
	for _, r := range g.rows {
		if r.visible {
			visible = append(visible, r)
		}
	}
	return visible
}

// FilteredRows returns the rows matching the active filter, or nil when no
// filter is active.
func (g *Grid) FilteredRows() []*Row {
	if g.filter.matching == nil {
		return nil
	}
	return append([]*Row(nil), g.filter.matching...)
}

// SortOrder returns the current sort state.
func (g *Grid) SortOrder() SortState {
	return g.sortState
}

// Sortable reports whether sorting is enabled grid-wide.
func (g *Grid) Sortable() bool {
	return g.opts.Sortable
}

// Spacing returns the current row density.
func (g *Grid) Spacing() Spacing {
	return g.spacing
}

// ToggleSpacing flips the row density and persists the choice when
// preference saving is enabled.
func (g *Grid) ToggleSpacing() Spacing {
	if g.spacing == SpacingRegular {
		g.spacing = SpacingCondensed
	} else {
		g.spacing = SpacingRegular
	}
	g.savePreference(prefKeyDensity, string(g.spacing))
	return g.spacing
}

// savePreference writes a key when a store is attached and saving is enabled.
func (g *Grid) savePreference(key, value string) {
	if !g.opts.SavePreferences || g.store == nil {
		return
	}
	if err := g.store.Set(key, value); err != nil {
		g.log.Error(err, "failed to persist preference "+key)
	}
}

// universe returns the row set pagination operates over: the filtered subset
// when a filter is active, otherwise all rows in display order.
func (g *Grid) universe() []*Row {
	if g.filter.matching != nil {
		return g.filter.matching
	}
	return g.rows
}

// project recomputes row visibility from the current filter and pagination
// state. Visibility is always a pure projection of that state.
func (g *Grid) project() {
	if g.page.active {
		g.projectPage()
		return
	}
	if g.filter.matching == nil {
		for _, r := range g.rows {
			r.visible = true
		}
		return
	}
	inUniverse := make(map[*Row]struct{}, len(g.filter.matching))
	for _, r := range g.filter.matching {
		inUniverse[r] = struct{}{}
	}
	for _, r := range g.rows {
		_, ok := inUniverse[r]
		r.visible = ok
	}
}
