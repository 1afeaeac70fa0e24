package grid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	datagriderrors "github.com/quentinmace/datagrid/pkg/errors"
)

var (
	collatorOnce sync.Once
	collatorInst *collate.Collator
)

// collator returns the shared text comparator: locale-aware, numeric-aware
// (so "item2" sorts before "item10") and case-insensitive.
func collator() *collate.Collator {
	collatorOnce.Do(func() {
		collatorInst = collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
	})
	return collatorInst
}

// dateKey is a parsed calendar date used as a sort key.
type dateKey struct {
	year, month, day int
}

func (d dateKey) compare(other dateKey) int {
	if d.year != other.year {
		return d.year - other.year
	}
	if d.month != other.month {
		return d.month - other.month
	}
	return d.day - other.day
}

// ToggleSort sorts the given column, flipping the direction on each
// activation the way a repeated header click does.
func (g *Grid) ToggleSort(column int) error {
	ascending := !g.sortState.Ascending
	if !g.sortState.HasSorted || g.sortState.Column != column {
		ascending = true
	}
	order := OrderAsc
	if !ascending {
		order = OrderDesc
	}
	return g.Sort(column, order)
}

// Sort reorders the rows in place by the given column and direction. It
// fails with a ValidationError when sorting is disabled grid-wide. The
// sort is stable, so rows with equal keys keep their relative order. For date
// columns every cell is parsed before any reordering happens; a malformed
// cell or a missing format fails with a FormatError and leaves the order
// untouched. With pagination active the current page is re-sliced against the
// new order. Emits a SortedEvent on success.
func (g *Grid) Sort(column int, order Order) error {
	if !g.opts.Sortable {
		return datagriderrors.NewValidationError("sortable", "sorting is disabled", nil)
	}
	if column < 0 || column >= len(g.columns) {
		return datagriderrors.NewBoundsError("column", column, len(g.columns))
	}
	col := g.columns[column]
	if !col.Sortable {
		return datagriderrors.NewValidationError(
			fmt.Sprintf("columns[%d]", column),
			"column is not sortable",
			nil,
		)
	}

	ascending := order == OrderAsc

	switch col.Type {
	case ColumnDate:
		keys, err := g.dateKeys(column, col.DateFormat)
		if err != nil {
			return err
		}
		sort.SliceStable(g.rows, func(i, j int) bool {
			cmp := keys[g.rows[i]].compare(keys[g.rows[j]])
			if ascending {
				return cmp < 0
			}
			return cmp > 0
		})
	default:
		c := collator()
		sort.SliceStable(g.rows, func(i, j int) bool {
			cmp := c.CompareString(g.rows[i].Cell(column), g.rows[j].Cell(column))
			if ascending {
				return cmp < 0
			}
			return cmp > 0
		})
	}

	g.sortState = SortState{Column: column, Ascending: ascending, HasSorted: true}
	g.resyncFilterOrder()
	if g.page.active {
		// Sorting changes which rows fall into the current page's slice.
		g.repaginate(false)
	}
	g.publish(SortedEvent{Column: column, Direction: order})
	g.log.Debugf("sorted column %d %s", column, order)
	return nil
}

// dateKeys parses every row's cell in the column up front so a failed sort
// never commits a partial reorder.
func (g *Grid) dateKeys(column int, format DateFormat) (map[*Row]dateKey, error) {
	if !format.Valid() {
		return nil, datagriderrors.NewFormatError(column, "", "", nil)
	}
	keys := make(map[*Row]dateKey, len(g.rows))
	for _, r := range g.rows {
		key, err := parseDate(r.Cell(column), format)
		if err != nil {
			return nil, datagriderrors.NewFormatError(column, string(format), r.Cell(column), err)
		}
		keys[r] = key
	}
	return keys, nil
}

// parseDate splits a cell on '.', '-' or '/' delimiters and maps the three
// numeric tokens into a calendar date according to the format's token order.
func parseDate(value string, format DateFormat) (dateKey, error) {
	tokens := strings.FieldsFunc(value, func(r rune) bool {
		return r == '.' || r == '-' || r == '/'
	})
	if len(tokens) != 3 {
		return dateKey{}, fmt.Errorf("expected three date tokens, got %d", len(tokens))
	}

	parts := make([]int, 3)
	for i, token := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return dateKey{}, fmt.Errorf("token %q is not numeric", token)
		}
		parts[i] = n
	}

	yearPos, monthPos, dayPos := format.positions()
	return dateKey{year: parts[yearPos], month: parts[monthPos], day: parts[dayPos]}, nil
}
