package grid

import "strings"

// ColumnType is the comparison hint for a column's cells.
type ColumnType int

const (
	// ColumnText compares cells with locale-aware, numeric-aware collation.
	ColumnText ColumnType = iota
	// ColumnDate parses cells as calendar dates using the column's DateFormat.
	ColumnDate
)

// String returns the string representation of a ColumnType.
func (ct ColumnType) String() string {
	switch ct {
	case ColumnText:
		return "text"
	case ColumnDate:
		return "date"
	default:
		return "unknown"
	}
}

// DateFormat describes the token order of a date column's cells.
type DateFormat string

const (
	// DateDMY orders tokens day, month, year.
	DateDMY DateFormat = "DMY"
	// DateMDY orders tokens month, day, year.
	DateMDY DateFormat = "MDY"
	// DateYMD orders tokens year, month, day.
	DateYMD DateFormat = "YMD"
	// DateYDM orders tokens year, day, month.
	DateYDM DateFormat = "YDM"
)

// Valid reports whether the format is one of the recognised token orders.
func (f DateFormat) Valid() bool {
	switch f {
	case DateDMY, DateMDY, DateYMD, DateYDM:
		return true
	}
	return false
}

// positions returns the token index of the year, month and day components.
func (f DateFormat) positions() (year, month, day int) {
	switch f {
	case DateDMY:
		return 2, 1, 0
	case DateMDY:
		return 2, 0, 1
	case DateYMD:
		return 0, 1, 2
	case DateYDM:
		return 0, 2, 1
	}
	return 0, 1, 2
}

// Column describes a single grid column.
type Column struct {
	Title      string
	Sortable   bool
	Type       ColumnType
	DateFormat DateFormat
}

// Row is one logical record. Its identity is the original position it was
// captured at; sorting reorders the sequence of Row references, never the
// contents of a Row.
type Row struct {
	cells    []string
	index    int
	visible  bool
	selected bool
}

// newRow captures a record at its original position.
func newRow(index int, cells []string) *Row {
	copied := make([]string, len(cells))
	copy(copied, cells)
	return &Row{cells: copied, index: index, visible: true}
}

// Cells returns a copy of the row's cell values.
func (r *Row) Cells() []string {
	copied := make([]string, len(r.cells))
	copy(copied, r.cells)
	return copied
}

// Cell returns the value at the given column. Callers are expected to have
// bounds-checked the column against the grid's column set.
func (r *Row) Cell(column int) string {
	return r.cells[column]
}

// Index returns the row's original position. It never changes.
func (r *Row) Index() int {
	return r.index
}

// Visible reports whether the row is part of the currently shown slice.
func (r *Row) Visible() bool {
	return r.visible
}

// Selected reports whether the row's checkbox is checked.
func (r *Row) Selected() bool {
	return r.selected
}

// text returns the row's concatenated cell text for whole-row matching.
func (r *Row) text() string {
	return strings.Join(r.cells, " ")
}
