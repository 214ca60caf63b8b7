// Package table provides the in-memory structured table that the vizu
// preparers consume and produce.
//
// A Table is a small row-major store with ordered, named columns. Cells are
// loosely typed: numeric measures are float64, labels are strings, and an
// unset cell is nil. This mirrors the shape of the tabular inputs the
// library targets (one column per named field, one column per time period
// in wide format) without committing callers to any file format.
//
// Note: Table is NOT thread-safe. Each table should be mutated by a single
// goroutine at a time.
package table

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/vizu/errs"
)

// Table is an ordered-column, row-major structured table.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]any
}

// New creates an empty table with the given ordered column names.
func New(columns ...string) *Table {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}

	return &Table{
		cols:  append([]string(nil), columns...),
		index: index,
		rows:  make([][]any, 0),
	}
}

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// RequireColumns verifies that every named column exists, failing fast with
// the first missing field name.
func (t *Table) RequireColumns(names ...string) error {
	for _, name := range names {
		if !t.HasColumn(name) {
			return fmt.Errorf("%w: %q", errs.ErrMissingColumn, name)
		}
	}

	return nil
}

// AppendRow appends one row of cells. The number of cells must match the
// number of columns.
func (t *Table) AppendRow(cells ...any) error {
	if len(cells) != len(t.cols) {
		return fmt.Errorf("%w: row has %d cells, table has %d columns",
			errs.ErrInvalidInput, len(cells), len(t.cols))
	}
	t.rows = append(t.rows, append([]any(nil), cells...))

	return nil
}

// At returns the cell at the given row and column index. An unset cell is
// nil.
func (t *Table) At(row, col int) any {
	return t.rows[row][col]
}

// Cell returns the cell at the given row for the named column, or nil if
// the column does not exist.
func (t *Table) Cell(row int, column string) any {
	idx, ok := t.index[column]
	if !ok {
		return nil
	}

	return t.rows[row][idx]
}

// Float returns the cell at (row, col) coerced to float64.
//
// Numeric cells (float64, int, int64) and numeric string literals coerce
// directly. An unset (nil) or non-numeric cell returns ok=false. A NaN
// cell is a valid float64 and returns ok=true; callers that care must
// check math.IsNaN on the result.
func (t *Table) Float(row, col int) (float64, bool) {
	switch v := t.rows[row][col].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String returns the cell at (row, col) rendered as a string. An unset
// cell renders as the empty string; an integral float renders without a
// decimal point.
func (t *Table) String(row, col int) string {
	switch v := t.rows[row][col].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Clone returns a deep copy of the table. Mutating the clone never affects
// the original; the session facade relies on this to keep the caller's
// input untouched.
func (t *Table) Clone() *Table {
	clone := New(t.cols...)
	clone.rows = make([][]any, len(t.rows))
	for i, row := range t.rows {
		clone.rows[i] = append([]any(nil), row...)
	}

	return clone
}

// Filter returns a new table containing the rows for which keep returns
// true, in their original order.
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := New(t.cols...)
	for i := range t.rows {
		if keep(i) {
			out.rows = append(out.rows, append([]any(nil), t.rows[i]...))
		}
	}

	return out
}
