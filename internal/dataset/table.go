// Package dataset provides an ordered, immutable tabular dataset with a
// dynamic column set. Account CSVs vary by column across environments, so
// rows are generic records rather than fixed structs.
package dataset

import (
	"strconv"
	"strings"
)

// Row is a single record keyed by column name. Cell values are the raw
// strings from the source table. Rows are shared between a table and the
// narrowed tables derived from it and must not be mutated.
type Row map[string]string

// Float returns the cell in the given column parsed as a float64. The
// second return value is false when the cell is absent or not numeric.
func (r Row) Float(column string) (float64, bool) {
	raw, ok := r[column]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Get returns the cell in the given column, and whether the column exists
// on this row.
func (r Row) Get(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// Table is an ordered collection of rows over a column set. Tables are
// values: narrowing operations return new tables sharing row storage and
// never modify the receiver.
type Table struct {
	columns []string
	rows    []Row
}

// New creates a table from a column list and rows.
func New(columns []string, rows []Row) Table {
	return Table{columns: columns, rows: rows}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.rows) == 0
}

// Columns returns a copy of the column names in source order.
func (t Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the named column exists in the table.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Row returns the i-th row.
func (t Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns the rows in order. The returned slice is a copy; the rows
// themselves are shared.
func (t Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Select returns a new table containing the rows for which pred is true,
// preserving relative order. The result shares row storage with the
// receiver.
func (t Table) Select(pred func(Row) bool) Table {
	kept := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		if pred(row) {
			kept = append(kept, row)
		}
	}
	return Table{columns: t.columns, rows: kept}
}

// Column returns the values of the named column in row order. Rows missing
// the column contribute an empty string.
func (t Table) Column(name string) []string {
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[name]
	}
	return out
}
