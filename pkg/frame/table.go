// Package frame turns FMP JSON responses into normalized tables.
//
// A Table is a small column-oriented structure: named columns, one row per
// API record, and an optional row key (the index). Tables are never modified
// in place; every transformation returns a new Table.
package frame

import (
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table is a normalized response table.
type Table struct {
	columns   []any
	colName   string
	index     []any // nil means ordinal row numbers
	indexName string
	rows      [][]any
}

// FromRecords builds a table with one column per distinct key observed across
// records, in first-seen order, and one row per record. Keys are converted
// with mode; missing keys become nil cells.
func FromRecords(records []Record, mode KeyMode) *Table {
	t := &Table{}
	pos := make(map[string]int)
	for _, rec := range records {
		for _, f := range rec {
			name := normalizeColumn(f.Key, mode)
			if _, ok := pos[name]; !ok {
				pos[name] = len(t.columns)
				t.columns = append(t.columns, name)
			}
		}
	}

	t.rows = make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(t.columns))
		for _, f := range rec {
			row[pos[normalizeColumn(f.Key, mode)]] = f.Value
		}
		t.rows[i] = row
	}
	return t
}

// FromRecord promotes a single record to a one-row table.
func FromRecord(rec Record, mode KeyMode) *Table {
	return FromRecords([]Record{rec}, mode)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool { return len(t.rows) == 0 }

// Columns returns the column labels as text.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = formatCell(c)
	}
	return out
}

// HasColumn reports whether name is a data column.
func (t *Table) HasColumn(name string) bool {
	return t.columnPos(name) >= 0
}

// IndexName returns the name of the designated index column, if any.
func (t *Table) IndexName() string { return t.indexName }

// HasIndex reports whether rows are keyed by something other than ordinal position.
func (t *Table) HasIndex() bool { return t.index != nil }

// Index returns the row labels. Tables without a designated index return
// ordinal positions.
func (t *Table) Index() []any {
	if t.index != nil {
		return append([]any(nil), t.index...)
	}
	out := make([]any, len(t.rows))
	for i := range out {
		out[i] = i
	}
	return out
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]any, bool) {
	c := t.columnPos(name)
	if c < 0 {
		return nil, false
	}
	out := make([]any, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[c]
	}
	return out, true
}

// At returns the cell at row i of the named column.
func (t *Table) At(i int, column string) (any, bool) {
	c := t.columnPos(column)
	if c < 0 || i < 0 || i >= len(t.rows) {
		return nil, false
	}
	return t.rows[i][c], true
}

// Lookup returns the cell of column in the first row whose index label equals key.
func (t *Table) Lookup(key any, column string) (any, bool) {
	c := t.columnPos(column)
	if c < 0 {
		return nil, false
	}
	for i, label := range t.Index() {
		if labelsEqual(label, key) {
			return t.rows[i][c], true
		}
	}
	return nil, false
}

// Row returns row i as a record of column label to value.
func (t *Table) Row(i int) Record {
	cols := t.Columns()
	rec := make(Record, len(cols))
	for c, name := range cols {
		rec[c] = Field{Key: name, Value: t.rows[i][c]}
	}
	return rec
}

// Records returns every row as a record. When the table has an index it is
// included as the first field.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.rows))
	idxKey := t.indexName
	if idxKey == "" {
		idxKey = "index"
	}
	for i := range t.rows {
		rec := t.Row(i)
		if t.index != nil {
			rec = append(Record{{Key: idxKey, Value: t.index[i]}}, rec...)
		}
		out[i] = rec
	}
	return out
}

// MarshalJSON encodes the table as a list of records.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Records())
}

// Equal reports whether two tables hold the same labels and cells.
func (t *Table) Equal(o *Table) bool {
	if t.indexName != o.indexName || t.colName != o.colName {
		return false
	}
	if !labelSliceEqual(t.columns, o.columns) || !labelSliceEqual(t.Index(), o.Index()) {
		return false
	}
	if len(t.rows) != len(o.rows) {
		return false
	}
	for i := range t.rows {
		if !labelSliceEqual(t.rows[i], o.rows[i]) {
			return false
		}
	}
	return true
}

// Render writes the table, index first, in a human readable layout.
func (t *Table) Render(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	header := table.Row{}
	if t.index != nil {
		header = append(header, t.indexName)
	}
	for _, c := range t.Columns() {
		header = append(header, c)
	}
	tw.AppendHeader(header)

	for i, row := range t.rows {
		r := table.Row{}
		if t.index != nil {
			r = append(r, formatCell(t.index[i]))
		}
		for _, v := range row {
			r = append(r, formatCell(v))
		}
		tw.AppendRow(r)
	}
	tw.AppendFooter(table.Row{strconv.Itoa(len(t.rows)) + " rows"})
	tw.Render()
}

func (t *Table) columnPos(name string) int {
	for i, c := range t.columns {
		if s, ok := c.(string); ok {
			if s == name {
				return i
			}
			continue
		}
		// transposed tables carry non-string labels
		if formatCell(c) == name {
			return i
		}
	}
	return -1
}

// clone copies the table structure; cell values are shared.
func (t *Table) clone() *Table {
	out := &Table{
		columns:   append([]any(nil), t.columns...),
		colName:   t.colName,
		indexName: t.indexName,
		rows:      make([][]any, len(t.rows)),
	}
	if t.index != nil {
		out.index = append([]any(nil), t.index...)
	}
	for i, row := range t.rows {
		out.rows[i] = append([]any(nil), row...)
	}
	return out
}

func labelSliceEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !labelsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
