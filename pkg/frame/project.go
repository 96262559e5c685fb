package frame

// Drop removes the named data columns. Every name must exist.
func (t *Table) Drop(names ...string) (*Table, error) {
	if len(names) == 0 {
		return t, nil
	}
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		c := t.columnPos(name)
		if c < 0 {
			return nil, &ColumnNotFoundError{Column: name, Op: "drop"}
		}
		drop[c] = true
	}

	out := &Table{
		colName:   t.colName,
		indexName: t.indexName,
		rows:      make([][]any, len(t.rows)),
	}
	if t.index != nil {
		out.index = append([]any(nil), t.index...)
	}
	for c, label := range t.columns {
		if !drop[c] {
			out.columns = append(out.columns, label)
		}
	}
	for i, row := range t.rows {
		kept := make([]any, 0, len(out.columns))
		for c, v := range row {
			if !drop[c] {
				kept = append(kept, v)
			}
		}
		out.rows[i] = kept
	}
	return out, nil
}

// Transpose swaps rows and columns: the row labels become column labels and
// the column labels become the index. Transposing twice restores the table.
func (t *Table) Transpose() *Table {
	out := &Table{
		columns:   t.Index(),
		colName:   t.indexName,
		index:     append([]any{}, t.columns...),
		indexName: t.colName,
		rows:      make([][]any, len(t.columns)),
	}
	for c := range t.columns {
		row := make([]any, len(t.rows))
		for r := range t.rows {
			row[r] = t.rows[r][c]
		}
		out.rows[c] = row
	}
	return out
}
