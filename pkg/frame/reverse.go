package frame

import "sort"

// Monotonic reports whether the row labels are in non-decreasing order.
func (t *Table) Monotonic() bool {
	labels := t.Index()
	for i := 1; i < len(labels); i++ {
		if compareLabels(labels[i-1], labels[i]) > 0 {
			return false
		}
	}
	return true
}

// Reverse flips the row order by index: a table whose index is already
// non-decreasing is sorted descending, any other table ascending. Applying
// it twice to sorted data restores the original direction.
func (t *Table) Reverse() *Table {
	labels := t.Index()
	desc := t.Monotonic()

	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		cmp := compareLabels(labels[order[a]], labels[order[b]])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	out := &Table{
		columns:   append([]any(nil), t.columns...),
		colName:   t.colName,
		index:     make([]any, len(order)),
		indexName: t.indexName,
		rows:      make([][]any, len(t.rows)),
	}
	// ordinal positions travel with their rows
	for i, src := range order {
		out.rows[i] = append([]any(nil), t.rows[src]...)
		out.index[i] = labels[src]
	}
	return out
}
