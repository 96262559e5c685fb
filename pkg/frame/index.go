package frame

import (
	"strings"
	"time"
)

// DateLayouts are tried in order when parsing a date index.
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.000",
	"2006-01",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// DefaultIndex picks the index column when none is requested: "date" if
// present, otherwise the first column whose name contains "date". It returns
// "" when no column qualifies.
func (t *Table) DefaultIndex() string {
	for _, c := range t.Columns() {
		if c == "date" {
			return c
		}
	}
	for _, c := range t.Columns() {
		if strings.Contains(c, "date") {
			return c
		}
	}
	return ""
}

// SetIndex moves the named column out of the data columns and makes it the
// row key. An empty table is returned unchanged even when the column does
// not exist. When parseDates is set and the column name contains "date",
// every value is parsed as a calendar date.
func (t *Table) SetIndex(name string, parseDates bool) (*Table, error) {
	if t.Empty() {
		return t, nil
	}
	c := t.columnPos(name)
	if c < 0 {
		return nil, &ColumnNotFoundError{Column: name, Op: "index"}
	}

	labels := make([]any, len(t.rows))
	for i, row := range t.rows {
		labels[i] = row[c]
	}
	if parseDates && strings.Contains(name, "date") {
		for i, v := range labels {
			ts, err := ParseDate(v)
			if err != nil {
				return nil, &DateParseError{Column: name, Value: v}
			}
			labels[i] = ts
		}
	}

	out := &Table{
		colName:   t.colName,
		index:     labels,
		indexName: name,
		rows:      make([][]any, len(t.rows)),
	}
	out.columns = append(append([]any(nil), t.columns[:c]...), t.columns[c+1:]...)
	for i, row := range t.rows {
		out.rows[i] = append(append([]any(nil), row[:c]...), row[c+1:]...)
	}
	return out, nil
}

// SelectIndex applies the index selection rules: an explicit column when name
// is set, otherwise DefaultIndex. Tables without a date-like column keep
// their ordinal index.
func (t *Table) SelectIndex(name string, parseDates bool) (*Table, error) {
	if name == "" {
		name = t.DefaultIndex()
		if name == "" {
			return t, nil
		}
	}
	return t.SetIndex(name, parseDates)
}

// ParseDate converts a cell into a time.Time. Nil and empty strings yield the
// zero time; anything else that does not match DateLayouts is an error.
func ParseDate(v any) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, nil
		}
		var lastErr error
		for _, layout := range DateLayouts {
			ts, err := time.Parse(layout, s)
			if err == nil {
				return ts, nil
			}
			lastErr = err
		}
		return time.Time{}, lastErr
	default:
		return time.Time{}, &DateParseError{Value: v}
	}
}
