package frame

import (
	"errors"
	"strings"
	"testing"
)

func statementTable(t *testing.T) *Table {
	t.Helper()
	recs := mustParse(t, `[
		{"date":"2023-09-30","symbol":"AAPL","revenue":383285000000,"netIncome":96995000000},
		{"date":"2022-09-24","symbol":"AAPL","revenue":394328000000,"netIncome":99803000000}
	]`)
	tbl, err := FromRecords(recs, KeyModeDefault).SelectIndex("", true)
	if err != nil {
		t.Fatalf("SelectIndex: %v", err)
	}
	return tbl
}

// ── Drop ──

func TestDrop(t *testing.T) {
	tbl, err := statementTable(t).Drop("symbol")
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if got := strings.Join(tbl.Columns(), ","); got != "revenue,net_income" {
		t.Errorf("columns: got %q", got)
	}
	if tbl.IndexName() != "date" {
		t.Errorf("index should survive drop, got %q", tbl.IndexName())
	}
}

func TestDropMissingColumn(t *testing.T) {
	_, err := statementTable(t).Drop("cik")
	var cnf *ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("expected ColumnNotFoundError, got %v", err)
	}
	if cnf.Op != "drop" || cnf.Column != "cik" {
		t.Errorf("got %+v", cnf)
	}
}

func TestDropIndexColumnFails(t *testing.T) {
	if _, err := statementTable(t).Drop("date"); err == nil {
		t.Error("index is not a data column and cannot be dropped")
	}
}

// ── Transpose ──

func TestTranspose(t *testing.T) {
	tbl := statementTable(t).Transpose()

	if got := strings.Join(tbl.Columns(), ","); got != "2023-09-30,2022-09-24" {
		t.Errorf("columns: got %q", got)
	}
	labels := tbl.Index()
	if len(labels) != 3 || labels[0] != "symbol" || labels[2] != "net_income" {
		t.Errorf("index: got %v", labels)
	}
	if v, ok := tbl.Lookup("revenue", "2022-09-24"); !ok || v != float64(394328000000) {
		t.Errorf("revenue 2022: got %v", v)
	}
}

func TestTransposeTwiceRestores(t *testing.T) {
	orig := statementTable(t)
	back := orig.Transpose().Transpose()
	if !back.Equal(orig) {
		t.Errorf("double transpose changed the table:\n got %v\nwant %v", back.Records(), orig.Records())
	}

	plain := FromRecords(mustParse(t, `[{"a":1,"b":"x"},{"a":2,"b":"y"}]`), KeyModeDefault)
	if !plain.Transpose().Transpose().Equal(plain) {
		t.Error("double transpose changed an unindexed table")
	}
}
