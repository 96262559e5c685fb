package frame

import (
	"testing"
	"time"
)

func indexDays(tbl *Table) []string {
	out := []string{}
	for _, v := range tbl.Index() {
		out = append(out, v.(time.Time).Format("2006-01-02"))
	}
	return out
}

func TestReverseToggles(t *testing.T) {
	recs := mustParse(t, `[
		{"date":"2021-01-01","close":1},
		{"date":"2021-01-02","close":2},
		{"date":"2021-01-03","close":3}
	]`)
	asc, err := FromRecords(recs, KeyModeDefault).SelectIndex("", true)
	if err != nil {
		t.Fatalf("SelectIndex: %v", err)
	}
	if !asc.Monotonic() {
		t.Fatal("expected ascending input")
	}

	desc := asc.Reverse()
	if got := indexDays(desc); got[0] != "2021-01-03" || got[2] != "2021-01-01" {
		t.Errorf("first reverse: got %v", got)
	}
	if v, _ := desc.At(0, "close"); v != float64(3) {
		t.Errorf("rows should follow index, got close %v", v)
	}

	again := desc.Reverse()
	if got := indexDays(again); got[0] != "2021-01-01" || got[2] != "2021-01-03" {
		t.Errorf("second reverse: got %v", got)
	}
	if !again.Equal(asc) {
		t.Error("two reversals of sorted data should restore it")
	}
}

func TestReverseUnsortedSortsAscending(t *testing.T) {
	recs := mustParse(t, `[
		{"date":"2021-01-02","close":2},
		{"date":"2021-01-03","close":3},
		{"date":"2021-01-01","close":1}
	]`)
	tbl, err := FromRecords(recs, KeyModeDefault).SelectIndex("", true)
	if err != nil {
		t.Fatalf("SelectIndex: %v", err)
	}
	got := indexDays(tbl.Reverse())
	want := []string{"2021-01-01", "2021-01-02", "2021-01-03"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestReverseOrdinalIndex(t *testing.T) {
	tbl := FromRecords(mustParse(t, `[{"s":"a"},{"s":"b"},{"s":"c"}]`), KeyModeDefault)
	rev := tbl.Reverse()
	if v, _ := rev.At(0, "s"); v != "c" {
		t.Errorf("first row: got %v, want c", v)
	}
	if labels := rev.Index(); labels[0] != 2 {
		t.Errorf("ordinal label should travel with row, got %v", labels[0])
	}
}
