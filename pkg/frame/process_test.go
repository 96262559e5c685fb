package frame

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const incomePayload = `[
	{"date":"2023-09-30","symbol":"AAPL","cik":"0000320193","fillingDate":"2023-11-03","revenue":383285000000,"netIncome":96995000000},
	{"date":"2022-09-24","symbol":"AAPL","cik":"0000320193","fillingDate":"2022-10-28","revenue":394328000000,"netIncome":99803000000}
]`

func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions()
	if !o.ToDatetime {
		t.Error("ToDatetime should default to true")
	}
	if o.Datatype != DatatypeCSV {
		t.Errorf("Datatype: got %q, want csv", o.Datatype)
	}
	if o.Transpose || o.Save || o.Reversed {
		t.Errorf("toggles should default off: %+v", o)
	}
}

func TestProcessPipeline(t *testing.T) {
	dir := t.TempDir()
	recs := mustParse(t, incomePayload)

	tbl, err := Process(context.Background(), recs, NewOptions(
		WithIgnore("cik", "symbol"),
		WithFormat(FormatMillions),
		WithReversed(true),
		WithSave(DatatypeCSV, dir, "income"),
	))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if tbl.IndexName() != "date" {
		t.Errorf("index: got %q", tbl.IndexName())
	}
	// input is descending, so reversal sorts ascending
	if got := indexDays(tbl); got[0] != "2022-09-24" {
		t.Errorf("order: got %v", got)
	}
	if v, _ := tbl.At(0, "revenue"); v != int64(394328) {
		t.Errorf("revenue: got %v (%T)", v, v)
	}
	if !tbl.HasColumn("filing_date") || tbl.HasColumn("cik") {
		t.Errorf("columns: got %v", tbl.Columns())
	}
	if _, err := os.Stat(filepath.Join(dir, "income.csv")); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestProcessTranspose(t *testing.T) {
	tbl, err := Process(context.Background(), mustParse(t, incomePayload), NewOptions(WithTranspose(true)))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if v, ok := tbl.Lookup("net_income", "2023-09-30"); !ok || v != float64(96995000000) {
		t.Errorf("net_income 2023: got %v", v)
	}
}

func TestProcessExplicitIndex(t *testing.T) {
	tbl, err := Process(context.Background(), mustParse(t, incomePayload), NewOptions(WithIndex("filing_date")))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if tbl.IndexName() != "filing_date" || !tbl.HasColumn("date") {
		t.Errorf("index %q columns %v", tbl.IndexName(), tbl.Columns())
	}
}

func TestProcessIgnoreMissing(t *testing.T) {
	recs := mustParse(t, `[{"symbol":"AAPL","price":1}]`)
	_, err := Process(context.Background(), recs, NewOptions(WithIgnore("cik")))
	var cnf *ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("expected ColumnNotFoundError, got %v", err)
	}
}

func TestProcessUnsupportedDatatype(t *testing.T) {
	recs := mustParse(t, `[{"symbol":"AAPL","price":1}]`)
	tbl, err := Process(context.Background(), recs, NewOptions(WithSave("json", t.TempDir(), "quote")))
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if tbl != nil {
		t.Error("failed pipeline should not return a table")
	}
}

func TestProcessTTMMode(t *testing.T) {
	recs := mustParse(t, `[{"peRatioTTM":28.4,"dividendYieldTTM":0.005}]`)
	tbl, err := Process(context.Background(), recs, NewOptions(WithKeyMode(KeyModeTTM)))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !tbl.HasColumn("pe_ratio_ttm") || !tbl.HasColumn("dividend_yield_ttm") {
		t.Errorf("columns: got %v", tbl.Columns())
	}
}
