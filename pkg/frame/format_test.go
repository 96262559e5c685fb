package frame

import (
	"errors"
	"testing"
)

func TestRescaleMillions(t *testing.T) {
	recs := mustParse(t, `[{"symbol":"AAPL","revenue":383285000000,"eps":6.13,"shares":15000000,"ebit":1234567,"active":true}]`)
	tbl := FromRecords(recs, KeyModeDefault)

	for _, format := range []string{FormatMillions, FormatMillionsLong} {
		out, err := tbl.Rescale(format)
		if err != nil {
			t.Fatalf("Rescale(%q): %v", format, err)
		}
		if v, _ := out.At(0, "revenue"); v != int64(383285) {
			t.Errorf("%s revenue: got %v (%T), want int64 383285", format, v, v)
		}
		if v, _ := out.At(0, "shares"); v != int64(15) {
			t.Errorf("%s shares: got %v (%T), want int64 15", format, v, v)
		}
		if v, _ := out.At(0, "ebit"); v != 1.2 {
			t.Errorf("%s ebit: got %v (%T), want 1.2", format, v, v)
		}
		if v, _ := out.At(0, "eps"); v != int64(0) {
			t.Errorf("%s eps: got %v (%T), want int64 0", format, v, v)
		}
		if v, _ := out.At(0, "symbol"); v != "AAPL" {
			t.Errorf("%s symbol: got %v", format, v)
		}
		if v, _ := out.At(0, "active"); v != true {
			t.Errorf("%s active: got %v", format, v)
		}
	}

	if v, _ := tbl.At(0, "revenue"); v != float64(383285000000) {
		t.Errorf("source table modified: %v", v)
	}
}

func TestRescaleBillions(t *testing.T) {
	recs := mustParse(t, `[{"a":1500000000,"b":250000000,"c":12000000000}]`)
	out, err := FromRecords(recs, KeyModeDefault).Rescale(FormatBillions)
	if err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	// 1.5e+00 ends in zero and is truncated
	if v, _ := out.At(0, "a"); v != int64(1) {
		t.Errorf("a: got %v (%T), want int64 1", v, v)
	}
	if v, _ := out.At(0, "b"); v != 0.25 {
		t.Errorf("b: got %v (%T), want 0.25", v, v)
	}
	if v, _ := out.At(0, "c"); v != 12.0 {
		t.Errorf("c: got %v (%T), want 12", v, v)
	}
}

func TestRescaleUnknownFormat(t *testing.T) {
	tbl := FromRecords(mustParse(t, `[{"a":1}]`), KeyModeDefault)
	_, err := tbl.Rescale("K")
	var nfe *NumberFormatError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NumberFormatError, got %v", err)
	}
}
