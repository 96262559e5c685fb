package fmp

import (
	"strings"
	"testing"

	"github.com/seenimoa/fmpkit/internal/endpoint"
)

func TestCatalogNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ep := range Catalog() {
		if seen[ep.Name] {
			t.Errorf("duplicate endpoint %q", ep.Name)
		}
		seen[ep.Name] = true
		if ep.Family == "" || ep.Description == "" {
			t.Errorf("%s: family and description are required", ep.Name)
		}
		if strings.HasPrefix(ep.Path, "/") || strings.Contains(ep.Path, "?") {
			t.Errorf("%s: path %q must be relative and carry no query", ep.Name, ep.Path)
		}
	}
	if DefaultRegistry().Len() != len(seen) {
		t.Errorf("registry size mismatch")
	}
}

func TestCatalogDefaultsBuild(t *testing.T) {
	// every endpoint builds once its required path and query params are set
	for _, ep := range Catalog() {
		params := QueryParams{}
		for _, p := range ep.PathParams() {
			if ep.Defaults[p] == "" {
				params[p] = "X"
			}
		}
		for _, p := range ep.Required {
			params[p] = "X"
		}
		if len(ep.AnyOf) > 0 {
			params[ep.AnyOf[0]] = "X"
		}
		if _, _, err := ep.Build(params); err != nil {
			t.Errorf("%s: %v", ep.Name, err)
		}
	}
}

func TestCatalogStatements(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range []string{"income-statement", "balance-sheet-statement", "cash-flow-statement"} {
		ep, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		if !ep.Transpose {
			t.Errorf("%s should transpose by default", name)
		}
		_, q, err := ep.Build(QueryParams{"symbol": "AAPL"})
		if err != nil {
			t.Fatalf("Build(%s): %v", name, err)
		}
		if q.Get("limit") != "120" || q.Get("period") != "quarter" {
			t.Errorf("%s query: got %q", name, q.Encode())
		}
	}
}

func TestCatalogNormalizerDefaults(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		name     string
		index    string
		ttm      bool
		dataPath string
		version  endpoint.Version
	}{
		{"ratios-ttm", "", true, "", endpoint.V3},
		{"key-metrics-ttm", "", true, "", endpoint.V3},
		{"historical-price-full", "", false, "historical", endpoint.V3},
		{"historical-dividends", "", false, "historical", endpoint.V3},
		{"fmp-articles", "", false, "content", endpoint.V3},
		{"sec-filings", "filing_date", false, "", endpoint.V3},
		{"institutional-holder", "holder", false, "", endpoint.V3},
		{"etf-stock-exposure", "etf_symbol", false, "", endpoint.V3},
		{"market-risk-premium", "country", false, "", endpoint.V4},
		{"advanced-discounted-cash-flow", "year", false, "", endpoint.V4},
		{"standard-industrial-classification-list", "sic_code", false, "", endpoint.V4},
		{"commitment-of-traders-report-list", "trading_symbol", false, "", endpoint.V4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := r.Get(tt.name)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if ep.Index != tt.index || ep.TTM != tt.ttm || ep.DataPath != tt.dataPath || ep.Version != tt.version {
				t.Errorf("got index=%q ttm=%v data=%q version=%s", ep.Index, ep.TTM, ep.DataPath, ep.Version)
			}
		})
	}
}

func TestCatalogFamilies(t *testing.T) {
	fams := DefaultRegistry().Families()
	for _, want := range []string{FamilyCompany, FamilyFundamental, FamilyPrices, FamilyESG, FamilyInsider} {
		found := false
		for _, f := range fams {
			if f == want {
				found = true
			}
		}
		if !found {
			t.Errorf("family %q missing from %v", want, fams)
		}
	}
}
