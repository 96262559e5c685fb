package frame

import "testing"

// ── SnakeCase ──

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"MarketCap", "market_cap"},
		{"marketCap", "market_cap"},
		{"symbol", "symbol"},
		{"changesPercentage", "changes_percentage"},
		{"epsDiluted", "eps_diluted"},
		{"EBITDA", "_ebitd_a"},
		{"CIK", "_ci_k"},
		{"peRatioTTM", "pe_ratio_tt_m"},
		{"fillingDate", "filling_date"},
		{"revenue2023", "revenue2023"},
		{"price-change%", "price-change%"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SnakeCase(tt.in); got != tt.want {
			t.Errorf("SnakeCase(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnakeCaseTTM(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"peRatioTTM", "pe_ratio_ttm"},
		{"dividendYielPercentageTTM", "dividend_yiel_percentage_ttm"},
		{"epsTTMRatio", "eps_ttm_ratio"},
		{"TTM", "_ttm"},
		{"marketCap", "market_cap"},
		{"pe_ratio_ttm", "pe_ratio_ttm"},
	}
	for _, tt := range tests {
		if got := SnakeCaseTTM(tt.in); got != tt.want {
			t.Errorf("SnakeCaseTTM(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnakeCaseIdempotent(t *testing.T) {
	names := []string{"MarketCap", "priceToBookRatio", "EBITDA", "netIncomeTTM", "filling_date", "weightedAverageShsOutDil"}
	for _, name := range names {
		for _, mode := range []KeyMode{KeyModeDefault, KeyModeTTM} {
			once := mode.Convert(name)
			if twice := mode.Convert(once); twice != once {
				t.Errorf("mode %d %q: second pass got %q, want %q", mode, name, twice, once)
			}
		}
	}
}

func TestSnakeCaseTTMHasNoUppercase(t *testing.T) {
	for _, name := range []string{"roeTTM", "freeCashFlowPerShareTTM", "TTMvalue"} {
		got := SnakeCaseTTM(name)
		for _, r := range got {
			if r >= 'A' && r <= 'Z' {
				t.Errorf("SnakeCaseTTM(%q) = %q still has uppercase", name, got)
				break
			}
		}
	}
}

// ── SnakeKeys ──

func TestSnakeKeysFixesFilingDate(t *testing.T) {
	rec := Record{{Key: "fillingDate", Value: "2023-01-01"}, {Key: "companyName", Value: "Apple"}}
	got := SnakeKeys(rec, KeyModeDefault)

	if keys := got.Keys(); keys[0] != "filing_date" || keys[1] != "company_name" {
		t.Errorf("keys: got %v", keys)
	}
	if rec[0].Key != "fillingDate" {
		t.Error("input record should not be modified")
	}
}
