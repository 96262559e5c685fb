// Package utils provides small helpers shared by the client and the CLI.
package utils

import (
	"strings"
)

// Common index aliases mapped to FMP index symbols.
var indexAliases = map[string]string{
	"SPX":       "^GSPC",
	"SP500":     "^GSPC",
	"S&P500":    "^GSPC",
	"S&P 500":   "^GSPC",
	"GSPC":      "^GSPC",
	"DOW":       "^DJI",
	"DJIA":      "^DJI",
	"DJI":       "^DJI",
	"NASDAQ":    "^IXIC",
	"IXIC":      "^IXIC",
	"NDX":       "^NDX",
	"NASDAQ100": "^NDX",
	"RUSSELL":   "^RUT",
	"RUT":       "^RUT",
	"VIX":       "^VIX",
}

// NormalizeSymbol trims, uppercases and strips a leading "$" from a
// user-entered symbol. Well known index aliases resolve to their "^" symbol.
func NormalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))
	symbol = strings.TrimPrefix(symbol, "$")

	if idx, ok := indexAliases[symbol]; ok {
		return idx
	}
	return symbol
}

// IsIndex reports whether the symbol refers to a market index.
func IsIndex(symbol string) bool {
	return strings.HasPrefix(NormalizeSymbol(symbol), "^")
}

// JoinSymbols normalizes symbols, drops blanks and duplicates and joins them
// with commas, the form batch endpoints such as quote/AAPL,MSFT expect.
func JoinSymbols(symbols ...string) string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		for _, part := range strings.Split(s, ",") {
			n := NormalizeSymbol(part)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return strings.Join(out, ",")
}

// SplitSymbols is the inverse of JoinSymbols.
func SplitSymbols(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(joined, ",") {
		if n := NormalizeSymbol(part); n != "" {
			out = append(out, n)
		}
	}
	return out
}
