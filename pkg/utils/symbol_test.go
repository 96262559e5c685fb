package utils

import (
	"strings"
	"testing"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"AAPL", "AAPL"},
		{"aapl", "AAPL"},
		{" msft ", "MSFT"},
		{"$TSLA", "TSLA"},
		{"SPX", "^GSPC"},
		{"sp500", "^GSPC"},
		{"DOW", "^DJI"},
		{"^GSPC", "^GSPC"},
		{"BTCUSD", "BTCUSD"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeSymbol(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeSymbol(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsIndex(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"^GSPC", true},
		{"SPX", true},
		{"vix", true},
		{"AAPL", false},
		{"EURUSD", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := IsIndex(tt.input)
			if result != tt.expected {
				t.Errorf("IsIndex(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestJoinSymbols(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"single", []string{"aapl"}, "AAPL"},
		{"several", []string{"AAPL", "msft", "GOOG"}, "AAPL,MSFT,GOOG"},
		{"duplicates", []string{"AAPL", "aapl", "$AAPL"}, "AAPL"},
		{"blanks", []string{"", " ", "FB"}, "FB"},
		{"pre-joined", []string{"AAPL,MSFT", "TSLA"}, "AAPL,MSFT,TSLA"},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := JoinSymbols(tt.input...)
			if result != tt.expected {
				t.Errorf("JoinSymbols(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitSymbols(t *testing.T) {
	got := SplitSymbols("aapl, msft,,spx")
	if strings.Join(got, "|") != "AAPL|MSFT|^GSPC" {
		t.Errorf("SplitSymbols = %v", got)
	}
	if SplitSymbols("  ") != nil {
		t.Error("SplitSymbols of blank input should be nil")
	}
}
