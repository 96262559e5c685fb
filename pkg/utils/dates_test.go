package utils

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 2, 19, 22, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-02-19" {
		t.Errorf("FormatDate = %s, want 2026-02-19", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-19")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 2 || d.Day() != 19 {
		t.Errorf("ParseDate = %v, want 2026-02-19", d)
	}
	if _, err := ParseDate("19/02/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDateRange(t *testing.T) {
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	from, to := DateRange(end, 30)
	if from != "2026-01-31" || to != "2026-03-02" {
		t.Errorf("DateRange = %s..%s, want 2026-01-31..2026-03-02", from, to)
	}
	from, to = DateRange(end, -5)
	if from != to {
		t.Errorf("negative span should collapse to one day, got %s..%s", from, to)
	}
}

func TestIsTradingDay(t *testing.T) {
	// Wednesday
	if !IsTradingDay(time.Date(2026, 2, 18, 12, 0, 0, 0, NewYork)) {
		t.Error("Expected Wednesday to be a trading day")
	}
	// Saturday
	if IsTradingDay(time.Date(2026, 2, 21, 12, 0, 0, 0, NewYork)) {
		t.Error("Expected Saturday to not be a trading day")
	}
	// Good Friday
	if IsTradingDay(time.Date(2026, 4, 3, 12, 0, 0, 0, NewYork)) {
		t.Error("Expected Good Friday to not be a trading day")
	}
}

func TestLastTradingDay(t *testing.T) {
	// Sunday → Friday
	sunday := time.Date(2026, 2, 22, 12, 0, 0, 0, NewYork)
	got := LastTradingDay(sunday)
	if got.Weekday() != time.Friday || got.Day() != 20 {
		t.Errorf("LastTradingDay(Sunday Feb 22) = %v, want Friday Feb 20", got)
	}

	// Monday after Presidents' Day weekend → Friday before it
	holiday := time.Date(2026, 2, 16, 12, 0, 0, 0, NewYork)
	got = LastTradingDay(holiday)
	if got.Day() != 13 {
		t.Errorf("LastTradingDay(Feb 16) = %v, want Feb 13", got)
	}

	wednesday := time.Date(2026, 2, 18, 12, 0, 0, 0, NewYork)
	if got := LastTradingDay(wednesday); !got.Equal(wednesday) {
		t.Errorf("LastTradingDay(trading day) = %v, want same day", got)
	}
}

func TestMarketStatus(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"weekend", time.Date(2026, 2, 21, 11, 0, 0, 0, NewYork), "CLOSED (Weekend)"},
		{"holiday", time.Date(2026, 12, 25, 11, 0, 0, 0, NewYork), "CLOSED (Christmas Day)"},
		{"pre-market", time.Date(2026, 2, 18, 8, 0, 0, 0, NewYork), "PRE-MARKET"},
		{"open", time.Date(2026, 2, 18, 11, 0, 0, 0, NewYork), "OPEN"},
		{"after-hours", time.Date(2026, 2, 18, 17, 0, 0, 0, NewYork), "AFTER-HOURS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarketStatus(tt.at); got != tt.want {
				t.Errorf("MarketStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
