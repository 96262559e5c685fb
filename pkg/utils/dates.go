package utils

import (
	"time"
)

// DateLayout is the date format FMP uses for from/to/date parameters.
const DateLayout = "2006-01-02"

// NewYork is the US Eastern location used for NYSE trading hours.
var NewYork *time.Location

func init() {
	var err error
	NewYork, err = time.LoadLocation("America/New_York")
	if err != nil {
		// tz database unavailable; EST without daylight saving
		NewYork = time.FixedZone("EST", -5*60*60)
	}
}

// NowNewYork returns the current time in New York.
func NowNewYork() time.Time {
	return time.Now().In(NewYork)
}

// FormatDate renders t as YYYY-MM-DD. The zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateRange returns the from/to parameter pair covering the days before end,
// inclusive of end.
func DateRange(end time.Time, days int) (from, to string) {
	if days < 0 {
		days = 0
	}
	return FormatDate(end.AddDate(0, 0, -days)), FormatDate(end)
}

// MarketOpenTime returns the NYSE opening time (9:30 AM ET) for a given date.
func MarketOpenTime(date time.Time) time.Time {
	d := date.In(NewYork)
	return time.Date(d.Year(), d.Month(), d.Day(), 9, 30, 0, 0, NewYork)
}

// MarketCloseTime returns the NYSE closing time (4:00 PM ET) for a given date.
func MarketCloseTime(date time.Time) time.Time {
	d := date.In(NewYork)
	return time.Date(d.Year(), d.Month(), d.Day(), 16, 0, 0, 0, NewYork)
}

// IsTradingDay checks if the given date is an NYSE trading day.
func IsTradingDay(t time.Time) bool {
	t = t.In(NewYork)
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !IsTradingHoliday(t)
}

// IsTradingHoliday checks if the given date is an NYSE holiday.
func IsTradingHoliday(t time.Time) bool {
	_, ok := nyseHolidays2026[t.In(NewYork).Format(DateLayout)]
	return ok
}

// NYSE full-day closures for 2026 (update annually).
var nyseHolidays2026 = map[string]string{
	"2026-01-01": "New Year's Day",
	"2026-01-19": "Martin Luther King Jr. Day",
	"2026-02-16": "Washington's Birthday",
	"2026-04-03": "Good Friday",
	"2026-05-25": "Memorial Day",
	"2026-06-19": "Juneteenth",
	"2026-07-03": "Independence Day (observed)",
	"2026-09-07": "Labor Day",
	"2026-11-26": "Thanksgiving Day",
	"2026-12-25": "Christmas Day",
}

// PrevTradingDay returns the trading day before the given date.
func PrevTradingDay(from time.Time) time.Time {
	prev := from.In(NewYork).AddDate(0, 0, -1)
	for !IsTradingDay(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}

// LastTradingDay returns t itself when it is a trading day, otherwise the
// closest trading day before it. Daily endpoints such as sector P/E ratios
// have no data for weekends and holidays.
func LastTradingDay(t time.Time) time.Time {
	t = t.In(NewYork)
	if IsTradingDay(t) {
		return t
	}
	return PrevTradingDay(t)
}

// MarketStatus describes the NYSE session at t.
func MarketStatus(t time.Time) string {
	t = t.In(NewYork)

	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return "CLOSED (Weekend)"
	}
	if name, ok := nyseHolidays2026[t.Format(DateLayout)]; ok {
		return "CLOSED (" + name + ")"
	}

	switch {
	case t.Before(MarketOpenTime(t)):
		return "PRE-MARKET"
	case t.Before(MarketCloseTime(t)):
		return "OPEN"
	default:
		return "AFTER-HOURS"
	}
}
