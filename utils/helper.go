package utils

import (
	"time"
)

// ToDate truncates a timestamp to its UTC calendar day.
func ToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats a timestamp as its calendar-day bucket key.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DaysBetween returns the fractional number of days from a to b.
func DaysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24.0
}

func IntPtr(n int) *int {
	return &n
}

func StrPtr(s string) *string {
	return &s
}
