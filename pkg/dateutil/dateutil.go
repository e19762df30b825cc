package dateutil

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Date builds a date-only value (UTC midnight)
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDMY parses a DD/MM/YYYY string. Any zero, missing or non-numeric
// component yields ok=false. Out-of-range days roll over like time.Date does.
func ParseDMY(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	parts := strings.Split(text, "/")
	if len(parts) < 3 {
		return time.Time{}, false
	}
	values := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n == 0 {
			return time.Time{}, false
		}
		values[i] = n
	}
	return Date(values[2], time.Month(values[1]), values[0]), true
}

// FormatDMY renders a date as DD/MM/YYYY, or a dash for the zero time
func FormatDMY(date time.Time) string {
	if date.IsZero() {
		return "—"
	}
	return date.Format("02/01/2006")
}

// DateOnly drops the time-of-day component
func DateOnly(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), date.Day())
}

// FirstOfMonth returns the first day of the date's month
func FirstOfMonth(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), 1)
}

// EndOfMonth returns the last calendar day of the date's month
func EndOfMonth(date time.Time) time.Time {
	return Date(date.Year(), date.Month()+1, 0)
}

// DaysInMonth returns the length of the date's month
func DaysInMonth(date time.Time) int {
	return EndOfMonth(date).Day()
}

// AddMonths adds n months, clamping the day to the target month's length
// (Jan 31 + 1 month is the last day of February, not March 3).
func AddMonths(date time.Time, months int) time.Time {
	target := Date(date.Year(), date.Month()+time.Month(months), 1)
	return SetDayOfMonth(target, date.Day())
}

// SetDayOfMonth moves the date to the given day of the same month, clamped to [1, last day]
func SetDayOfMonth(date time.Time, day int) time.Time {
	last := DaysInMonth(date)
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return Date(date.Year(), date.Month(), day)
}

// DaysBetween counts whole days from a to b, ignoring the time of day
func DaysBetween(a, b time.Time) int {
	hours := DateOnly(b).Sub(DateOnly(a)).Hours()
	return int(math.Round(hours / 24))
}

// SameMonth reports whether both dates fall in the same calendar month
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthBefore reports whether a's month precedes b's month
func MonthBefore(a, b time.Time) bool {
	return FirstOfMonth(a).Before(FirstOfMonth(b))
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
