// Package datemath computes the human-readable calendar durations shown in
// the two derived record fields: time elapsed since the rent position date
// and time remaining until the agreement expiry.
package datemath

import (
	"fmt"
	"time"
)

// Elapsed returns the calendar time from past up to ref, formatted as
// "<Y> Year(s), <M> Month(s), <D> Day(s)". A zero past date yields "".
func Elapsed(ref, past time.Time) string {
	if past.IsZero() || ref.IsZero() {
		return ""
	}
	y, m, d := Delta(ref, past)
	return formatDuration(y, m, d)
}

// Remaining returns the calendar time from ref up to future in the same
// format. When future is earlier than ref every component is negative;
// the sign is preserved on purpose so callers can detect an overdue
// agreement. A zero future date yields "".
func Remaining(ref, future time.Time) string {
	if future.IsZero() || ref.IsZero() {
		return ""
	}
	y, m, d := Delta(future, ref)
	return formatDuration(y, m, d)
}

// Delta decomposes the gap between two dates into whole calendar years,
// months and days such that adding the result back onto earlier (months
// first, clamped to month end, then days) lands exactly on later. If later
// precedes earlier all components are negative.
func Delta(later, earlier time.Time) (years, months, days int) {
	later = dateOnly(later)
	earlier = dateOnly(earlier)

	if later.Before(earlier) {
		y, m, d := Delta(earlier, later)
		return -y, -m, -d
	}

	months = (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	anchor := addMonths(earlier, months)
	if anchor.After(later) {
		months--
		anchor = addMonths(earlier, months)
	}

	days = int(later.Sub(anchor).Hours() / 24)
	years = months / 12
	months %= 12
	return years, months, days
}

// AddMonths advances a date by whole calendar months, clamping the day to
// the end of the target month (Jan 31 + 1 month = Feb 28/29)
func AddMonths(t time.Time, months int) time.Time {
	return addMonths(dateOnly(t), months)
}

func addMonths(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + months
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysIn(year, time.Month(month+1)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDuration(years, months, days int) string {
	return fmt.Sprintf("%d %s, %d %s, %d %s",
		years, pluralize(years, "Year"),
		months, pluralize(months, "Month"),
		days, pluralize(days, "Day"))
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
