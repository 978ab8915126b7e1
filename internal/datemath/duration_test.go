package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDelta(t *testing.T) {
	tests := []struct {
		name    string
		earlier time.Time
		later   time.Time
		years   int
		months  int
		days    int
	}{
		{"same day", date(2024, time.March, 15), date(2024, time.March, 15), 0, 0, 0},
		{"days only", date(2024, time.March, 1), date(2024, time.March, 15), 0, 0, 14},
		{"exact month", date(2024, time.January, 15), date(2024, time.February, 15), 0, 1, 0},
		{"exact year", date(2023, time.June, 1), date(2024, time.June, 1), 1, 0, 0},
		{"year month day", date(2021, time.January, 10), date(2024, time.March, 12), 3, 2, 2},
		{"month end clamp", date(2024, time.January, 31), date(2024, time.March, 1), 0, 1, 1},
		{"leap february", date(2024, time.January, 31), date(2024, time.February, 29), 0, 1, 0},
		{"across year boundary", date(2023, time.November, 20), date(2024, time.January, 5), 0, 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d := Delta(tt.later, tt.earlier)
			assert.Equal(t, tt.years, y, "years")
			assert.Equal(t, tt.months, m, "months")
			assert.Equal(t, tt.days, d, "days")
		})
	}
}

// Adding the decomposition back onto the earlier date must land exactly on
// the later date. This pins the clamping behavior around month ends.
func TestDeltaAddBack(t *testing.T) {
	pairs := []struct {
		earlier time.Time
		later   time.Time
	}{
		{date(2024, time.January, 31), date(2024, time.March, 1)},
		{date(2023, time.February, 28), date(2024, time.February, 29)},
		{date(2020, time.December, 31), date(2024, time.July, 4)},
		{date(2024, time.May, 31), date(2024, time.July, 30)},
		{date(2019, time.August, 14), date(2026, time.January, 2)},
	}

	for _, p := range pairs {
		y, m, d := Delta(p.later, p.earlier)
		reconstructed := AddMonths(p.earlier, y*12+m).AddDate(0, 0, d)
		require.True(t, reconstructed.Equal(p.later),
			"Delta(%v, %v) = (%d, %d, %d) does not add back: got %v",
			p.later, p.earlier, y, m, d, reconstructed)
	}
}

func TestDeltaReversedIsNegated(t *testing.T) {
	earlier := date(2021, time.January, 10)
	later := date(2024, time.March, 12)

	y, m, d := Delta(earlier, later)
	assert.Equal(t, -3, y)
	assert.Equal(t, -2, m)
	assert.Equal(t, -2, d)
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	assert.Equal(t, date(2024, time.February, 29), AddMonths(date(2024, time.January, 31), 1))
	assert.Equal(t, date(2023, time.February, 28), AddMonths(date(2023, time.January, 31), 1))
	assert.Equal(t, date(2024, time.April, 30), AddMonths(date(2024, time.May, 31), -1))
	assert.Equal(t, date(2025, time.January, 15), AddMonths(date(2024, time.January, 15), 12))
}

func TestElapsedFormatting(t *testing.T) {
	ref := date(2024, time.March, 12)

	assert.Equal(t, "3 Years, 2 Months, 2 Days", Elapsed(ref, date(2021, time.January, 10)))
	assert.Equal(t, "1 Year, 1 Month, 1 Day", Elapsed(ref, date(2023, time.February, 11)))
	assert.Equal(t, "0 Years, 0 Months, 0 Days", Elapsed(ref, ref))
}

func TestElapsedZeroDate(t *testing.T) {
	assert.Equal(t, "", Elapsed(date(2024, time.March, 12), time.Time{}))
	assert.Equal(t, "", Elapsed(time.Time{}, date(2024, time.March, 12)))
}

func TestRemaining(t *testing.T) {
	ref := date(2024, time.March, 12)

	assert.Equal(t, "2 Years, 0 Months, 3 Days", Remaining(ref, date(2026, time.March, 15)))
	assert.Equal(t, "", Remaining(ref, time.Time{}))
}

// An expiry in the past keeps its negative components so callers can tell
// an overdue agreement apart from one expiring soon.
func TestRemainingPastDateIsNegative(t *testing.T) {
	ref := date(2024, time.March, 12)

	assert.Equal(t, "0 Years, -1 Months, -2 Days", Remaining(ref, date(2024, time.February, 10)))
}
