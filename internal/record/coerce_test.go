package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"05-03-2024", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"2024-03-05", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"5-3-2024", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"05/03/2024", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"2024/03/05", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{" 15-08-2023 ", time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC)},
		{"06-15-20", time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"06/15/20", time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

// Dashed dates with a 1-2 digit leading segment are always day-first, even
// when the value would also parse as month-first
func TestParseDateDashedIsDayFirst(t *testing.T) {
	got, ok := ParseDate("03-05-2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateRejects(t *testing.T) {
	for _, input := range []string{"", "N/A", "not a date", "32-01-2024", "2024-13-01", "15-06-20"} {
		_, ok := ParseDate(input)
		assert.False(t, ok, "input %q should not parse", input)
	}
}

func TestCleanNumeric(t *testing.T) {
	assert.Equal(t, "125000", CleanNumeric("₹1,25,000"))
	assert.Equal(t, "12.5", CleanNumeric("12.5%"))
	assert.Equal(t, "42", CleanNumeric("  42  "))
	assert.Equal(t, "1200.50", CleanNumeric("₹ 1,200.50"))
}

func TestParseInt(t *testing.T) {
	n, ok := parseInt("1,200")
	require.True(t, ok)
	assert.Equal(t, 1200, n)

	n, ok = parseInt(float64(12.9))
	require.True(t, ok)
	assert.Equal(t, 12, n, "fractional input truncates")

	n, ok = parseInt("850.0")
	require.True(t, ok)
	assert.Equal(t, 850, n)

	_, ok = parseInt("twelve")
	assert.False(t, ok)
}

func TestParseDecimal(t *testing.T) {
	f, ok := parseDecimal("12%")
	require.True(t, ok)
	assert.Equal(t, 12.0, f)

	f, ok = parseDecimal("₹1,200.50")
	require.True(t, ok)
	assert.Equal(t, 1200.50, f)

	f, ok = parseDecimal(7)
	require.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = parseDecimal(nil)
	assert.False(t, ok)
}
