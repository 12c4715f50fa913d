package format_test

import (
	"salondash/shared/format"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Number(t *testing.T) {
	f := format.New("en-US", "USD")

	assert.Equal(t, "1,234.50", f.Number(1234.5))
	assert.Equal(t, "0.00", f.Number(0))
}

func TestFormatter_Money(t *testing.T) {
	f := format.New("en-US", "USD")

	assert.Contains(t, f.Money(125.5), "125.50")
	assert.Contains(t, f.MoneyString("125.5"), "125.50")
	assert.Equal(t, "n/a", f.MoneyString("n/a"))
}

func TestFormatter_FallsBack(t *testing.T) {
	f := format.New("not a locale!", "XXXX")

	assert.Contains(t, f.Money(10), "10.00")
}

func TestFormatter_DateAndClock(t *testing.T) {
	f := format.New("en-US", "USD")

	assert.Equal(t, "Fri, Mar 14, 2025", f.Date("2025-03-14"))
	assert.Equal(t, "garbage", f.Date("garbage"))
	assert.Equal(t, "2:30 PM", f.Clock("14:30"))
	assert.Equal(t, "9:05 AM", f.Clock("09:05:00"))
	assert.Equal(t, "later", f.Clock("later"))
}

func TestDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "-"},
		{45, "45 min"},
		{60, "1h"},
		{90, "1h 30m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, format.Duration(tt.minutes))
	}
}
