package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUSD(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Large price groups thousands", value: 50000, expected: "$50,000.00"},
		{name: "Regular price", value: 3.5, expected: "$3.50"},
		{name: "Exactly one dollar", value: 1, expected: "$1.00"},
		{name: "Sub-dollar price widens precision", value: 0.123456, expected: "$0.123456"},
		{name: "Tiny price", value: 0.000012, expected: "$0.000012"},
		{name: "Zero", value: 0, expected: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, USD(tt.value))
		})
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Trillions", value: 2.53e12, expected: "$2.53T"},
		{name: "Billions", value: 850.5e9, expected: "$850.50B"},
		{name: "Millions", value: 12_340_000, expected: "$12.34M"},
		{name: "Thousands", value: 9_900, expected: "$9.90K"},
		{name: "Small", value: 950, expected: "$950.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compact(tt.value))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "+1.25%", Percent(1.25))
	assert.Equal(t, "-0.50%", Percent(-0.5))
	assert.Equal(t, "+0.00%", Percent(0))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "19,800,000", Amount(19_800_000))
	assert.Equal(t, "0", Amount(0))
}

func TestClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "14:30:05", Clock(at))
}
