package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
	}{
		{name: "bare year int", value: 2023, expected: 2023},
		{name: "bare year string", value: "2019", expected: 2019},
		{name: "hyphen range ends on later year", value: "2023-24", expected: 2024},
		{name: "en dash range", value: "2023–24", expected: 2024},
		{name: "full range", value: "2022-2023", expected: 2023},
		{name: "academic year slash", value: "AY 2023/24", expected: 2024},
		{name: "bare slash range", value: "2021/22", expected: 2022},
		{name: "two digit year expands", value: "23", expected: 2023},
		{name: "two digit nineties", value: "95", expected: 1995},
		{name: "year inside text", value: "issued in 2020", expected: 2020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseYear(tt.value)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestParseYearRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "empty", value: ""},
		{name: "no year", value: "pending"},
		{name: "before range", value: 1850},
		{name: "after range", value: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseYear(tt.value))
		})
	}
}

func TestParseYearRangeOnlyMatchesRanges(t *testing.T) {
	got := ParseYearRange("AY 2022/23 admissions")
	require.NotNil(t, got)
	assert.Equal(t, 2023, *got)

	// Bare numbers must not be read as years during backfill scans.
	assert.Nil(t, ParseYearRange("2020"))
	assert.Nil(t, ParseYearRange(2020))
	assert.Nil(t, ParseYearRange("450 seats"))
}
