package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{name: "plain integer", value: 42, expected: 42},
		{name: "plain float", value: 15.5, expected: 15.5},
		{name: "numeric string", value: "1290", expected: 1290},
		{name: "thousands separators", value: "25,000", expected: 25000},
		{name: "rupee symbol", value: "₹1,50,000", expected: 150000},
		{name: "rs prefix", value: "Rs. 85,000", expected: 85000},
		{name: "inr prefix", value: "INR 120000", expected: 120000},
		{name: "lakh scale", value: "1.2 Lakh", expected: 120000},
		{name: "crore scale", value: "5 Crore", expected: 50000000},
		{name: "crore abbreviation", value: "2.5 Cr", expected: 25000000},
		{name: "percentage", value: "84.7%", expected: 84.7},
		{name: "salary stays in lpa", value: "6.5 LPA", expected: 6.5},
		{name: "square meters pass through", value: "4500 sq.m", expected: 4500},
		{name: "square feet convert", value: "25,000 sq.ft", expected: 25000 * SqftToSqmFactor},
		{name: "acres convert", value: "2 acres", expected: 2 * AcreToSqmFactor},
		{name: "hectares convert", value: "1.5 hectares", expected: 1.5 * HectareToSqmFactor},
		{name: "filler words stripped", value: "1290 students", expected: 1290},
		{name: "embedded number", value: "approximately 820", expected: 820},
		{name: "boolean true", value: true, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumeric(tt.value)
			require.NotNil(t, got)
			assert.InDelta(t, tt.expected, *got, 1e-6)
		})
	}
}

func TestParseNumericFailures(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "nil value", value: nil},
		{name: "empty string", value: ""},
		{name: "no digits", value: "not available"},
		{name: "unsupported type", value: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseNumeric(tt.value))
		})
	}
}

func TestAreaRoundTrip(t *testing.T) {
	sqft := 25000.0
	sqm := SqftToSqm(sqft)
	assert.InDelta(t, sqft, SqmToSqft(sqm), 1e-9)
}
