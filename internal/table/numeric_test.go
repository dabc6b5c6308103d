package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,234.56", 1234.56, true},
		{"(1,234.56)", -1234.56, true},
		{"−1234.56", -1234.56, true}, // unicode minus
		{"1 234.56", 1234.56, true},
		{"1 234.56", 1234.56, true}, // non-breaking space grouping
		{"($2,000.00)", -2000, true},
		{"£45.00", 45, true},
		{"+$0.00", 0, true},
		{"4.50", 4.5, true},
		{"-4.50", -4.5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"-", 0, false},
		{"N/A", 0, false},
		{"TOTAL", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFormatAmountRoundTrip(t *testing.T) {
	for _, v := range []float64{0, -4.5, 1234.56, -0.01, 99999999.99} {
		got, ok := ParseAmount(FormatAmount(v))
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}
