package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"7", "7"},
		{"100", "100"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
		{"-1234567", "-1,234,567"},
		{"1234.5678", "1,234.5678"},
		{"-0.5", "-0.5"},
		// In-progress input is preserved verbatim after the point.
		{"12.", "12."},
		{"1234.", "1,234."},
		{"0.10", "0.10"},
		// Sentinels pass through.
		{"", ""},
		{"-", "-"},
		{ErrorText, ErrorText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%q)", tt.in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0.3", formatNumber(roundResult(0.1+0.2)))
	assert.Equal(t, "0", formatNumber(roundResult(-0.0)))
	assert.Equal(t, "-2", formatNumber(roundResult(-2.0)))
	assert.Equal(t, "0.0000000001", formatNumber(roundResult(1e-10)))
	assert.Equal(t, "0", formatNumber(roundResult(4e-11)))
}
