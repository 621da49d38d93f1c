package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "N/A"},
		{"zero", "0", "N/A"},
		{"dollar with separator and suffix", "$45,000 +", "$45,000"},
		{"plain number", "50000", "$50,000"},
		{"small amount", "500", "$500"},
		{"millions", "1250000", "$1,250,000"},
		{"no digits", "call for details", "N/A"},
		{"decimal truncated", "49999.75", "$50,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"dollar sign and commas", "$45,000 +", 45000, true},
		{"bare number", "50000", 50000, true},
		{"range takes first value", "50,000 - 75,000", 50000, true},
		{"no numeral", "varies by market", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeBucket(t *testing.T) {
	assert.Equal(t, BucketLarge, SizeBucket("100"))
	assert.Equal(t, BucketLarge, SizeBucket("2500"))
	assert.Equal(t, BucketSmall, SizeBucket("99"))
	assert.Equal(t, BucketSmall, SizeBucket("1"))
	assert.Equal(t, BucketUnknown, SizeBucket("n/a"))
	assert.Equal(t, BucketUnknown, SizeBucket(""))
	assert.Equal(t, BucketUnknown, SizeBucket("1,200"))
}
