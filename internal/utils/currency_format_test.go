package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"20", "20.0000"},
		{"1.95184", "1.9518"},
		{"1.00005", "1.0001"},
		{"5.1", "5.1000"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWithPrecision(decimal.RequireFromString(tt.amount), 4))
		})
	}
}
