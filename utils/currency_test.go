package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0.00 EGP"},
		{340.5, "340.50 EGP"},
		{525, "525.00 EGP"},
		{15000.5, "15,000.50 EGP"},
		{1234567.89, "1,234,567.89 EGP"},
		{-1250, "-1,250.00 EGP"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.amount))
	}
}
