package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"500.00", "500", false},
		{"1,200.00", "1200", false},
		{"300.", "300", false},
		{" 5 000 ", "5000", false},
		{"0.5", "0.5", false},
		{"", "", true},
		{",", "", true},
		{"abc", "", true},
		{"-10", "", true},
		{"1,200.005", "", true},
		{"1.2.3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "Ksh0.00"},
		{"1200", "Ksh1,200.00"},
		{"1234567.5", "Ksh1,234,567.50"},
		{"0.999", "Ksh1.00"},
		{"-45.1", "Ksh-45.10"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "-", FormatOptional(nil))

	d := decimal.NewFromInt(7)
	assert.Equal(t, "Ksh7.00", FormatOptional(&d))
}
