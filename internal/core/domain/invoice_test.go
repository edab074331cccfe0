package domain_test

import (
	"testing"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		year     int
		sequence int64
		want     string
	}{
		{"first of year", "VRI", 2024, 1, "VRIINV20240001"},
		{"second of year", "VRI", 2024, 2, "VRIINV20240002"},
		{"new year resets", "VRI", 2025, 1, "VRIINV20250001"},
		{"no padding past 4 digits", "AB", 2024, 12345, "ABINV202412345"},
		{"single char prefix", "X", 2024, 7, "XINV20240007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatInvoiceNumber(tt.prefix, tt.year, tt.sequence))
		})
	}
}

func TestValidateInvoicePrefix(t *testing.T) {
	assert.NoError(t, domain.ValidateInvoicePrefix("VRI"))
	assert.NoError(t, domain.ValidateInvoicePrefix("A"))
	assert.NoError(t, domain.ValidateInvoicePrefix("ABCDE"))

	assert.Error(t, domain.ValidateInvoicePrefix(""))
	assert.Error(t, domain.ValidateInvoicePrefix("ABCDEF"), "more than 5 chars")
	assert.Error(t, domain.ValidateInvoicePrefix("abc"), "lowercase")
	assert.Error(t, domain.ValidateInvoicePrefix("AB1"), "digits")
}
