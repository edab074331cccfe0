package billing_test

import (
	"testing"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(qty, rate, gstRate string) domain.InvoiceItem {
	return domain.InvoiceItem{
		Quantity: decimal.RequireFromString(qty),
		Rate:     decimal.RequireFromString(rate),
		GstRate:  decimal.RequireFromString(gstRate),
	}
}

func TestDeriveItem(t *testing.T) {
	tests := []struct {
		name       string
		item       domain.InvoiceItem
		wantAmount string
		wantGst    string
	}{
		{"standard gst line", item("2", "100", "18"), "200", "36"},
		{"fractional quantity", item("1.5", "99.99", "18"), "149.99", "27"},
		{"zero gst", item("3", "50", "0"), "150", "0"},
		{"rounding to 2dp", item("1", "0.125", "18"), "0.13", "0.02"},
		{"empty line", domain.InvoiceItem{}, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.DeriveItem(tt.item)
			assert.True(t, got.Amount.Equal(decimal.RequireFromString(tt.wantAmount)),
				"amount: got %s want %s", got.Amount, tt.wantAmount)
			assert.True(t, got.GstAmount.Equal(decimal.RequireFromString(tt.wantGst)),
				"gstAmount: got %s want %s", got.GstAmount, tt.wantGst)
		})
	}
}

func TestComputeTotals_SingleItemScenario(t *testing.T) {
	items := billing.DeriveItems([]domain.InvoiceItem{item("2", "100", "18")})
	totals := billing.ComputeTotals(items)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TotalGst.Equal(decimal.NewFromInt(36)), "totalGst %s", totals.TotalGst)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(236)), "total %s", totals.Total)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	items := billing.DeriveItems([]domain.InvoiceItem{
		item("2", "100", "18"),
		item("1", "250.50", "12"),
		item("4", "19.99", "5"),
	})

	first := billing.ComputeTotals(items)
	second := billing.ComputeTotals(items)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TotalGst.Equal(second.TotalGst))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestComputeTotals_RemoveAndReAdd(t *testing.T) {
	base := billing.DeriveItems([]domain.InvoiceItem{
		item("2", "100", "18"),
		item("1", "250.50", "12"),
	})
	before := billing.ComputeTotals(base)

	// Remove the second line, then re-add an identical one.
	reduced := base[:1]
	restored := append(append([]domain.InvoiceItem{}, reduced...), billing.DeriveItem(item("1", "250.50", "12")))
	after := billing.ComputeTotals(restored)

	assert.True(t, before.Subtotal.Equal(after.Subtotal))
	assert.True(t, before.TotalGst.Equal(after.TotalGst))
	assert.True(t, before.Total.Equal(after.Total))
}

func TestComputeTotals_ManyLinesNoDrift(t *testing.T) {
	// 1000 lines of 0.10: exact decimal accumulation must give 100.00,
	// which naive float64 summation would miss. Each line's GST is rounded
	// per item (0.018 -> 0.02), so the GST sum is exactly 20.00.
	var items []domain.InvoiceItem
	for i := 0; i < 1000; i++ {
		items = append(items, billing.DeriveItem(item("1", "0.10", "18")))
	}
	totals := billing.ComputeTotals(items)

	require.True(t, totals.Subtotal.Equal(decimal.RequireFromString("100.00")), "subtotal %s", totals.Subtotal)
	require.True(t, totals.TotalGst.Equal(decimal.RequireFromString("20.00")), "totalGst %s", totals.TotalGst)
	require.True(t, totals.Total.Equal(decimal.RequireFromString("120.00")), "total %s", totals.Total)
}
