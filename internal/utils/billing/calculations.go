// Package billing holds the pure invoice arithmetic. Everything runs on
// decimals; formatting to 2 decimal places happens here, at the computation
// boundary, so that summation never accumulates float drift.
package billing

import (
	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals is the computed summary block of an invoice.
type Totals struct {
	Subtotal decimal.Decimal
	TotalGst decimal.Decimal
	Total    decimal.Decimal
}

// DeriveItem fills in the computed fields of an invoice line:
// amount = round2(quantity * rate), gstAmount = round2(amount * gstRate / 100).
func DeriveItem(item domain.InvoiceItem) domain.InvoiceItem {
	amount := item.Quantity.Mul(item.Rate).Round(2)
	item.Amount = amount
	item.GstAmount = amount.Mul(item.GstRate).Div(decimal.NewFromInt(100)).Round(2)
	return item
}

// DeriveItems applies DeriveItem to every line, returning a new slice.
func DeriveItems(items []domain.InvoiceItem) []domain.InvoiceItem {
	out := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		out[i] = DeriveItem(item)
	}
	return out
}

// ComputeTotals sums derived line items. It is pure: calling it twice on the
// same slice yields identical results, and it never mutates its input.
func ComputeTotals(items []domain.InvoiceItem) Totals {
	subtotal := decimal.Zero
	totalGst := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
		totalGst = totalGst.Add(item.GstAmount)
	}
	return Totals{
		Subtotal: subtotal,
		TotalGst: totalGst,
		Total:    subtotal.Add(totalGst),
	}
}
