package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the persisted shape of an invoice row. Line items and the
// customer snapshot are stored as JSONB documents: they have no lifecycle of
// their own and always travel with the invoice.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	TenantID      string          `db:"tenant_id"`
	InvoiceNumber string          `db:"invoice_number"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DueDate       time.Time       `db:"due_date"`
	CustomerID    string          `db:"customer_id"`
	CustomerJSON  []byte          `db:"customer_snapshot"`
	ItemsJSON     []byte          `db:"items"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	TotalGst      decimal.Decimal `db:"total_gst"`
	Total         decimal.Decimal `db:"total"`
	Notes         string          `db:"notes"`
	Status        string          `db:"status"`
	AuditFields
}

// InvoiceCounter is the persisted per-(owner, year) sequence row.
type InvoiceCounter struct {
	OwnerID      string `db:"owner_id"`
	Year         int    `db:"year"`
	CurrentCount int64  `db:"current_count"`
}
