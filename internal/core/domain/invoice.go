package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

// IsValid reports whether s names a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid:
		return true
	}
	return false
}

// InvoiceItem is a single billed line, owned exclusively by its invoice.
// Amount and GstAmount are derived server-side, never trusted from input.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	GstRate     decimal.Decimal `json:"gstRate"` // Percent, e.g. 18 for 18%
	Amount      decimal.Decimal `json:"amount"`
	GstAmount   decimal.Decimal `json:"gstAmount"`
}

// Invoice is a tenant-scoped GST invoice. The invoice number is assigned by
// the sequence counter at creation and is immutable afterwards.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"` // Primary Key (e.g., UUID)
	TenantID      string          `json:"tenantID"`  // FK -> tenants.tenant_id
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          time.Time       `json:"date"`
	DueDate       time.Time       `json:"dueDate"`
	CustomerID    string          `json:"customerID"`
	Customer      Customer        `json:"customer"` // Snapshot taken at creation
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalGst      decimal.Decimal `json:"totalGst"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes,omitempty"`
	Status        InvoiceStatus   `json:"status"`
	AuditFields
}

// InvoiceCounter holds the last issued sequence value for one (owner, year).
// Created lazily on the first invoice of the year, incremented exactly once
// per successful creation, never decremented or reused.
type InvoiceCounter struct {
	OwnerID      string `json:"ownerID"`
	Year         int    `json:"year"`
	CurrentCount int64  `json:"currentCount"`
}

var invoicePrefixPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

// ValidateInvoicePrefix enforces the persisted number format contract:
// at most 5 uppercase characters.
func ValidateInvoicePrefix(prefix string) error {
	if !invoicePrefixPattern.MatchString(prefix) {
		return fmt.Errorf("invoice prefix must be 1-5 uppercase letters, got %q", prefix)
	}
	return nil
}

// FormatInvoiceNumber renders "{prefix}INV{YYYY}{NNNN}" with the sequence
// zero-padded to 4 digits.
func FormatInvoiceNumber(prefix string, year int, sequence int64) string {
	return fmt.Sprintf("%sINV%d%04d", prefix, year, sequence)
}
