package repositories

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by ID within a tenant.
	FindInvoiceByID(ctx context.Context, tenantID string, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByTenant retrieves a paginated list of a tenant's invoices
	// using token-based pagination ordered by invoice date then creation time.
	ListInvoicesByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// PeekNextSequence returns the sequence value the next invoice for
	// (ownerID, year) would most likely receive. It does not increment the
	// counter; the value is advisory and may be stale by the time an invoice
	// is actually created.
	PeekNextSequence(ctx context.Context, ownerID string, year int) (int64, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// CreateInvoiceWithNumber atomically increments the (ownerID, year)
	// sequence counter, formats the invoice number with the given prefix and
	// persists the invoice, all within one database transaction. The returned
	// invoice carries the assigned number. Persistent write contention
	// surfaces apperrors.ErrConflict.
	CreateInvoiceWithNumber(ctx context.Context, invoice domain.Invoice, prefix string) (*domain.Invoice, error)

	// UpdateInvoice updates an invoice's mutable fields. The invoice number,
	// tenant and creation audit fields are never touched.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceStatus moves an invoice to a new lifecycle status.
	UpdateInvoiceStatus(ctx context.Context, tenantID string, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error

	// DeleteInvoice removes an invoice. The sequence counter is never
	// decremented; deleted numbers are not reused.
	DeleteInvoice(ctx context.Context, tenantID string, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
