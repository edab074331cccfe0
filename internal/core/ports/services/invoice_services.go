package services

import (
	"context"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice within the session's tenant.
	GetInvoiceByID(ctx context.Context, session *domain.Session, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of the session tenant's invoices.
	ListInvoices(ctx context.Context, session *domain.Session, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error)

	// PeekNextInvoiceNumber returns the number the next invoice would most
	// likely receive. Display only; the committed number is assigned inside
	// the creation transaction and may differ.
	PeekNextInvoiceNumber(ctx context.Context, session *domain.Session) (string, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice derives item amounts and totals, assigns the next
	// sequential invoice number and persists the invoice atomically.
	CreateInvoice(ctx context.Context, session *domain.Session, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice updates an invoice's mutable fields, recomputing totals
	// when items change. The invoice number never changes.
	UpdateInvoice(ctx context.Context, session *domain.Session, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoiceStatus applies a lifecycle transition (draft, sent, paid).
	UpdateInvoiceStatus(ctx context.Context, session *domain.Session, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice. Its number is not reused.
	DeleteInvoice(ctx context.Context, session *domain.Session, invoiceID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
