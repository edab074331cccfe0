package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice. Line items and
// the customer snapshot are serialized to JSONB payloads.
func ToModelInvoice(d domain.Invoice) (models.Invoice, error) {
	itemsJSON, err := json.Marshal(d.Items)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal invoice items: %w", err)
	}
	customerJSON, err := json.Marshal(d.Customer)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal customer snapshot: %w", err)
	}
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		TenantID:      d.TenantID,
		InvoiceNumber: d.InvoiceNumber,
		InvoiceDate:   d.Date,
		DueDate:       d.DueDate,
		CustomerID:    d.CustomerID,
		CustomerJSON:  customerJSON,
		ItemsJSON:     itemsJSON,
		Subtotal:      d.Subtotal,
		TotalGst:      d.TotalGst,
		Total:         d.Total,
		Notes:         d.Notes,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) (domain.Invoice, error) {
	var items []domain.InvoiceItem
	if len(m.ItemsJSON) > 0 {
		if err := json.Unmarshal(m.ItemsJSON, &items); err != nil {
			return domain.Invoice{}, fmt.Errorf("failed to unmarshal invoice items: %w", err)
		}
	}
	var customer domain.Customer
	if len(m.CustomerJSON) > 0 {
		if err := json.Unmarshal(m.CustomerJSON, &customer); err != nil {
			return domain.Invoice{}, fmt.Errorf("failed to unmarshal customer snapshot: %w", err)
		}
	}
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		TenantID:      m.TenantID,
		InvoiceNumber: m.InvoiceNumber,
		Date:          m.InvoiceDate,
		DueDate:       m.DueDate,
		CustomerID:    m.CustomerID,
		Customer:      customer,
		Items:         items,
		Subtotal:      m.Subtotal,
		TotalGst:      m.TotalGst,
		Total:         m.Total,
		Notes:         m.Notes,
		Status:        domain.InvoiceStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) ([]domain.Invoice, error) {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		d, err := ToDomainInvoice(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// ToDomainInvoiceCounter converts a model InvoiceCounter to a domain InvoiceCounter
func ToDomainInvoiceCounter(m models.InvoiceCounter) domain.InvoiceCounter {
	return domain.InvoiceCounter{
		OwnerID:      m.OwnerID,
		Year:         m.Year,
		CurrentCount: m.CurrentCount,
	}
}
