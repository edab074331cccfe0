package dto

import (
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one requested billing line. Amounts are always
// recomputed server-side from quantity, rate and GST rate.
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Rate        decimal.Decimal `json:"rate" binding:"required"`
	GstRate     decimal.Decimal `json:"gstRate"`
}

// CreateInvoiceRequest defines data for creating an invoice. The invoice
// number is assigned by the server and cannot be supplied.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customerID" binding:"required"`
	Date       time.Time            `json:"date" binding:"required"`
	DueDate    time.Time            `json:"dueDate" binding:"required"`
	Items      []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes      string               `json:"notes"`
}

// UpdateInvoiceRequest defines data allowed for updating an invoice.
type UpdateInvoiceRequest struct {
	Date    *time.Time           `json:"date"`
	DueDate *time.Time           `json:"dueDate"`
	Items   []InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	Notes   *string              `json:"notes"`
}

// UpdateInvoiceStatusRequest moves an invoice to another lifecycle status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent paid"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// InvoiceItemResponse is one billed line with its derived amounts.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	GstRate     decimal.Decimal `json:"gstRate"`
	Amount      decimal.Decimal `json:"amount"`
	GstAmount   decimal.Decimal `json:"gstAmount"`
}

// InvoiceResponse defines data returned for an invoice, carrying everything a
// renderer needs including the customer snapshot taken at creation.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	TenantID      string                `json:"tenantID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	Date          time.Time             `json:"date"`
	DueDate       time.Time             `json:"dueDate"`
	CustomerID    string                `json:"customerID"`
	Customer      CustomerResponse      `json:"customer"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TotalGst      decimal.Decimal       `json:"totalGst"`
	Total         decimal.Decimal       `json:"total"`
	Notes         string                `json:"notes,omitempty"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ToInvoiceResponse converts domain.Invoice to DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			GstRate:     it.GstRate,
			Amount:      it.Amount,
			GstAmount:   it.GstAmount,
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		TenantID:      inv.TenantID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		CustomerID:    inv.CustomerID,
		Customer:      ToCustomerResponse(&inv.Customer),
		Items:         items,
		Subtotal:      inv.Subtotal,
		TotalGst:      inv.TotalGst,
		Total:         inv.Total,
		Notes:         inv.Notes,
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt,
	}
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListInvoicesResponse converts a page of domain.Invoice to DTO.
func ToListInvoicesResponse(invs []domain.Invoice, nextToken *string) ListInvoicesResponse {
	list := make([]InvoiceResponse, len(invs))
	for i := range invs {
		list[i] = ToInvoiceResponse(&invs[i])
	}
	return ListInvoicesResponse{Invoices: list, NextToken: nextToken}
}

// NextInvoiceNumberResponse is the advisory preview of the next invoice
// number. The committed number may differ under concurrent creation.
type NextInvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
}
