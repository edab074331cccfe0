package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/digitalavenger/leadbill/internal/utils/billing"
	"github.com/google/uuid"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerReader
	settingsRepo portsrepo.SettingsReader
}

// NewInvoiceService creates a new invoice service with the provided dependencies
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	settingsRepo portsrepo.SettingsReader,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
	}
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) authorizeRead(session *domain.Session) (string, error) {
	if err := s.RequirePermission(session, domain.PermViewInvoices); err != nil {
		return "", err
	}
	if err := s.RequireModule(session, domain.ModuleInvoices); err != nil {
		return "", err
	}
	return s.RequireTenant(session)
}

func (s *invoiceService) authorizeWrite(session *domain.Session) (string, error) {
	if err := s.RequirePermission(session, domain.PermManageInvoices); err != nil {
		return "", err
	}
	if err := s.RequireModule(session, domain.ModuleInvoices); err != nil {
		return "", err
	}
	return s.RequireTenant(session)
}

// invoicePrefix resolves the tenant's configured invoice prefix. Invoicing is
// blocked until company settings carry a valid prefix, so that numbers never
// get minted under a placeholder.
func (s *invoiceService) invoicePrefix(ctx context.Context, tenantID string) (string, error) {
	settings, err := s.settingsRepo.FindSettingsByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewValidationFailedError("company settings with an invoice prefix must be saved before invoicing")
		}
		return "", err
	}
	if err := domain.ValidateInvoicePrefix(settings.InvoicePrefix); err != nil {
		return "", apperrors.NewValidationFailedError(err.Error())
	}
	return settings.InvoicePrefix, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, session *domain.Session, invoiceID string) (*domain.Invoice, error) {
	tenantID, err := s.authorizeRead(session)
	if err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindInvoiceByID(ctx, tenantID, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, session *domain.Session, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error) {
	tenantID, err := s.authorizeRead(session)
	if err != nil {
		return nil, nil, err
	}
	return s.invoiceRepo.ListInvoicesByTenant(ctx, tenantID, params.Limit, params.NextToken)
}

func (s *invoiceService) PeekNextInvoiceNumber(ctx context.Context, session *domain.Session) (string, error) {
	tenantID, err := s.authorizeRead(session)
	if err != nil {
		return "", err
	}
	prefix, err := s.invoicePrefix(ctx, tenantID)
	if err != nil {
		return "", err
	}
	year := time.Now().Year()
	sequence, err := s.invoiceRepo.PeekNextSequence(ctx, tenantID, year)
	if err != nil {
		return "", err
	}
	return domain.FormatInvoiceNumber(prefix, year, sequence), nil
}

// toInvoiceItems converts requested lines into derived domain lines with
// server-computed amounts.
func toInvoiceItems(reqs []dto.InvoiceItemRequest) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, len(reqs))
	for i, r := range reqs {
		items[i] = domain.InvoiceItem{
			Description: r.Description,
			Quantity:    r.Quantity,
			Rate:        r.Rate,
			GstRate:     r.GstRate,
		}
	}
	return billing.DeriveItems(items)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, session *domain.Session, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	tenantID, err := s.authorizeWrite(session)
	if err != nil {
		return nil, err
	}
	if req.DueDate.Before(req.Date) {
		return nil, apperrors.NewValidationFailedError("due date must not be before the invoice date")
	}

	prefix, err := s.invoicePrefix(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	items := toInvoiceItems(req.Items)
	totals := billing.ComputeTotals(items)

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:  uuid.NewString(),
		TenantID:   tenantID,
		Date:       req.Date,
		DueDate:    req.DueDate,
		CustomerID: customer.CustomerID,
		Customer:   *customer,
		Items:      items,
		Subtotal:   totals.Subtotal,
		TotalGst:   totals.TotalGst,
		Total:      totals.Total,
		Notes:      req.Notes,
		Status:     domain.InvoiceDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}

	created, err := s.invoiceRepo.CreateInvoiceWithNumber(ctx, invoice, prefix)
	if err != nil {
		s.LogError(ctx, err, "invoice creation failed", slog.String("tenantID", tenantID))
		return nil, err
	}
	return created, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, session *domain.Session, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	tenantID, err := s.authorizeWrite(session)
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		invoice.Date = *req.Date
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if invoice.DueDate.Before(invoice.Date) {
		return nil, apperrors.NewValidationFailedError("due date must not be before the invoice date")
	}
	if req.Items != nil {
		invoice.Items = toInvoiceItems(req.Items)
		totals := billing.ComputeTotals(invoice.Items)
		invoice.Subtotal = totals.Subtotal
		invoice.TotalGst = totals.TotalGst
		invoice.Total = totals.Total
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = session.Profile.UserID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, session *domain.Session, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	tenantID, err := s.authorizeWrite(session)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown invoice status: " + string(status))
	}

	now := time.Now()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, tenantID, invoiceID, status, session.Profile.UserID, now); err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindInvoiceByID(ctx, tenantID, invoiceID)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, session *domain.Session, invoiceID string) error {
	tenantID, err := s.authorizeWrite(session)
	if err != nil {
		return err
	}
	return s.invoiceRepo.DeleteInvoice(ctx, tenantID, invoiceID)
}
