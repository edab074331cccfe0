package services

import (
	"context"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/dto"
)

// LeadReaderSvc defines read operations for lead data
type LeadReaderSvc interface {
	// GetLeadByID retrieves a lead within the session's tenant.
	GetLeadByID(ctx context.Context, session *domain.Session, leadID string) (*domain.Lead, error)

	// ListLeads retrieves a page of the session tenant's leads.
	ListLeads(ctx context.Context, session *domain.Session, params dto.ListLeadsParams) ([]domain.Lead, *string, error)

	// GetLeadOptions retrieves the tenant's service and status option lists.
	// Built-in defaults are returned for statuses when the tenant has not
	// configured any.
	GetLeadOptions(ctx context.Context, session *domain.Session) ([]domain.ServiceOption, []domain.StatusOption, error)
}

// LeadWriterSvc defines write operations for lead data
type LeadWriterSvc interface {
	// CreateLead creates a lead in the session's tenant.
	CreateLead(ctx context.Context, session *domain.Session, req dto.CreateLeadRequest) (*domain.Lead, error)

	// UpdateLead updates an existing lead.
	UpdateLead(ctx context.Context, session *domain.Session, leadID string, req dto.UpdateLeadRequest) (*domain.Lead, error)

	// UpdateLeadStatus moves a lead to a new pipeline status.
	UpdateLeadStatus(ctx context.Context, session *domain.Session, leadID string, status string) (*domain.Lead, error)

	// DeleteLead removes a lead.
	DeleteLead(ctx context.Context, session *domain.Session, leadID string) error
}

// LeadOptionWriterSvc defines write operations for per-tenant option lists
type LeadOptionWriterSvc interface {
	// AddServiceOption adds a service to the tenant's option list.
	AddServiceOption(ctx context.Context, session *domain.Session, req dto.CreateServiceOptionRequest) (*domain.ServiceOption, error)

	// RemoveServiceOption removes a service option.
	RemoveServiceOption(ctx context.Context, session *domain.Session, optionID string) error

	// AddStatusOption adds a pipeline stage to the tenant's option list.
	AddStatusOption(ctx context.Context, session *domain.Session, req dto.CreateStatusOptionRequest) (*domain.StatusOption, error)

	// RemoveStatusOption removes a status option.
	RemoveStatusOption(ctx context.Context, session *domain.Session, optionID string) error
}

// LeadSvcFacade combines all lead-related service interfaces
type LeadSvcFacade interface {
	LeadReaderSvc
	LeadWriterSvc
	LeadOptionWriterSvc
}
