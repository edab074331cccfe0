package repositories

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// LeadReader defines read operations for lead data
type LeadReader interface {
	// FindLeadByID retrieves a lead by ID within a tenant.
	FindLeadByID(ctx context.Context, tenantID string, leadID string) (*domain.Lead, error)

	// ListLeadsByTenant retrieves a paginated list of a tenant's leads using
	// token-based pagination ordered by lead date then creation time.
	ListLeadsByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Lead, *string, error)
}

// LeadWriter defines write operations for lead data
type LeadWriter interface {
	// SaveLead persists a new lead.
	SaveLead(ctx context.Context, lead domain.Lead) error

	// UpdateLead updates an existing lead's details.
	UpdateLead(ctx context.Context, lead domain.Lead) error

	// UpdateLeadStatus moves a lead to a new pipeline status.
	UpdateLeadStatus(ctx context.Context, tenantID string, leadID string, status string, updatedBy string, updatedAt time.Time) error

	// DeleteLead removes a lead from a tenant.
	DeleteLead(ctx context.Context, tenantID string, leadID string) error
}

// LeadOptionReader defines read operations for per-tenant lead option lists
type LeadOptionReader interface {
	// FindServiceOptions retrieves a tenant's configured service options.
	FindServiceOptions(ctx context.Context, tenantID string) ([]domain.ServiceOption, error)

	// FindStatusOptions retrieves a tenant's configured status options ordered by sort order.
	FindStatusOptions(ctx context.Context, tenantID string) ([]domain.StatusOption, error)
}

// LeadOptionWriter defines write operations for per-tenant lead option lists
type LeadOptionWriter interface {
	// SaveServiceOption persists a new service option.
	SaveServiceOption(ctx context.Context, option domain.ServiceOption) error

	// DeleteServiceOption removes a service option.
	DeleteServiceOption(ctx context.Context, tenantID string, optionID string) error

	// SaveStatusOption persists a new status option.
	SaveStatusOption(ctx context.Context, option domain.StatusOption) error

	// DeleteStatusOption removes a status option.
	DeleteStatusOption(ctx context.Context, tenantID string, optionID string) error
}

// LeadRepositoryFacade combines all lead-related repository interfaces
type LeadRepositoryFacade interface {
	LeadReader
	LeadWriter
	LeadOptionReader
	LeadOptionWriter
}
