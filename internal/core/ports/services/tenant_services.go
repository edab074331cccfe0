package services

import (
	"context"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/dto"
)

// TenantReaderSvc defines read operations for tenant data
type TenantReaderSvc interface {
	// GetTenantByID retrieves a tenant by ID.
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenants retrieves a paginated list of tenants.
	ListTenants(ctx context.Context, session *domain.Session, params dto.ListTenantsParams) ([]domain.Tenant, error)
}

// TenantWriterSvc defines write operations for tenant data
type TenantWriterSvc interface {
	// CreateTenant creates a new tenant.
	CreateTenant(ctx context.Context, session *domain.Session, req dto.CreateTenantRequest) (*domain.Tenant, error)

	// UpdateTenant updates a tenant's details, module allow-list and active flag.
	UpdateTenant(ctx context.Context, session *domain.Session, tenantID string, req dto.UpdateTenantRequest) (*domain.Tenant, error)
}

// SessionResolverSvc builds the per-request access-control context.
type SessionResolverSvc interface {
	// ResolveSession loads the tenant and current subscription for an
	// authenticated profile. Tenant and subscription are nil for profiles
	// without a tenant association (super admins).
	ResolveSession(ctx context.Context, profile *domain.UserProfile) (*domain.Session, error)
}

// TenantSvcFacade combines all tenant-related service interfaces
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
	SessionResolverSvc
}
