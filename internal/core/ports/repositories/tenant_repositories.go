package repositories

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// FindTenants retrieves a paginated list of tenants.
	FindTenants(ctx context.Context, limit int, offset int) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// SaveTenant persists a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenant updates an existing tenant's details, including its module allow-list.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error

	// SetTenantActive toggles a tenant's active flag.
	SetTenantActive(ctx context.Context, tenantID string, isActive bool, updatedBy string, updatedAt time.Time) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
