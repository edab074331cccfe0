package dto

import (
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// CreateTenantRequest defines data for creating a new tenant.
type CreateTenantRequest struct {
	Name           string   `json:"name" binding:"required"`
	AllowedModules []string `json:"allowedModules" binding:"dive,oneof=leads invoices"`
}

// UpdateTenantRequest defines data allowed for updating a tenant.
type UpdateTenantRequest struct {
	Name           *string  `json:"name"`
	AllowedModules []string `json:"allowedModules" binding:"omitempty,dive,oneof=leads invoices"`
	IsActive       *bool    `json:"isActive"`
}

// ListTenantsParams defines query parameters for listing tenants.
type ListTenantsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID       string    `json:"tenantID"`
	Name           string    `json:"name"`
	IsActive       bool      `json:"isActive"`
	AllowedModules []string  `json:"allowedModules"`
	SubscriptionID *string   `json:"subscriptionID,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	modules := make([]string, len(t.Settings.AllowedModules))
	for i, m := range t.Settings.AllowedModules {
		modules[i] = string(m)
	}
	return TenantResponse{
		TenantID:       t.TenantID,
		Name:           t.Name,
		IsActive:       t.IsActive,
		AllowedModules: modules,
		SubscriptionID: t.SubscriptionID,
		CreatedAt:      t.CreatedAt,
	}
}

// ListTenantsResponse wraps a list of tenants.
type ListTenantsResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

// ToListTenantsResponse converts a slice of domain.Tenant to DTO.
func ToListTenantsResponse(ts []domain.Tenant) ListTenantsResponse {
	list := make([]TenantResponse, len(ts))
	for i := range ts {
		list[i] = ToTenantResponse(&ts[i])
	}
	return ListTenantsResponse{Tenants: list}
}
