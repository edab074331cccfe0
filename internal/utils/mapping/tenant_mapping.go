package mapping

import (
	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	modules := make([]string, len(d.Settings.AllowedModules))
	for i, m := range d.Settings.AllowedModules {
		modules[i] = string(m)
	}
	return models.Tenant{
		TenantID:       d.TenantID,
		Name:           d.Name,
		IsActive:       d.IsActive,
		AllowedModules: modules,
		SubscriptionID: ptrToNullString(d.SubscriptionID),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	modules := make([]domain.Module, len(m.AllowedModules))
	for i, mod := range m.AllowedModules {
		modules[i] = domain.Module(mod)
	}
	return domain.Tenant{
		TenantID:       m.TenantID,
		Name:           m.Name,
		IsActive:       m.IsActive,
		Settings:       domain.TenantSettings{AllowedModules: modules},
		SubscriptionID: nullStringToPtr(m.SubscriptionID),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTenantSlice converts a slice of model Tenants to domain Tenants
func ToDomainTenantSlice(ms []models.Tenant) []domain.Tenant {
	ds := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenant(m)
	}
	return ds
}
