package domain

// Module is a feature area that can be enabled per tenant.
type Module string

const (
	ModuleLeads    Module = "leads"
	ModuleInvoices Module = "invoices"
)

// IsValid reports whether m names a known module.
func (m Module) IsValid() bool {
	return m == ModuleLeads || m == ModuleInvoices
}

// TenantSettings holds per-tenant configuration.
// A missing settings document means no modules are allowed.
type TenantSettings struct {
	AllowedModules []Module `json:"allowedModules"`
}

// Allows reports whether the module is on the tenant's allow-list.
func (s TenantSettings) Allows(m Module) bool {
	for _, allowed := range s.AllowedModules {
		if allowed == m {
			return true
		}
	}
	return false
}

// Tenant represents an isolated customer organization.
type Tenant struct {
	TenantID       string         `json:"tenantID"` // Primary Key (e.g., UUID)
	Name           string         `json:"name"`
	IsActive       bool           `json:"isActive"`
	Settings       TenantSettings `json:"settings"`
	SubscriptionID *string        `json:"subscriptionID,omitempty"` // Nullable FK -> subscriptions.subscription_id
	AuditFields
}

// CanAccessModule decides module access for a profile against its tenant.
// Super admins bypass tenant scoping entirely; everyone else needs an active
// tenant whose allow-list contains the module. Per-user permissions are
// checked separately; both gates must pass.
func CanAccessModule(profile *UserProfile, tenant *Tenant, module Module) bool {
	if profile == nil {
		return false
	}
	if profile.Role == RoleSuperAdmin {
		return true
	}
	if tenant == nil || !tenant.IsActive {
		return false
	}
	return tenant.Settings.Allows(module)
}
