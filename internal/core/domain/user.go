package domain

import (
	"fmt"
	"time"
)

// UserRole defines the application-wide role of a user profile.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleEmployee   UserRole = "employee"
	RoleClient     UserRole = "client"
)

// IsValid reports whether r is one of the known role values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// Permission is an atomic capability checked before allowing an action.
type Permission string

const (
	PermViewDashboard       Permission = "view_dashboard"
	PermViewLeads           Permission = "view_leads"
	PermManageLeads         Permission = "manage_leads"
	PermViewInvoices        Permission = "view_invoices"
	PermManageInvoices      Permission = "manage_invoices"
	PermViewCustomers       Permission = "view_customers"
	PermManageCustomers     Permission = "manage_customers"
	PermManageSettings      Permission = "manage_settings"
	PermManageUsers         Permission = "manage_users"
	PermManageTenants       Permission = "manage_tenants"
	PermManageSubscriptions Permission = "manage_subscriptions"
	PermViewAllAnalytics    Permission = "view_all_analytics"
)

// RolePermissions is the static, total role -> permission-set table.
// A profile gets exactly this set at creation unless explicitly overridden.
var RolePermissions = map[UserRole][]Permission{
	RoleSuperAdmin: {
		PermViewDashboard,
		PermViewLeads, PermManageLeads,
		PermViewInvoices, PermManageInvoices,
		PermViewCustomers, PermManageCustomers,
		PermManageSettings,
		PermManageUsers,
		PermManageTenants,
		PermManageSubscriptions,
		PermViewAllAnalytics,
	},
	RoleAdmin: {
		PermViewDashboard,
		PermViewLeads, PermManageLeads,
		PermViewInvoices, PermManageInvoices,
		PermViewCustomers, PermManageCustomers,
		PermManageSettings,
		PermManageUsers,
	},
	RoleEmployee: {
		PermViewDashboard,
		PermViewLeads, PermManageLeads,
		PermViewInvoices,
		PermViewCustomers,
	},
	RoleClient: {
		PermViewDashboard,
		PermViewLeads,
	},
}

// PermissionsForRole returns the static permission set for a role.
// An unknown role is a configuration error, not a runtime condition: the
// adapter layer validates stored roles, so this panics to fail fast.
func PermissionsForRole(role UserRole) []Permission {
	perms, ok := RolePermissions[role]
	if !ok {
		panic(fmt.Sprintf("no permission mapping configured for role %q", role))
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// UserProfile represents an authenticated identity and its access grants.
type UserProfile struct {
	UserID       string       `json:"userID"` // Primary Key (e.g., UUID)
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Role         UserRole     `json:"role"`
	TenantID     *string      `json:"tenantID,omitempty"` // Nullable FK -> tenants.tenant_id
	Permissions  []Permission `json:"permissions"`
	IsActive     bool         `json:"isActive"`
	PasswordHash string       `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete

	// Refresh token state, populated only on the auth path.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// HasPermission reports whether the profile grants p.
// An inactive profile is never granted anything, regardless of its set.
func (u *UserProfile) HasPermission(p Permission) bool {
	if u == nil || !u.IsActive {
		return false
	}
	for _, have := range u.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// GoogleUserInfo holds the subset of the Google userinfo payload used at sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
