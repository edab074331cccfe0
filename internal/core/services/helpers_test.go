package services_test

import (
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// superAdminSession builds a session for a platform super admin with no
// tenant association.
func superAdminSession() *domain.Session {
	return &domain.Session{
		Profile: &domain.UserProfile{
			UserID:      uuid.NewString(),
			Email:       "root@example.com",
			Role:        domain.RoleSuperAdmin,
			Permissions: domain.PermissionsForRole(domain.RoleSuperAdmin),
			IsActive:    true,
		},
	}
}

// adminSession builds a session for a tenant admin whose tenant has both
// modules enabled and a live subscription.
func adminSession(tenantID string) *domain.Session {
	now := time.Now()
	return &domain.Session{
		Profile: &domain.UserProfile{
			UserID:      uuid.NewString(),
			Email:       "admin@example.com",
			Role:        domain.RoleAdmin,
			TenantID:    &tenantID,
			Permissions: domain.PermissionsForRole(domain.RoleAdmin),
			IsActive:    true,
		},
		Tenant: &domain.Tenant{
			TenantID: tenantID,
			Name:     "Acme Media",
			IsActive: true,
			Settings: domain.TenantSettings{
				AllowedModules: []domain.Module{domain.ModuleLeads, domain.ModuleInvoices},
			},
		},
		Subscription: &domain.Subscription{
			SubscriptionID: uuid.NewString(),
			TenantID:       tenantID,
			Plan:           domain.PlanStarter,
			Status:         domain.SubscriptionActive,
			StartDate:      now.AddDate(0, -1, 0),
			EndDate:        now.AddDate(0, 11, 0),
			Amount:         decimal.NewFromInt(4999),
		},
	}
}

// employeeSession builds a session for a tenant employee (read-mostly role).
func employeeSession(tenantID string) *domain.Session {
	s := adminSession(tenantID)
	s.Profile.Role = domain.RoleEmployee
	s.Profile.Permissions = domain.PermissionsForRole(domain.RoleEmployee)
	return s
}

// expireSubscription rewrites the session's subscription so it ended in the past.
func expireSubscription(s *domain.Session) *domain.Session {
	s.Subscription.EndDate = time.Now().Add(-time.Hour)
	return s
}
