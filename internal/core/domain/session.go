package domain

import "time"

// Session is the explicit access-control context for one request. It is built
// after token validation from fresh reads of the profile, tenant and
// subscription documents, and discarded with the request; nothing in it is
// cached across wall-clock boundaries (subscription expiry is time-dependent).
type Session struct {
	Profile      *UserProfile
	Tenant       *Tenant
	Subscription *Subscription
}

// HasPermission delegates to the profile's permission check.
func (s *Session) HasPermission(p Permission) bool {
	if s == nil {
		return false
	}
	return s.Profile.HasPermission(p)
}

// CanUseModule combines the tenant module gate with the subscription gate.
// Super admins bypass both; everyone else needs the module allowed on an
// active tenant AND a currently active (or trial, unexpired) subscription.
func (s *Session) CanUseModule(module Module, now time.Time) bool {
	if s == nil || s.Profile == nil {
		return false
	}
	if !CanAccessModule(s.Profile, s.Tenant, module) {
		return false
	}
	if s.Profile.Role == RoleSuperAdmin {
		return true
	}
	return s.Subscription.IsActiveAt(now)
}
