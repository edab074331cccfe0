package models

import "database/sql"

// Tenant is the persisted shape of a tenant row. The module allow-list is a
// text[] column; an empty list means no modules enabled.
type Tenant struct {
	TenantID       string         `db:"tenant_id"`
	Name           string         `db:"name"`
	IsActive       bool           `db:"is_active"`
	AllowedModules []string       `db:"allowed_modules"`
	SubscriptionID sql.NullString `db:"subscription_id"`
	AuditFields
}
