package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead is the persisted shape of a lead row. ServiceRequired is a text[]
// column of option names from the tenant's configured service list.
type Lead struct {
	LeadID          string           `db:"lead_id"`
	TenantID        string           `db:"tenant_id"`
	LeadName        string           `db:"lead_name"`
	LeadDate        time.Time        `db:"lead_date"`
	MobileNumber    string           `db:"mobile_number"`
	EmailAddress    string           `db:"email_address"`
	ServiceRequired []string         `db:"service_required"`
	Budget          *decimal.Decimal `db:"budget"`
	LeadStatus      string           `db:"lead_status"`
	Notes           string           `db:"notes"`
	AuditFields
}

// ServiceOption is a persisted per-tenant service name.
type ServiceOption struct {
	OptionID string `db:"option_id"`
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	AuditFields
}

// StatusOption is a persisted per-tenant lead pipeline stage.
type StatusOption struct {
	OptionID  string `db:"option_id"`
	TenantID  string `db:"tenant_id"`
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
	IsDefault bool   `db:"is_default"`
	Color     string `db:"color"`
	AuditFields
}
