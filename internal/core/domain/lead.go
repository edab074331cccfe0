package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead is a sales prospect tracked per tenant.
type Lead struct {
	LeadID          string           `json:"leadID"`   // Primary Key (e.g., UUID)
	TenantID        string           `json:"tenantID"` // FK -> tenants.tenant_id
	LeadName        string           `json:"leadName"`
	LeadDate        time.Time        `json:"leadDate"`
	MobileNumber    string           `json:"mobileNumber"`
	EmailAddress    string           `json:"emailAddress"`
	ServiceRequired []string         `json:"serviceRequired"` // Names from the tenant's service options
	Budget          *decimal.Decimal `json:"budget,omitempty"`
	LeadStatus      string           `json:"leadStatus"` // Name from the tenant's status options
	Notes           string           `json:"notes,omitempty"`
	AuditFields
}

// ServiceOption is a tenant-configurable service offered to leads.
type ServiceOption struct {
	OptionID string `json:"optionID"`
	TenantID string `json:"tenantID"`
	Name     string `json:"name"`
	AuditFields
}

// StatusOption is a tenant-configurable lead pipeline stage.
type StatusOption struct {
	OptionID  string `json:"optionID"`
	TenantID  string `json:"tenantID"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
	IsDefault bool   `json:"isDefault"`
	Color     string `json:"color,omitempty"`
	AuditFields
}

// DefaultStatusOptions is the fallback pipeline when a tenant has not
// configured its own statuses.
func DefaultStatusOptions() []StatusOption {
	return []StatusOption{
		{Name: "Created", SortOrder: 1, IsDefault: true},
		{Name: "Followup", SortOrder: 2},
		{Name: "Client", SortOrder: 3},
		{Name: "Rejected", SortOrder: 4},
	}
}
