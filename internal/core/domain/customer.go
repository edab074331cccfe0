package domain

// Customer is a billable party belonging to a tenant.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (e.g., UUID)
	TenantID   string `json:"tenantID"`   // FK -> tenants.tenant_id
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	GSTIN      string `json:"gstin,omitempty"` // Optional tax registration number
	AuditFields
}
