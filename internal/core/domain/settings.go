package domain

// CompanySettings is the per-tenant billing identity, one document per tenant.
// InvoicePrefix feeds the invoice number format.
type CompanySettings struct {
	SettingsID    string `json:"settingsID"` // Primary Key (e.g., UUID)
	TenantID      string `json:"tenantID"`   // FK -> tenants.tenant_id
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	GSTIN         string `json:"gstin"`
	PAN           string `json:"pan"`
	LogoURL       string `json:"logoUrl,omitempty"`
	InvoicePrefix string `json:"invoicePrefix"`

	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSCCode      string `json:"ifscCode,omitempty"`
	BranchName    string `json:"branchName,omitempty"`
	AuditFields
}
