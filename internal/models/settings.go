package models

import "database/sql"

// CompanySettings is the persisted per-tenant billing profile. One row per
// tenant, keyed by settings_id with a unique constraint on tenant_id.
type CompanySettings struct {
	SettingsID    string         `db:"settings_id"`
	TenantID      string         `db:"tenant_id"`
	Name          string         `db:"name"`
	Address       string         `db:"address"`
	Phone         string         `db:"phone"`
	Email         string         `db:"email"`
	Website       sql.NullString `db:"website"`
	GSTIN         sql.NullString `db:"gstin"`
	PAN           sql.NullString `db:"pan"`
	LogoURL       sql.NullString `db:"logo_url"`
	InvoicePrefix string         `db:"invoice_prefix"`
	BankName      sql.NullString `db:"bank_name"`
	AccountNumber sql.NullString `db:"account_number"`
	IFSCCode      sql.NullString `db:"ifsc_code"`
	BranchName    sql.NullString `db:"branch_name"`
	AuditFields
}
