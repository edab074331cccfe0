package mapping

import (
	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/models"
)

// ToModelCompanySettings converts domain CompanySettings to model CompanySettings
func ToModelCompanySettings(d domain.CompanySettings) models.CompanySettings {
	return models.CompanySettings{
		SettingsID:    d.SettingsID,
		TenantID:      d.TenantID,
		Name:          d.Name,
		Address:       d.Address,
		Phone:         d.Phone,
		Email:         d.Email,
		Website:       stringToNullString(d.Website),
		GSTIN:         stringToNullString(d.GSTIN),
		PAN:           stringToNullString(d.PAN),
		LogoURL:       stringToNullString(d.LogoURL),
		InvoicePrefix: d.InvoicePrefix,
		BankName:      stringToNullString(d.BankName),
		AccountNumber: stringToNullString(d.AccountNumber),
		IFSCCode:      stringToNullString(d.IFSCCode),
		BranchName:    stringToNullString(d.BranchName),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompanySettings converts model CompanySettings to domain CompanySettings
func ToDomainCompanySettings(m models.CompanySettings) domain.CompanySettings {
	return domain.CompanySettings{
		SettingsID:    m.SettingsID,
		TenantID:      m.TenantID,
		Name:          m.Name,
		Address:       m.Address,
		Phone:         m.Phone,
		Email:         m.Email,
		Website:       nullStringToString(m.Website),
		GSTIN:         nullStringToString(m.GSTIN),
		PAN:           nullStringToString(m.PAN),
		LogoURL:       nullStringToString(m.LogoURL),
		InvoicePrefix: m.InvoicePrefix,
		BankName:      nullStringToString(m.BankName),
		AccountNumber: nullStringToString(m.AccountNumber),
		IFSCCode:      nullStringToString(m.IFSCCode),
		BranchName:    nullStringToString(m.BranchName),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
