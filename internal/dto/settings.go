package dto

import (
	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// SaveSettingsRequest defines the full company settings payload. Settings are
// a singleton per tenant and are saved whole.
type SaveSettingsRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Website       string `json:"website"`
	GSTIN         string `json:"gstin"`
	PAN           string `json:"pan"`
	InvoicePrefix string `json:"invoicePrefix" binding:"required"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BranchName    string `json:"branchName"`
}

// SettingsResponse defines data returned for company settings.
type SettingsResponse struct {
	SettingsID    string `json:"settingsID"`
	TenantID      string `json:"tenantID"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website,omitempty"`
	GSTIN         string `json:"gstin,omitempty"`
	PAN           string `json:"pan,omitempty"`
	LogoURL       string `json:"logoUrl,omitempty"`
	InvoicePrefix string `json:"invoicePrefix"`
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSCCode      string `json:"ifscCode,omitempty"`
	BranchName    string `json:"branchName,omitempty"`
}

// ToSettingsResponse converts domain.CompanySettings to DTO.
func ToSettingsResponse(s *domain.CompanySettings) SettingsResponse {
	return SettingsResponse{
		SettingsID:    s.SettingsID,
		TenantID:      s.TenantID,
		Name:          s.Name,
		Address:       s.Address,
		Phone:         s.Phone,
		Email:         s.Email,
		Website:       s.Website,
		GSTIN:         s.GSTIN,
		PAN:           s.PAN,
		LogoURL:       s.LogoURL,
		InvoicePrefix: s.InvoicePrefix,
		BankName:      s.BankName,
		AccountNumber: s.AccountNumber,
		IFSCCode:      s.IFSCCode,
		BranchName:    s.BranchName,
	}
}

// LogoUploadResponse returns the public URL of an uploaded logo.
type LogoUploadResponse struct {
	LogoURL string `json:"logoUrl"`
}
