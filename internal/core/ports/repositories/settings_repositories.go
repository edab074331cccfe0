package repositories

import (
	"context"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// SettingsReader defines read operations for company settings
type SettingsReader interface {
	// FindSettingsByTenantID retrieves a tenant's company settings.
	FindSettingsByTenantID(ctx context.Context, tenantID string) (*domain.CompanySettings, error)
}

// SettingsWriter defines write operations for company settings
type SettingsWriter interface {
	// SaveSettings inserts or replaces a tenant's company settings.
	SaveSettings(ctx context.Context, settings domain.CompanySettings) error

	// UpdateLogoURL updates only the stored logo URL after an upload.
	UpdateLogoURL(ctx context.Context, tenantID string, logoURL string, updatedBy string) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
