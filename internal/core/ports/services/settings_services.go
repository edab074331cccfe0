package services

import (
	"context"
	"io"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/dto"
)

// SettingsSvcFacade defines operations for per-tenant company settings.
type SettingsSvcFacade interface {
	// GetSettings retrieves the session tenant's company settings.
	GetSettings(ctx context.Context, session *domain.Session) (*domain.CompanySettings, error)

	// SaveSettings inserts or replaces the tenant's company settings.
	// The invoice prefix is validated before saving.
	SaveSettings(ctx context.Context, session *domain.Session, req dto.SaveSettingsRequest) (*domain.CompanySettings, error)

	// UploadLogo stores a company logo through the file store and records
	// its public URL in the settings. Returns the URL.
	UploadLogo(ctx context.Context, session *domain.Session, filename string, contentType string, size int64, content io.Reader) (string, error)
}
