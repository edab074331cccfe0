package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/google/uuid"
)

// maxLogoSizeBytes caps logo uploads at 2 MiB.
const maxLogoSizeBytes = 2 << 20

var allowedLogoContentTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

// settingsService implements the SettingsSvcFacade interface
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	fileStore    portssvc.FileStore
}

// NewSettingsService creates a new settings service with the provided dependencies
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, fileStore portssvc.FileStore) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo, fileStore: fileStore}
}

// Ensure settingsService implements the SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, session *domain.Session) (*domain.CompanySettings, error) {
	if err := s.RequirePermission(session, domain.PermManageSettings); err != nil {
		return nil, err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return nil, err
	}
	return s.settingsRepo.FindSettingsByTenantID(ctx, tenantID)
}

func (s *settingsService) SaveSettings(ctx context.Context, session *domain.Session, req dto.SaveSettingsRequest) (*domain.CompanySettings, error) {
	if err := s.RequirePermission(session, domain.PermManageSettings); err != nil {
		return nil, err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateInvoicePrefix(req.InvoicePrefix); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	now := time.Now()
	settings := domain.CompanySettings{
		TenantID:      tenantID,
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		GSTIN:         req.GSTIN,
		PAN:           req.PAN,
		InvoicePrefix: req.InvoicePrefix,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
		BranchName:    req.BranchName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}

	// Keep the existing identity and logo when settings already exist: saves
	// replace the form fields, not the uploaded logo.
	existing, err := s.settingsRepo.FindSettingsByTenantID(ctx, tenantID)
	switch {
	case err == nil:
		settings.SettingsID = existing.SettingsID
		settings.LogoURL = existing.LogoURL
		settings.CreatedAt = existing.CreatedAt
		settings.CreatedBy = existing.CreatedBy
	case errors.Is(err, apperrors.ErrNotFound):
		settings.SettingsID = uuid.NewString()
	default:
		return nil, err
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *settingsService) UploadLogo(ctx context.Context, session *domain.Session, filename string, contentType string, size int64, content io.Reader) (string, error) {
	if s.fileStore == nil {
		return "", apperrors.NewValidationFailedError("file storage is not configured")
	}
	if err := s.RequirePermission(session, domain.PermManageSettings); err != nil {
		return "", err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return "", err
	}
	if size <= 0 || size > maxLogoSizeBytes {
		return "", apperrors.NewValidationFailedError("logo must be between 1 byte and 2 MiB")
	}
	ext, ok := allowedLogoContentTypes[contentType]
	if !ok {
		return "", apperrors.NewValidationFailedError("unsupported logo content type: " + contentType)
	}
	if e := strings.ToLower(path.Ext(filename)); e != "" && e != ext && !(e == ".jpeg" && ext == ".jpg") {
		return "", apperrors.NewValidationFailedError("logo file extension does not match its content type")
	}

	// Settings must exist first so the logo has a record to attach to.
	if _, err := s.settingsRepo.FindSettingsByTenantID(ctx, tenantID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("logos/%s/%s%s", tenantID, uuid.NewString(), ext)
	url, err := s.fileStore.Put(ctx, key, contentType, size, content)
	if err != nil {
		s.LogError(ctx, err, "logo upload failed", "tenantID", tenantID)
		return "", apperrors.NewAppError(500, "failed to store logo", err)
	}
	if err := s.settingsRepo.UpdateLogoURL(ctx, tenantID, url, session.Profile.UserID); err != nil {
		return "", err
	}
	return url, nil
}
