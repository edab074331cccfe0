package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/google/uuid"
)

// tenantService implements the TenantSvcFacade interface
type tenantService struct {
	BaseService
	tenantRepo      portsrepo.TenantRepositoryFacade
	subscriptionSvc portssvc.SubscriptionReaderSvc
}

// NewTenantService creates a new tenant service with the provided dependencies
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, subscriptionSvc portssvc.SubscriptionReaderSvc) portssvc.TenantSvcFacade {
	return &tenantService{tenantRepo: tenantRepo, subscriptionSvc: subscriptionSvc}
}

// Ensure tenantService implements the TenantSvcFacade interface
var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tenant by ID", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) ListTenants(ctx context.Context, session *domain.Session, params dto.ListTenantsParams) ([]domain.Tenant, error) {
	if err := s.RequirePermission(session, domain.PermManageTenants); err != nil {
		return nil, err
	}
	return s.tenantRepo.FindTenants(ctx, params.Limit, params.Offset)
}

func (s *tenantService) CreateTenant(ctx context.Context, session *domain.Session, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	if err := s.RequirePermission(session, domain.PermManageTenants); err != nil {
		return nil, err
	}

	modules := make([]domain.Module, 0, len(req.AllowedModules))
	for _, m := range req.AllowedModules {
		module := domain.Module(m)
		if !module.IsValid() {
			return nil, apperrors.NewValidationFailedError("unknown module " + m)
		}
		modules = append(modules, module)
	}

	now := time.Now()
	tenant := domain.Tenant{
		TenantID: uuid.NewString(),
		Name:     req.Name,
		IsActive: true,
		Settings: domain.TenantSettings{AllowedModules: modules},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}
	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Tenant created", slog.String("tenant_id", tenant.TenantID))
	return &tenant, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, session *domain.Session, tenantID string, req dto.UpdateTenantRequest) (*domain.Tenant, error) {
	if err := s.RequirePermission(session, domain.PermManageTenants); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.AllowedModules != nil {
		modules := make([]domain.Module, 0, len(req.AllowedModules))
		for _, m := range req.AllowedModules {
			module := domain.Module(m)
			if !module.IsValid() {
				return nil, apperrors.NewValidationFailedError("unknown module " + m)
			}
			modules = append(modules, module)
		}
		tenant.Settings.AllowedModules = modules
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}
	tenant.LastUpdatedAt = time.Now()
	tenant.LastUpdatedBy = session.Profile.UserID

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// ResolveSession assembles the access-control context for one request from
// fresh reads. Missing tenant or subscription documents are not errors here;
// the gates downstream treat them as denials.
func (s *tenantService) ResolveSession(ctx context.Context, profile *domain.UserProfile) (*domain.Session, error) {
	if profile == nil {
		return nil, apperrors.ErrUnauthorized
	}
	session := &domain.Session{Profile: profile}
	if profile.TenantID == nil {
		return session, nil
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, *profile.TenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return session, nil
		}
		return nil, err
	}
	session.Tenant = tenant

	sub, err := s.subscriptionSvc.GetSubscriptionForTenant(ctx, tenant.TenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return session, nil
		}
		return nil, err
	}
	session.Subscription = sub
	return session, nil
}
