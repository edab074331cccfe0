package services

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/google/uuid"
)

// leadService implements the LeadSvcFacade interface
type leadService struct {
	BaseService
	leadRepo portsrepo.LeadRepositoryFacade
}

// NewLeadService creates a new lead service with the provided dependencies
func NewLeadService(leadRepo portsrepo.LeadRepositoryFacade) portssvc.LeadSvcFacade {
	return &leadService{leadRepo: leadRepo}
}

// Ensure leadService implements the LeadSvcFacade interface
var _ portssvc.LeadSvcFacade = (*leadService)(nil)

// authorizeRead gates every lead read: permission plus the leads module.
func (s *leadService) authorizeRead(session *domain.Session) (string, error) {
	if err := s.RequirePermission(session, domain.PermViewLeads); err != nil {
		return "", err
	}
	if err := s.RequireModule(session, domain.ModuleLeads); err != nil {
		return "", err
	}
	return s.RequireTenant(session)
}

// authorizeWrite gates every lead write: permission plus the leads module.
func (s *leadService) authorizeWrite(session *domain.Session) (string, error) {
	if err := s.RequirePermission(session, domain.PermManageLeads); err != nil {
		return "", err
	}
	if err := s.RequireModule(session, domain.ModuleLeads); err != nil {
		return "", err
	}
	return s.RequireTenant(session)
}

func (s *leadService) GetLeadByID(ctx context.Context, session *domain.Session, leadID string) (*domain.Lead, error) {
	tenantID, err := s.authorizeRead(session)
	if err != nil {
		return nil, err
	}
	return s.leadRepo.FindLeadByID(ctx, tenantID, leadID)
}

func (s *leadService) ListLeads(ctx context.Context, session *domain.Session, params dto.ListLeadsParams) ([]domain.Lead, *string, error) {
	tenantID, err := s.authorizeRead(session)
	if err != nil {
		return nil, nil, err
	}
	return s.leadRepo.ListLeadsByTenant(ctx, tenantID, params.Limit, params.NextToken)
}

func (s *leadService) GetLeadOptions(ctx context.Context, session *domain.Session) ([]domain.ServiceOption, []domain.StatusOption, error) {
	tenantID, err := s.authorizeRead(session)
	if err != nil {
		return nil, nil, err
	}
	services, err := s.leadRepo.FindServiceOptions(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	statuses, err := s.leadRepo.FindStatusOptions(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	if len(statuses) == 0 {
		statuses = domain.DefaultStatusOptions()
	}
	return services, statuses, nil
}

// defaultLeadStatus picks the tenant's configured default stage, or the
// built-in one when nothing is configured.
func (s *leadService) defaultLeadStatus(ctx context.Context, tenantID string) string {
	statuses, err := s.leadRepo.FindStatusOptions(ctx, tenantID)
	if err != nil || len(statuses) == 0 {
		statuses = domain.DefaultStatusOptions()
	}
	for _, st := range statuses {
		if st.IsDefault {
			return st.Name
		}
	}
	return statuses[0].Name
}

func (s *leadService) CreateLead(ctx context.Context, session *domain.Session, req dto.CreateLeadRequest) (*domain.Lead, error) {
	tenantID, err := s.authorizeWrite(session)
	if err != nil {
		return nil, err
	}

	status := req.LeadStatus
	if status == "" {
		status = s.defaultLeadStatus(ctx, tenantID)
	}

	now := time.Now()
	lead := domain.Lead{
		LeadID:          uuid.NewString(),
		TenantID:        tenantID,
		LeadName:        req.LeadName,
		LeadDate:        req.LeadDate,
		MobileNumber:    req.MobileNumber,
		EmailAddress:    req.EmailAddress,
		ServiceRequired: req.ServiceRequired,
		Budget:          req.Budget,
		LeadStatus:      status,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}
	if err := s.leadRepo.SaveLead(ctx, lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *leadService) UpdateLead(ctx context.Context, session *domain.Session, leadID string, req dto.UpdateLeadRequest) (*domain.Lead, error) {
	tenantID, err := s.authorizeWrite(session)
	if err != nil {
		return nil, err
	}

	lead, err := s.leadRepo.FindLeadByID(ctx, tenantID, leadID)
	if err != nil {
		return nil, err
	}
	if req.LeadName != nil {
		lead.LeadName = *req.LeadName
	}
	if req.LeadDate != nil {
		lead.LeadDate = *req.LeadDate
	}
	if req.MobileNumber != nil {
		lead.MobileNumber = *req.MobileNumber
	}
	if req.EmailAddress != nil {
		lead.EmailAddress = *req.EmailAddress
	}
	if req.ServiceRequired != nil {
		lead.ServiceRequired = req.ServiceRequired
	}
	if req.Budget != nil {
		lead.Budget = req.Budget
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}
	lead.LastUpdatedAt = time.Now()
	lead.LastUpdatedBy = session.Profile.UserID

	if err := s.leadRepo.UpdateLead(ctx, *lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *leadService) UpdateLeadStatus(ctx context.Context, session *domain.Session, leadID string, status string) (*domain.Lead, error) {
	tenantID, err := s.authorizeWrite(session)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, apperrors.NewValidationFailedError("lead status is required")
	}

	now := time.Now()
	if err := s.leadRepo.UpdateLeadStatus(ctx, tenantID, leadID, status, session.Profile.UserID, now); err != nil {
		return nil, err
	}
	return s.leadRepo.FindLeadByID(ctx, tenantID, leadID)
}

func (s *leadService) DeleteLead(ctx context.Context, session *domain.Session, leadID string) error {
	tenantID, err := s.authorizeWrite(session)
	if err != nil {
		return err
	}
	return s.leadRepo.DeleteLead(ctx, tenantID, leadID)
}

func (s *leadService) AddServiceOption(ctx context.Context, session *domain.Session, req dto.CreateServiceOptionRequest) (*domain.ServiceOption, error) {
	if err := s.RequirePermission(session, domain.PermManageSettings); err != nil {
		return nil, err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	option := domain.ServiceOption{
		OptionID: uuid.NewString(),
		TenantID: tenantID,
		Name:     req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}
	if err := s.leadRepo.SaveServiceOption(ctx, option); err != nil {
		return nil, err
	}
	return &option, nil
}

func (s *leadService) RemoveServiceOption(ctx context.Context, session *domain.Session, optionID string) error {
	if err := s.RequirePermission(session, domain.PermManageSettings); err != nil {
		return err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return err
	}
	return s.leadRepo.DeleteServiceOption(ctx, tenantID, optionID)
}

func (s *leadService) AddStatusOption(ctx context.Context, session *domain.Session, req dto.CreateStatusOptionRequest) (*domain.StatusOption, error) {
	if err := s.RequirePermission(session, domain.PermManageSettings); err != nil {
		return nil, err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	option := domain.StatusOption{
		OptionID:  uuid.NewString(),
		TenantID:  tenantID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsDefault: req.IsDefault,
		Color:     req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}
	if err := s.leadRepo.SaveStatusOption(ctx, option); err != nil {
		return nil, err
	}
	return &option, nil
}

func (s *leadService) RemoveStatusOption(ctx context.Context, session *domain.Session, optionID string) error {
	if err := s.RequirePermission(session, domain.PermManageSettings); err != nil {
		return err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return err
	}
	return s.leadRepo.DeleteStatusOption(ctx, tenantID, optionID)
}
