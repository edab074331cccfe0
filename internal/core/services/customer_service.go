package services

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/google/uuid"
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service with the provided dependencies
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

// Ensure customerService implements the CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) GetCustomerByID(ctx context.Context, session *domain.Session, customerID string) (*domain.Customer, error) {
	if err := s.RequirePermission(session, domain.PermViewCustomers); err != nil {
		return nil, err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return nil, err
	}
	return s.customerRepo.FindCustomerByID(ctx, tenantID, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, session *domain.Session, params dto.ListCustomersParams) ([]domain.Customer, error) {
	if err := s.RequirePermission(session, domain.PermViewCustomers); err != nil {
		return nil, err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return nil, err
	}
	return s.customerRepo.FindCustomersByTenant(ctx, tenantID, params.Limit, params.Offset)
}

func (s *customerService) CreateCustomer(ctx context.Context, session *domain.Session, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := s.RequirePermission(session, domain.PermManageCustomers); err != nil {
		return nil, err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		TenantID:   tenantID,
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
		GSTIN:      req.GSTIN,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, session *domain.Session, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	if err := s.RequirePermission(session, domain.PermManageCustomers); err != nil {
		return nil, err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.GSTIN != nil {
		customer.GSTIN = *req.GSTIN
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = session.Profile.UserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, session *domain.Session, customerID string) error {
	if err := s.RequirePermission(session, domain.PermManageCustomers); err != nil {
		return err
	}
	tenantID, err := s.RequireTenant(session)
	if err != nil {
		return err
	}
	return s.customerRepo.DeleteCustomer(ctx, tenantID, customerID, session.Profile.UserID, time.Now())
}
