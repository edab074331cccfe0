package services

import (
	"context"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer within the session's tenant.
	GetCustomerByID(ctx context.Context, session *domain.Session, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of the session tenant's customers.
	ListCustomers(ctx context.Context, session *domain.Session, params dto.ListCustomersParams) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer creates a customer in the session's tenant.
	CreateCustomer(ctx context.Context, session *domain.Session, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer updates an existing customer.
	UpdateCustomer(ctx context.Context, session *domain.Session, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, session *domain.Session, customerID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
