package repositories

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by ID within a tenant.
	FindCustomerByID(ctx context.Context, tenantID string, customerID string) (*domain.Customer, error)

	// FindCustomersByTenant retrieves a paginated list of a tenant's customers.
	FindCustomersByTenant(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer from a tenant.
	DeleteCustomer(ctx context.Context, tenantID string, customerID string, deletedBy string, deletedAt time.Time) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
