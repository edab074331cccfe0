package dto

import (
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// CreateCustomerRequest defines data for creating a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	GSTIN   string `json:"gstin"`
}

// UpdateCustomerRequest defines data allowed for updating a customer.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	GSTIN   *string `json:"gstin"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// CustomerResponse defines data returned for a customer.
type CustomerResponse struct {
	CustomerID string    `json:"customerID"`
	TenantID   string    `json:"tenantID"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	GSTIN      string    `json:"gstin,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCustomerResponse converts domain.Customer to DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		TenantID:   c.TenantID,
		Name:       c.Name,
		Address:    c.Address,
		Phone:      c.Phone,
		Email:      c.Email,
		GSTIN:      c.GSTIN,
		CreatedAt:  c.CreatedAt,
	}
}

// ListCustomersResponse wraps a list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToListCustomersResponse converts a slice of domain.Customer to DTO.
func ToListCustomersResponse(cs []domain.Customer) ListCustomersResponse {
	list := make([]CustomerResponse, len(cs))
	for i := range cs {
		list[i] = ToCustomerResponse(&cs[i])
	}
	return ListCustomersResponse{Customers: list}
}
