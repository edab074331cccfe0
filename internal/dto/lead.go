package dto

import (
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLeadRequest defines data for creating a lead.
type CreateLeadRequest struct {
	LeadName        string           `json:"leadName" binding:"required"`
	LeadDate        time.Time        `json:"leadDate" binding:"required"`
	MobileNumber    string           `json:"mobileNumber" binding:"required"`
	EmailAddress    string           `json:"emailAddress" binding:"omitempty,email"`
	ServiceRequired []string         `json:"serviceRequired"`
	Budget          *decimal.Decimal `json:"budget"`
	LeadStatus      string           `json:"leadStatus"`
	Notes           string           `json:"notes"`
}

// UpdateLeadRequest defines data allowed for updating a lead.
type UpdateLeadRequest struct {
	LeadName        *string          `json:"leadName"`
	LeadDate        *time.Time       `json:"leadDate"`
	MobileNumber    *string          `json:"mobileNumber"`
	EmailAddress    *string          `json:"emailAddress" binding:"omitempty,email"`
	ServiceRequired []string         `json:"serviceRequired"`
	Budget          *decimal.Decimal `json:"budget"`
	Notes           *string          `json:"notes"`
}

// UpdateLeadStatusRequest moves a lead to another pipeline stage.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListLeadsParams defines query parameters for listing leads.
type ListLeadsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// LeadResponse defines data returned for a lead.
type LeadResponse struct {
	LeadID          string           `json:"leadID"`
	TenantID        string           `json:"tenantID"`
	LeadName        string           `json:"leadName"`
	LeadDate        time.Time        `json:"leadDate"`
	MobileNumber    string           `json:"mobileNumber"`
	EmailAddress    string           `json:"emailAddress"`
	ServiceRequired []string         `json:"serviceRequired"`
	Budget          *decimal.Decimal `json:"budget,omitempty"`
	LeadStatus      string           `json:"leadStatus"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ToLeadResponse converts domain.Lead to DTO.
func ToLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		LeadID:          l.LeadID,
		TenantID:        l.TenantID,
		LeadName:        l.LeadName,
		LeadDate:        l.LeadDate,
		MobileNumber:    l.MobileNumber,
		EmailAddress:    l.EmailAddress,
		ServiceRequired: l.ServiceRequired,
		Budget:          l.Budget,
		LeadStatus:      l.LeadStatus,
		Notes:           l.Notes,
		CreatedAt:       l.CreatedAt,
	}
}

// ListLeadsResponse wraps a page of leads.
type ListLeadsResponse struct {
	Leads     []LeadResponse `json:"leads"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToListLeadsResponse converts a page of domain.Lead to DTO.
func ToListLeadsResponse(ls []domain.Lead, nextToken *string) ListLeadsResponse {
	list := make([]LeadResponse, len(ls))
	for i := range ls {
		list[i] = ToLeadResponse(&ls[i])
	}
	return ListLeadsResponse{Leads: list, NextToken: nextToken}
}

// CreateServiceOptionRequest adds a service to a tenant's option list.
type CreateServiceOptionRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateStatusOptionRequest adds a pipeline stage to a tenant's option list.
type CreateStatusOptionRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
	IsDefault bool   `json:"isDefault"`
	Color     string `json:"color"`
}

// ServiceOptionResponse defines data returned for a service option.
type ServiceOptionResponse struct {
	OptionID string `json:"optionID"`
	Name     string `json:"name"`
}

// StatusOptionResponse defines data returned for a status option.
type StatusOptionResponse struct {
	OptionID  string `json:"optionID"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
	IsDefault bool   `json:"isDefault"`
	Color     string `json:"color,omitempty"`
}

// LeadOptionsResponse groups both option lists for the lead form.
type LeadOptionsResponse struct {
	Services []ServiceOptionResponse `json:"services"`
	Statuses []StatusOptionResponse  `json:"statuses"`
}

// ToLeadOptionsResponse converts domain option lists to DTO.
func ToLeadOptionsResponse(services []domain.ServiceOption, statuses []domain.StatusOption) LeadOptionsResponse {
	out := LeadOptionsResponse{
		Services: make([]ServiceOptionResponse, len(services)),
		Statuses: make([]StatusOptionResponse, len(statuses)),
	}
	for i, s := range services {
		out.Services[i] = ServiceOptionResponse{OptionID: s.OptionID, Name: s.Name}
	}
	for i, s := range statuses {
		out.Statuses[i] = StatusOptionResponse{
			OptionID:  s.OptionID,
			Name:      s.Name,
			SortOrder: s.SortOrder,
			IsDefault: s.IsDefault,
			Color:     s.Color,
		}
	}
	return out
}
