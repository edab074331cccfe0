package mapping

import (
	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/models"
)

// ToModelLead converts a domain Lead to a model Lead
func ToModelLead(d domain.Lead) models.Lead {
	return models.Lead{
		LeadID:          d.LeadID,
		TenantID:        d.TenantID,
		LeadName:        d.LeadName,
		LeadDate:        d.LeadDate,
		MobileNumber:    d.MobileNumber,
		EmailAddress:    d.EmailAddress,
		ServiceRequired: d.ServiceRequired,
		Budget:          d.Budget,
		LeadStatus:      d.LeadStatus,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLead converts a model Lead to a domain Lead
func ToDomainLead(m models.Lead) domain.Lead {
	return domain.Lead{
		LeadID:          m.LeadID,
		TenantID:        m.TenantID,
		LeadName:        m.LeadName,
		LeadDate:        m.LeadDate,
		MobileNumber:    m.MobileNumber,
		EmailAddress:    m.EmailAddress,
		ServiceRequired: m.ServiceRequired,
		Budget:          m.Budget,
		LeadStatus:      m.LeadStatus,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeadSlice converts a slice of model Leads to domain Leads
func ToDomainLeadSlice(ms []models.Lead) []domain.Lead {
	ds := make([]domain.Lead, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLead(m)
	}
	return ds
}

// ToModelServiceOption converts a domain ServiceOption to a model ServiceOption
func ToModelServiceOption(d domain.ServiceOption) models.ServiceOption {
	return models.ServiceOption{
		OptionID:    d.OptionID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainServiceOption converts a model ServiceOption to a domain ServiceOption
func ToDomainServiceOption(m models.ServiceOption) domain.ServiceOption {
	return domain.ServiceOption{
		OptionID:    m.OptionID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainServiceOptionSlice converts a slice of model ServiceOptions to domain ServiceOptions
func ToDomainServiceOptionSlice(ms []models.ServiceOption) []domain.ServiceOption {
	ds := make([]domain.ServiceOption, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainServiceOption(m)
	}
	return ds
}

// ToModelStatusOption converts a domain StatusOption to a model StatusOption
func ToModelStatusOption(d domain.StatusOption) models.StatusOption {
	return models.StatusOption{
		OptionID:    d.OptionID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		SortOrder:   d.SortOrder,
		IsDefault:   d.IsDefault,
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStatusOption converts a model StatusOption to a domain StatusOption
func ToDomainStatusOption(m models.StatusOption) domain.StatusOption {
	return domain.StatusOption{
		OptionID:    m.OptionID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		SortOrder:   m.SortOrder,
		IsDefault:   m.IsDefault,
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStatusOptionSlice converts a slice of model StatusOptions to domain StatusOptions
func ToDomainStatusOptionSlice(ms []models.StatusOption) []domain.StatusOption {
	ds := make([]domain.StatusOption, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStatusOption(m)
	}
	return ds
}
