package mapping

import (
	"database/sql"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/models"
)

// ToModelUserProfile converts a domain UserProfile to a model UserProfile
func ToModelUserProfile(d domain.UserProfile) models.UserProfile {
	perms := make([]string, len(d.Permissions))
	for i, p := range d.Permissions {
		perms[i] = string(p)
	}
	m := models.UserProfile{
		UserID:           d.UserID,
		Email:            d.Email,
		Name:             d.Name,
		Role:             string(d.Role),
		TenantID:         ptrToNullString(d.TenantID),
		Permissions:      perms,
		IsActive:         d.IsActive,
		PasswordHash:     d.PasswordHash,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		DeletedAt:        d.DeletedAt,
		RefreshTokenHash: stringToNullString(d.RefreshTokenHash),
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUserProfile converts a model UserProfile to a domain UserProfile
func ToDomainUserProfile(m models.UserProfile) domain.UserProfile {
	perms := make([]domain.Permission, len(m.Permissions))
	for i, p := range m.Permissions {
		perms[i] = domain.Permission(p)
	}
	d := domain.UserProfile{
		UserID:           m.UserID,
		Email:            m.Email,
		Name:             m.Name,
		Role:             domain.UserRole(m.Role),
		TenantID:         nullStringToPtr(m.TenantID),
		Permissions:      perms,
		IsActive:         m.IsActive,
		PasswordHash:     m.PasswordHash,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		DeletedAt:        m.DeletedAt,
		RefreshTokenHash: nullStringToString(m.RefreshTokenHash),
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

// ToDomainUserProfileSlice converts a slice of model UserProfiles to domain UserProfiles
func ToDomainUserProfileSlice(ms []models.UserProfile) []domain.UserProfile {
	ds := make([]domain.UserProfile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUserProfile(m)
	}
	return ds
}
