package models

import (
	"database/sql"
	"time"
)

// UserProfile is the persisted shape of a user row.
// Permissions are stored explicitly (text[]) so creation-time overrides of the
// role defaults survive round trips.
type UserProfile struct {
	UserID       string         `db:"user_id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	TenantID     sql.NullString `db:"tenant_id"`
	Permissions  []string       `db:"permissions"`
	IsActive     bool           `db:"is_active"`
	PasswordHash string         `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
