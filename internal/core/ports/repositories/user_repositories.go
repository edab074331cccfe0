package repositories

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// UserReader defines read operations for user profile data
type UserReader interface {
	// FindUserByID retrieves a specific user profile by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// FindUserByEmail retrieves a user profile by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error)

	// FindUsers retrieves a paginated list of user profiles, optionally scoped to a tenant.
	FindUsers(ctx context.Context, tenantID *string, limit int, offset int) ([]domain.UserProfile, error)

	// CountUsers returns the total number of non-deleted user profiles.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for user profile data
type UserWriter interface {
	// SaveUser persists a new user profile.
	SaveUser(ctx context.Context, user domain.UserProfile) error

	// UpdateUser updates an existing user profile's details.
	UpdateUser(ctx context.Context, user domain.UserProfile) error

	// UpdateRefreshToken stores the hash and expiry of a user's refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user profile as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
