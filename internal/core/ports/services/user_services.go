package services

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/dto"
)

// UserReaderSvc defines read operations for user profile data
type UserReaderSvc interface {
	// GetUserByID retrieves a user profile by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// GetUserByEmail retrieves a user profile by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error)

	// ListUsers retrieves a paginated list of user profiles visible to the session.
	ListUsers(ctx context.Context, session *domain.Session, params dto.ListUsersParams) ([]domain.UserProfile, error)
}

// UserWriterSvc defines write operations for user profile data
type UserWriterSvc interface {
	// RegisterUser self-registers a new account. The very first account on
	// the platform becomes a super admin.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.UserProfile, error)

	// CreateUser creates a user profile on behalf of an administrator.
	CreateUser(ctx context.Context, session *domain.Session, req dto.CreateUserRequest) (*domain.UserProfile, error)

	// UpdateUser updates an existing user profile.
	UpdateUser(ctx context.Context, session *domain.Session, userID string, req dto.UpdateUserRequest) (*domain.UserProfile, error)

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser marks a user profile as deleted (soft delete).
	DeleteUser(ctx context.Context, session *domain.Session, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.UserProfile, error)

	// FindOrCreateGoogleUser resolves a profile for a verified Google identity,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.UserProfile, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
