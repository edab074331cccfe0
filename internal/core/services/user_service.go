package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/digitalavenger/leadbill/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, session *domain.Session, params dto.ListUsersParams) ([]domain.UserProfile, error) {
	if err := s.RequirePermission(session, domain.PermManageUsers); err != nil {
		return nil, err
	}

	tenantID := params.TenantID
	// Non-super-admins only ever see their own tenant.
	if session.Profile.Role != domain.RoleSuperAdmin {
		id, err := s.RequireTenant(session)
		if err != nil {
			return nil, err
		}
		tenantID = &id
	}
	return s.userRepo.FindUsers(ctx, tenantID, params.Limit, params.Offset)
}

// RegisterUser creates a self-registered account. The first profile on the
// platform becomes a super admin; everyone after that starts as a client with
// no tenant until an administrator assigns one.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.UserProfile, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	role := domain.RoleClient
	if count == 0 {
		role = domain.RoleSuperAdmin
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, apperrors.NewAppError(500, "failed to process password", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.UserProfile{
		UserID:       userID,
		Email:        req.Email,
		Name:         req.Name,
		Role:         role,
		Permissions:  domain.PermissionsForRole(role),
		IsActive:     true,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", userID), slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) CreateUser(ctx context.Context, session *domain.Session, req dto.CreateUserRequest) (*domain.UserProfile, error) {
	if err := s.RequirePermission(session, domain.PermManageUsers); err != nil {
		return nil, err
	}

	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown role " + req.Role)
	}
	// Only super admins may mint other super admins or place users in
	// arbitrary tenants.
	tenantID := req.TenantID
	if session.Profile.Role != domain.RoleSuperAdmin {
		if role == domain.RoleSuperAdmin {
			return nil, apperrors.NewForbiddenError("only a super admin can create super admins")
		}
		ownTenant, err := s.RequireTenant(session)
		if err != nil {
			return nil, err
		}
		tenantID = &ownTenant
	}

	// Explicit permissions override the role defaults when provided.
	perms := domain.PermissionsForRole(role)
	if len(req.Permissions) > 0 {
		perms = make([]domain.Permission, len(req.Permissions))
		for i, p := range req.Permissions {
			perms[i] = domain.Permission(p)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to process password", err)
	}

	now := time.Now()
	user := domain.UserProfile{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         role,
		TenantID:     tenantID,
		Permissions:  perms,
		IsActive:     true,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, session *domain.Session, userID string, req dto.UpdateUserRequest) (*domain.UserProfile, error) {
	if err := s.RequirePermission(session, domain.PermManageUsers); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.Profile.Role != domain.RoleSuperAdmin {
		ownTenant, terr := s.RequireTenant(session)
		if terr != nil {
			return nil, terr
		}
		if user.TenantID == nil || *user.TenantID != ownTenant {
			return nil, apperrors.NewForbiddenError("user belongs to another tenant")
		}
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationFailedError("unknown role " + *req.Role)
		}
		if role == domain.RoleSuperAdmin && session.Profile.Role != domain.RoleSuperAdmin {
			return nil, apperrors.NewForbiddenError("only a super admin can grant super admin")
		}
		user.Role = role
		// A role change resets permissions to the new role's defaults unless
		// an explicit set accompanies it.
		if len(req.Permissions) == 0 {
			user.Permissions = domain.PermissionsForRole(role)
		}
	}
	if len(req.Permissions) > 0 {
		perms := make([]domain.Permission, len(req.Permissions))
		for i, p := range req.Permissions {
			perms[i] = domain.Permission(p)
		}
		user.Permissions = perms
	}
	if req.TenantID != nil && session.Profile.Role == domain.RoleSuperAdmin {
		user.TenantID = req.TenantID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = session.Profile.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

func (s *userService) DeleteUser(ctx context.Context, session *domain.Session, userID string) error {
	if err := s.RequirePermission(session, domain.PermManageUsers); err != nil {
		return err
	}
	if session.Profile.UserID == userID {
		return apperrors.NewValidationFailedError("cannot delete your own account")
	}
	return s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), session.Profile.UserID)
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// FindOrCreateGoogleUser resolves a verified Google identity to a profile,
// registering a new account on first sign-in. Google accounts carry no local
// password; they authenticate through Google only.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.UserProfile, error) {
	if info == nil || info.Email == "" || !info.VerifiedEmail {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		if !user.IsActive {
			return nil, apperrors.ErrUnauthorized
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	role := domain.RoleClient
	if count == 0 {
		role = domain.RoleSuperAdmin
	}

	now := time.Now()
	userID := uuid.NewString()
	newUser := domain.UserProfile{
		UserID:      userID,
		Email:       info.Email,
		Name:        info.Name,
		Role:        role,
		Permissions: domain.PermissionsForRole(role),
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User created via Google sign-in", slog.String("user_id", userID))
	return &newUser, nil
}
