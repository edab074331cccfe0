package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/core/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/digitalavenger/leadbill/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	var user *domain.UserProfile
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.UserProfile)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	var user *domain.UserProfile
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.UserProfile)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, tenantID *string, limit, offset int) ([]domain.UserProfile, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var users []domain.UserProfile
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.UserProfile)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- RegisterUser Tests ---

func (suite *UserServiceTestSuite) TestRegisterUser_FirstUserBecomesSuperAdmin() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "first@example.com", Name: "First", Password: "password123"}

	suite.mockUserRepo.On("CountUsers", ctx).Return(int64(0), nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.UserProfile) bool {
		return u.Role == domain.RoleSuperAdmin && u.Email == req.Email && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleSuperAdmin, user.Role)
	suite.ElementsMatch(domain.PermissionsForRole(domain.RoleSuperAdmin), user.Permissions)
	suite.True(user.IsActive)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_LaterUsersAreClients() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "second@example.com", Name: "Second", Password: "password123"}

	suite.mockUserRepo.On("CountUsers", ctx).Return(int64(7), nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.UserProfile) bool {
		return u.Role == domain.RoleClient
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleClient, user.Role)
	suite.Nil(user.TenantID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.UserProfile{
		UserID:       uuid.NewString(),
		Email:        "login@example.com",
		IsActive:     true,
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, stored.Email, "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.UserProfile{UserID: uuid.NewString(), Email: "login@example.com", IsActive: true, PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, stored.Email, "battery-staple")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailMapsToUnauthorized() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "whatever123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveUserRejected() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.UserProfile{UserID: uuid.NewString(), Email: "off@example.com", IsActive: false, PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, stored.Email, "correct-horse")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_AdminPinnedToOwnTenant() {
	ctx := context.Background()
	tenantID := uuid.NewString()
	otherTenant := uuid.NewString()
	session := adminSession(tenantID)

	req := dto.CreateUserRequest{
		Email:    "new@example.com",
		Name:     "New User",
		Password: "password123",
		Role:     "employee",
		TenantID: &otherTenant, // must be ignored for non-super-admins
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.UserProfile) bool {
		return u.TenantID != nil && *u.TenantID == tenantID && u.Role == domain.RoleEmployee
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, session, req)

	suite.Require().NoError(err)
	suite.Equal(tenantID, *user.TenantID)
	suite.ElementsMatch(domain.PermissionsForRole(domain.RoleEmployee), user.Permissions)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_AdminCannotMintSuperAdmin() {
	ctx := context.Background()
	session := adminSession(uuid.NewString())

	req := dto.CreateUserRequest{
		Email:    "boss@example.com",
		Name:     "Boss",
		Password: "password123",
		Role:     "super_admin",
	}

	user, err := suite.service.CreateUser(ctx, session, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_ExplicitPermissionsOverrideDefaults() {
	ctx := context.Background()
	session := superAdminSession()
	tenantID := uuid.NewString()

	req := dto.CreateUserRequest{
		Email:       "scoped@example.com",
		Name:        "Scoped",
		Password:    "password123",
		Role:        "employee",
		TenantID:    &tenantID,
		Permissions: []string{"view_leads"},
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.UserProfile")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, session, req)

	suite.Require().NoError(err)
	suite.Equal([]domain.Permission{domain.PermViewLeads}, user.Permissions)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_MissingPermissionDenied() {
	ctx := context.Background()
	session := employeeSession(uuid.NewString())

	req := dto.CreateUserRequest{Email: "x@example.com", Name: "X", Password: "password123", Role: "client"}

	user, err := suite.service.CreateUser(ctx, session, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_CrossTenantBlocked() {
	ctx := context.Background()
	session := adminSession(uuid.NewString())
	otherTenant := uuid.NewString()
	targetID := uuid.NewString()
	target := &domain.UserProfile{UserID: targetID, TenantID: &otherTenant, Role: domain.RoleEmployee, IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, targetID).Return(target, nil).Once()

	newName := "Renamed"
	_, err := suite.service.UpdateUser(ctx, session, targetID, dto.UpdateUserRequest{Name: &newName})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RoleChangeResetsPermissions() {
	ctx := context.Background()
	tenantID := uuid.NewString()
	session := adminSession(tenantID)
	targetID := uuid.NewString()
	target := &domain.UserProfile{
		UserID:      targetID,
		TenantID:    &tenantID,
		Role:        domain.RoleEmployee,
		Permissions: domain.PermissionsForRole(domain.RoleEmployee),
		IsActive:    true,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, targetID).Return(target, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.UserProfile")).Return(nil).Once()

	newRole := "admin"
	updated, err := suite.service.UpdateUser(ctx, session, targetID, dto.UpdateUserRequest{Role: &newRole})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, updated.Role)
	suite.ElementsMatch(domain.PermissionsForRole(domain.RoleAdmin), updated.Permissions)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteBlocked() {
	ctx := context.Background()
	session := superAdminSession()

	err := suite.service.DeleteUser(ctx, session, session.Profile.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	session := superAdminSession()
	targetID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, targetID, mock.AnythingOfType("time.Time"), session.Profile.UserID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, session, targetID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ListUsers Tests ---

func (suite *UserServiceTestSuite) TestListUsers_AdminScopedToOwnTenant() {
	ctx := context.Background()
	tenantID := uuid.NewString()
	session := adminSession(tenantID)
	otherTenant := uuid.NewString()

	suite.mockUserRepo.On("FindUsers", ctx, mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == tenantID
	}), 20, 0).Return([]domain.UserProfile{}, nil).Once()

	_, err := suite.service.ListUsers(ctx, session, dto.ListUsersParams{TenantID: &otherTenant, Limit: 20, Offset: 0})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- FindOrCreateGoogleUser Tests ---

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_UnverifiedEmailRejected() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{Email: "g@example.com", VerifiedEmail: false}

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesClientOnFirstSignIn() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{Email: "g@example.com", VerifiedEmail: true, Name: "G User"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CountUsers", ctx).Return(int64(3), nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.UserProfile) bool {
		return u.Role == domain.RoleClient && u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(info.Email, user.Email)
	suite.Empty(user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
