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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	var sub *domain.Subscription
	if args.Get(0) != nil {
		sub = args.Get(0).(*domain.Subscription)
	}
	return sub, args.Error(1)
}

func (m *MockSubscriptionRepository) FindSubscriptionByTenantID(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	args := m.Called(ctx, tenantID)
	var sub *domain.Subscription
	if args.Get(0) != nil {
		sub = args.Get(0).(*domain.Subscription)
	}
	return sub, args.Error(1)
}

func (m *MockSubscriptionRepository) FindSubscriptions(ctx context.Context, limit, offset int) ([]domain.Subscription, error) {
	args := m.Called(ctx, limit, offset)
	var subs []domain.Subscription
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.Subscription)
	}
	return subs, args.Error(1)
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, subscription domain.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status domain.SubscriptionStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, subscriptionID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock TenantReader ---
type MockTenantReader struct {
	mock.Mock
}

func (m *MockTenantReader) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	var t *domain.Tenant
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.Tenant)
	}
	return t, args.Error(1)
}

func (m *MockTenantReader) FindTenants(ctx context.Context, limit, offset int) ([]domain.Tenant, error) {
	args := m.Called(ctx, limit, offset)
	var ts []domain.Tenant
	if args.Get(0) != nil {
		ts = args.Get(0).([]domain.Tenant)
	}
	return ts, args.Error(1)
}

// --- Test Suite ---
type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockSubRepo    *MockSubscriptionRepository
	mockTenantRepo *MockTenantReader
	service        portssvc.SubscriptionSvcFacade
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.mockSubRepo = new(MockSubscriptionRepository)
	suite.mockTenantRepo = new(MockTenantReader)
	suite.service = services.NewSubscriptionService(suite.mockSubRepo, suite.mockTenantRepo)
}

// --- GetSubscriptionForTenant Tests ---

func (suite *SubscriptionServiceTestSuite) TestGetSubscriptionForTenant_LiveSubscriptionPassesThrough() {
	ctx := context.Background()
	tenantID := uuid.NewString()
	sub := &domain.Subscription{
		SubscriptionID: uuid.NewString(),
		TenantID:       tenantID,
		Status:         domain.SubscriptionActive,
		EndDate:        time.Now().AddDate(0, 1, 0),
	}

	suite.mockSubRepo.On("FindSubscriptionByTenantID", ctx, tenantID).Return(sub, nil).Once()

	got, err := suite.service.GetSubscriptionForTenant(ctx, tenantID)

	suite.Require().NoError(err)
	suite.Equal(domain.SubscriptionActive, got.Status)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "UpdateSubscriptionStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestGetSubscriptionForTenant_LazyExpiryFlipsAndPersists() {
	ctx := context.Background()
	tenantID := uuid.NewString()
	sub := &domain.Subscription{
		SubscriptionID: uuid.NewString(),
		TenantID:       tenantID,
		Status:         domain.SubscriptionActive,
		EndDate:        time.Now().Add(-time.Hour),
	}

	suite.mockSubRepo.On("FindSubscriptionByTenantID", ctx, tenantID).Return(sub, nil).Once()
	suite.mockSubRepo.On("UpdateSubscriptionStatus", ctx, sub.SubscriptionID, domain.SubscriptionExpired,
		mock.Anything, mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, err := suite.service.GetSubscriptionForTenant(ctx, tenantID)

	suite.Require().NoError(err)
	suite.Equal(domain.SubscriptionExpired, got.Status)
	suite.False(got.IsActiveAt(time.Now()))
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestGetSubscriptionForTenant_ExpiryStillReportedWhenPersistFails() {
	ctx := context.Background()
	tenantID := uuid.NewString()
	sub := &domain.Subscription{
		SubscriptionID: uuid.NewString(),
		TenantID:       tenantID,
		Status:         domain.SubscriptionTrial,
		EndDate:        time.Now().Add(-time.Minute),
	}

	suite.mockSubRepo.On("FindSubscriptionByTenantID", ctx, tenantID).Return(sub, nil).Once()
	suite.mockSubRepo.On("UpdateSubscriptionStatus", ctx, sub.SubscriptionID, domain.SubscriptionExpired,
		mock.Anything, mock.AnythingOfType("time.Time")).Return(apperrors.ErrConflict).Once()

	got, err := suite.service.GetSubscriptionForTenant(ctx, tenantID)

	suite.Require().NoError(err)
	suite.Equal(domain.SubscriptionExpired, got.Status)
}

// --- CreateSubscription Tests ---

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_TrialPlanGetsTrialStatus() {
	ctx := context.Background()
	session := superAdminSession()
	tenantID := uuid.NewString()
	req := dto.CreateSubscriptionRequest{
		Plan:      "trial",
		Amount:    decimal.Zero,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, 14),
	}

	suite.mockTenantRepo.On("FindTenantByID", ctx, tenantID).Return(&domain.Tenant{TenantID: tenantID}, nil).Once()
	suite.mockSubRepo.On("SaveSubscription", ctx, mock.MatchedBy(func(s domain.Subscription) bool {
		return s.Status == domain.SubscriptionTrial && s.Plan == domain.PlanTrial && s.TenantID == tenantID
	})).Return(nil).Once()

	sub, err := suite.service.CreateSubscription(ctx, session, tenantID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.SubscriptionTrial, sub.Status)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_EndBeforeStartRejected() {
	ctx := context.Background()
	session := superAdminSession()
	tenantID := uuid.NewString()
	req := dto.CreateSubscriptionRequest{
		Plan:      "starter",
		Amount:    decimal.NewFromInt(4999),
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, -1),
	}

	suite.mockTenantRepo.On("FindTenantByID", ctx, tenantID).Return(&domain.Tenant{TenantID: tenantID}, nil).Once()

	sub, err := suite.service.CreateSubscription(ctx, session, tenantID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sub)
}

func (suite *SubscriptionServiceTestSuite) TestCreateSubscription_PermissionDenied() {
	ctx := context.Background()
	session := adminSession(uuid.NewString()) // tenant admins cannot manage subscriptions

	sub, err := suite.service.CreateSubscription(ctx, session, uuid.NewString(), dto.CreateSubscriptionRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(sub)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "SaveSubscription", mock.Anything, mock.Anything)
}

// --- UpdateSubscriptionStatus Tests ---

func (suite *SubscriptionServiceTestSuite) TestUpdateSubscriptionStatus_ValidTransition() {
	ctx := context.Background()
	session := superAdminSession()
	sub := &domain.Subscription{SubscriptionID: uuid.NewString(), Status: domain.SubscriptionSuspended}

	suite.mockSubRepo.On("FindSubscriptionByID", ctx, sub.SubscriptionID).Return(sub, nil).Once()
	suite.mockSubRepo.On("UpdateSubscriptionStatus", ctx, sub.SubscriptionID, domain.SubscriptionActive,
		session.Profile.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateSubscriptionStatus(ctx, session, sub.SubscriptionID, domain.SubscriptionActive)

	suite.Require().NoError(err)
	suite.Equal(domain.SubscriptionActive, updated.Status)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestUpdateSubscriptionStatus_InvalidTransitionRejected() {
	ctx := context.Background()
	session := superAdminSession()
	sub := &domain.Subscription{SubscriptionID: uuid.NewString(), Status: domain.SubscriptionExpired}

	suite.mockSubRepo.On("FindSubscriptionByID", ctx, sub.SubscriptionID).Return(sub, nil).Once()

	updated, err := suite.service.UpdateSubscriptionStatus(ctx, session, sub.SubscriptionID, domain.SubscriptionActive)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "UpdateSubscriptionStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
