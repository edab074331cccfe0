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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LeadRepository ---
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindLeadByID(ctx context.Context, tenantID, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, tenantID, leadID)
	var lead *domain.Lead
	if args.Get(0) != nil {
		lead = args.Get(0).(*domain.Lead)
	}
	return lead, args.Error(1)
}

func (m *MockLeadRepository) ListLeadsByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Lead, *string, error) {
	args := m.Called(ctx, tenantID, limit, nextToken)
	var leads []domain.Lead
	if args.Get(0) != nil {
		leads = args.Get(0).([]domain.Lead)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return leads, token, args.Error(2)
}

func (m *MockLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateLeadStatus(ctx context.Context, tenantID, leadID, status, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, leadID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteLead(ctx context.Context, tenantID, leadID string) error {
	args := m.Called(ctx, tenantID, leadID)
	return args.Error(0)
}

func (m *MockLeadRepository) FindServiceOptions(ctx context.Context, tenantID string) ([]domain.ServiceOption, error) {
	args := m.Called(ctx, tenantID)
	var opts []domain.ServiceOption
	if args.Get(0) != nil {
		opts = args.Get(0).([]domain.ServiceOption)
	}
	return opts, args.Error(1)
}

func (m *MockLeadRepository) FindStatusOptions(ctx context.Context, tenantID string) ([]domain.StatusOption, error) {
	args := m.Called(ctx, tenantID)
	var opts []domain.StatusOption
	if args.Get(0) != nil {
		opts = args.Get(0).([]domain.StatusOption)
	}
	return opts, args.Error(1)
}

func (m *MockLeadRepository) SaveServiceOption(ctx context.Context, option domain.ServiceOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteServiceOption(ctx context.Context, tenantID, optionID string) error {
	args := m.Called(ctx, tenantID, optionID)
	return args.Error(0)
}

func (m *MockLeadRepository) SaveStatusOption(ctx context.Context, option domain.StatusOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteStatusOption(ctx context.Context, tenantID, optionID string) error {
	args := m.Called(ctx, tenantID, optionID)
	return args.Error(0)
}

// --- Test Suite ---
type LeadServiceTestSuite struct {
	suite.Suite
	mockLeadRepo *MockLeadRepository
	service      portssvc.LeadSvcFacade

	tenantID string
	session  *domain.Session
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.mockLeadRepo = new(MockLeadRepository)
	suite.service = services.NewLeadService(suite.mockLeadRepo)
	suite.tenantID = uuid.NewString()
	suite.session = adminSession(suite.tenantID)
}

// --- CreateLead Tests ---

func (suite *LeadServiceTestSuite) TestCreateLead_DefaultsToConfiguredDefaultStatus() {
	ctx := context.Background()
	req := dto.CreateLeadRequest{
		LeadName:     "Prospect One",
		LeadDate:     time.Now(),
		MobileNumber: "9876543210",
	}
	configured := []domain.StatusOption{
		{OptionID: uuid.NewString(), TenantID: suite.tenantID, Name: "New Enquiry", SortOrder: 1, IsDefault: true},
		{OptionID: uuid.NewString(), TenantID: suite.tenantID, Name: "Quoted", SortOrder: 2},
	}

	suite.mockLeadRepo.On("FindStatusOptions", ctx, suite.tenantID).Return(configured, nil).Once()
	suite.mockLeadRepo.On("SaveLead", ctx, mock.MatchedBy(func(l domain.Lead) bool {
		return l.LeadStatus == "New Enquiry" && l.TenantID == suite.tenantID
	})).Return(nil).Once()

	lead, err := suite.service.CreateLead(ctx, suite.session, req)

	suite.Require().NoError(err)
	suite.Equal("New Enquiry", lead.LeadStatus)
	suite.mockLeadRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestCreateLead_FallsBackToBuiltinDefault() {
	ctx := context.Background()
	req := dto.CreateLeadRequest{
		LeadName:     "Prospect Two",
		LeadDate:     time.Now(),
		MobileNumber: "9876543210",
	}

	suite.mockLeadRepo.On("FindStatusOptions", ctx, suite.tenantID).Return([]domain.StatusOption{}, nil).Once()
	suite.mockLeadRepo.On("SaveLead", ctx, mock.MatchedBy(func(l domain.Lead) bool {
		return l.LeadStatus == "Created"
	})).Return(nil).Once()

	lead, err := suite.service.CreateLead(ctx, suite.session, req)

	suite.Require().NoError(err)
	suite.Equal("Created", lead.LeadStatus)
}

func (suite *LeadServiceTestSuite) TestCreateLead_ExplicitStatusKept() {
	ctx := context.Background()
	req := dto.CreateLeadRequest{
		LeadName:     "Prospect Three",
		LeadDate:     time.Now(),
		MobileNumber: "9876543210",
		LeadStatus:   "Followup",
	}

	suite.mockLeadRepo.On("SaveLead", ctx, mock.MatchedBy(func(l domain.Lead) bool {
		return l.LeadStatus == "Followup"
	})).Return(nil).Once()

	_, err := suite.service.CreateLead(ctx, suite.session, req)

	suite.Require().NoError(err)
	suite.mockLeadRepo.AssertNotCalled(suite.T(), "FindStatusOptions", mock.Anything, mock.Anything)
}

func (suite *LeadServiceTestSuite) TestCreateLead_ModuleDisabledBlocked() {
	ctx := context.Background()
	session := adminSession(suite.tenantID)
	session.Tenant.Settings.AllowedModules = []domain.Module{domain.ModuleInvoices}

	lead, err := suite.service.CreateLead(ctx, session, dto.CreateLeadRequest{LeadName: "X", LeadDate: time.Now(), MobileNumber: "1"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(lead)
	suite.mockLeadRepo.AssertNotCalled(suite.T(), "SaveLead", mock.Anything, mock.Anything)
}

// --- GetLeadOptions Tests ---

func (suite *LeadServiceTestSuite) TestGetLeadOptions_DefaultStatusesWhenNoneConfigured() {
	ctx := context.Background()

	suite.mockLeadRepo.On("FindServiceOptions", ctx, suite.tenantID).Return([]domain.ServiceOption{}, nil).Once()
	suite.mockLeadRepo.On("FindStatusOptions", ctx, suite.tenantID).Return([]domain.StatusOption{}, nil).Once()

	serviceOpts, statuses, err := suite.service.GetLeadOptions(ctx, suite.session)

	suite.Require().NoError(err)
	suite.Empty(serviceOpts)
	suite.Len(statuses, 4)
	suite.Equal("Created", statuses[0].Name)
	suite.True(statuses[0].IsDefault)
}

func (suite *LeadServiceTestSuite) TestGetLeadOptions_ConfiguredStatusesWin() {
	ctx := context.Background()
	configured := []domain.StatusOption{{Name: "Warm"}, {Name: "Cold"}}

	suite.mockLeadRepo.On("FindServiceOptions", ctx, suite.tenantID).Return([]domain.ServiceOption{{Name: "SEO"}}, nil).Once()
	suite.mockLeadRepo.On("FindStatusOptions", ctx, suite.tenantID).Return(configured, nil).Once()

	serviceOpts, statuses, err := suite.service.GetLeadOptions(ctx, suite.session)

	suite.Require().NoError(err)
	suite.Len(serviceOpts, 1)
	suite.Equal(configured, statuses)
}

// --- UpdateLeadStatus Tests ---

func (suite *LeadServiceTestSuite) TestUpdateLeadStatus_Success() {
	ctx := context.Background()
	leadID := uuid.NewString()
	moved := &domain.Lead{LeadID: leadID, TenantID: suite.tenantID, LeadStatus: "Client"}

	suite.mockLeadRepo.On("UpdateLeadStatus", ctx, suite.tenantID, leadID, "Client",
		suite.session.Profile.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLeadRepo.On("FindLeadByID", ctx, suite.tenantID, leadID).Return(moved, nil).Once()

	lead, err := suite.service.UpdateLeadStatus(ctx, suite.session, leadID, "Client")

	suite.Require().NoError(err)
	suite.Equal("Client", lead.LeadStatus)
	suite.mockLeadRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestUpdateLeadStatus_EmptyRejected() {
	ctx := context.Background()

	lead, err := suite.service.UpdateLeadStatus(ctx, suite.session, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(lead)
}

// --- Option management Tests ---

func (suite *LeadServiceTestSuite) TestAddServiceOption_RequiresManageSettings() {
	ctx := context.Background()
	session := employeeSession(suite.tenantID)

	opt, err := suite.service.AddServiceOption(ctx, session, dto.CreateServiceOptionRequest{Name: "SEO"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(opt)
	suite.mockLeadRepo.AssertNotCalled(suite.T(), "SaveServiceOption", mock.Anything, mock.Anything)
}

func (suite *LeadServiceTestSuite) TestAddStatusOption_Success() {
	ctx := context.Background()

	suite.mockLeadRepo.On("SaveStatusOption", ctx, mock.MatchedBy(func(o domain.StatusOption) bool {
		return o.Name == "Negotiation" && o.TenantID == suite.tenantID && o.SortOrder == 3
	})).Return(nil).Once()

	opt, err := suite.service.AddStatusOption(ctx, suite.session, dto.CreateStatusOptionRequest{Name: "Negotiation", SortOrder: 3})

	suite.Require().NoError(err)
	suite.Equal("Negotiation", opt.Name)
	suite.NotEmpty(opt.OptionID)
	suite.mockLeadRepo.AssertExpectations(suite.T())
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
