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

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	var inv *domain.Invoice
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, tenantID, limit, nextToken)
	var invs []domain.Invoice
	if args.Get(0) != nil {
		invs = args.Get(0).([]domain.Invoice)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return invs, token, args.Error(2)
}

func (m *MockInvoiceRepository) PeekNextSequence(ctx context.Context, ownerID string, year int) (int64, error) {
	args := m.Called(ctx, ownerID, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) CreateInvoiceWithNumber(ctx context.Context, invoice domain.Invoice, prefix string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice, prefix)
	var inv *domain.Invoice
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, tenantID, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, invoiceID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, tenantID, invoiceID string) error {
	args := m.Called(ctx, tenantID, invoiceID)
	return args.Error(0)
}

// --- Mock CustomerReader ---
type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) FindCustomerByID(ctx context.Context, tenantID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, tenantID, customerID)
	var c *domain.Customer
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Customer)
	}
	return c, args.Error(1)
}

func (m *MockCustomerReader) FindCustomersByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var cs []domain.Customer
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.Customer)
	}
	return cs, args.Error(1)
}

// --- Mock SettingsReader ---
type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) FindSettingsByTenantID(ctx context.Context, tenantID string) (*domain.CompanySettings, error) {
	args := m.Called(ctx, tenantID)
	var s *domain.CompanySettings
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.CompanySettings)
	}
	return s, args.Error(1)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockCustomerRepo *MockCustomerReader
	mockSettingsRepo *MockSettingsReader
	service          portssvc.InvoiceSvcFacade

	tenantID string
	session  *domain.Session
	customer *domain.Customer
	settings *domain.CompanySettings
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockCustomerRepo = new(MockCustomerReader)
	suite.mockSettingsRepo = new(MockSettingsReader)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockCustomerRepo, suite.mockSettingsRepo)

	suite.tenantID = uuid.NewString()
	suite.session = adminSession(suite.tenantID)
	suite.customer = &domain.Customer{
		CustomerID: uuid.NewString(),
		TenantID:   suite.tenantID,
		Name:       "Vrinda Retail",
		Address:    "12 MG Road, Bengaluru",
		GSTIN:      "29ABCDE1234F1Z5",
	}
	suite.settings = &domain.CompanySettings{
		SettingsID:    uuid.NewString(),
		TenantID:      suite.tenantID,
		Name:          "Acme Media",
		InvoicePrefix: "VRI",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- CreateInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DerivesAmountsAndTotals() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		Items: []dto.InvoiceItemRequest{
			{Description: "Design work", Quantity: dec("2"), Rate: dec("100"), GstRate: dec("18")},
			{Description: "Hosting", Quantity: dec("1"), Rate: dec("50")},
		},
	}

	suite.mockSettingsRepo.On("FindSettingsByTenantID", ctx, suite.tenantID).Return(suite.settings, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, req.CustomerID).Return(suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("CreateInvoiceWithNumber", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.TenantID == suite.tenantID &&
			inv.Status == domain.InvoiceDraft &&
			inv.Customer.Name == suite.customer.Name &&
			inv.Items[0].Amount.Equal(dec("200.00")) &&
			inv.Items[0].GstAmount.Equal(dec("36.00")) &&
			inv.Items[1].Amount.Equal(dec("50.00")) &&
			inv.Items[1].GstAmount.Equal(dec("0.00")) &&
			inv.Subtotal.Equal(dec("250.00")) &&
			inv.TotalGst.Equal(dec("36.00")) &&
			inv.Total.Equal(dec("286.00"))
	}), "VRI").Return(&domain.Invoice{InvoiceNumber: "VRIINV20240001"}, nil).Once()

	created, err := suite.service.CreateInvoice(ctx, suite.session, req)

	suite.Require().NoError(err)
	suite.Equal("VRIINV20240001", created.InvoiceNumber)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_MissingSettingsBlocked() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       time.Now(),
		DueDate:    time.Now().AddDate(0, 0, 14),
		Items:      []dto.InvoiceItemRequest{{Description: "Work", Quantity: dec("1"), Rate: dec("100")}},
	}

	suite.mockSettingsRepo.On("FindSettingsByTenantID", ctx, suite.tenantID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateInvoice(ctx, suite.session, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "CreateInvoiceWithNumber", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DueDateBeforeDateRejected() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Items:      []dto.InvoiceItemRequest{{Description: "Work", Quantity: dec("1"), Rate: dec("100")}},
	}

	created, err := suite.service.CreateInvoice(ctx, suite.session, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ExpiredSubscriptionBlocked() {
	ctx := context.Background()
	session := expireSubscription(adminSession(suite.tenantID))
	req := dto.CreateInvoiceRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       time.Now(),
		DueDate:    time.Now().AddDate(0, 0, 14),
		Items:      []dto.InvoiceItemRequest{{Description: "Work", Quantity: dec("1"), Rate: dec("100")}},
	}

	created, err := suite.service.CreateInvoice(ctx, session, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(created)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "CreateInvoiceWithNumber", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ConflictSurfaces() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID: suite.customer.CustomerID,
		Date:       time.Now(),
		DueDate:    time.Now().AddDate(0, 0, 14),
		Items:      []dto.InvoiceItemRequest{{Description: "Work", Quantity: dec("1"), Rate: dec("100")}},
	}

	suite.mockSettingsRepo.On("FindSettingsByTenantID", ctx, suite.tenantID).Return(suite.settings, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, req.CustomerID).Return(suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("CreateInvoiceWithNumber", ctx, mock.AnythingOfType("domain.Invoice"), "VRI").
		Return(nil, apperrors.NewAppError(409, "invoice number assignment kept losing to concurrent writers", apperrors.ErrConflict)).Once()

	created, err := suite.service.CreateInvoice(ctx, suite.session, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(created)
}

// --- PeekNextInvoiceNumber Tests ---

func (suite *InvoiceServiceTestSuite) TestPeekNextInvoiceNumber_FormatsPreview() {
	ctx := context.Background()
	year := time.Now().Year()

	suite.mockSettingsRepo.On("FindSettingsByTenantID", ctx, suite.tenantID).Return(suite.settings, nil).Once()
	suite.mockInvoiceRepo.On("PeekNextSequence", ctx, suite.tenantID, year).Return(int64(3), nil).Once()

	number, err := suite.service.PeekNextInvoiceNumber(ctx, suite.session)

	suite.Require().NoError(err)
	suite.Equal(domain.FormatInvoiceNumber("VRI", year, 3), number)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- UpdateInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_RecomputesTotalsKeepsNumber() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:     invoiceID,
		TenantID:      suite.tenantID,
		InvoiceNumber: "VRIINV20240007",
		Date:          time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		Items:         []domain.InvoiceItem{{Description: "Old", Quantity: dec("1"), Rate: dec("100"), Amount: dec("100"), GstAmount: dec("0")}},
		Subtotal:      dec("100"),
		Total:         dec("100"),
		Status:        domain.InvoiceDraft,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.tenantID, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceNumber == "VRIINV20240007" &&
			inv.Subtotal.Equal(dec("500.00")) &&
			inv.TotalGst.Equal(dec("90.00")) &&
			inv.Total.Equal(dec("590.00"))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateInvoice(ctx, suite.session, invoiceID, dto.UpdateInvoiceRequest{
		Items: []dto.InvoiceItemRequest{{Description: "New", Quantity: dec("5"), Rate: dec("100"), GstRate: dec("18")}},
	})

	suite.Require().NoError(err)
	suite.Equal("VRIINV20240007", updated.InvoiceNumber)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- UpdateInvoiceStatus Tests ---

func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_UnknownStatusRejected() {
	ctx := context.Background()

	updated, err := suite.service.UpdateInvoiceStatus(ctx, suite.session, uuid.NewString(), domain.InvoiceStatus("void"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{InvoiceID: invoiceID, TenantID: suite.tenantID, Status: domain.InvoiceSent}

	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, suite.tenantID, invoiceID, domain.InvoiceSent,
		suite.session.Profile.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.tenantID, invoiceID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateInvoiceStatus(ctx, suite.session, invoiceID, domain.InvoiceSent)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceSent, updated.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- Delete / read gating ---

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_EmployeeDenied() {
	ctx := context.Background()
	session := employeeSession(suite.tenantID)

	err := suite.service.DeleteInvoice(ctx, session, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_EmployeeAllowed() {
	ctx := context.Background()
	session := employeeSession(suite.tenantID)

	suite.mockInvoiceRepo.On("ListInvoicesByTenant", ctx, suite.tenantID, 20, (*string)(nil)).
		Return([]domain.Invoice{}, nil, nil).Once()

	_, _, err := suite.service.ListInvoices(ctx, session, dto.ListInvoicesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
