package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/digitalavenger/leadbill/internal/handlers"
	"github.com/digitalavenger/leadbill/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, session *domain.Session, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, session *domain.Session, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, session, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, session *domain.Session, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Invoice), next, args.Error(2)
}
func (m *MockInvoiceService) PeekNextInvoiceNumber(ctx context.Context, session *domain.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, session *domain.Session, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, session, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoiceStatus(ctx context.Context, session *domain.Session, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	args := m.Called(ctx, session, invoiceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, session *domain.Session, invoiceID string) error {
	args := m.Called(ctx, session, invoiceID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
	session            *domain.Session
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	tenantID := uuid.NewString()
	suite.session = &domain.Session{
		Profile: &domain.UserProfile{
			UserID:      uuid.NewString(),
			Email:       "billing@example.com",
			Role:        domain.RoleAdmin,
			TenantID:    &tenantID,
			Permissions: []domain.Permission{domain.PermViewInvoices, domain.PermManageInvoices},
			IsActive:    true,
		},
		Tenant: &domain.Tenant{
			TenantID: tenantID,
			Name:     "Test Tenant",
			IsActive: true,
			Settings: domain.TenantSettings{AllowedModules: []domain.Module{domain.ModuleInvoices}},
		},
		Subscription: &domain.Subscription{
			SubscriptionID: uuid.NewString(),
			TenantID:       tenantID,
			Status:         domain.SubscriptionActive,
			EndDate:        time.Now().Add(30 * 24 * time.Hour),
		},
	}

	// Inject the resolved session directly instead of running the full
	// auth + session middleware chain.
	suite.router.Use(func(c *gin.Context) {
		middleware.SetSessionInContext(c, suite.session)
		c.Next()
	})

	suite.mockInvoiceService = new(MockInvoiceService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterInvoiceRoutes(v1, suite.mockInvoiceService)
}

func (suite *InvoiceHandlerTestSuite) testInvoice() *domain.Invoice {
	qty := decimal.NewFromInt(2)
	rate := decimal.NewFromInt(500)
	gstRate := decimal.NewFromInt(18)
	amount := qty.Mul(rate)
	gstAmount := amount.Mul(gstRate).Div(decimal.NewFromInt(100))
	return &domain.Invoice{
		InvoiceID:     uuid.NewString(),
		TenantID:      suite.session.Tenant.TenantID,
		InvoiceNumber: "ACMEINV20260001",
		Date:          time.Now().Truncate(24 * time.Hour),
		DueDate:       time.Now().Add(15 * 24 * time.Hour).Truncate(24 * time.Hour),
		CustomerID:    uuid.NewString(),
		Customer: domain.Customer{
			CustomerID: uuid.NewString(),
			TenantID:   suite.session.Tenant.TenantID,
			Name:       "Acme Traders",
			GSTIN:      "29ABCDE1234F1Z5",
		},
		Items: []domain.InvoiceItem{
			{
				Description: "Website design",
				Quantity:    qty,
				Rate:        rate,
				GstRate:     gstRate,
				Amount:      amount,
				GstAmount:   gstAmount,
			},
		},
		Subtotal: amount,
		TotalGst: gstAmount,
		Total:    amount.Add(gstAmount),
		Status:   domain.InvoiceDraft,
	}
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	expected := suite.testInvoice()
	reqBody := dto.CreateInvoiceRequest{
		CustomerID: expected.CustomerID,
		Date:       expected.Date,
		DueDate:    expected.DueDate,
		Items: []dto.InvoiceItemRequest{
			{
				Description: "Website design",
				Quantity:    decimal.NewFromInt(2),
				Rate:        decimal.NewFromInt(500),
				GstRate:     decimal.NewFromInt(18),
			},
		},
	}

	suite.mockInvoiceService.On("CreateInvoice",
		mock.Anything,
		suite.session,
		mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
			return req.CustomerID == reqBody.CustomerID && len(req.Items) == 1
		}),
	).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.InvoiceNumber, resp.InvoiceNumber)
	suite.True(expected.Total.Equal(resp.Total), "total should match")
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingItems() {
	reqBody := map[string]any{
		"customerID": uuid.NewString(),
		"date":       time.Now().Format(time.RFC3339),
		"dueDate":    time.Now().Format(time.RFC3339),
		"items":      []any{},
	}

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_NumberContention() {
	reqBody := dto.CreateInvoiceRequest{
		CustomerID: uuid.NewString(),
		Date:       time.Now(),
		DueDate:    time.Now().Add(15 * 24 * time.Hour),
		Items: []dto.InvoiceItemRequest{
			{Description: "Consulting", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(1000)},
		},
	}

	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, suite.session, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, suite.session, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_Success() {
	first := suite.testInvoice()
	second := suite.testInvoice()
	second.InvoiceNumber = "ACMEINV20260002"
	nextToken := "b3BhcXVl"

	suite.mockInvoiceService.On("ListInvoices",
		mock.Anything,
		suite.session,
		mock.MatchedBy(func(p dto.ListInvoicesParams) bool {
			return p.Limit == 10 && p.NextToken == nil
		}),
	).Return([]domain.Invoice{*second, *first}, &nextToken, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices?limit=10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListInvoicesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Invoices, 2)
	suite.Equal(second.InvoiceNumber, resp.Invoices[0].InvoiceNumber)
	if suite.NotNil(resp.NextToken) {
		suite.Equal(nextToken, *resp.NextToken)
	}
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestPeekNextNumber_Success() {
	suite.mockInvoiceService.On("PeekNextInvoiceNumber", mock.Anything, suite.session).
		Return("ACMEINV20260003", nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices/next-number", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NextInvoiceNumberResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ACMEINV20260003", resp.InvoiceNumber)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestUpdateInvoiceStatus_InvalidStatus() {
	invoiceID := uuid.NewString()
	body, _ := json.Marshal(map[string]string{"status": "cancelled"})
	url := fmt.Sprintf("/api/v1/invoices/%s/status", invoiceID)
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "UpdateInvoiceStatus")
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice_Success() {
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, suite.session, invoiceID).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/invoices/"+invoiceID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestInvoiceHandler(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
