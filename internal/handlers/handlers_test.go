package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/handlers"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/SscSPs/personal_finance_app/internal/platform/config"
	"github.com/SscSPs/personal_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

func testConfig(loginRate string) *config.Config {
	return &config.Config{
		IsProduction:      true,
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "pfa-test",
		AuthUsername:      "admin",
		AuthPassword:      "admin",
		LoginRateLimit:    loginRate,
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, services *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := handlers.RegisterRoutes(r, cfg, services, nil); err != nil {
		t.Fatalf("failed to register routes: %v", err)
	}
	return r
}

func serve(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockAccountService     *MockAccountService
	mockTransactionService *MockTransactionService
	mockReportingService   *MockReportingService
	mockAuthService        *MockAuthService
	token                  string
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockAccountService = new(MockAccountService)
	suite.mockTransactionService = new(MockTransactionService)
	suite.mockReportingService = new(MockReportingService)
	suite.mockAuthService = new(MockAuthService)

	suite.router = newTestRouter(suite.T(), testConfig("100-M"), &portssvc.ServiceContainer{
		Account:     suite.mockAccountService,
		Transaction: suite.mockTransactionService,
		Reporting:   suite.mockReportingService,
		Auth:        suite.mockAuthService,
	})

	token, _, err := utils.GenerateJWT("admin", testJWTSecret, time.Hour, "pfa-test")
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	return serve(suite.router, method, path, body, suite.token)
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealthIsPublic() {
	w := serve(suite.router, http.MethodGet, "/health", "", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/api/v1/accounts", "/api/v1/transactions", "/api/v1/reports/dashboard", "/api/v1/catalog"} {
		w := serve(suite.router, http.MethodGet, path, "", "")
		suite.Equal(http.StatusUnauthorized, w.Code, path)
	}

	w := serve(suite.router, http.MethodGet, "/api/v1/accounts", "", "not-a-jwt")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *HandlerTestSuite) TestCatalog() {
	w := suite.do(http.MethodGet, "/api/v1/catalog", "")
	suite.Equal(http.StatusOK, w.Code)

	var body dto.CatalogResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.TransactionTypes, 3)
	suite.Len(body.AccountTypes, 3)
	suite.Contains(body.ExpenseCategories, "生活費")
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	created := &domain.Account{
		AccountID:      "acc-1",
		Name:           "現金",
		AccountType:    domain.Cash,
		Balance:        decimal.NewFromInt(5000),
		InitialBalance: decimal.NewFromInt(5000),
	}
	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Name == "現金" && req.AccountType == "現金" && req.Balance != nil && req.Balance.Equal(decimal.NewFromInt(5000))
		}),
		"admin",
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"name":"現金","accountType":"現金","balance":5000}`)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("acc-1", body.AccountID)
	suite.Equal("CASH", body.AccountType)
	suite.Equal("現金", body.AccountTypeLabel)
	suite.True(body.Balance.Equal(decimal.NewFromInt(5000)))
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateAccount_BindingErrors() {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "missing name", body: `{"accountType":"CASH"}`},
		{name: "unknown account type", body: `{"name":"x","accountType":"SAVINGS"}`},
		{name: "non numeric balance", body: `{"name":"x","accountType":"CASH","balance":"lots"}`},
		{name: "billing day out of range", body: `{"name":"x","accountType":"CREDIT","billingDay":32}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/accounts", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount_ServiceErrors() {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "validation", err: apperrors.ErrValidation, wantCode: http.StatusBadRequest},
		{name: "duplicate", err: apperrors.ErrDuplicate, wantCode: http.StatusConflict},
		{name: "unexpected", err: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockAccountService.On("CreateAccount", mock.Anything, mock.Anything, "admin").Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/accounts", `{"name":"x","accountType":"BANK"}`)
			suite.Equal(tt.wantCode, w.Code)
		})
	}
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/missing", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListAccounts_IncludesTotalAssets() {
	accounts := []domain.Account{
		{AccountID: "a", Name: "現金", AccountType: domain.Cash, Balance: decimal.NewFromInt(5000)},
		{AccountID: "b", Name: "卡", AccountType: domain.Credit, Balance: decimal.NewFromInt(-5000)},
		{AccountID: "c", Name: "銀行", AccountType: domain.Bank, Balance: decimal.NewFromInt(120000)},
	}
	suite.mockAccountService.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Accounts, 3)
	suite.Equal("b", body.Accounts[1].AccountID)
	suite.True(body.TotalAssets.Equal(decimal.NewFromInt(120000)))
}

func (suite *HandlerTestSuite) TestRecordTransaction_BindingErrors() {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing type", body: `{"amount":10,"accountID":"cash"}`},
		{name: "unknown type", body: `{"type":"GIFT","amount":10,"accountID":"cash"}`},
		{name: "missing amount", body: `{"type":"EXPENSE","accountID":"cash"}`},
		{name: "non numeric amount", body: `{"type":"EXPENSE","amount":"abc","accountID":"cash"}`},
		{name: "negative amount", body: `{"type":"EXPENSE","amount":-1,"accountID":"cash"}`},
		{name: "negative fee", body: `{"type":"TRANSFER","amount":1,"fee":-2,"accountID":"cash","toAccountID":"bank"}`},
		{name: "bad date", body: `{"type":"EXPENSE","amount":1,"accountID":"cash","date":"2023/06/10"}`},
		{name: "missing account", body: `{"type":"EXPENSE","amount":1}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/transactions", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockTransactionService.AssertNotCalled(suite.T(), "RecordTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRecordTransaction_Success() {
	txn := &domain.Transaction{
		TransactionID: "t-1",
		Date:          civil.Date{Year: 2023, Month: time.June, Day: 10},
		Amount:        decimal.NewFromInt(1500),
		AccountID:     "cash",
		Frequency:     domain.OneTime,
		Details:       domain.ExpenseDetails{Category: domain.Living, Merchant: "超市"},
	}
	accounts := []domain.Account{{AccountID: "cash", Name: "現金", AccountType: domain.Cash, Balance: decimal.NewFromInt(3500)}}
	suite.mockTransactionService.On("RecordTransaction",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Type == "EXPENSE" && req.Amount.Equal(decimal.NewFromInt(1500)) && req.Fee == nil
		}),
		"admin",
	).Return(txn, accounts, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions",
		`{"type":"EXPENSE","date":"2023-06-10","amount":1500,"accountID":"cash","category":"生活費","merchant":"超市"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.RecordTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("t-1", body.Transaction.TransactionID)
	suite.Equal("2023-06-10", body.Transaction.Date)
	suite.Equal("超市", body.Transaction.Counterparty)
	suite.Require().Len(body.Accounts, 1)
	suite.True(body.Accounts[0].Balance.Equal(decimal.NewFromInt(3500)))
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRecordTransaction_DomainErrorsAreBadRequests() {
	for _, err := range []error{apperrors.ErrUnknownAccount, apperrors.ErrSelfTransfer, apperrors.ErrInvalidAmount, apperrors.ErrInvalidTransactionKind} {
		suite.mockTransactionService.On("RecordTransaction", mock.Anything, mock.Anything, "admin").Return(nil, nil, err).Once()

		w := suite.do(http.MethodPost, "/api/v1/transactions", `{"type":"TRANSFER","amount":1,"accountID":"cash","toAccountID":"cash"}`)
		suite.Equal(http.StatusBadRequest, w.Code, err.Error())
	}
}

func (suite *HandlerTestSuite) TestListTransactions_PassesPaging() {
	next := "next-page"
	suite.mockTransactionService.On("ListTransactions",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 2 && p.NextToken != nil && *p.NextToken == "tok"
		}),
	).Return([]domain.Transaction{}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=2&nextToken=tok", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Empty(body.Transactions)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(next, *body.NextToken)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_DefaultLimit() {
	suite.mockTransactionService.On("ListTransactions",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool { return p.Limit == 20 && p.NextToken == nil }),
	).Return([]domain.Transaction{}, nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_InvalidParams() {
	for _, query := range []string{"limit=0", "limit=1000", "limit=abc"} {
		w := suite.do(http.MethodGet, "/api/v1/transactions?"+query, "")
		suite.Equal(http.StatusBadRequest, w.Code, query)
	}

	suite.mockTransactionService.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, nil, apperrors.ErrValidation).Once()
	w := suite.do(http.MethodGet, "/api/v1/transactions?nextToken=bogus", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockTransactionService.On("GetTransactionByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/nope", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDashboard() {
	summary := &domain.DashboardSummary{
		TotalAssets:       decimal.NewFromInt(120000),
		TotalIncome:       decimal.NewFromInt(60000),
		TotalExpense:      decimal.NewFromInt(6500),
		ExpenseByCategory: []domain.CategoryAmount{{Category: "生活費", Amount: decimal.NewFromInt(1500)}},
		Trend:             []domain.TrendPoint{{Label: "6月", Income: decimal.NewFromInt(60000), Expense: decimal.NewFromInt(6500)}},
	}
	suite.mockReportingService.On("Dashboard", mock.Anything).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/dashboard", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.TotalAssets.Equal(decimal.NewFromInt(120000)))
	suite.Len(body.ExpenseByCategory, 1)
	suite.Equal("6月", body.Trend[0].Label)
	suite.NotNil(body.Recent)
}

func (suite *HandlerTestSuite) TestReports_InternalErrorIsGeneric() {
	suite.mockReportingService.On("Dashboard", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockReportingService.On("ExpenseByCategory", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockReportingService.On("Reconciliation", mock.Anything).Return(nil, assert.AnError).Once()

	for _, path := range []string{"/api/v1/reports/dashboard", "/api/v1/reports/expense-by-category", "/api/v1/reports/reconciliation"} {
		w := suite.do(http.MethodGet, path, "")
		suite.Equal(http.StatusInternalServerError, w.Code, path)
		suite.Equal("Failed to generate report", suite.errorBody(w))
	}
}

func (suite *HandlerTestSuite) TestExpenseByCategory() {
	suite.mockReportingService.On("ExpenseByCategory", mock.Anything).Return([]domain.CategoryAmount{
		{Category: "生活費", Amount: decimal.NewFromInt(1800)},
		{Category: "房租", Amount: decimal.NewFromInt(10000)},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/expense-by-category", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ExpenseByCategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Categories, 2)
	suite.True(body.Total.Equal(decimal.NewFromInt(11800)))
}

func (suite *HandlerTestSuite) TestLogin() {
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockAuthService.On("Login", mock.Anything, "admin", "admin").Return("signed-token", expiresAt, nil).Once()
	suite.mockAuthService.On("Login", mock.Anything, "admin", "wrong").Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	w := serve(suite.router, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"admin"}`, "")
	suite.Equal(http.StatusOK, w.Code)
	var body dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("signed-token", body.Token)
	suite.True(expiresAt.Equal(body.ExpiresAt))

	w = serve(suite.router, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"wrong"}`, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid username or password", suite.errorBody(w))

	w = serve(suite.router, http.MethodPost, "/api/v1/auth/login", `{"username":"admin"}`, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuthService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestLoginIsRateLimited(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("Login", mock.Anything, "admin", "guess").Return("", time.Time{}, apperrors.ErrUnauthorized)
	r := newTestRouter(t, testConfig("2-M"), &portssvc.ServiceContainer{Auth: authService})

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"guess"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := serve(r, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"guess"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	authService.AssertNumberOfCalls(t, "Login", 2)
}

func TestRegisterRoutes_InvalidRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	err := handlers.RegisterRoutes(gin.New(), testConfig("lots"), &portssvc.ServiceContainer{}, nil)
	assert.Error(t, err)
}

func TestSwaggerOnlyOutsideProduction(t *testing.T) {
	cfg := testConfig("100-M")
	cfg.IsProduction = false
	r := newTestRouter(t, cfg, &portssvc.ServiceContainer{})
	w := serve(r, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	r = newTestRouter(t, testConfig("100-M"), &portssvc.ServiceContainer{})
	w = serve(r, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
