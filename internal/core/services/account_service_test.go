package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	repo    *memory.LedgerRepository
	service portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.repo = memory.NewLedgerRepository(domain.Ledger{})
	suite.service = services.NewAccountService(suite.repo, services.WithAccountClock(fixedClock))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "臺灣銀行",
		AccountType: "BANK",
		Balance:     dec("80000"),
		Note:        "定存",
	}

	created, err := suite.service.CreateAccount(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(domain.Bank, created.AccountType)
	suite.Equal("80000", created.Balance.String())
	suite.Equal("80000", created.InitialBalance.String())
	suite.Equal("admin", created.CreatedBy)
	suite.Equal(fixedNow, created.CreatedAt)

	fetched, err := suite.service.GetAccountByID(ctx, created.AccountID)
	suite.Require().NoError(err)
	suite.Equal(*created, *fetched)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ValidationError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "錢包", AccountType: "CASH", BillingDay: intPtr(10)}

	created, err := suite.service.CreateAccount(ctx, req, "admin")

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)

	accounts, err := suite.service.ListAccounts(ctx)
	suite.Require().NoError(err)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestListAccounts_InsertionOrder() {
	ctx := context.Background()
	for _, name := range []string{"現金", "臺灣銀行", "現金回饋信用卡"} {
		_, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: name, AccountType: "CASH"}, "admin")
		suite.Require().NoError(err)
	}

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(accounts, 3)
	suite.Equal("現金", accounts[0].Name)
	suite.Equal("現金回饋信用卡", accounts[2].Name)
}

func (suite *AccountServiceTestSuite) TestListAccounts_EmptyIsNotNil() {
	accounts, err := suite.service.ListAccounts(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(accounts)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	account, err := suite.service.GetAccountByID(context.Background(), "missing")
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RepositoryError() {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewAccountService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Update", ctx, mock.Anything).Return(assert.AnError).Once()

	created, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{Name: "錢包", AccountType: "CASH"}, "admin")

	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
	mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_RepositoryError() {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewAccountService(mockRepo)
	ctx := context.Background()

	mockRepo.On("View", ctx, mock.Anything).Return(context.Canceled).Once()

	account, err := svc.GetAccountByID(ctx, "any")

	suite.Nil(account)
	suite.ErrorIs(err, context.Canceled)
	mockRepo.AssertExpectations(suite.T())
}

func intPtr(v int) *int { return &v }

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
