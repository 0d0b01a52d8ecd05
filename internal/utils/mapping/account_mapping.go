package mapping

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ToDomainAccount builds a validated account from a create request. The
// opening balance becomes both the current and the initial balance.
func ToDomainAccount(req dto.CreateAccountRequest, accountID string, now time.Time, createdBy string) (domain.Account, error) {
	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		return domain.Account{}, err
	}

	opening := decimal.Zero
	if req.Balance != nil {
		opening = *req.Balance
	}

	account := domain.Account{
		AccountID:      accountID,
		Name:           req.Name,
		AccountType:    accountType,
		Balance:        opening,
		InitialBalance: opening,
		BillingDay:     req.BillingDay,
		DueDay:         req.DueDay,
		Note:           req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: createdBy,
		},
	}
	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		AccountID:        acc.AccountID,
		Name:             acc.Name,
		AccountType:      string(acc.AccountType),
		AccountTypeLabel: acc.AccountType.Label(),
		Balance:          acc.Balance,
		InitialBalance:   acc.InitialBalance,
		BillingDay:       acc.BillingDay,
		DueDay:           acc.DueDay,
		Note:             acc.Note,
		CreatedAt:        acc.CreatedAt,
		CreatedBy:        acc.CreatedBy,
	}
}

// ToAccountResponses converts a slice of domain.Account, keeping the order.
func ToAccountResponses(accounts []domain.Account) []dto.AccountResponse {
	res := make([]dto.AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}
