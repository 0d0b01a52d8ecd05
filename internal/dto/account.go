package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string           `json:"name" binding:"required"`
	AccountType string           `json:"accountType" binding:"required,account_type"` // Code ("CREDIT") or label ("信用卡")
	Balance     *decimal.Decimal `json:"balance"`                                     // Opening balance, zero when omitted
	BillingDay  *int             `json:"billingDay" binding:"omitempty,min=1,max=31"` // CREDIT only
	DueDay      *int             `json:"dueDay" binding:"omitempty,min=1,max=31"`     // CREDIT only
	Note        string           `json:"note"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	AccountType      string          `json:"accountType"`
	AccountTypeLabel string          `json:"accountTypeLabel"`
	Balance          decimal.Decimal `json:"balance"`
	InitialBalance   decimal.Decimal `json:"initialBalance"`
	BillingDay       *int            `json:"billingDay,omitempty"`
	DueDay           *int            `json:"dueDay,omitempty"`
	Note             string          `json:"note"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts    []AccountResponse `json:"accounts"`
	TotalAssets decimal.Decimal   `json:"totalAssets"`
}
