package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the flat form submitted for every kind of
// transaction. Which optional fields are read depends on Type:
//
//	INCOME   category (income category), company
//	EXPENSE  category (expense category, may be empty), merchant
//	TRANSFER toAccountID, fee
type CreateTransactionRequest struct {
	Type        string           `json:"type" binding:"required,txn_kind"`
	Date        string           `json:"date" binding:"omitempty,calendar_date"` // YYYY-MM-DD, today when empty
	Amount      *decimal.Decimal `json:"amount" binding:"required,non_negative"`
	AccountID   string           `json:"accountID" binding:"required"`
	ToAccountID string           `json:"toAccountID"`
	Fee         *decimal.Decimal `json:"fee" binding:"omitempty,non_negative"`
	Category    string           `json:"category"`
	Company     string           `json:"company"`
	Merchant    string           `json:"merchant"`
	Frequency   string           `json:"frequency"`                                 // ONE_TIME when empty
	EndDate     string           `json:"endDate" binding:"omitempty,calendar_date"` // Dropped for ONE_TIME
	Note        string           `json:"note"`
}

// TransactionResponse is a transaction as shown in the list view.
type TransactionResponse struct {
	TransactionID  string           `json:"transactionID"`
	Type           string           `json:"type"`
	Date           string           `json:"date"`
	Amount         decimal.Decimal  `json:"amount"`
	AccountID      string           `json:"accountID"`
	ToAccountID    string           `json:"toAccountID,omitempty"`
	Fee            *decimal.Decimal `json:"fee,omitempty"`
	Category       string           `json:"category"`
	CategoryLabel  string           `json:"categoryLabel"` // Category, 轉帳 for transfers, 未分類 when empty
	Counterparty   string           `json:"counterparty"`  // Company or merchant, "-" when there is none
	Description    string           `json:"description"`   // Note, else company or merchant, else 無備註
	Frequency      string           `json:"frequency"`
	FrequencyLabel string           `json:"frequencyLabel"`
	EndDate        string           `json:"endDate,omitempty"`
	Note           string           `json:"note"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
}

// RecordTransactionResponse returns the new transaction together with the
// account balances it produced.
type RecordTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Accounts    []AccountResponse   `json:"accounts"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
