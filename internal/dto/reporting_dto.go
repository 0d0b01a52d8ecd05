package dto

import (
	"github.com/shopspring/decimal"
)

// CategoryAmountResponse is one slice of the expense breakdown chart.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TrendPointResponse is one bar group of the trend chart.
type TrendPointResponse struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardResponse represents the dashboard report response
type DashboardResponse struct {
	TotalAssets       decimal.Decimal          `json:"totalAssets"`
	TotalIncome       decimal.Decimal          `json:"totalIncome"`
	TotalExpense      decimal.Decimal          `json:"totalExpense"`
	ExpenseByCategory []CategoryAmountResponse `json:"expenseByCategory"`
	Trend             []TrendPointResponse     `json:"trend"`
	Recent            []TransactionResponse    `json:"recent"`
}

// ExpenseByCategoryResponse represents the expense breakdown report response
type ExpenseByCategoryResponse struct {
	Categories []CategoryAmountResponse `json:"categories"`
	Total      decimal.Decimal          `json:"total"`
}

// BalanceCheckResponse compares one account's stored and replayed balances.
type BalanceCheckResponse struct {
	AccountID  string          `json:"accountID"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	Replayed   decimal.Decimal `json:"replayed"`
	Difference decimal.Decimal `json:"difference"`
	Consistent bool            `json:"consistent"`
}

// ReconciliationResponse represents the reconciliation report response
type ReconciliationResponse struct {
	Consistent bool                   `json:"consistent"`
	Accounts   []BalanceCheckResponse `json:"accounts"`
}
