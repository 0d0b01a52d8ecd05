package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryAmount is the summed expense amount of one category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TrendPoint is one bucket of the income/expense trend chart.
type TrendPoint struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardSummary holds every figure shown on the dashboard.
type DashboardSummary struct {
	TotalAssets       decimal.Decimal  `json:"totalAssets"`
	TotalIncome       decimal.Decimal  `json:"totalIncome"`
	TotalExpense      decimal.Decimal  `json:"totalExpense"`
	ExpenseByCategory []CategoryAmount `json:"expenseByCategory"`
	Trend             []TrendPoint     `json:"trend"`
	Recent            []Transaction    `json:"-"` // Last recorded first, capped by the caller
}

// BalanceCheck compares an account's stored balance with the balance
// replayed from its initial balance and the transaction history.
type BalanceCheck struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Replayed  decimal.Decimal `json:"replayed"`
}

// Consistent reports whether the stored and replayed balances agree.
func (c BalanceCheck) Consistent() bool {
	return c.Balance.Equal(c.Replayed)
}
