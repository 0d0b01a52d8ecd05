package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ToCategoryAmountResponses keeps the first-seen category order.
func ToCategoryAmountResponses(items []domain.CategoryAmount) []dto.CategoryAmountResponse {
	res := make([]dto.CategoryAmountResponse, len(items))
	for i, item := range items {
		res[i] = dto.CategoryAmountResponse{Category: item.Category, Amount: item.Amount}
	}
	return res
}

func ToDashboardResponse(s domain.DashboardSummary) dto.DashboardResponse {
	trend := make([]dto.TrendPointResponse, len(s.Trend))
	for i, p := range s.Trend {
		trend[i] = dto.TrendPointResponse{Label: p.Label, Income: p.Income, Expense: p.Expense}
	}
	return dto.DashboardResponse{
		TotalAssets:       s.TotalAssets,
		TotalIncome:       s.TotalIncome,
		TotalExpense:      s.TotalExpense,
		ExpenseByCategory: ToCategoryAmountResponses(s.ExpenseByCategory),
		Trend:             trend,
		Recent:            ToTransactionResponses(s.Recent),
	}
}

func ToExpenseByCategoryResponse(items []domain.CategoryAmount) dto.ExpenseByCategoryResponse {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return dto.ExpenseByCategoryResponse{
		Categories: ToCategoryAmountResponses(items),
		Total:      total,
	}
}

func ToReconciliationResponse(checks []domain.BalanceCheck) dto.ReconciliationResponse {
	res := dto.ReconciliationResponse{
		Consistent: true,
		Accounts:   make([]dto.BalanceCheckResponse, len(checks)),
	}
	for i, c := range checks {
		res.Accounts[i] = dto.BalanceCheckResponse{
			AccountID:  c.AccountID,
			Name:       c.Name,
			Balance:    c.Balance,
			Replayed:   c.Replayed,
			Difference: c.Balance.Sub(c.Replayed),
			Consistent: c.Consistent(),
		}
		res.Consistent = res.Consistent && c.Consistent()
	}
	return res
}
