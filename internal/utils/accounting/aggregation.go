package accounting

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalAssets sums the balances of all accounts.
func TotalAssets(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total
}

// TotalByKind sums the amounts of the transactions of the given kind. No date
// filter is applied: the period is every transaction held.
func TotalByKind(transactions []domain.Transaction, kind domain.TransactionKind) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Kind() == kind {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// ExpenseByCategory sums expense amounts per category. Categories appear in
// the order they were first seen; uncategorized expenses are grouped under
// domain.UncategorizedLabel.
func ExpenseByCategory(transactions []domain.Transaction) []domain.CategoryAmount {
	result := []domain.CategoryAmount{}
	index := map[string]int{}

	for _, txn := range transactions {
		d, ok := txn.Expense()
		if !ok {
			continue
		}
		category := string(d.Category)
		if category == "" {
			category = domain.UncategorizedLabel
		}
		if i, seen := index[category]; seen {
			result[i].Amount = result[i].Amount.Add(txn.Amount)
			continue
		}
		index[category] = len(result)
		result = append(result, domain.CategoryAmount{Category: category, Amount: txn.Amount})
	}
	return result
}

// TrendSeries returns the baseline points followed by one live point holding
// the current income and expense totals.
func TrendSeries(baseline []domain.TrendPoint, liveLabel string, transactions []domain.Transaction) []domain.TrendPoint {
	series := make([]domain.TrendPoint, 0, len(baseline)+1)
	series = append(series, baseline...)
	return append(series, domain.TrendPoint{
		Label:   liveLabel,
		Income:  TotalByKind(transactions, domain.IncomeKind),
		Expense: TotalByKind(transactions, domain.ExpenseKind),
	})
}

// Summarize builds every dashboard figure in one call.
func Summarize(ledger domain.Ledger, baseline []domain.TrendPoint, liveLabel string) domain.DashboardSummary {
	return domain.DashboardSummary{
		TotalAssets:       TotalAssets(ledger.Accounts),
		TotalIncome:       TotalByKind(ledger.Transactions, domain.IncomeKind),
		TotalExpense:      TotalByKind(ledger.Transactions, domain.ExpenseKind),
		ExpenseByCategory: ExpenseByCategory(ledger.Transactions),
		Trend:             TrendSeries(baseline, liveLabel, ledger.Transactions),
	}
}
