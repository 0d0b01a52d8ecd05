package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
)

// UncategorizedLabel is the bucket used for expenses recorded without a category.
const UncategorizedLabel = "Other"

// IncomeCategory is the closed set of income categories.
type IncomeCategory string

const (
	Salary      IncomeCategory = "薪資收入"
	Bonus       IncomeCategory = "獎金"
	Interest    IncomeCategory = "利息"
	CapitalGain IncomeCategory = "股票資本利得"
	Dividend    IncomeCategory = "股利"
	Cashback    IncomeCategory = "回饋金"
	Windfall    IncomeCategory = "意外收入"
	OtherIncome IncomeCategory = "其他收入"
)

// ExpenseCategory is the closed set of expense categories.
type ExpenseCategory string

const (
	Living       ExpenseCategory = "生活費"
	Rent         ExpenseCategory = "房租"
	Electricity  ExpenseCategory = "電費"
	Water        ExpenseCategory = "水費"
	Insurance    ExpenseCategory = "保險費"
	OtherExpense ExpenseCategory = "其他費用"
)

// IncomeCategories returns the income categories in the order forms offer them.
func IncomeCategories() []IncomeCategory {
	return []IncomeCategory{Salary, Bonus, Interest, CapitalGain, Dividend, Cashback, Windfall, OtherIncome}
}

// ExpenseCategories returns the expense categories in the order forms offer them.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{Living, Rent, Electricity, Water, Insurance, OtherExpense}
}

// ParseIncomeCategory rejects anything outside IncomeCategories.
func ParseIncomeCategory(s string) (IncomeCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range IncomeCategories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown income category %q", apperrors.ErrValidation, s)
}

// ParseExpenseCategory rejects anything outside ExpenseCategories.
// An empty string is accepted and means uncategorized.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, c := range ExpenseCategories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, s)
}
