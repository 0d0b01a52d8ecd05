package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

var transactionTypeLabels = []dto.Option{
	{Value: string(domain.IncomeKind), Label: "收入"},
	{Value: string(domain.ExpenseKind), Label: "支出"},
	{Value: string(domain.TransferKind), Label: "轉帳"},
}

// ToCatalogResponse lists the closed enumerations in the order forms show them.
func ToCatalogResponse() dto.CatalogResponse {
	res := dto.CatalogResponse{
		TransactionTypes: append([]dto.Option(nil), transactionTypeLabels...),
	}
	for _, t := range domain.AccountTypes() {
		res.AccountTypes = append(res.AccountTypes, dto.Option{Value: string(t), Label: t.Label()})
	}
	for _, f := range domain.Frequencies() {
		res.Frequencies = append(res.Frequencies, dto.Option{Value: string(f), Label: f.Label()})
	}
	for _, c := range domain.IncomeCategories() {
		res.IncomeCategories = append(res.IncomeCategories, string(c))
	}
	for _, c := range domain.ExpenseCategories() {
		res.ExpenseCategories = append(res.ExpenseCategories, string(c))
	}
	return res
}
