package dto

// Option is one choice of a closed enumeration.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CatalogResponse lists every closed enumeration a form can offer.
type CatalogResponse struct {
	TransactionTypes  []Option `json:"transactionTypes"`
	AccountTypes      []Option `json:"accountTypes"`
	Frequencies       []Option `json:"frequencies"`
	IncomeCategories  []string `json:"incomeCategories"`
	ExpenseCategories []string `json:"expenseCategories"`
}
