package domain_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-1",
		Date:          civil.Date{Year: 2023, Month: 6, Day: 10},
		Amount:        decimal.NewFromInt(1500),
		AccountID:     "acc-1",
		Frequency:     domain.OneTime,
		Details:       domain.ExpenseDetails{Category: domain.Living, Merchant: "超市"},
	}
}

func TestParseTransactionKind(t *testing.T) {
	for in, want := range map[string]domain.TransactionKind{
		"INCOME":   domain.IncomeKind,
		"expense":  domain.ExpenseKind,
		"Transfer": domain.TransferKind,
	} {
		got, err := domain.ParseTransactionKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParseTransactionKind("REFUND")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransactionKind)
	_, err = domain.ParseTransactionKind("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransactionKind)
}

func TestParseFrequency(t *testing.T) {
	got, err := domain.ParseFrequency("")
	require.NoError(t, err)
	assert.Equal(t, domain.OneTime, got)

	got, err = domain.ParseFrequency("每月")
	require.NoError(t, err)
	assert.Equal(t, domain.Monthly, got)
	assert.True(t, got.IsRecurring())

	_, err = domain.ParseFrequency("FORTNIGHTLY")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseCategories(t *testing.T) {
	c, err := domain.ParseExpenseCategory("")
	require.NoError(t, err)
	assert.Empty(t, c)

	_, err = domain.ParseExpenseCategory("薪資收入")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	ic, err := domain.ParseIncomeCategory("股利")
	require.NoError(t, err)
	assert.Equal(t, domain.Dividend, ic)

	_, err = domain.ParseIncomeCategory("")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransactionAccessors(t *testing.T) {
	expense := baseTransaction()
	assert.Equal(t, domain.ExpenseKind, expense.Kind())
	assert.Equal(t, "生活費", expense.Category())
	assert.Equal(t, "超市", expense.Counterparty())
	_, ok := expense.Income()
	assert.False(t, ok)

	transfer := baseTransaction()
	transfer.Details = domain.TransferDetails{ToAccountID: "acc-2", Fee: decimal.NewFromInt(20)}
	d, ok := transfer.Transfer()
	require.True(t, ok)
	assert.Equal(t, "acc-2", d.ToAccountID)
	assert.Empty(t, transfer.Category())
	assert.Empty(t, transfer.Counterparty())

	assert.Equal(t, domain.TransactionKind(""), domain.Transaction{}.Kind())
}

func TestTransactionValidate(t *testing.T) {
	require.NoError(t, baseTransaction().Validate())

	endDate := civil.Date{Year: 2024, Month: 1, Day: 1}
	tests := []struct {
		name    string
		mutate  func(txn *domain.Transaction)
		wantErr error
	}{
		{
			name:    "negative amount",
			mutate:  func(txn *domain.Transaction) { txn.Amount = decimal.NewFromInt(-1) },
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "no payload",
			mutate:  func(txn *domain.Transaction) { txn.Details = nil },
			wantErr: apperrors.ErrInvalidTransactionKind,
		},
		{
			name: "self transfer",
			mutate: func(txn *domain.Transaction) {
				txn.Details = domain.TransferDetails{ToAccountID: txn.AccountID}
			},
			wantErr: apperrors.ErrSelfTransfer,
		},
		{
			name: "negative fee",
			mutate: func(txn *domain.Transaction) {
				txn.Details = domain.TransferDetails{ToAccountID: "acc-2", Fee: decimal.NewFromInt(-3)}
			},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "end date on a one-time transaction",
			mutate:  func(txn *domain.Transaction) { txn.EndDate = &endDate },
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "income with an expense category",
			mutate: func(txn *domain.Transaction) {
				txn.Details = domain.IncomeDetails{Category: domain.IncomeCategory(domain.Rent)}
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "invalid date",
			mutate:  func(txn *domain.Transaction) { txn.Date = civil.Date{Year: 2023, Month: 2, Day: 30} },
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := baseTransaction()
			tt.mutate(&txn)
			assert.ErrorIs(t, txn.Validate(), tt.wantErr)
		})
	}
}
