package domain

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the payload carried by a Transaction.
type TransactionKind string

const (
	IncomeKind   TransactionKind = "INCOME"
	ExpenseKind  TransactionKind = "EXPENSE"
	TransferKind TransactionKind = "TRANSFER"
)

// ParseTransactionKind maps a wire value onto a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch k := TransactionKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case IncomeKind, ExpenseKind, TransferKind:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidTransactionKind, s)
	}
}

// TransactionDetails is the per-kind payload of a transaction. The set of
// implementations is closed: IncomeDetails, ExpenseDetails and TransferDetails.
type TransactionDetails interface {
	Kind() TransactionKind
	sealed()
}

// IncomeDetails credits Transaction.AccountID.
type IncomeDetails struct {
	Category IncomeCategory
	Company  string
}

// ExpenseDetails debits Transaction.AccountID. Category may be empty.
type ExpenseDetails struct {
	Category ExpenseCategory
	Merchant string
}

// TransferDetails debits Transaction.AccountID by Amount+Fee and credits
// ToAccountID by Amount. The fee is credited nowhere.
type TransferDetails struct {
	ToAccountID string
	Fee         decimal.Decimal
}

func (IncomeDetails) Kind() TransactionKind   { return IncomeKind }
func (ExpenseDetails) Kind() TransactionKind  { return ExpenseKind }
func (TransferDetails) Kind() TransactionKind { return TransferKind }

func (IncomeDetails) sealed()   {}
func (ExpenseDetails) sealed()  {}
func (TransferDetails) sealed() {}

// Transaction is an immutable record of money movement.
type Transaction struct {
	TransactionID string
	Date          civil.Date
	Amount        decimal.Decimal // Magnitude; the sign follows from the kind
	AccountID     string          // Credited for income, debited for expense and transfer
	Frequency     Frequency
	EndDate       *civil.Date // Only kept for recurring frequencies
	Note          string
	Details       TransactionDetails
	AuditFields
}

// Kind returns the kind of the payload, or "" when there is none.
func (t Transaction) Kind() TransactionKind {
	if t.Details == nil {
		return ""
	}
	return t.Details.Kind()
}

// Income returns the income payload if t is an income.
func (t Transaction) Income() (IncomeDetails, bool) {
	d, ok := t.Details.(IncomeDetails)
	return d, ok
}

// Expense returns the expense payload if t is an expense.
func (t Transaction) Expense() (ExpenseDetails, bool) {
	d, ok := t.Details.(ExpenseDetails)
	return d, ok
}

// Transfer returns the transfer payload if t is a transfer.
func (t Transaction) Transfer() (TransferDetails, bool) {
	d, ok := t.Details.(TransferDetails)
	return d, ok
}

// Category returns the category label of an income or expense, "" otherwise.
func (t Transaction) Category() string {
	switch d := t.Details.(type) {
	case IncomeDetails:
		return string(d.Category)
	case ExpenseDetails:
		return string(d.Category)
	}
	return ""
}

// Counterparty returns the company of an income or the merchant of an expense.
func (t Transaction) Counterparty() string {
	switch d := t.Details.(type) {
	case IncomeDetails:
		return d.Company
	case ExpenseDetails:
		return d.Merchant
	}
	return ""
}

// Validate checks that the transaction is well formed and type-consistent.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.TransactionID) == "" {
		return fmt.Errorf("%w: transaction ID is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(t.AccountID) == "" {
		return fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if !t.Date.IsValid() {
		return fmt.Errorf("%w: invalid date %s", apperrors.ErrValidation, t.Date)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", apperrors.ErrInvalidAmount, t.Amount)
	}
	if _, ok := frequencyLabels[t.Frequency]; !ok {
		return fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, t.Frequency)
	}
	if t.EndDate != nil && !t.Frequency.IsRecurring() {
		return fmt.Errorf("%w: end date requires a recurring frequency", apperrors.ErrValidation)
	}

	switch d := t.Details.(type) {
	case IncomeDetails:
		if _, err := ParseIncomeCategory(string(d.Category)); err != nil {
			return err
		}
	case ExpenseDetails:
		if _, err := ParseExpenseCategory(string(d.Category)); err != nil {
			return err
		}
	case TransferDetails:
		if strings.TrimSpace(d.ToAccountID) == "" {
			return fmt.Errorf("%w: destination account ID is required", apperrors.ErrValidation)
		}
		if d.ToAccountID == t.AccountID {
			return apperrors.ErrSelfTransfer
		}
		if d.Fee.IsNegative() {
			return fmt.Errorf("%w: fee %s is negative", apperrors.ErrInvalidAmount, d.Fee)
		}
	default:
		return apperrors.ErrInvalidTransactionKind
	}
	return nil
}
