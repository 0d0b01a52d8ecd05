package accounting

import (
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedEffect returns the net change a transaction makes to the balance of
// the given account. Accounts the transaction does not reference get zero.
//
// INCOME   -> +amount on the account
// EXPENSE  -> -amount on the account
// TRANSFER -> -(amount+fee) on the source, +amount on the destination
func SignedEffect(txn domain.Transaction, accountID string) (decimal.Decimal, error) {
	switch d := txn.Details.(type) {
	case domain.IncomeDetails:
		if accountID == txn.AccountID {
			return txn.Amount, nil
		}
	case domain.ExpenseDetails:
		if accountID == txn.AccountID {
			return txn.Amount.Neg(), nil
		}
	case domain.TransferDetails:
		if d.ToAccountID == txn.AccountID {
			return decimal.Zero, apperrors.ErrSelfTransfer
		}
		if accountID == txn.AccountID {
			return txn.Amount.Add(d.Fee).Neg(), nil
		}
		if accountID == d.ToAccountID {
			return txn.Amount, nil
		}
	default:
		return decimal.Zero, fmt.Errorf("%w for transaction ID %s", apperrors.ErrInvalidTransactionKind, txn.TransactionID)
	}
	return decimal.Zero, nil
}

// ApplyTransaction returns a new account slice with the transaction's effect
// applied. The input slice and its elements are left untouched; callers adopt
// the returned slice as the new state. Nothing is applied when an error is
// returned.
func ApplyTransaction(accounts []domain.Account, txn domain.Transaction) ([]domain.Account, error) {
	if err := checkApplicable(accounts, txn); err != nil {
		return nil, err
	}

	updated := make([]domain.Account, len(accounts))
	for i, acc := range accounts {
		effect, err := SignedEffect(txn, acc.AccountID)
		if err != nil {
			return nil, err
		}
		if !effect.IsZero() {
			acc.Balance = acc.Balance.Add(effect)
		}
		updated[i] = acc
	}
	return updated, nil
}

// checkApplicable rejects transactions the engine cannot apply exactly once:
// unknown kinds, self transfers, negative figures and dangling account references.
func checkApplicable(accounts []domain.Account, txn domain.Transaction) error {
	referenced := []string{txn.AccountID}

	switch d := txn.Details.(type) {
	case domain.IncomeDetails, domain.ExpenseDetails:
	case domain.TransferDetails:
		if d.ToAccountID == txn.AccountID {
			return apperrors.ErrSelfTransfer
		}
		if d.Fee.IsNegative() {
			return fmt.Errorf("%w: fee %s is negative", apperrors.ErrInvalidAmount, d.Fee)
		}
		referenced = append(referenced, d.ToAccountID)
	default:
		return fmt.Errorf("%w for transaction ID %s", apperrors.ErrInvalidTransactionKind, txn.TransactionID)
	}

	if txn.Amount.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", apperrors.ErrInvalidAmount, txn.Amount)
	}

	for _, id := range referenced {
		if !containsAccount(accounts, id) {
			return fmt.Errorf("%w: account ID %s", apperrors.ErrUnknownAccount, id)
		}
	}
	return nil
}

func containsAccount(accounts []domain.Account, accountID string) bool {
	for _, acc := range accounts {
		if acc.AccountID == accountID {
			return true
		}
	}
	return false
}

// ReplayBalance recomputes an account's balance from its initial balance and
// the given transaction history.
func ReplayBalance(account domain.Account, transactions []domain.Transaction) (decimal.Decimal, error) {
	balance := account.InitialBalance
	for _, txn := range transactions {
		effect, err := SignedEffect(txn, account.AccountID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("error replaying transaction %s: %w", txn.TransactionID, err)
		}
		balance = balance.Add(effect)
	}
	return balance, nil
}

// ReconcileBalances replays every account and reports stored against replayed balances.
func ReconcileBalances(ledger domain.Ledger) ([]domain.BalanceCheck, error) {
	checks := make([]domain.BalanceCheck, 0, len(ledger.Accounts))
	for _, acc := range ledger.Accounts {
		replayed, err := ReplayBalance(acc, ledger.Transactions)
		if err != nil {
			return nil, err
		}
		checks = append(checks, domain.BalanceCheck{
			AccountID: acc.AccountID,
			Name:      acc.Name,
			Balance:   acc.Balance,
			Replayed:  replayed,
		})
	}
	return checks, nil
}
