package domain

// Ledger is the whole session state: every account and every recorded
// transaction, each in insertion order. One store owns it; all changes are
// made through the store's update callback.
type Ledger struct {
	Accounts     []Account
	Transactions []Transaction
}

// Clone returns a copy whose slices can be modified without affecting l.
func (l Ledger) Clone() Ledger {
	return Ledger{
		Accounts:     append([]Account(nil), l.Accounts...),
		Transactions: append([]Transaction(nil), l.Transactions...),
	}
}

// FindAccount looks an account up by ID.
func (l Ledger) FindAccount(accountID string) (Account, bool) {
	for _, a := range l.Accounts {
		if a.AccountID == accountID {
			return a, true
		}
	}
	return Account{}, false
}

// FindTransaction looks a transaction up by ID.
func (l Ledger) FindTransaction(transactionID string) (Transaction, bool) {
	for _, t := range l.Transactions {
		if t.TransactionID == transactionID {
			return t, true
		}
	}
	return Transaction{}, false
}
