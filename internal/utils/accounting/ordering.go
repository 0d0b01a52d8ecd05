package accounting

import (
	"slices"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// SortedByDateDescending returns a copy of the transactions ordered newest
// first. Equal dates keep their input order.
func SortedByDateDescending(transactions []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	slices.SortStableFunc(sorted, func(a, b domain.Transaction) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// MostRecentlyRecorded returns up to limit transactions in reverse recording
// order, regardless of their dates.
func MostRecentlyRecorded(transactions []domain.Transaction, limit int) []domain.Transaction {
	n := min(max(limit, 0), len(transactions))
	recent := make([]domain.Transaction, 0, n)
	for i := len(transactions) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, transactions[i])
	}
	return recent
}
