package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Every figure is derived from the current state on each call.
type ReportingService interface {
	// Dashboard returns totals, the expense breakdown, the trend series and
	// the most recent transactions.
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)

	// ExpenseByCategory returns the expense breakdown alone.
	ExpenseByCategory(ctx context.Context) ([]domain.CategoryAmount, error)

	// Reconciliation replays every account from its initial balance and
	// compares the result with the stored balance.
	Reconciliation(ctx context.Context) ([]domain.BalanceCheck, error)
}
