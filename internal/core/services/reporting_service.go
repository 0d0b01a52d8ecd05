package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	defaultLiveTrendLabel = "6月"
	defaultRecentLimit    = 5
)

// DefaultTrendBaseline returns the fixed months shown ahead of the live bucket
// on the trend chart.
func DefaultTrendBaseline() []domain.TrendPoint {
	point := func(label string, income, expense int64) domain.TrendPoint {
		return domain.TrendPoint{Label: label, Income: decimal.NewFromInt(income), Expense: decimal.NewFromInt(expense)}
	}
	return []domain.TrendPoint{
		point("1月", 45000, 20000),
		point("2月", 45000, 25000),
		point("3月", 52000, 18000),
		point("4月", 45000, 30000),
		point("5月", 48000, 22000),
	}
}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerReader
	trendBaseline  []domain.TrendPoint
	liveTrendLabel string
	recentLimit    int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithTrendBaseline replaces the fixed trend points and the label of the live bucket.
func WithTrendBaseline(baseline []domain.TrendPoint, liveLabel string) ReportingServiceOption {
	return func(s *reportingService) {
		s.trendBaseline = append([]domain.TrendPoint(nil), baseline...)
		s.liveTrendLabel = liveLabel
	}
}

// WithRecentLimit sets how many transactions the dashboard lists.
func WithRecentLimit(limit int) ReportingServiceOption {
	return func(s *reportingService) {
		s.recentLimit = limit
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.LedgerReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		ledgerRepo:     repo,
		trendBaseline:  DefaultTrendBaseline(),
		liveTrendLabel: defaultLiveTrendLabel,
		recentLimit:    defaultRecentLimit,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	var summary domain.DashboardSummary
	err := s.ledgerRepo.View(ctx, func(ledger domain.Ledger) error {
		summary = accounting.Summarize(ledger, s.trendBaseline, s.liveTrendLabel)
		summary.Recent = accounting.MostRecentlyRecorded(ledger.Transactions, s.recentLimit)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard")
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	s.LogDebug(ctx, "Dashboard generated successfully",
		slog.String("total_assets", summary.TotalAssets.String()),
		slog.Int("category_count", len(summary.ExpenseByCategory)))
	return &summary, nil
}

func (s *reportingService) ExpenseByCategory(ctx context.Context) ([]domain.CategoryAmount, error) {
	var breakdown []domain.CategoryAmount
	err := s.ledgerRepo.View(ctx, func(ledger domain.Ledger) error {
		breakdown = accounting.ExpenseByCategory(ledger.Transactions)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build expense breakdown")
		return nil, fmt.Errorf("failed to build expense breakdown: %w", err)
	}
	return breakdown, nil
}

func (s *reportingService) Reconciliation(ctx context.Context) ([]domain.BalanceCheck, error) {
	var checks []domain.BalanceCheck
	err := s.ledgerRepo.View(ctx, func(ledger domain.Ledger) (err error) {
		checks, err = accounting.ReconcileBalances(ledger)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reconcile balances")
		return nil, fmt.Errorf("failed to reconcile balances: %w", err)
	}

	for _, c := range checks {
		if !c.Consistent() {
			s.LogError(ctx, fmt.Errorf("balance drift of %s", c.Balance.Sub(c.Replayed)), "Stored balance does not match history",
				slog.String("account_id", c.AccountID))
		}
	}
	return checks, nil
}
