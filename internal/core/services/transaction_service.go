package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/utils/accounting"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/SscSPs/personal_finance_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultTransactionPageSize = 20

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for default dates and audit timestamps.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.clock = clock
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.LedgerRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		ledgerRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, createdBy string) (*domain.Transaction, []domain.Account, error) {
	now := s.Now()
	txn, err := mapping.ToDomainTransaction(req, uuid.NewString(), s.Today(), now, createdBy)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected transaction",
			slog.String("type", req.Type),
			slog.String("account_id", req.AccountID))
		return nil, nil, err
	}

	var accounts []domain.Account
	err = s.ledgerRepo.Update(ctx, func(ledger *domain.Ledger) error {
		updated, err := accounting.ApplyTransaction(ledger.Accounts, txn)
		if err != nil {
			return err
		}
		ledger.Accounts = updated
		ledger.Transactions = append(ledger.Transactions, txn)
		accounts = append([]domain.Account{}, updated...)
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			s.LogWarn(ctx, err, "Transaction could not be applied",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("type", string(txn.Kind())))
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to record transaction",
			slog.String("transaction_id", txn.TransactionID))
		return nil, nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Kind())),
		slog.String("amount", txn.Amount.String()))
	return &txn, accounts, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := s.ledgerRepo.View(ctx, func(ledger domain.Ledger) error {
		found, ok := ledger.FindTransaction(transactionID)
		if !ok {
			return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		txn = found
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return &txn, nil
}

// ListTransactions pages through the newest-first ordering. A token names the
// last transaction of the previous page; the next page starts right after it.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var sorted []domain.Transaction
	err := s.ledgerRepo.View(ctx, func(ledger domain.Ledger) error {
		sorted = accounting.SortedByDateDescending(ledger.Transactions)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	start := 0
	if params.NextToken != nil && *params.NextToken != "" {
		start, err = resumeIndex(sorted, *params.NextToken)
		if err != nil {
			s.LogWarn(ctx, err, "Invalid nextToken")
			return nil, nil, err
		}
	}

	end := min(start+limit, len(sorted))
	page := sorted[start:end]

	var nextToken *string
	if end < len(sorted) {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.Date, last.TransactionID)
		nextToken = &token
	}

	s.LogDebug(ctx, "Transactions listed successfully",
		slog.Int("count", len(page)),
		slog.Bool("has_more", nextToken != nil))
	return page, nextToken, nil
}

func resumeIndex(sorted []domain.Transaction, token string) (int, error) {
	date, transactionID, err := pagination.DecodeToken(token)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
	}
	for i, txn := range sorted {
		if txn.TransactionID == transactionID && txn.Date == date {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: nextToken does not match any transaction", apperrors.ErrValidation)
}
