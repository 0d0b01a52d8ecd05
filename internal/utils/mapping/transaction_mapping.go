package mapping

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// Display labels used by the transaction list.
const (
	TransferCategoryLabel      = "轉帳"
	UncategorizedCategoryLabel = "未分類"
	NoCounterparty             = "-"
	NoDescription              = "無備註"
)

// ToDomainTransaction builds a type-consistent transaction from the flat
// request: only the payload matching the requested kind is populated.
func ToDomainTransaction(req dto.CreateTransactionRequest, transactionID string, today civil.Date, now time.Time, createdBy string) (domain.Transaction, error) {
	kind, err := domain.ParseTransactionKind(req.Type)
	if err != nil {
		return domain.Transaction{}, err
	}

	date := today
	if strings.TrimSpace(req.Date) != "" {
		if date, err = parseDate(req.Date); err != nil {
			return domain.Transaction{}, err
		}
	}

	if req.Amount == nil {
		return domain.Transaction{}, fmt.Errorf("%w: amount is required", apperrors.ErrInvalidAmount)
	}

	frequency, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		return domain.Transaction{}, err
	}

	var endDate *civil.Date
	if frequency.IsRecurring() && strings.TrimSpace(req.EndDate) != "" {
		d, err := parseDate(req.EndDate)
		if err != nil {
			return domain.Transaction{}, err
		}
		endDate = &d
	}

	details, err := toDetails(kind, req)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := domain.Transaction{
		TransactionID: transactionID,
		Date:          date,
		Amount:        *req.Amount,
		AccountID:     req.AccountID,
		Frequency:     frequency,
		EndDate:       endDate,
		Note:          req.Note,
		Details:       details,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: createdBy,
		},
	}
	if err := txn.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}

func toDetails(kind domain.TransactionKind, req dto.CreateTransactionRequest) (domain.TransactionDetails, error) {
	switch kind {
	case domain.IncomeKind:
		category, err := domain.ParseIncomeCategory(req.Category)
		if err != nil {
			return nil, err
		}
		return domain.IncomeDetails{Category: category, Company: strings.TrimSpace(req.Company)}, nil
	case domain.ExpenseKind:
		category, err := domain.ParseExpenseCategory(req.Category)
		if err != nil {
			return nil, err
		}
		return domain.ExpenseDetails{Category: category, Merchant: strings.TrimSpace(req.Merchant)}, nil
	case domain.TransferKind:
		fee := decimal.Zero
		if req.Fee != nil {
			fee = *req.Fee
		}
		return domain.TransferDetails{ToAccountID: req.ToAccountID, Fee: fee}, nil
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTransactionKind, kind)
}

func parseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return d, nil
}

// CategoryLabel is the category column of the transaction list.
func CategoryLabel(txn domain.Transaction) string {
	if txn.Kind() == domain.TransferKind {
		return TransferCategoryLabel
	}
	if c := txn.Category(); c != "" {
		return c
	}
	return UncategorizedCategoryLabel
}

// Counterparty is the company or merchant column of the transaction list.
func Counterparty(txn domain.Transaction) string {
	if c := txn.Counterparty(); c != "" {
		return c
	}
	return NoCounterparty
}

// Description is the summary line of the recent transactions table.
func Description(txn domain.Transaction) string {
	if note := strings.TrimSpace(txn.Note); note != "" {
		return note
	}
	if c := txn.Counterparty(); c != "" {
		return c
	}
	return NoDescription
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn domain.Transaction) dto.TransactionResponse {
	res := dto.TransactionResponse{
		TransactionID:  txn.TransactionID,
		Type:           string(txn.Kind()),
		Date:           txn.Date.String(),
		Amount:         txn.Amount,
		AccountID:      txn.AccountID,
		Category:       txn.Category(),
		CategoryLabel:  CategoryLabel(txn),
		Counterparty:   Counterparty(txn),
		Description:    Description(txn),
		Frequency:      string(txn.Frequency),
		FrequencyLabel: txn.Frequency.Label(),
		Note:           txn.Note,
		CreatedAt:      txn.CreatedAt,
		CreatedBy:      txn.CreatedBy,
	}
	if d, ok := txn.Transfer(); ok {
		fee := d.Fee
		res.ToAccountID = d.ToAccountID
		res.Fee = &fee
	}
	if txn.EndDate != nil {
		res.EndDate = txn.EndDate.String()
	}
	return res
}

// ToTransactionResponses converts a slice of domain.Transaction, keeping the order.
func ToTransactionResponses(transactions []domain.Transaction) []dto.TransactionResponse {
	res := make([]dto.TransactionResponse, len(transactions))
	for i, txn := range transactions {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}
