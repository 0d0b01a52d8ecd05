package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) View(ctx context.Context, fn func(ledger domain.Ledger) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockLedgerRepository) Update(ctx context.Context, fn func(ledger *domain.Ledger) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

var fixedNow = time.Date(2023, 6, 15, 9, 30, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
