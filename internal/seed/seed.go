// Package seed builds the starting ledger from YAML fixtures.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/utils/accounting"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/ghodss/yaml"
)

// CreatedBy is the audit subject stamped on seeded records.
const CreatedBy = "seed"

//go:embed default_seed.yaml
var defaultSeed []byte

// AccountFixture is an account request with a fixed ID.
type AccountFixture struct {
	ID string `json:"id"`
	dto.CreateAccountRequest
}

// TransactionFixture is a transaction request with a fixed ID.
type TransactionFixture struct {
	ID string `json:"id"`
	dto.CreateTransactionRequest
}

// File is the document layout of a seed file.
type File struct {
	Accounts     []AccountFixture     `json:"accounts"`
	Transactions []TransactionFixture `json:"transactions"`
}

// Parse decodes a YAML seed document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return f, nil
}

// Load reads the seed file at path, or the embedded demo data when path is empty.
func Load(path string) (File, error) {
	if path == "" {
		return Parse(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Build turns the fixtures into a ledger. Transactions are applied in file
// order through the balance engine, so the resulting balances satisfy the
// reconciliation invariant. Undated transactions are dated today.
func Build(f File, today civil.Date, now time.Time) (domain.Ledger, error) {
	ledger := domain.Ledger{
		Accounts:     make([]domain.Account, 0, len(f.Accounts)),
		Transactions: make([]domain.Transaction, 0, len(f.Transactions)),
	}

	seenAccounts := make(map[string]bool, len(f.Accounts))
	for i, fixture := range f.Accounts {
		if seenAccounts[fixture.ID] {
			return domain.Ledger{}, fmt.Errorf("seed account %d: id %q: %w", i, fixture.ID, apperrors.ErrDuplicate)
		}
		account, err := mapping.ToDomainAccount(fixture.CreateAccountRequest, fixture.ID, now, CreatedBy)
		if err != nil {
			return domain.Ledger{}, fmt.Errorf("seed account %d (%s): %w", i, fixture.ID, err)
		}
		seenAccounts[fixture.ID] = true
		ledger.Accounts = append(ledger.Accounts, account)
	}

	seenTransactions := make(map[string]bool, len(f.Transactions))
	for i, fixture := range f.Transactions {
		if seenTransactions[fixture.ID] {
			return domain.Ledger{}, fmt.Errorf("seed transaction %d: id %q: %w", i, fixture.ID, apperrors.ErrDuplicate)
		}
		txn, err := mapping.ToDomainTransaction(fixture.CreateTransactionRequest, fixture.ID, today, now, CreatedBy)
		if err != nil {
			return domain.Ledger{}, fmt.Errorf("seed transaction %d (%s): %w", i, fixture.ID, err)
		}
		updated, err := accounting.ApplyTransaction(ledger.Accounts, txn)
		if err != nil {
			return domain.Ledger{}, fmt.Errorf("seed transaction %d (%s): %w", i, fixture.ID, err)
		}
		seenTransactions[fixture.ID] = true
		ledger.Accounts = updated
		ledger.Transactions = append(ledger.Transactions, txn)
	}

	return ledger, nil
}

// LoadLedger loads the seed file at path (embedded demo data when empty)
// and builds it as of now.
func LoadLedger(path string, now time.Time) (domain.Ledger, error) {
	f, err := Load(path)
	if err != nil {
		return domain.Ledger{}, err
	}
	return Build(f, civil.DateOf(now), now)
}
