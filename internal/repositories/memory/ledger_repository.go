package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
)

// LedgerRepository keeps the whole ledger in process memory. It is the one
// place that owns the account and transaction collections; every request goes
// through View or Update, so concurrent HTTP calls see one change at a time.
type LedgerRepository struct {
	mu     sync.RWMutex
	ledger domain.Ledger
}

// NewLedgerRepository creates a repository holding the given initial state.
func NewLedgerRepository(initial domain.Ledger) *LedgerRepository {
	return &LedgerRepository{ledger: initial.Clone()}
}

// Ensure LedgerRepository implements the LedgerRepositoryFacade interface
var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

// View implements portsrepo.LedgerReader.
func (r *LedgerRepository) View(ctx context.Context, fn func(ledger domain.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(r.ledger)
}

// Update implements portsrepo.LedgerWriter.
func (r *LedgerRepository) Update(ctx context.Context, fn func(ledger *domain.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.ledger.Clone()
	if err := fn(&working); err != nil {
		return err
	}
	r.ledger = working
	return nil
}
