package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// LedgerReader defines read access to the ledger state.
type LedgerReader interface {
	// View calls fn with a consistent snapshot of the ledger. fn must not
	// retain or modify the slices it receives.
	View(ctx context.Context, fn func(ledger domain.Ledger) error) error
}

// LedgerWriter defines write access to the ledger state.
type LedgerWriter interface {
	// Update calls fn with a private copy of the ledger. The copy replaces
	// the stored state only when fn returns nil.
	Update(ctx context.Context, fn func(ledger *domain.Ledger) error) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
