package memory

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
)

// NewRepositoryContainer creates a provider backed by a single in-memory ledger.
func NewRepositoryContainer(initial domain.Ledger) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo: NewLedgerRepository(initial),
	}
}
