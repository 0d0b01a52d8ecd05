package services

import (
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	auth, err := NewAuthService(cfg)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.LedgerRepo),
		Transaction: NewTransactionService(repos.LedgerRepo),
		Reporting:   NewReportingService(repos.LedgerRepo),
		Auth:        auth,
	}, nil
}
