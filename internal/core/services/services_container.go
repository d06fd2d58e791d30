package services

import (
	portsrepo "github.com/SscSPs/ledger_reconciler/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_reconciler/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos.LedgerStore, options...),
	}
}

// Helper to check interface implementations at compile time
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
