package services

// ServiceContainer holds instances of all the application services.
// Handlers receive their dependencies from it.
type ServiceContainer struct {
	Ledger LedgerSvcFacade
}
