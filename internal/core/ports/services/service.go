package services

// ServiceContainer holds all the service facades for dependency injection
// into the handler layer.
type ServiceContainer struct {
	Material MaterialSvcFacade
	Ledger   LedgerSvcFacade
	Stats    StatsSvcFacade
}
