package repositories

// RepositoryProvider groups all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	MaterialRepo    MaterialRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	LedgerRepo      LedgerRepositoryWithTx
	StatsRepo       StatsRepository
}
