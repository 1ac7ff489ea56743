package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories around one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	materialRepo := newPgxMaterialRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, materialRepo, transactionRepo)
	statsRepo := newStatsRepository(dbPool)

	return portsrepo.RepositoryProvider{
		MaterialRepo:    materialRepo,
		TransactionRepo: transactionRepo,
		LedgerRepo:      ledgerRepo,
		StatsRepo:       statsRepo,
	}
}
