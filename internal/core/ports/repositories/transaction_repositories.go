package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// TransactionReader defines read operations for the transaction log
type TransactionReader interface {
	// ListTransactions retrieves recent transactions, newest first.
	// Implementations cap the result to bound response size; see
	// pgsql.RecentTransactionLimit.
	ListTransactions(ctx context.Context) ([]domain.StockTransaction, error)
}

// TransactionWriter defines the single append operation of the log.
// The log is immutable: there is deliberately no update or delete method.
type TransactionWriter interface {
	// SaveTransaction inserts a new ledger row and returns it with its
	// assigned id and timestamp.
	SaveTransaction(ctx context.Context, txn domain.StockTransaction) (*domain.StockTransaction, error)
}

// TransactionTxOps defines log operations that run inside a caller-owned
// database transaction.
type TransactionTxOps interface {
	// InsertTransactionInTx appends a ledger row within tx.
	InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.StockTransaction) (*domain.StockTransaction, error)
}

// TransactionRepositoryFacade combines the transaction log interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionTxOps
}
