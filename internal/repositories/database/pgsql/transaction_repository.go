package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
	"github.com/stitchworks/trim_inventory_app/internal/models"
)

// RecentTransactionLimit caps the number of rows returned by
// ListTransactions to bound response size.
const RecentTransactionLimit = 50

const transactionColumns = "id, material_code, type, quantity, rack_id, bin_number, person_name, timestamp"

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Helper to convert models.StockTransaction from DB to domain.StockTransaction
func toDomainTransaction(m models.StockTransaction) domain.StockTransaction {
	return domain.StockTransaction{
		ID:           m.ID,
		MaterialCode: m.MaterialCode,
		Type:         domain.TransactionType(m.Type),
		Quantity:     m.Quantity,
		RackID:       m.RackID,
		BinNumber:    m.BinNumber,
		PersonName:   m.PersonName,
		Timestamp:    m.Timestamp,
	}
}

// scanTransaction reads one transactions row in transactionColumns order.
func scanTransaction(row pgx.Row) (*domain.StockTransaction, error) {
	var modelTxn models.StockTransaction
	var rackID, binNumber sql.NullString

	err := row.Scan(
		&modelTxn.ID,
		&modelTxn.MaterialCode,
		&modelTxn.Type,
		&modelTxn.Quantity,
		&rackID,
		&binNumber,
		&modelTxn.PersonName,
		&modelTxn.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	if rackID.Valid {
		modelTxn.RackID = rackID.String
	}
	if binNumber.Valid {
		modelTxn.BinNumber = binNumber.String
	}

	domainTxn := toDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves the most recent ledger rows, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.StockTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY timestamp DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, RecentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.StockTransaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txns, nil
}

// SaveTransaction appends a new ledger row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.StockTransaction) (*domain.StockTransaction, error) {
	return insertTransaction(ctx, r.Pool, txn)
}

// InsertTransactionInTx appends a ledger row within an existing transaction.
func (r *PgxTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.StockTransaction) (*domain.StockTransaction, error) {
	return insertTransaction(ctx, tx, txn)
}

func insertTransaction(ctx context.Context, q querier, txn domain.StockTransaction) (*domain.StockTransaction, error) {
	if !txn.Type.IsValid() {
		return nil, fmt.Errorf("invalid transaction type %q", txn.Type)
	}

	query := `
		INSERT INTO transactions (material_code, type, quantity, rack_id, bin_number, person_name, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING ` + transactionColumns + `;
	`
	var rackID, binNumber sql.NullString
	if txn.RackID != "" {
		rackID = sql.NullString{String: txn.RackID, Valid: true}
	}
	if txn.BinNumber != "" {
		binNumber = sql.NullString{String: txn.BinNumber, Valid: true}
	}

	created, err := scanTransaction(q.QueryRow(ctx, query,
		txn.MaterialCode,
		string(txn.Type),
		txn.Quantity,
		rackID,
		binNumber,
		txn.PersonName,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("insert transaction for %s returned no row", txn.MaterialCode)
		}
		return nil, fmt.Errorf("failed to insert transaction for %s: %w", txn.MaterialCode, err)
	}
	return created, nil
}
