package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stitchworks/trim_inventory_app/internal/apperrors"
	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
)

// PgxLedgerRepository performs the balance mutation and the ledger append as
// one database transaction. The material row is locked for the duration, so
// concurrent entries and issues against the same code serialize instead of
// racing the read-check-write sequence.
type PgxLedgerRepository struct {
	BaseRepository
	materialRepo portsrepo.MaterialRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// newPgxLedgerRepository creates a new repository for atomic ledger operations.
func newPgxLedgerRepository(pool *pgxpool.Pool, materialRepo portsrepo.MaterialRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		materialRepo:   materialRepo,
		txnRepo:        txnRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// RecordEntry adds stock for seed.MaterialCode, creating the material when
// absent, and appends the ENTRY row in the same transaction.
func (r *PgxLedgerRepository) RecordEntry(ctx context.Context, seed domain.Material, quantity int64, enteredBy string, overwriteLocation bool) (*domain.Material, *domain.StockTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	now := time.Now().UTC()

	material, err := r.materialRepo.FindMaterialByCodeForUpdate(ctx, tx, seed.MaterialCode)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		// First entry for this code: the material starts with the entered
		// quantity at the entered location.
		seed.Quantity = quantity
		material, err = r.materialRepo.InsertMaterialInTx(ctx, tx, seed)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create material %s on entry: %w", seed.MaterialCode, err)
		}
	case err != nil:
		return nil, nil, err
	default:
		var rackID, binNumber *string
		if overwriteLocation {
			rackID = &seed.RackID
			binNumber = &seed.BinNumber
		}
		material, err = r.materialRepo.AddQuantityInTx(ctx, tx, material.ID, quantity, rackID, binNumber, now)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to add stock to material %s: %w", seed.MaterialCode, err)
		}
	}

	txn, err := r.txnRepo.InsertTransactionInTx(ctx, tx, domain.StockTransaction{
		MaterialCode: material.MaterialCode,
		Type:         domain.Entry,
		Quantity:     quantity,
		RackID:       seed.RackID,
		BinNumber:    seed.BinNumber,
		PersonName:   enteredBy,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log entry for material %s: %w", seed.MaterialCode, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return material, txn, nil
}

// RecordIssue deducts stock from an existing material and appends the ISSUE
// row in the same transaction.
func (r *PgxLedgerRepository) RecordIssue(ctx context.Context, materialCode string, quantity int64, issuedBy string) (*domain.Material, *domain.StockTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()

	material, err := r.materialRepo.FindMaterialByCodeForUpdate(ctx, tx, materialCode)
	if err != nil {
		return nil, nil, err
	}

	if material.Quantity < quantity {
		return nil, nil, fmt.Errorf("%w: material %s holds %d, requested %d",
			apperrors.ErrInsufficientStock, materialCode, material.Quantity, quantity)
	}

	material, err = r.materialRepo.DeductQuantityInTx(ctx, tx, material.ID, quantity, now)
	if err != nil {
		return nil, nil, err
	}

	txn, err := r.txnRepo.InsertTransactionInTx(ctx, tx, domain.StockTransaction{
		MaterialCode: material.MaterialCode,
		Type:         domain.Issue,
		Quantity:     quantity,
		PersonName:   issuedBy,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log issue for material %s: %w", materialCode, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return material, txn, nil
}
