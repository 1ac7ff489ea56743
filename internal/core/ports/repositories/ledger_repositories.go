package repositories

import (
	"context"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// LedgerRepository persists balance mutations and their ledger rows as a
// single atomic unit of work. Both writes commit together or not at all,
// so material.quantity always equals sum(ENTRY) - sum(ISSUE).
type LedgerRepository interface {
	// RecordEntry adds quantity to the material identified by seed.MaterialCode,
	// creating it from seed when absent, and appends one ENTRY transaction.
	// When overwriteLocation is true an existing material's rack/bin are
	// replaced with seed's location (last write wins).
	RecordEntry(ctx context.Context, seed domain.Material, quantity int64, enteredBy string, overwriteLocation bool) (*domain.Material, *domain.StockTransaction, error)

	// RecordIssue deducts quantity from the material with that code and
	// appends one ISSUE transaction. The material row is locked for the
	// duration of the check and deduction; a shortfall yields
	// apperrors.ErrInsufficientStock and no state change.
	RecordIssue(ctx context.Context, materialCode string, quantity int64, issuedBy string) (*domain.Material, *domain.StockTransaction, error)
}

// LedgerRepositoryWithTx extends LedgerRepository with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepository
	TransactionManager
}
