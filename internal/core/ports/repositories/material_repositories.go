package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// MaterialReader defines read operations for material data
type MaterialReader interface {
	// ListMaterials retrieves all materials, most recently updated first.
	// A non-empty search term filters by case-insensitive substring match
	// against material code, name and rack.
	ListMaterials(ctx context.Context, search string) ([]domain.Material, error)

	// FindMaterialByCode retrieves a material by its business code.
	// Returns apperrors.ErrNotFound when no such code exists.
	FindMaterialByCode(ctx context.Context, code string) (*domain.Material, error)

	// FindMaterialByID retrieves a material by its surrogate id.
	FindMaterialByID(ctx context.Context, id int64) (*domain.Material, error)
}

// MaterialWriter defines write operations for material data
type MaterialWriter interface {
	// SaveMaterial inserts a new material and returns it with its assigned id.
	// A duplicate material code yields apperrors.ErrDuplicate.
	SaveMaterial(ctx context.Context, material domain.Material) (*domain.Material, error)

	// UpdateMaterial applies the given partial fields to the material with
	// that id, always refreshing last_updated. Returns apperrors.ErrNotFound
	// when the id does not exist.
	UpdateMaterial(ctx context.Context, id int64, updates domain.MaterialUpdate) (*domain.Material, error)

	// DeleteMaterial removes a material. Declared for contract completeness;
	// no route exercises it.
	DeleteMaterial(ctx context.Context, id int64) error
}

// MaterialTxOps defines material operations that run inside a caller-owned
// database transaction. The ledger repository composes these so a balance
// change and its log row commit together.
type MaterialTxOps interface {
	// FindMaterialByCodeForUpdate retrieves a material by code and locks its
	// row (SELECT ... FOR UPDATE) until tx ends.
	FindMaterialByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string) (*domain.Material, error)

	// InsertMaterialInTx inserts a new material within tx.
	InsertMaterialInTx(ctx context.Context, tx pgx.Tx, material domain.Material) (*domain.Material, error)

	// AddQuantityInTx increases the material's quantity within tx. Non-nil
	// rackID/binNumber also overwrite the stored location.
	AddQuantityInTx(ctx context.Context, tx pgx.Tx, id int64, quantity int64, rackID, binNumber *string, now time.Time) (*domain.Material, error)

	// DeductQuantityInTx decreases the material's quantity within tx. The
	// update is conditional on quantity >= the requested amount; a shortfall
	// yields apperrors.ErrInsufficientStock.
	DeductQuantityInTx(ctx context.Context, tx pgx.Tx, id int64, quantity int64, now time.Time) (*domain.Material, error)
}

// MaterialRepositoryFacade combines all material repository interfaces
type MaterialRepositoryFacade interface {
	MaterialReader
	MaterialWriter
	MaterialTxOps
}
