package services

import (
	"context"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	"github.com/stitchworks/trim_inventory_app/internal/dto"
)

// LedgerSvcFacade is the only component allowed to mutate material
// quantities. Every successful Entry or Issue appends exactly one
// transaction row atomically with the balance change.
type LedgerSvcFacade interface {
	// Entry registers incoming stock for a material code, creating the
	// material on first entry. Returns the resulting material.
	Entry(ctx context.Context, req dto.EntryRequest) (*domain.Material, error)

	// Issue disburses stock from an existing material. Fails with
	// apperrors.ErrNotFound for an unknown code and
	// apperrors.ErrInsufficientStock when the balance cannot cover the
	// requested quantity; neither failure changes any state.
	Issue(ctx context.Context, req dto.IssueRequest) (*domain.StockTransaction, error)

	// RecordTransaction dispatches a raw transaction request to Entry or
	// Issue based on its type and returns the created ledger row.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.StockTransaction, error)

	// UpdateMaterial applies a direct admin edit by surrogate id, bypassing
	// transaction logging. Used for location or manual quantity correction.
	UpdateMaterial(ctx context.Context, id int64, req dto.UpdateMaterialRequest) (*domain.Material, error)

	// ListTransactions returns recent ledger rows, newest first.
	ListTransactions(ctx context.Context) ([]domain.StockTransaction, error)
}
