package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stitchworks/trim_inventory_app/internal/apperrors"
	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
	"github.com/stitchworks/trim_inventory_app/internal/dto"
	"github.com/stitchworks/trim_inventory_app/internal/middleware"
)

const (
	// DefaultEnteredBy is recorded on ENTRY rows when no actor is given.
	DefaultEnteredBy = "SYSTEM"
	// DefaultIssuedBy is recorded on ISSUE rows when no actor is given.
	DefaultIssuedBy = "Unknown"
)

// ledgerService is the only component that mutates material quantities.
// All balance changes go through the ledger repository, which commits the
// quantity update and the log row as one database transaction.
type ledgerService struct {
	ledgerRepo   portsrepo.LedgerRepository
	materialRepo portsrepo.MaterialRepositoryFacade
	txnRepo      portsrepo.TransactionReader

	// overwriteLocation controls whether a re-entry replaces the stored
	// rack/bin with the entry's location (observed last-write-wins) or the
	// first recorded location sticks.
	overwriteLocation bool
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, materialRepo portsrepo.MaterialRepositoryFacade, txnRepo portsrepo.TransactionReader, overwriteLocation bool) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:        ledgerRepo,
		materialRepo:      materialRepo,
		txnRepo:           txnRepo,
		overwriteLocation: overwriteLocation,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Entry registers incoming stock for a material code.
func (s *ledgerService) Entry(ctx context.Context, req dto.EntryRequest) (*domain.Material, error) {
	material, _, err := s.entry(ctx, req)
	return material, err
}

func (s *ledgerService) entry(ctx context.Context, req dto.EntryRequest) (*domain.Material, *domain.StockTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Validated at binding, re-checked here since this path is also reached
	// from RecordTransaction.
	if req.Quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.MaterialCode == "" {
		return nil, nil, fmt.Errorf("%w: materialCode is required", apperrors.ErrValidation)
	}
	if req.RackID == "" || req.BinNumber == "" {
		return nil, nil, fmt.Errorf("%w: rackId and binNumber are required", apperrors.ErrValidation)
	}

	enteredBy := strings.TrimSpace(req.EnteredBy)
	if enteredBy == "" {
		enteredBy = DefaultEnteredBy
	}

	seed := domain.Material{
		MaterialCode: req.MaterialCode,
		Name:         req.Name,
		RackID:       req.RackID,
		BinNumber:    req.BinNumber,
	}

	material, txn, err := s.ledgerRepo.RecordEntry(ctx, seed, req.Quantity, enteredBy, s.overwriteLocation)
	if err != nil {
		logger.Error("Failed to record entry",
			slog.String("material_code", req.MaterialCode),
			slog.Int64("quantity", req.Quantity),
			slog.String("error", err.Error()))
		return nil, nil, err
	}

	logger.Info("Stock entry recorded",
		slog.String("material_code", material.MaterialCode),
		slog.Int64("quantity", req.Quantity),
		slog.Int64("new_balance", material.Quantity))
	return material, txn, nil
}

// Issue disburses stock from an existing material.
func (s *ledgerService) Issue(ctx context.Context, req dto.IssueRequest) (*domain.StockTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.MaterialCode == "" {
		return nil, fmt.Errorf("%w: materialCode is required", apperrors.ErrValidation)
	}

	issuedBy := strings.TrimSpace(req.IssuedBy)
	if issuedBy == "" {
		issuedBy = DefaultIssuedBy
	}

	material, txn, err := s.ledgerRepo.RecordIssue(ctx, req.MaterialCode, req.Quantity, issuedBy)
	if err != nil {
		logger.Warn("Failed to record issue",
			slog.String("material_code", req.MaterialCode),
			slog.Int64("quantity", req.Quantity),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Stock issue recorded",
		slog.String("material_code", material.MaterialCode),
		slog.Int64("quantity", req.Quantity),
		slog.Int64("new_balance", material.Quantity))
	return txn, nil
}

// RecordTransaction dispatches a raw transaction request to the entry or
// issue path based on its type. ENTRY requests without a location fall back
// to the material's current rack/bin so the balance invariant holds for
// every row in the log.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.StockTransaction, error) {
	switch req.Type {
	case domain.Issue:
		return s.Issue(ctx, dto.IssueRequest{
			MaterialCode: req.MaterialCode,
			Quantity:     req.Quantity,
			IssuedBy:     req.PersonName,
		})
	case domain.Entry:
		entryReq := dto.EntryRequest{
			MaterialCode: req.MaterialCode,
			Quantity:     req.Quantity,
			RackID:       req.RackID,
			BinNumber:    req.BinNumber,
			EnteredBy:    req.PersonName,
		}
		if entryReq.RackID == "" || entryReq.BinNumber == "" {
			material, err := s.materialRepo.FindMaterialByCode(ctx, req.MaterialCode)
			if err != nil {
				return nil, fmt.Errorf("%w: rackId and binNumber are required for a new material", apperrors.ErrValidation)
			}
			if entryReq.RackID == "" {
				entryReq.RackID = material.RackID
			}
			if entryReq.BinNumber == "" {
				entryReq.BinNumber = material.BinNumber
			}
		}
		_, txn, err := s.entry(ctx, entryReq)
		return txn, err
	default:
		return nil, fmt.Errorf("%w: type must be ENTRY or ISSUE", apperrors.ErrValidation)
	}
}

// UpdateMaterial applies a direct admin edit by surrogate id. This path
// bypasses transaction logging; it exists for location fixes and manual
// quantity corrections.
func (s *ledgerService) UpdateMaterial(ctx context.Context, id int64, req dto.UpdateMaterialRequest) (*domain.Material, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	update := req.ToMaterialUpdate()
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}
	if update.Quantity != nil && *update.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
	}

	material, err := s.materialRepo.UpdateMaterial(ctx, id, update)
	if err != nil {
		return nil, err
	}

	logger.Info("Material updated directly", slog.Int64("material_id", id))
	return material, nil
}

// ListTransactions returns recent ledger rows, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.StockTransaction, error) {
	return s.txnRepo.ListTransactions(ctx)
}
