package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) RecordEntry(ctx context.Context, seed domain.Material, quantity int64, enteredBy string, overwriteLocation bool) (*domain.Material, *domain.StockTransaction, error) {
	args := m.Called(ctx, seed, quantity, enteredBy, overwriteLocation)
	var material *domain.Material
	if args.Get(0) != nil {
		material = args.Get(0).(*domain.Material)
	}
	var txn *domain.StockTransaction
	if args.Get(1) != nil {
		txn = args.Get(1).(*domain.StockTransaction)
	}
	return material, txn, args.Error(2)
}

func (m *MockLedgerRepository) RecordIssue(ctx context.Context, materialCode string, quantity int64, issuedBy string) (*domain.Material, *domain.StockTransaction, error) {
	args := m.Called(ctx, materialCode, quantity, issuedBy)
	var material *domain.Material
	if args.Get(0) != nil {
		material = args.Get(0).(*domain.Material)
	}
	var txn *domain.StockTransaction
	if args.Get(1) != nil {
		txn = args.Get(1).(*domain.StockTransaction)
	}
	return material, txn, args.Error(2)
}

// MockMaterialRepository is a mock type for the MaterialRepositoryFacade interface
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) ListMaterials(ctx context.Context, search string) ([]domain.Material, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) FindMaterialByCode(ctx context.Context, code string) (*domain.Material, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) FindMaterialByID(ctx context.Context, id int64) (*domain.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) SaveMaterial(ctx context.Context, material domain.Material) (*domain.Material, error) {
	args := m.Called(ctx, material)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) UpdateMaterial(ctx context.Context, id int64, updates domain.MaterialUpdate) (*domain.Material, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) DeleteMaterial(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaterialRepository) FindMaterialByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string) (*domain.Material, error) {
	args := m.Called(ctx, tx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) InsertMaterialInTx(ctx context.Context, tx pgx.Tx, material domain.Material) (*domain.Material, error) {
	args := m.Called(ctx, tx, material)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) AddQuantityInTx(ctx context.Context, tx pgx.Tx, id int64, quantity int64, rackID, binNumber *string, now time.Time) (*domain.Material, error) {
	args := m.Called(ctx, tx, id, quantity, rackID, binNumber, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) DeductQuantityInTx(ctx context.Context, tx pgx.Tx, id int64, quantity int64, now time.Time) (*domain.Material, error) {
	args := m.Called(ctx, tx, id, quantity, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

// MockTransactionReader is a mock type for the TransactionReader interface
type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) ListTransactions(ctx context.Context) ([]domain.StockTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockTransaction), args.Error(1)
}

// MockStatsRepository is a mock type for the StatsRepository interface
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetDashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (*domain.DashboardStats, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
