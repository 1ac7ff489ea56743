package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stitchworks/trim_inventory_app/internal/apperrors"
	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
	"github.com/stitchworks/trim_inventory_app/internal/core/services"
	"github.com/stitchworks/trim_inventory_app/internal/dto"
)

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockMaterialRepo *MockMaterialRepository
	mockTxnReader    *MockTransactionReader
	service          portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockMaterialRepo = new(MockMaterialRepository)
	suite.mockTxnReader = new(MockTransactionReader)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockMaterialRepo, suite.mockTxnReader, true)
}

// newServiceWithoutOverwrite rebuilds the service with location overwrite off.
func (suite *LedgerServiceTestSuite) newServiceWithoutOverwrite() portssvc.LedgerSvcFacade {
	return services.NewLedgerService(suite.mockLedgerRepo, suite.mockMaterialRepo, suite.mockTxnReader, false)
}

// --- Entry ---

func (suite *LedgerServiceTestSuite) TestEntry_Success() {
	ctx := context.Background()
	req := dto.EntryRequest{
		MaterialCode: "MAT-0001",
		Name:         "Blue Zipper",
		Quantity:     25,
		RackID:       "R1",
		BinNumber:    "B4",
		EnteredBy:    "Asha",
	}

	expectedMaterial := &domain.Material{
		ID:           1,
		MaterialCode: "MAT-0001",
		Name:         "Blue Zipper",
		Quantity:     25,
		RackID:       "R1",
		BinNumber:    "B4",
		LastUpdated:  time.Now(),
	}
	expectedTxn := &domain.StockTransaction{
		ID:           1,
		MaterialCode: "MAT-0001",
		Type:         domain.Entry,
		Quantity:     25,
		RackID:       "R1",
		BinNumber:    "B4",
		PersonName:   "Asha",
		Timestamp:    time.Now(),
	}

	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.MatchedBy(func(seed domain.Material) bool {
		return seed.MaterialCode == "MAT-0001" &&
			seed.Name == "Blue Zipper" &&
			seed.RackID == "R1" &&
			seed.BinNumber == "B4"
	}), int64(25), "Asha", true).Return(expectedMaterial, expectedTxn, nil).Once()

	material, err := suite.service.Entry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(material)
	suite.Equal(int64(25), material.Quantity)
	suite.Equal("MAT-0001", material.MaterialCode)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestEntry_DefaultsEnteredBy() {
	ctx := context.Background()
	req := dto.EntryRequest{
		MaterialCode: "MAT-0002",
		Quantity:     10,
		RackID:       "R2",
		BinNumber:    "B1",
		EnteredBy:    "   ",
	}

	expectedMaterial := &domain.Material{ID: 2, MaterialCode: "MAT-0002", Quantity: 10, RackID: "R2", BinNumber: "B1"}
	expectedTxn := &domain.StockTransaction{ID: 2, MaterialCode: "MAT-0002", Type: domain.Entry, Quantity: 10, PersonName: services.DefaultEnteredBy}

	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.AnythingOfType("domain.Material"), int64(10), services.DefaultEnteredBy, true).
		Return(expectedMaterial, expectedTxn, nil).Once()

	material, err := suite.service.Entry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(material)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestEntry_LocationOverwriteDisabled() {
	ctx := context.Background()
	svc := suite.newServiceWithoutOverwrite()
	req := dto.EntryRequest{
		MaterialCode: "MAT-0001",
		Quantity:     5,
		RackID:       "R9",
		BinNumber:    "B9",
	}

	expectedMaterial := &domain.Material{ID: 1, MaterialCode: "MAT-0001", Quantity: 30, RackID: "R1", BinNumber: "B4"}
	expectedTxn := &domain.StockTransaction{ID: 3, MaterialCode: "MAT-0001", Type: domain.Entry, Quantity: 5}

	// overwriteLocation must propagate as false
	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.AnythingOfType("domain.Material"), int64(5), services.DefaultEnteredBy, false).
		Return(expectedMaterial, expectedTxn, nil).Once()

	material, err := svc.Entry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("R1", material.RackID)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestEntry_RejectsNonPositiveQuantity() {
	ctx := context.Background()
	req := dto.EntryRequest{
		MaterialCode: "MAT-0001",
		Quantity:     0,
		RackID:       "R1",
		BinNumber:    "B4",
	}

	material, err := suite.service.Entry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestEntry_RejectsMissingLocation() {
	ctx := context.Background()
	req := dto.EntryRequest{
		MaterialCode: "MAT-0001",
		Quantity:     5,
		RackID:       "",
		BinNumber:    "B4",
	}

	material, err := suite.service.Entry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestEntry_RepoError() {
	ctx := context.Background()
	req := dto.EntryRequest{
		MaterialCode: "MAT-0001",
		Quantity:     5,
		RackID:       "R1",
		BinNumber:    "B4",
	}
	expectedErr := assert.AnError

	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.AnythingOfType("domain.Material"), int64(5), services.DefaultEnteredBy, true).
		Return(nil, nil, expectedErr).Once()

	material, err := suite.service.Entry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, expectedErr)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

// --- Issue ---

func (suite *LedgerServiceTestSuite) TestIssue_Success() {
	ctx := context.Background()
	req := dto.IssueRequest{
		MaterialCode: "MAT-0001",
		Quantity:     10,
		IssuedBy:     "Ravi",
	}

	material := &domain.Material{ID: 1, MaterialCode: "MAT-0001", Quantity: 15}
	expectedTxn := &domain.StockTransaction{
		ID:           4,
		MaterialCode: "MAT-0001",
		Type:         domain.Issue,
		Quantity:     10,
		PersonName:   "Ravi",
		Timestamp:    time.Now(),
	}

	suite.mockLedgerRepo.On("RecordIssue", ctx, "MAT-0001", int64(10), "Ravi").
		Return(material, expectedTxn, nil).Once()

	txn, err := suite.service.Issue(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Issue, txn.Type)
	suite.Equal(int64(10), txn.Quantity)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestIssue_DefaultsIssuedBy() {
	ctx := context.Background()
	req := dto.IssueRequest{
		MaterialCode: "MAT-0001",
		Quantity:     3,
	}

	material := &domain.Material{ID: 1, MaterialCode: "MAT-0001", Quantity: 12}
	expectedTxn := &domain.StockTransaction{ID: 5, MaterialCode: "MAT-0001", Type: domain.Issue, Quantity: 3, PersonName: services.DefaultIssuedBy}

	suite.mockLedgerRepo.On("RecordIssue", ctx, "MAT-0001", int64(3), services.DefaultIssuedBy).
		Return(material, expectedTxn, nil).Once()

	txn, err := suite.service.Issue(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(services.DefaultIssuedBy, txn.PersonName)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestIssue_InsufficientStock() {
	ctx := context.Background()
	req := dto.IssueRequest{
		MaterialCode: "MAT-0001",
		Quantity:     100,
		IssuedBy:     "Ravi",
	}
	shortfallErr := fmt.Errorf("%w: material MAT-0001 holds 15, requested 100", apperrors.ErrInsufficientStock)

	suite.mockLedgerRepo.On("RecordIssue", ctx, "MAT-0001", int64(100), "Ravi").
		Return(nil, nil, shortfallErr).Once()

	txn, err := suite.service.Issue(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestIssue_MaterialNotFound() {
	ctx := context.Background()
	req := dto.IssueRequest{
		MaterialCode: "MAT-MISSING",
		Quantity:     1,
		IssuedBy:     "Ravi",
	}

	suite.mockLedgerRepo.On("RecordIssue", ctx, "MAT-MISSING", int64(1), "Ravi").
		Return(nil, nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.Issue(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestIssue_RejectsNonPositiveQuantity() {
	ctx := context.Background()
	req := dto.IssueRequest{
		MaterialCode: "MAT-0001",
		Quantity:     -5,
	}

	txn, err := suite.service.Issue(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- RecordTransaction ---

func (suite *LedgerServiceTestSuite) TestRecordTransaction_IssueDispatch() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		MaterialCode: "MAT-0001",
		Type:         domain.Issue,
		Quantity:     7,
		PersonName:   "Meena",
	}

	material := &domain.Material{ID: 1, MaterialCode: "MAT-0001", Quantity: 8}
	expectedTxn := &domain.StockTransaction{ID: 6, MaterialCode: "MAT-0001", Type: domain.Issue, Quantity: 7, PersonName: "Meena"}

	suite.mockLedgerRepo.On("RecordIssue", ctx, "MAT-0001", int64(7), "Meena").
		Return(material, expectedTxn, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(expectedTxn, txn)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_EntryDispatchWithLocation() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		MaterialCode: "MAT-0003",
		Type:         domain.Entry,
		Quantity:     12,
		RackID:       "R5",
		BinNumber:    "B2",
		PersonName:   "Asha",
	}

	material := &domain.Material{ID: 3, MaterialCode: "MAT-0003", Quantity: 12, RackID: "R5", BinNumber: "B2"}
	expectedTxn := &domain.StockTransaction{ID: 7, MaterialCode: "MAT-0003", Type: domain.Entry, Quantity: 12, PersonName: "Asha"}

	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.MatchedBy(func(seed domain.Material) bool {
		return seed.MaterialCode == "MAT-0003" && seed.RackID == "R5" && seed.BinNumber == "B2"
	}), int64(12), "Asha", true).Return(material, expectedTxn, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(expectedTxn, txn)

	// No lookup needed when the request carries its own location
	suite.mockMaterialRepo.AssertNotCalled(suite.T(), "FindMaterialByCode", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_EntryFallsBackToStoredLocation() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		MaterialCode: "MAT-0001",
		Type:         domain.Entry,
		Quantity:     4,
		PersonName:   "Asha",
	}

	existing := &domain.Material{ID: 1, MaterialCode: "MAT-0001", Quantity: 20, RackID: "R1", BinNumber: "B4"}
	updated := &domain.Material{ID: 1, MaterialCode: "MAT-0001", Quantity: 24, RackID: "R1", BinNumber: "B4"}
	expectedTxn := &domain.StockTransaction{ID: 8, MaterialCode: "MAT-0001", Type: domain.Entry, Quantity: 4, RackID: "R1", BinNumber: "B4"}

	suite.mockMaterialRepo.On("FindMaterialByCode", ctx, "MAT-0001").Return(existing, nil).Once()
	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.MatchedBy(func(seed domain.Material) bool {
		return seed.RackID == "R1" && seed.BinNumber == "B4"
	}), int64(4), "Asha", true).Return(updated, expectedTxn, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(expectedTxn, txn)

	suite.mockMaterialRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_EntryNewMaterialWithoutLocation() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		MaterialCode: "MAT-NEW",
		Type:         domain.Entry,
		Quantity:     4,
	}

	suite.mockMaterialRepo.On("FindMaterialByCode", ctx, "MAT-NEW").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockMaterialRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_RejectsUnknownType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		MaterialCode: "MAT-0001",
		Type:         "TRANSFER",
		Quantity:     1,
	}

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateMaterial ---

func (suite *LedgerServiceTestSuite) TestUpdateMaterial_Success() {
	ctx := context.Background()
	newName := "Red Button"
	newQuantity := int64(40)
	req := dto.UpdateMaterialRequest{Name: &newName, Quantity: &newQuantity}

	updated := &domain.Material{ID: 1, MaterialCode: "MAT-0001", Name: "Red Button", Quantity: 40}

	suite.mockMaterialRepo.On("UpdateMaterial", ctx, int64(1), mock.MatchedBy(func(u domain.MaterialUpdate) bool {
		return u.Name != nil && *u.Name == "Red Button" && u.Quantity != nil && *u.Quantity == 40
	})).Return(updated, nil).Once()

	material, err := suite.service.UpdateMaterial(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(updated, material)

	suite.mockMaterialRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateMaterial_EmptyRequest() {
	ctx := context.Background()
	req := dto.UpdateMaterialRequest{}

	material, err := suite.service.UpdateMaterial(ctx, 1, req)

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockMaterialRepo.AssertNotCalled(suite.T(), "UpdateMaterial", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateMaterial_NegativeQuantity() {
	ctx := context.Background()
	bad := int64(-1)
	req := dto.UpdateMaterialRequest{Quantity: &bad}

	material, err := suite.service.UpdateMaterial(ctx, 1, req)

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockMaterialRepo.AssertNotCalled(suite.T(), "UpdateMaterial", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateMaterial_NotFound() {
	ctx := context.Background()
	newName := "Ghost"
	req := dto.UpdateMaterialRequest{Name: &newName}

	suite.mockMaterialRepo.On("UpdateMaterial", ctx, int64(99), mock.AnythingOfType("domain.MaterialUpdate")).
		Return(nil, apperrors.ErrNotFound).Once()

	material, err := suite.service.UpdateMaterial(ctx, 99, req)

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockMaterialRepo.AssertExpectations(suite.T())
}

// --- ListTransactions ---

func (suite *LedgerServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	expected := []domain.StockTransaction{
		{ID: 2, MaterialCode: "MAT-0001", Type: domain.Issue, Quantity: 5},
		{ID: 1, MaterialCode: "MAT-0001", Type: domain.Entry, Quantity: 25},
	}

	suite.mockTxnReader.On("ListTransactions", ctx).Return(expected, nil).Once()

	txns, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)

	suite.mockTxnReader.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockTxnReader.On("ListTransactions", ctx).Return(nil, expectedErr).Once()

	txns, err := suite.service.ListTransactions(ctx)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.ErrorIs(err, expectedErr)

	suite.mockTxnReader.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
