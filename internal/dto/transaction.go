package dto

import (
	"time"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// CreateTransactionRequest defines the body of POST /api/transactions.
// ISSUE requests deduct stock; ENTRY requests are routed through the same
// entry path as POST /api/materials so the balance invariant holds either way.
type CreateTransactionRequest struct {
	MaterialCode string                 `json:"materialCode" binding:"required"`
	Type         domain.TransactionType `json:"type" binding:"required,oneof=ENTRY ISSUE"`
	Quantity     int64                  `json:"quantity" binding:"required,gt=0"`
	RackID       string                 `json:"rackId"`     // Optional; ISSUE rows usually omit it
	BinNumber    string                 `json:"binNumber"`  // Optional
	PersonName   string                 `json:"personName"` // Optional; defaulted per type
}

// IssueRequest is the internal shape of an issue operation.
type IssueRequest struct {
	MaterialCode string `json:"materialCode" binding:"required"`
	Quantity     int64  `json:"quantity" binding:"required,gt=0"`
	IssuedBy     string `json:"issuedBy"` // Optional; defaults to Unknown
}

// TransactionResponse defines the data returned for a ledger row.
type TransactionResponse struct {
	ID           int64                  `json:"id"`
	MaterialCode string                 `json:"materialCode"`
	Type         domain.TransactionType `json:"type"`
	Quantity     int64                  `json:"quantity"`
	RackID       string                 `json:"rackId"`
	BinNumber    string                 `json:"binNumber"`
	PersonName   string                 `json:"personName"`
	Timestamp    time.Time              `json:"timestamp"`
}

// ToTransactionResponse converts a domain.StockTransaction to its response DTO.
func ToTransactionResponse(t *domain.StockTransaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		MaterialCode: t.MaterialCode,
		Type:         t.Type,
		Quantity:     t.Quantity,
		RackID:       t.RackID,
		BinNumber:    t.BinNumber,
		PersonName:   t.PersonName,
		Timestamp:    t.Timestamp,
	}
}

// ToTransactionListResponse converts a slice of ledger rows to response DTOs.
func ToTransactionListResponse(txns []domain.StockTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
