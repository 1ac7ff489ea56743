package domain

import "time"

// TransactionType indicates whether a stock transaction added or removed stock.
type TransactionType string

const (
	Entry TransactionType = "ENTRY"
	Issue TransactionType = "ISSUE"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Entry || t == Issue
}

// StockTransaction is one immutable row of the inventory ledger.
// Rows are only ever inserted; there is no update or delete path.
type StockTransaction struct {
	ID           int64           `json:"id"`
	MaterialCode string          `json:"materialCode"` // Logical reference to Material.MaterialCode
	Type         TransactionType `json:"type"`
	Quantity     int64           `json:"quantity"`  // Positive amount moved
	RackID       string          `json:"rackId"`    // Location at time of transaction; may be empty for ISSUE
	BinNumber    string          `json:"binNumber"` // Same
	PersonName   string          `json:"personName"`
	Timestamp    time.Time       `json:"timestamp"`
}
