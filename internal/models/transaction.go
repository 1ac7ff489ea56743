package models

import "time"

// StockTransaction mirrors the transactions table row layout.
type StockTransaction struct {
	ID           int64
	MaterialCode string
	Type         string // ENTRY or ISSUE
	Quantity     int64
	RackID       string // Empty string when the column is NULL
	BinNumber    string // Same
	PersonName   string
	Timestamp    time.Time
}
