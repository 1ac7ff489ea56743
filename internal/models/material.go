package models

import "time"

// Material mirrors the materials table row layout.
type Material struct {
	ID           int64
	MaterialCode string
	Name         string // Empty string when the column is NULL
	Quantity     int64
	RackID       string
	BinNumber    string
	LastUpdated  time.Time
}
