package domain

import "time"

// Material represents a distinct trackable trim item with a unique code and
// its current on-hand balance and storage location.
type Material struct {
	ID           int64     `json:"id"`           // Surrogate key, assigned by the database
	MaterialCode string    `json:"materialCode"` // Unique business key (e.g., MAT-0001)
	Name         string    `json:"name"`         // Optional free-text description; empty when unset
	Quantity     int64     `json:"quantity"`     // Current on-hand balance; never negative
	RackID       string    `json:"rackId"`
	BinNumber    string    `json:"binNumber"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// MaterialUpdate carries the partial fields for a direct material edit.
// Nil pointers mean "leave unchanged".
type MaterialUpdate struct {
	Name      *string
	Quantity  *int64
	RackID    *string
	BinNumber *string
}

// IsEmpty reports whether the update would change nothing.
func (u MaterialUpdate) IsEmpty() bool {
	return u.Name == nil && u.Quantity == nil && u.RackID == nil && u.BinNumber == nil
}
