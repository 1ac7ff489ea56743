package dto

import (
	"time"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// EntryRequest defines the body of POST /api/materials: register incoming
// stock for a material code, creating the material on first entry.
type EntryRequest struct {
	MaterialCode string `json:"materialCode" binding:"required"`
	Name         string `json:"name"` // Optional descriptive name, used on first entry
	Quantity     int64  `json:"quantity" binding:"required,gt=0"`
	RackID       string `json:"rackId" binding:"required"`
	BinNumber    string `json:"binNumber" binding:"required"`
	EnteredBy    string `json:"enteredBy"` // Optional; defaults to SYSTEM
}

// UpdateMaterialRequest defines the partial fields allowed for a direct
// material edit. Pointers distinguish "not provided" from zero values.
type UpdateMaterialRequest struct {
	Name      *string `json:"name"`
	Quantity  *int64  `json:"quantity" binding:"omitempty,gte=0"`
	RackID    *string `json:"rackId"`
	BinNumber *string `json:"binNumber"`
}

// ToMaterialUpdate converts the request into the domain partial-update type.
func (r UpdateMaterialRequest) ToMaterialUpdate() domain.MaterialUpdate {
	return domain.MaterialUpdate{
		Name:      r.Name,
		Quantity:  r.Quantity,
		RackID:    r.RackID,
		BinNumber: r.BinNumber,
	}
}

// ListMaterialsParams defines query parameters for listing materials.
type ListMaterialsParams struct {
	Search string `form:"search"`
}

// MaterialResponse defines the data returned for a material.
type MaterialResponse struct {
	ID           int64     `json:"id"`
	MaterialCode string    `json:"materialCode"`
	Name         string    `json:"name"`
	Quantity     int64     `json:"quantity"`
	RackID       string    `json:"rackId"`
	BinNumber    string    `json:"binNumber"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// ToMaterialResponse converts a domain.Material to its response DTO.
func ToMaterialResponse(m *domain.Material) MaterialResponse {
	return MaterialResponse{
		ID:           m.ID,
		MaterialCode: m.MaterialCode,
		Name:         m.Name,
		Quantity:     m.Quantity,
		RackID:       m.RackID,
		BinNumber:    m.BinNumber,
		LastUpdated:  m.LastUpdated,
	}
}

// ToMaterialListResponse converts a slice of materials to response DTOs.
func ToMaterialListResponse(materials []domain.Material) []MaterialResponse {
	res := make([]MaterialResponse, len(materials))
	for i := range materials {
		res[i] = ToMaterialResponse(&materials[i])
	}
	return res
}
