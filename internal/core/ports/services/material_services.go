package services

import (
	"context"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// MaterialSvcFacade exposes read operations over the material store.
type MaterialSvcFacade interface {
	// ListMaterials returns all materials, optionally filtered by a search
	// term. An empty result is an empty slice, never an error.
	ListMaterials(ctx context.Context, search string) ([]domain.Material, error)

	// GetMaterialByCode returns the material with that code or
	// apperrors.ErrNotFound.
	GetMaterialByCode(ctx context.Context, code string) (*domain.Material, error)
}
