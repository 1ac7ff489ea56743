package services

import (
	"context"
	"strings"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
)

// materialService provides read access to the material store.
type materialService struct {
	materialRepo portsrepo.MaterialReader
}

// NewMaterialService creates a new MaterialService.
func NewMaterialService(materialRepo portsrepo.MaterialReader) portssvc.MaterialSvcFacade {
	return &materialService{materialRepo: materialRepo}
}

// Ensure materialService implements the portssvc.MaterialSvcFacade interface
var _ portssvc.MaterialSvcFacade = (*materialService)(nil)

// ListMaterials returns all materials, optionally filtered by a search term.
func (s *materialService) ListMaterials(ctx context.Context, search string) ([]domain.Material, error) {
	return s.materialRepo.ListMaterials(ctx, strings.TrimSpace(search))
}

// GetMaterialByCode returns the material with that code or apperrors.ErrNotFound.
func (s *materialService) GetMaterialByCode(ctx context.Context, code string) (*domain.Material, error) {
	return s.materialRepo.FindMaterialByCode(ctx, code)
}
