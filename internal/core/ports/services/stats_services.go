package services

import (
	"context"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// StatsSvcFacade computes dashboard aggregates. Purely derived, no side
// effects.
type StatsSvcFacade interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
