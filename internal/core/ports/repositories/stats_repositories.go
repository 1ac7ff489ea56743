package repositories

import (
	"context"
	"time"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
)

// StatsRepository computes dashboard aggregates from the material store and
// the transaction log. Read-only.
type StatsRepository interface {
	// GetDashboardStats returns the material count plus the summed ENTRY and
	// ISSUE quantities for transactions with dayStart <= timestamp < dayEnd.
	// Sums default to zero when no rows match.
	GetDashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (*domain.DashboardStats, error)
}
