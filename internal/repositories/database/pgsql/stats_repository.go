package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
)

// statsRepository implements the StatsRepository interface
type statsRepository struct {
	BaseRepository
}

// newStatsRepository creates a new dashboard stats repository
func newStatsRepository(pool *pgxpool.Pool) portsrepo.StatsRepository {
	return &statsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// GetDashboardStats returns the material count and the day's summed ENTRY
// and ISSUE quantities. Sums are zero when no transactions match.
func (r *statsRepository) GetDashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	countQuery := `SELECT COUNT(*) FROM materials;`
	if err := r.Pool.QueryRow(ctx, countQuery).Scan(&stats.TotalMaterials); err != nil {
		return nil, fmt.Errorf("error counting materials: %w", err)
	}

	sumQuery := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'ENTRY' THEN quantity ELSE 0 END), 0) AS entered,
			COALESCE(SUM(CASE WHEN type = 'ISSUE' THEN quantity ELSE 0 END), 0) AS issued
		FROM transactions
		WHERE timestamp >= $1 AND timestamp < $2;
	`
	if err := r.Pool.QueryRow(ctx, sumQuery, dayStart, dayEnd).Scan(&stats.EnteredToday, &stats.IssuedToday); err != nil {
		return nil, fmt.Errorf("error summing daily transactions: %w", err)
	}

	return stats, nil
}
