package services

import (
	"context"
	"time"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
)

// statsService computes the dashboard aggregates.
type statsService struct {
	statsRepo portsrepo.StatsRepository

	// now is swappable so tests can pin the day window.
	now func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(statsRepo portsrepo.StatsRepository) portssvc.StatsSvcFacade {
	return &statsService{statsRepo: statsRepo, now: time.Now}
}

// Ensure statsService implements the portssvc.StatsSvcFacade interface
var _ portssvc.StatsSvcFacade = (*statsService)(nil)

// GetDashboardStats returns the material count plus today's entered and
// issued quantity sums. "Today" is the current calendar day in the server's
// local timezone: [midnight, next midnight).
func (s *statsService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	return s.statsRepo.GetDashboardStats(ctx, dayStart, dayEnd)
}
