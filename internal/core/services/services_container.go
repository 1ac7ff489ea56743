package services

import (
	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
	"github.com/stitchworks/trim_inventory_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Material = NewMaterialService(repos.MaterialRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.MaterialRepo, repos.TransactionRepo, cfg.EntryLocationOverwrite)
	container.Stats = NewStatsService(repos.StatsRepo)

	return container
}

// Compile-time checks that the implementations satisfy their facades.
var (
	_ portssvc.MaterialSvcFacade = (*materialService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.StatsSvcFacade    = (*statsService)(nil)
)
