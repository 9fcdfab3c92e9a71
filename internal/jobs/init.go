package jobs

import (
	"skywatch/milmon/internal/common"
	"skywatch/milmon/internal/config"
	"skywatch/milmon/internal/db/repositories"
	"skywatch/milmon/internal/metrics"
	"skywatch/milmon/internal/providers"
	"skywatch/milmon/internal/services"
)

// InitializeJobs wires up the refresh coordinator. The caller owns its
// lifecycle (see cmd/server).
func InitializeJobs(
	cfg *config.Config,
	source providers.AircraftSource,
	inventory *services.InventoryService,
	filters *services.FilterService,
	alerts *services.AlertTracker,
	publisher *common.SnapshotPublisher,
	alertRepo *repositories.AlertRepo,
	alertStream *common.AlertStreamService,
	metricsReg *metrics.MetricsRegistry,
) *RefreshJob {
	return NewRefreshJob(
		source,
		inventory,
		filters,
		alerts,
		publisher,
		alertRepo,
		alertStream,
		metricsReg,
		cfg.PollInterval(),
		cfg.FetchTimeout(),
	)
}
