package api

import (
	"skywatch/milmon/internal/common"
	"skywatch/milmon/internal/config"
	"skywatch/milmon/internal/db/repositories"
	"skywatch/milmon/internal/jobs"
	"skywatch/milmon/internal/metrics"
	"skywatch/milmon/internal/services"
)

// Dependencies is the DI container handed to the handlers.
type Dependencies struct {
	Config    *config.Config
	Metrics   *metrics.MetricsRegistry
	Inventory *services.InventoryService
	Filters   *services.FilterService
	Publisher *common.SnapshotPublisher
	AlertRepo *repositories.AlertRepo
	Refresh   *jobs.RefreshJob
}

// Handlers bundles every HTTP handler with its dependencies.
type Handlers struct {
	deps *Dependencies
}

func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}
