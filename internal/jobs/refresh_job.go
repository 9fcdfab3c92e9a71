package jobs

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"skywatch/milmon/internal/common"
	"skywatch/milmon/internal/db/repositories"
	"skywatch/milmon/internal/logging"
	"skywatch/milmon/internal/metrics"
	"skywatch/milmon/internal/models"
	"skywatch/milmon/internal/providers"
	"skywatch/milmon/internal/services"
)

// CycleState is the refresh coordinator's observable state.
type CycleState int32

const (
	StateIdle CycleState = iota
	StateFetching
	StateProcessing
	StatePublished
)

func (s CycleState) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateProcessing:
		return "processing"
	case StatePublished:
		return "published"
	default:
		return "idle"
	}
}

// RefreshJob drives the periodic fetch → normalize → apply → classify →
// filter → alert pipeline. Exactly one cycle is in flight at a time:
// the cadence timer is re-armed after a cycle completes, never on a
// wall-clock grid, so a slow feed cannot overlap cycles.
type RefreshJob struct {
	source      providers.AircraftSource
	inventory   *services.InventoryService
	filters     *services.FilterService
	alerts      *services.AlertTracker
	publisher   *common.SnapshotPublisher
	alertRepo   *repositories.AlertRepo     // nil disables persistence
	alertStream *common.AlertStreamService  // nil disables fan-out
	metricsReg  *metrics.MetricsRegistry

	interval     time.Duration
	fetchTimeout time.Duration

	state  atomic.Int32
	cycle  atomic.Uint64
	errors atomic.Uint64
}

func NewRefreshJob(
	source providers.AircraftSource,
	inventory *services.InventoryService,
	filters *services.FilterService,
	alerts *services.AlertTracker,
	publisher *common.SnapshotPublisher,
	alertRepo *repositories.AlertRepo,
	alertStream *common.AlertStreamService,
	metricsReg *metrics.MetricsRegistry,
	interval time.Duration,
	fetchTimeout time.Duration,
) *RefreshJob {
	return &RefreshJob{
		source:       source,
		inventory:    inventory,
		filters:      filters,
		alerts:       alerts,
		publisher:    publisher,
		alertRepo:    alertRepo,
		alertStream:  alertStream,
		metricsReg:   metricsReg,
		interval:     interval,
		fetchTimeout: fetchTimeout,
	}
}

// State returns the coordinator's current state.
func (j *RefreshJob) State() CycleState {
	return CycleState(j.state.Load())
}

// ErrorCount returns the number of failed fetches since startup.
func (j *RefreshJob) ErrorCount() uint64 {
	return j.errors.Load()
}

// RunScheduled runs cycles until ctx is cancelled. The first cycle
// starts immediately. An in-flight fetch is abandoned on shutdown via
// the cycle context; an abandoned fetch never mutates the inventory.
func (j *RefreshJob) RunScheduled(ctx context.Context) error {
	logging.Info("Refresh job starting",
		"interval", j.interval.String(),
		"fetch_timeout", j.fetchTimeout.String(),
	)

	j.RunCycle(ctx)

	timer := time.NewTimer(j.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Refresh job stopping")
			return nil
		case <-timer.C:
			j.RunCycle(ctx)
			timer.Reset(j.interval)
		}
	}
}

// RunCycle performs one full fetch-process-publish cycle and returns
// its stats. It also backs the manual refresh endpoint.
func (j *RefreshJob) RunCycle(ctx context.Context) models.CycleStats {
	start := time.Now()
	cycle := j.cycle.Add(1)
	log := logging.WithCycle(cycle)

	defer j.state.Store(int32(StateIdle))

	j.state.Store(int32(StateFetching))
	fetchCtx, cancel := context.WithTimeout(ctx, j.fetchTimeout)
	raw, err := j.source.FetchMilitary(fetchCtx)
	cancel()

	now := time.Now()

	if err != nil {
		return j.completeFailedCycle(ctx, log, start, now, err)
	}

	j.state.Store(int32(StateProcessing))

	observations := make([]models.Observation, 0, len(raw))
	dropped := 0
	for _, rec := range raw {
		obs, nerr := services.NormalizeAircraft(rec, now)
		if nerr != nil {
			dropped++
			log.Debugw("Dropped unidentifiable record",
				"callsign", stringOrEmpty(rec.Flight),
				"type", stringOrEmpty(rec.TypeCode),
			)
			continue
		}
		observations = append(observations, obs)
	}

	delta := j.inventory.Apply(observations, now)
	snapshot := j.inventory.Snapshot()
	visible := j.filters.Visible(snapshot)
	alerts, cleared := j.alerts.Diff(snapshot, now)

	stats := models.CycleStats{
		FetchedCount:  len(raw),
		DroppedCount:  dropped,
		ErrorCount:    j.errors.Load(),
		TrackedCount:  len(snapshot),
		StaledCount:   len(delta.Staled),
		EvictedCount:  len(delta.Evicted),
		AlertCount:    len(alerts),
		CycleDuration: time.Since(start),
		CompletedAt:   now,
	}

	j.state.Store(int32(StatePublished))
	j.publisher.Publish(visible, stats)
	j.publisher.PublishAlerts(alerts)
	j.deliverAlerts(ctx, log, alerts)

	j.recordMetrics(stats, delta, alerts, "ok")

	log.Infow("Cycle complete",
		"fetched", stats.FetchedCount,
		"dropped", stats.DroppedCount,
		"tracked", stats.TrackedCount,
		"added", len(delta.Added),
		"updated", len(delta.Updated),
		"staled", len(delta.Staled),
		"evicted", len(delta.Evicted),
		"alerts", len(alerts),
		"cleared", len(cleared),
		"duration_ms", stats.CycleDuration.Milliseconds(),
	)

	return stats
}

// completeFailedCycle handles a fetch failure. The failed payload is
// never applied, but absence still ages tracked aircraft, so the
// staleness sweep runs with an empty batch.
func (j *RefreshJob) completeFailedCycle(ctx context.Context, log *zap.SugaredLogger, start, now time.Time, err error) models.CycleStats {
	j.errors.Add(1)
	j.metricsReg.FetchErrorsTotal.Inc()

	log.Errorw("Fetch failed, retrying next tick",
		"error", err.Error(),
	)

	j.state.Store(int32(StateProcessing))
	delta := j.inventory.Apply(nil, now)
	snapshot := j.inventory.Snapshot()
	visible := j.filters.Visible(snapshot)
	_, cleared := j.alerts.Diff(snapshot, now)

	stats := models.CycleStats{
		ErrorCount:    j.errors.Load(),
		TrackedCount:  len(snapshot),
		StaledCount:   len(delta.Staled),
		EvictedCount:  len(delta.Evicted),
		CycleDuration: time.Since(start),
		CompletedAt:   now,
		FetchFailed:   true,
	}

	j.state.Store(int32(StatePublished))
	j.publisher.Publish(visible, stats)
	j.recordMetrics(stats, delta, nil, "fetch_failed")

	if len(cleared) > 0 {
		log.Infow("Alerts cleared by eviction", "hexes", cleared)
	}

	return stats
}

func (j *RefreshJob) deliverAlerts(ctx context.Context, log *zap.SugaredLogger, alerts []models.AlertEvent) {
	for _, ev := range alerts {
		log.Warnw("Offensive aircraft detected",
			"hex", ev.Hex,
			"callsign", ev.Callsign,
			"type", ev.TypeCode,
			"category", string(ev.Category),
			"owner", ev.Owner,
		)
	}

	if j.alertRepo != nil {
		if err := j.alertRepo.Insert(ctx, alerts); err != nil {
			log.Errorw("Failed to persist alerts", "error", err.Error())
		}
	}
	if j.alertStream != nil {
		if err := j.alertStream.PublishAlertBatch(ctx, alerts); err != nil {
			log.Errorw("Failed to publish alerts to stream", "error", err.Error())
		}
	}
}

func (j *RefreshJob) recordMetrics(stats models.CycleStats, delta models.Delta, alerts []models.AlertEvent, outcome string) {
	j.metricsReg.CyclesTotal.WithLabelValues(outcome).Inc()
	j.metricsReg.CycleDuration.Observe(stats.CycleDuration.Seconds())
	j.metricsReg.RecordsFetched.Add(float64(stats.FetchedCount))
	j.metricsReg.RecordsDropped.Add(float64(stats.DroppedCount))
	j.metricsReg.AircraftTracked.Set(float64(stats.TrackedCount))
	j.metricsReg.AircraftStale.Set(float64(j.inventory.StaleCount()))
	j.metricsReg.AircraftEvicted.Add(float64(len(delta.Evicted)))
	for _, ev := range alerts {
		j.metricsReg.AlertsTotal.WithLabelValues(string(ev.Category)).Inc()
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
