package common

import (
	"sort"
	"sync"
	"time"

	"skywatch/milmon/internal/models"
)

// recentAlertTTL is how long an alert stays in the recent-alerts view.
const recentAlertTTL = 15 * time.Minute

// SnapshotPublisher is the hand-off point between the refresh cycle and
// HTTP consumers. The refresh goroutine replaces whole immutable
// snapshots; readers never observe a partially updated cycle.
type SnapshotPublisher struct {
	mu      sync.RWMutex
	visible []models.TrackedAircraft
	stats   models.CycleStats

	recent *CacheService
}

// NewSnapshotPublisher creates a publisher with an empty snapshot.
func NewSnapshotPublisher() *SnapshotPublisher {
	return &SnapshotPublisher{
		recent: NewCacheService(int(recentAlertTTL.Seconds()), 60),
	}
}

// Publish replaces the current visible rows and cycle stats.
func (p *SnapshotPublisher) Publish(rows []models.TrackedAircraft, stats models.CycleStats) {
	p.mu.Lock()
	p.visible = rows
	p.stats = stats
	p.mu.Unlock()
}

// PublishAlerts records new alert events in the recent-alerts cache.
func (p *SnapshotPublisher) PublishAlerts(events []models.AlertEvent) {
	for _, ev := range events {
		p.recent.Set("alert:"+ev.ID, ev, recentAlertTTL)
	}
}

// VisibleRows returns the last published visible rows. The returned
// slice is a copy; callers may not reach the published snapshot.
func (p *SnapshotPublisher) VisibleRows() []models.TrackedAircraft {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.TrackedAircraft, len(p.visible))
	copy(out, p.visible)
	return out
}

// LastStats returns the stats of the most recently completed cycle.
func (p *SnapshotPublisher) LastStats() models.CycleStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stats
}

// RecentAlerts returns unexpired alert events, newest first.
func (p *SnapshotPublisher) RecentAlerts() []models.AlertEvent {
	items := p.recent.Items()
	out := make([]models.AlertEvent, 0, len(items))
	for _, item := range items {
		if ev, ok := item.Object.(models.AlertEvent); ok {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
