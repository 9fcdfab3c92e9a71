package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"skywatch/milmon/internal/models"
)

// AlertTracker turns the per-cycle offensive status into edge-triggered
// alert events. An alert fires exactly once, when a hex becomes
// offensive after not being offensive (or not tracked) the previous
// cycle; it re-arms only after the hex leaves the offensive set.
//
// The previous cycle's offensive hex set is the tracker's only state
// and is owned exclusively by it.
type AlertTracker struct {
	mu       sync.Mutex
	previous map[string]bool
}

// NewAlertTracker creates a tracker with an empty previous set, so the
// first cycle alerts on every offensive aircraft already in the air.
func NewAlertTracker() *AlertTracker {
	return &AlertTracker{previous: make(map[string]bool)}
}

// Diff compares the snapshot's offensive set against the previous
// cycle's and returns new alert events plus the hexes whose alerts
// cleared. The snapshot passed in is not modified.
func (t *AlertTracker) Diff(snapshot []models.TrackedAircraft, now time.Time) ([]models.AlertEvent, []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := make(map[string]bool, len(t.previous))
	var alerts []models.AlertEvent

	for _, a := range snapshot {
		if !a.Offensive {
			continue
		}
		current[a.Hex] = true
		if t.previous[a.Hex] {
			continue
		}
		alerts = append(alerts, models.AlertEvent{
			ID:        uuid.NewString(),
			Hex:       a.Hex,
			Callsign:  a.Callsign,
			TypeCode:  a.TypeCode,
			Owner:     a.Owner,
			Category:  a.Category,
			Timestamp: now,
		})
	}

	var cleared []string
	for hex := range t.previous {
		if !current[hex] {
			cleared = append(cleared, hex)
		}
	}

	t.previous = current
	return alerts, cleared
}
