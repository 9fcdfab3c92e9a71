package services

import (
	"sort"
	"sync"
	"time"

	"skywatch/milmon/internal/models"
)

// InventoryService owns the current set of tracked aircraft, keyed by
// hex. It is the sole owner of TrackedAircraft entities; callers only
// ever receive copies via Snapshot or Delta identifier sets.
type InventoryService struct {
	mu         sync.RWMutex
	window     time.Duration
	classifier *Classifier
	entries    map[string]*models.TrackedAircraft
}

// NewInventoryService creates an empty inventory with the given
// staleness window.
func NewInventoryService(window time.Duration, classifier *Classifier) *InventoryService {
	return &InventoryService{
		window:     window,
		classifier: classifier,
		entries:    make(map[string]*models.TrackedAircraft),
	}
}

// Apply upserts one batch of observations at time now and sweeps the
// rest of the inventory for staleness. A nil or empty batch performs
// the sweep only, which is what fetch-failure cycles use: entity fields
// never change from a failed fetch, but absence still ages them.
//
// Duplicate hexes within the batch collapse to the observation with
// the latest SeenAt; on equal timestamps the earlier record (and, at
// the store level, the existing entity) wins.
func (s *InventoryService) Apply(batch []models.Observation, now time.Time) models.Delta {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := resolveDuplicates(batch)

	var delta models.Delta

	for hex, obs := range resolved {
		entity, exists := s.entries[hex]
		if !exists {
			entity = &models.TrackedAircraft{
				Hex:       hex,
				FirstSeen: obs.SeenAt,
			}
			s.entries[hex] = entity
			s.overwrite(entity, obs)
			delta.Added = append(delta.Added, hex)
			continue
		}

		// last_seen is monotonic; an equal or older observation
		// leaves the entity's fields untouched but still counts as
		// presence, so staleness clears either way.
		if obs.SeenAt.After(entity.LastSeen) {
			s.overwrite(entity, obs)
			delta.Updated = append(delta.Updated, hex)
		}
		entity.Stale = false
	}

	for hex, entity := range s.entries {
		if _, present := resolved[hex]; present {
			continue
		}
		gap := now.Sub(entity.LastSeen)
		if gap < s.window {
			continue
		}
		if entity.Stale {
			delete(s.entries, hex)
			delta.Evicted = append(delta.Evicted, hex)
		} else {
			// Eviction waits for a later cycle; going stale and
			// being removed never happen together.
			entity.Stale = true
			delta.Staled = append(delta.Staled, hex)
		}
	}

	// Category and offensive flag are derived state, recomputed for
	// the whole inventory every cycle.
	for _, entity := range s.entries {
		entity.Category, entity.Offensive = s.classifier.Classify(entity.TypeCode, entity.Squawk)
	}

	sort.Strings(delta.Added)
	sort.Strings(delta.Updated)
	sort.Strings(delta.Staled)
	sort.Strings(delta.Evicted)
	return delta
}

func (s *InventoryService) overwrite(entity *models.TrackedAircraft, obs models.Observation) {
	entity.Callsign = obs.Callsign
	entity.TypeCode = obs.TypeCode
	entity.Registration = obs.Registration
	entity.Owner = obs.Owner
	entity.Squawk = obs.Squawk
	entity.Lat = obs.Lat
	entity.Lon = obs.Lon
	entity.Altitude = obs.Altitude
	entity.GroundSpeed = obs.GroundSpeed
	entity.Track = obs.Track
	entity.LastSeen = obs.SeenAt
	entity.Stale = false
}

// Snapshot returns copies of all tracked aircraft, sorted by hex so
// that row order is stable across refreshes.
func (s *InventoryService) Snapshot() []models.TrackedAircraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TrackedAircraft, 0, len(s.entries))
	for _, entity := range s.entries {
		out = append(out, *entity)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hex < out[j].Hex })
	return out
}

// Len returns the current inventory size.
func (s *InventoryService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// StaleCount returns how many entries are currently flagged stale.
func (s *InventoryService) StaleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, entity := range s.entries {
		if entity.Stale {
			n++
		}
	}
	return n
}

// resolveDuplicates collapses a batch to at most one observation per
// hex, keeping the one with the latest SeenAt. Ties keep the first.
func resolveDuplicates(batch []models.Observation) map[string]models.Observation {
	resolved := make(map[string]models.Observation, len(batch))
	for _, obs := range batch {
		prev, seen := resolved[obs.Hex]
		if !seen || obs.SeenAt.After(prev.SeenAt) {
			resolved[obs.Hex] = obs
		}
	}
	return resolved
}
