package services

import (
	"sync"

	"skywatch/milmon/internal/models"
)

// FilterService holds the user-selected category filter set and
// evaluates it against inventory snapshots. An empty active set means
// "show all", never "show none".
type FilterService struct {
	mu     sync.RWMutex
	active map[models.Category]bool
}

// NewFilterService creates a filter engine with no active filters,
// i.e. everything visible.
func NewFilterService() *FilterService {
	return &FilterService{active: make(map[models.Category]bool)}
}

// SetActive replaces the active filter set. Unknown categories are
// ignored.
func (f *FilterService) SetActive(categories []models.Category) {
	next := make(map[models.Category]bool, len(categories))
	for _, c := range categories {
		if c.IsValid() {
			next[c] = true
		}
	}

	f.mu.Lock()
	f.active = next
	f.mu.Unlock()
}

// Toggle flips one category in the active set and reports whether it
// is active afterwards.
func (f *FilterService) Toggle(c models.Category) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.active[c] {
		delete(f.active, c)
		return false
	}
	f.active[c] = true
	return true
}

// Active returns the active categories in display order.
func (f *FilterService) Active() []models.Category {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]models.Category, 0, len(f.active))
	for _, c := range models.AllCategories {
		if f.active[c] {
			out = append(out, c)
		}
	}
	return out
}

// Visible returns the subset of snapshot matching the active filters,
// preserving the snapshot's order. The snapshot itself is never
// mutated.
func (f *FilterService) Visible(snapshot []models.TrackedAircraft) []models.TrackedAircraft {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.active) == 0 {
		out := make([]models.TrackedAircraft, len(snapshot))
		copy(out, snapshot)
		return out
	}

	out := make([]models.TrackedAircraft, 0, len(snapshot))
	for _, a := range snapshot {
		if f.active[a.Category] {
			out = append(out, a)
		}
	}
	return out
}
