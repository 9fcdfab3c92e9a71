package models

import "time"

// Unknown is the sentinel for numeric fields the feed did not supply.
// Zero is a legal value for most of them (altitude zero means on the
// ground), so absence has to be distinguishable.
const Unknown float64 = -99999

// IsUnknown reports whether v carries the missing-field sentinel.
func IsUnknown(v float64) bool {
	return v == Unknown
}

// Observation is one normalized record of an aircraft's state at a
// point in time. Everything downstream of the normalizer works on this
// shape; nothing touches RawAircraft again.
type Observation struct {
	Hex          string
	Callsign     string
	TypeCode     string
	Registration string
	Owner        string
	Squawk       string
	Lat          float64
	Lon          float64
	Altitude     float64 // feet, 0 = on ground
	GroundSpeed  float64 // knots
	Track        float64 // degrees
	SeenAt       time.Time
}

// TrackedAircraft is the canonical store-owned entity for one aircraft.
// Consumers only ever receive copies.
type TrackedAircraft struct {
	Hex          string    `json:"hex"`
	Callsign     string    `json:"callsign"`
	TypeCode     string    `json:"type"`
	Registration string    `json:"registration,omitempty"`
	Owner        string    `json:"owner,omitempty"`
	Squawk       string    `json:"squawk,omitempty"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	Altitude     float64   `json:"altitude"`
	GroundSpeed  float64   `json:"ground_speed"`
	Track        float64   `json:"track"`
	Category     Category  `json:"category"`
	Offensive    bool      `json:"offensive"`
	FirstSeen    time.Time `json:"first_seen"`
	LastSeen     time.Time `json:"last_seen"`
	Stale        bool      `json:"stale"`
}

// OnGround reports whether the last known altitude puts the aircraft on
// the ground. Unknown altitude is not ground.
func (a *TrackedAircraft) OnGround() bool {
	return !IsUnknown(a.Altitude) && a.Altitude == 0
}

// Delta describes what one Inventory.Apply changed, by hex. It never
// exposes store internals.
type Delta struct {
	Added   []string
	Updated []string
	Staled  []string
	Evicted []string
}

// AlertEvent is one edge-triggered offensive-aircraft detection.
type AlertEvent struct {
	ID        string    `json:"id"`
	Hex       string    `json:"hex"`
	Callsign  string    `json:"callsign"`
	TypeCode  string    `json:"type"`
	Owner     string    `json:"owner,omitempty"`
	Category  Category  `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// CycleStats summarizes one refresh cycle for operational logging.
type CycleStats struct {
	FetchedCount  int           `json:"fetched_count"`
	DroppedCount  int           `json:"dropped_count"`
	ErrorCount    uint64        `json:"error_count"`
	TrackedCount  int           `json:"tracked_count"`
	StaledCount   int           `json:"staled_count"`
	EvictedCount  int           `json:"evicted_count"`
	AlertCount    int           `json:"alert_count"`
	CycleDuration time.Duration `json:"cycle_duration_ms"`
	CompletedAt   time.Time     `json:"completed_at"`
	FetchFailed   bool          `json:"fetch_failed"`
}
