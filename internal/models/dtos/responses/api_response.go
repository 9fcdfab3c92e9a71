package responses

import "time"

// APIResponse is the envelope every API endpoint returns.
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}

// AircraftList is the payload of GET /api/v1/aircraft.
type AircraftList[T any] struct {
	Count    int `json:"count"`
	Aircraft []T `json:"aircraft"`
}

// FilterState is the payload of the filter endpoints.
type FilterState struct {
	Active    []string `json:"active"`
	Available []string `json:"available"`
	ShowAll   bool     `json:"show_all"`
}

// AlertList is the payload of the alert read endpoints.
type AlertList[T any] struct {
	Count  int `json:"count"`
	Alerts []T `json:"alerts"`
}
