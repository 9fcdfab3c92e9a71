package providers

import (
	"context"
	"fmt"

	"skywatch/milmon/internal/models"
)

// AircraftSource defines the interface for the upstream ADS-B feed.
// The refresh coordinator only ever sees this.
type AircraftSource interface {
	// FetchMilitary fetches the current set of military aircraft
	// records. Zero records is a valid result.
	FetchMilitary(ctx context.Context) ([]models.RawAircraft, error)

	// GetProviderType returns the provider type identifier
	GetProviderType() string
}

// ProviderError represents a provider-specific error
type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
