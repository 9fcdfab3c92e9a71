package services

import (
	"errors"
	"strings"
	"time"

	"skywatch/milmon/internal/models"
)

// ErrMissingIdentifier is returned for raw records without a usable hex
// identifier. Such records are dropped and counted, never fatal.
var ErrMissingIdentifier = errors.New("record has no hex identifier")

// NormalizeAircraft converts one raw provider record into an
// Observation. The only required field is the hex identifier; every
// other field defaults to the Unknown sentinel or the empty string.
//
// SeenAt is derived from the record's "seen" age (seconds since last
// message) relative to now; records without it are treated as seen now.
func NormalizeAircraft(raw models.RawAircraft, now time.Time) (models.Observation, error) {
	hex := strings.TrimSpace(raw.Hex)
	if hex == "" {
		return models.Observation{}, ErrMissingIdentifier
	}

	obs := models.Observation{
		Hex:         strings.ToLower(hex),
		Lat:         models.Unknown,
		Lon:         models.Unknown,
		Altitude:    models.Unknown,
		GroundSpeed: models.Unknown,
		Track:       models.Unknown,
		SeenAt:      now,
	}

	if raw.Flight != nil {
		obs.Callsign = strings.TrimSpace(*raw.Flight)
	}
	if raw.TypeCode != nil {
		obs.TypeCode = strings.TrimSpace(*raw.TypeCode)
	}
	if raw.Registration != nil {
		obs.Registration = strings.TrimSpace(*raw.Registration)
	}
	if raw.Owner != nil {
		obs.Owner = strings.TrimSpace(*raw.Owner)
	}
	if raw.Squawk != nil {
		obs.Squawk = strings.TrimSpace(*raw.Squawk)
	}
	if raw.Lat != nil {
		obs.Lat = *raw.Lat
	}
	if raw.Lon != nil {
		obs.Lon = *raw.Lon
	}
	if raw.GroundSpeed != nil {
		obs.GroundSpeed = *raw.GroundSpeed
	}
	if raw.Track != nil {
		obs.Track = *raw.Track
	}
	if raw.Seen != nil && *raw.Seen > 0 {
		obs.SeenAt = now.Add(-time.Duration(*raw.Seen * float64(time.Second)))
	}

	obs.Altitude = normalizeAltitude(raw.BaroAltitude)

	return obs, nil
}

// normalizeAltitude handles alt_baro being a JSON number, the string
// "ground", or absent.
func normalizeAltitude(v interface{}) float64 {
	switch alt := v.(type) {
	case float64:
		return alt
	case string:
		if strings.EqualFold(alt, "ground") {
			return 0
		}
		return models.Unknown
	default:
		return models.Unknown
	}
}
