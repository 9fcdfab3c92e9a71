package services

import (
	"errors"
	"testing"
	"time"

	"skywatch/milmon/internal/models"
)

func strPtr(s string) *string    { return &s }
func f64Ptr(f float64) *float64  { return &f }

func TestNormalizeAircraft_AllFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	raw := models.RawAircraft{
		Hex:          "AE01CE",
		Flight:       strPtr("VIPER11 "),
		TypeCode:     strPtr("F16"),
		Registration: strPtr("92-3899"),
		Owner:        strPtr("United States Air Force"),
		Squawk:       strPtr("4701"),
		Lat:          f64Ptr(34.05),
		Lon:          f64Ptr(-118.24),
		GroundSpeed:  f64Ptr(420),
		Track:        f64Ptr(45),
		Seen:         f64Ptr(2.5),
		BaroAltitude: float64(22000),
	}

	obs, err := NormalizeAircraft(raw, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if obs.Hex != "ae01ce" {
		t.Errorf("Expected hex ae01ce, got %s", obs.Hex)
	}
	if obs.Callsign != "VIPER11" {
		t.Errorf("Expected trimmed callsign VIPER11, got %q", obs.Callsign)
	}
	if obs.Altitude != 22000 {
		t.Errorf("Expected altitude 22000, got %v", obs.Altitude)
	}
	wantSeen := now.Add(-2500 * time.Millisecond)
	if !obs.SeenAt.Equal(wantSeen) {
		t.Errorf("Expected SeenAt %v, got %v", wantSeen, obs.SeenAt)
	}
}

func TestNormalizeAircraft_MissingIdentifier(t *testing.T) {
	for _, hex := range []string{"", "   "} {
		_, err := NormalizeAircraft(models.RawAircraft{Hex: hex}, time.Now())
		if !errors.Is(err, ErrMissingIdentifier) {
			t.Errorf("hex %q: expected ErrMissingIdentifier, got %v", hex, err)
		}
	}
}

func TestNormalizeAircraft_MissingFieldsUseSentinel(t *testing.T) {
	now := time.Now()
	obs, err := NormalizeAircraft(models.RawAircraft{Hex: "abc123"}, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for name, v := range map[string]float64{
		"lat":          obs.Lat,
		"lon":          obs.Lon,
		"altitude":     obs.Altitude,
		"ground_speed": obs.GroundSpeed,
		"track":        obs.Track,
	} {
		if !models.IsUnknown(v) {
			t.Errorf("Expected %s to be Unknown sentinel, got %v", name, v)
		}
	}
	if !obs.SeenAt.Equal(now) {
		t.Errorf("Expected SeenAt to default to now")
	}
}

func TestNormalizeAircraft_GroundAltitude(t *testing.T) {
	obs, err := NormalizeAircraft(models.RawAircraft{Hex: "abc123", BaroAltitude: "ground"}, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if obs.Altitude != 0 {
		t.Errorf("Expected ground to normalize to altitude 0, got %v", obs.Altitude)
	}

	tracked := models.TrackedAircraft{Altitude: obs.Altitude}
	if !tracked.OnGround() {
		t.Error("Expected OnGround for altitude 0")
	}
}

func TestNormalizeAircraft_UnparseableAltitudeString(t *testing.T) {
	obs, err := NormalizeAircraft(models.RawAircraft{Hex: "abc123", BaroAltitude: "garbage"}, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !models.IsUnknown(obs.Altitude) {
		t.Errorf("Expected Unknown altitude for garbage string, got %v", obs.Altitude)
	}
}
