package services

import (
	"testing"
	"time"

	"skywatch/milmon/internal/models"
)

func offensiveAircraft(hex string) models.TrackedAircraft {
	return models.TrackedAircraft{
		Hex:       hex,
		Callsign:  "VIPER11",
		TypeCode:  "F16",
		Category:  models.CategoryFighter,
		Offensive: true,
	}
}

func civilianAircraft(hex string) models.TrackedAircraft {
	return models.TrackedAircraft{
		Hex:      hex,
		TypeCode: "A320",
		Category: models.CategoryOther,
	}
}

func TestAlertTracker_EdgeTriggered(t *testing.T) {
	tracker := NewAlertTracker()
	now := time.Now()

	alerts, _ := tracker.Diff([]models.TrackedAircraft{offensiveAircraft("aaa111")}, now)
	if len(alerts) != 1 {
		t.Fatalf("Expected exactly one alert on first sight, got %d", len(alerts))
	}
	if alerts[0].Hex != "aaa111" || alerts[0].Category != models.CategoryFighter {
		t.Errorf("Unexpected alert payload: %+v", alerts[0])
	}
	if alerts[0].ID == "" {
		t.Error("Expected alert to carry an ID")
	}

	// Same offensive aircraft on following cycles: no re-fire.
	for i := 0; i < 3; i++ {
		alerts, _ = tracker.Diff([]models.TrackedAircraft{offensiveAircraft("aaa111")}, now)
		if len(alerts) != 0 {
			t.Fatalf("Cycle %d: expected no re-fired alerts, got %d", i, len(alerts))
		}
	}
}

func TestAlertTracker_RearmsAfterClear(t *testing.T) {
	tracker := NewAlertTracker()
	now := time.Now()

	tracker.Diff([]models.TrackedAircraft{offensiveAircraft("aaa111")}, now)

	// Drops out of the offensive set.
	alerts, cleared := tracker.Diff([]models.TrackedAircraft{civilianAircraft("aaa111")}, now)
	if len(alerts) != 0 {
		t.Fatalf("Expected no alerts while non-offensive, got %d", len(alerts))
	}
	if len(cleared) != 1 || cleared[0] != "aaa111" {
		t.Fatalf("Expected cleared [aaa111], got %v", cleared)
	}

	// Re-enters: fires again, once.
	alerts, _ = tracker.Diff([]models.TrackedAircraft{offensiveAircraft("aaa111")}, now)
	if len(alerts) != 1 {
		t.Fatalf("Expected one alert after re-entry, got %d", len(alerts))
	}
}

func TestAlertTracker_ClearsOnDisappearance(t *testing.T) {
	tracker := NewAlertTracker()
	now := time.Now()

	tracker.Diff([]models.TrackedAircraft{offensiveAircraft("aaa111")}, now)
	_, cleared := tracker.Diff(nil, now)

	if len(cleared) != 1 || cleared[0] != "aaa111" {
		t.Fatalf("Expected cleared [aaa111] when no longer tracked, got %v", cleared)
	}
}

func TestAlertTracker_CivilianFlipToFighter(t *testing.T) {
	tracker := NewAlertTracker()
	now := time.Now()

	alerts, _ := tracker.Diff([]models.TrackedAircraft{civilianAircraft("bbb222")}, now)
	if len(alerts) != 0 {
		t.Fatalf("Expected no alerts for civilian-like aircraft, got %d", len(alerts))
	}

	alerts, _ = tracker.Diff([]models.TrackedAircraft{offensiveAircraft("bbb222")}, now)
	if len(alerts) != 1 {
		t.Fatalf("Expected exactly one alert on the flip to fighter, got %d", len(alerts))
	}
}

func TestAlertTracker_MultipleIndependentAircraft(t *testing.T) {
	tracker := NewAlertTracker()
	now := time.Now()

	tracker.Diff([]models.TrackedAircraft{offensiveAircraft("aaa111")}, now)

	alerts, _ := tracker.Diff([]models.TrackedAircraft{
		offensiveAircraft("aaa111"),
		offensiveAircraft("bbb222"),
	}, now)

	if len(alerts) != 1 || alerts[0].Hex != "bbb222" {
		t.Fatalf("Expected one alert for the newcomer only, got %+v", alerts)
	}
}
