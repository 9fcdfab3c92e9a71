package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"skywatch/milmon/internal/common"
	"skywatch/milmon/internal/config"
	"skywatch/milmon/internal/models"
	"skywatch/milmon/internal/models/dtos/responses"
	"skywatch/milmon/internal/services"
)

func newTestHandlers(t *testing.T) (*Handlers, *services.InventoryService) {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	classifier := services.NewClassifier(cfg.OffensiveSet())
	inventory := services.NewInventoryService(cfg.StalenessWindow(), classifier)
	filters := services.NewFilterService()
	publisher := common.NewSnapshotPublisher()

	deps := &Dependencies{
		Config:    cfg,
		Inventory: inventory,
		Filters:   filters,
		Publisher: publisher,
	}
	return NewHandlers(deps), inventory
}

func seedInventory(inv *services.InventoryService) {
	now := time.Now()
	inv.Apply([]models.Observation{
		{Hex: "ae01ce", Callsign: "VIPER11", TypeCode: "F16", SeenAt: now},
		{Hex: "ae04d9", Callsign: "PACK61", TypeCode: "KC135", SeenAt: now},
	}, now)
}

func decodeSuccess[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var resp responses.APIResponse[T]
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("Expected success envelope, got %s (%s)", resp.Status, resp.Error)
	}
	if resp.Data == nil {
		t.Fatal("Expected data in envelope")
	}
	return *resp.Data
}

func TestAircraftHandler_ServesPublishedRows(t *testing.T) {
	h, inv := newTestHandlers(t)
	seedInventory(inv)
	h.republishVisible()

	req := httptest.NewRequest("GET", "/api/v1/aircraft", nil)
	rec := httptest.NewRecorder()
	h.AircraftHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	list := decodeSuccess[responses.AircraftList[models.TrackedAircraft]](t, rec)
	if list.Count != 2 {
		t.Fatalf("Expected 2 aircraft, got %d", list.Count)
	}
	if list.Aircraft[0].Hex != "ae01ce" {
		t.Errorf("Expected hex-sorted rows, got %s first", list.Aircraft[0].Hex)
	}
}

func TestSetFiltersHandler_AppliesImmediately(t *testing.T) {
	h, inv := newTestHandlers(t)
	seedInventory(inv)
	h.republishVisible()

	body := strings.NewReader(`{"categories": ["tanker"]}`)
	req := httptest.NewRequest("PUT", "/api/v1/filters", body)
	rec := httptest.NewRecorder()
	h.SetFiltersHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	state := decodeSuccess[responses.FilterState](t, rec)
	if len(state.Active) != 1 || state.Active[0] != "tanker" {
		t.Fatalf("Expected active [tanker], got %v", state.Active)
	}
	if state.ShowAll {
		t.Error("Expected ShowAll false with an active filter")
	}

	// The published view reflects the new filter without a new cycle.
	rows := h.deps.Publisher.VisibleRows()
	if len(rows) != 1 || rows[0].Category != models.CategoryTanker {
		t.Fatalf("Expected only the tanker visible, got %+v", rows)
	}
}

func TestSetFiltersHandler_RejectsUnknownCategory(t *testing.T) {
	h, _ := newTestHandlers(t)

	body := strings.NewReader(`{"categories": ["zeppelin"]}`)
	req := httptest.NewRequest("PUT", "/api/v1/filters", body)
	rec := httptest.NewRecorder()
	h.SetFiltersHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestToggleFilterHandler(t *testing.T) {
	h, inv := newTestHandlers(t)
	seedInventory(inv)

	r := chi.NewRouter()
	r.Post("/api/v1/filters/{category}/toggle", h.ToggleFilterHandler)

	req := httptest.NewRequest("POST", "/api/v1/filters/fighter/toggle", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	state := decodeSuccess[responses.FilterState](t, rec)
	if len(state.Active) != 1 || state.Active[0] != "fighter" {
		t.Fatalf("Expected active [fighter], got %v", state.Active)
	}

	req = httptest.NewRequest("POST", "/api/v1/filters/dragon/toggle", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown category, got %d", rec.Code)
	}
}

func TestGetFiltersHandler_ShowAllByDefault(t *testing.T) {
	h, _ := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/api/v1/filters", nil)
	rec := httptest.NewRecorder()
	h.GetFiltersHandler(rec, req)

	state := decodeSuccess[responses.FilterState](t, rec)
	if !state.ShowAll {
		t.Error("Expected ShowAll true with no active filters")
	}
	if len(state.Available) != len(models.AllCategories) {
		t.Errorf("Expected %d available categories, got %d", len(models.AllCategories), len(state.Available))
	}
}

func TestStatsHandler(t *testing.T) {
	h, _ := newTestHandlers(t)
	h.deps.Publisher.Publish(nil, models.CycleStats{FetchedCount: 42, TrackedCount: 7})

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	h.StatsHandler(rec, req)

	stats := decodeSuccess[models.CycleStats](t, rec)
	if stats.FetchedCount != 42 || stats.TrackedCount != 7 {
		t.Errorf("Unexpected stats payload: %+v", stats)
	}
}

func TestRecentAlertsHandler(t *testing.T) {
	h, _ := newTestHandlers(t)
	h.deps.Publisher.PublishAlerts([]models.AlertEvent{
		{ID: "1", Hex: "ae01ce", Category: models.CategoryFighter, Timestamp: time.Now()},
	})

	req := httptest.NewRequest("GET", "/api/v1/alerts/recent", nil)
	rec := httptest.NewRecorder()
	h.RecentAlertsHandler(rec, req)

	list := decodeSuccess[responses.AlertList[models.AlertEvent]](t, rec)
	if list.Count != 1 || list.Alerts[0].Hex != "ae01ce" {
		t.Errorf("Unexpected alerts payload: %+v", list)
	}
}
