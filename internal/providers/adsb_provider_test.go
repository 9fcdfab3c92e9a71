package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skywatch/milmon/internal/constants"
)

func TestADSBProvider_FetchMilitary_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/v2/mil" {
			t.Errorf("Expected path /v2/mil, got %s", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"now": 1756500000.0,
			"total": 2,
			"ac": [
				{"hex": "ae01ce", "flight": "VIPER11", "t": "F16", "alt_baro": 22000, "gs": 420.5, "track": 45.0},
				{"hex": "43c6f1", "t": "HAWK", "alt_baro": "ground"}
			]
		}`))
	}))
	defer server.Close()

	provider := NewADSBProvider(server.URL)

	ctx := context.Background()
	aircraft, err := provider.FetchMilitary(ctx)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(aircraft) != 2 {
		t.Fatalf("Expected 2 aircraft, got %d", len(aircraft))
	}
	if aircraft[0].Hex != "ae01ce" {
		t.Errorf("Expected hex ae01ce, got %s", aircraft[0].Hex)
	}
	if aircraft[0].TypeCode == nil || *aircraft[0].TypeCode != "F16" {
		t.Error("Expected type code F16")
	}
	if alt, ok := aircraft[1].BaroAltitude.(string); !ok || alt != "ground" {
		t.Errorf("Expected alt_baro \"ground\", got %v", aircraft[1].BaroAltitude)
	}
}

func TestADSBProvider_FetchMilitary_EmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"now": 1756500000.0, "total": 0, "ac": []}`))
	}))
	defer server.Close()

	provider := NewADSBProvider(server.URL)

	aircraft, err := provider.FetchMilitary(context.Background())
	if err != nil {
		t.Fatalf("Expected no error for empty feed, got %v", err)
	}
	if len(aircraft) != 0 {
		t.Errorf("Expected 0 aircraft, got %d", len(aircraft))
	}
}

func TestADSBProvider_FetchMilitary_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream down`))
	}))
	defer server.Close()

	provider := NewADSBProvider(server.URL)

	_, err := provider.FetchMilitary(context.Background())
	if err == nil {
		t.Fatal("Expected error for 502 response")
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ProviderError, got %T", err)
	}
	if perr.Code != constants.ErrCodeUpstreamError {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeUpstreamError, perr.Code)
	}
}

func TestADSBProvider_FetchMilitary_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewADSBProvider(server.URL)

	_, err := provider.FetchMilitary(context.Background())
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeRateLimited {
		t.Fatalf("Expected RATE_LIMITED ProviderError, got %v", err)
	}
}

func TestADSBProvider_FetchMilitary_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ac": not json`))
	}))
	defer server.Close()

	provider := NewADSBProvider(server.URL)

	_, err := provider.FetchMilitary(context.Background())
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeMalformedPayload {
		t.Fatalf("Expected MALFORMED_PAYLOAD ProviderError, got %v", err)
	}
	if !strings.Contains(perr.Details, "not json") {
		t.Errorf("Expected body fragment in error details, got %q", perr.Details)
	}
}

func TestADSBProvider_FetchMilitary_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	provider := NewADSBProvider(server.URL)

	_, err := provider.Fetch(context.Background(), 20*time.Millisecond)
	if err == nil {
		t.Fatal("Expected timeout error")
	}

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeFetchTimeout {
		t.Fatalf("Expected FETCH_TIMEOUT ProviderError, got %v", err)
	}
}

func TestADSBProvider_DefaultBaseURL(t *testing.T) {
	provider := NewADSBProvider("")
	if provider.BaseURL != "https://api.adsb.lol" {
		t.Errorf("Expected default base URL, got %s", provider.BaseURL)
	}
}
