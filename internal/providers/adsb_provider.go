package providers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"skywatch/milmon/internal/constants"
	"skywatch/milmon/internal/models"
)

// ADSBProvider implements AircraftSource against the adsb.lol v2 API.
type ADSBProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewADSBProvider creates a provider for the given feed base URL. The
// HTTP client carries no timeout of its own; the per-fetch deadline
// comes from the caller's context.
func NewADSBProvider(baseURL string) *ADSBProvider {
	if baseURL == "" {
		baseURL = "https://api.adsb.lol" // Default
	}

	return &ADSBProvider{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// GetProviderType returns the provider type identifier
func (p *ADSBProvider) GetProviderType() string {
	return "adsb_lol_v2"
}

// FetchMilitary fetches the current military aircraft set from /v2/mil.
func (p *ADSBProvider) FetchMilitary(ctx context.Context) ([]models.RawAircraft, error) {
	var report models.FeedReport
	if err := p.doGET(ctx, "/v2/mil", &report); err != nil {
		return nil, err
	}
	return report.Aircraft, nil
}

// doGET performs a GET request and decodes the JSON body into result
func (p *ADSBProvider) doGET(ctx context.Context, endpoint string, result interface{}) error {
	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &ProviderError{
				Code:    constants.ErrCodeFetchTimeout,
				Message: constants.GetErrorMessage(constants.ErrCodeFetchTimeout),
				Err:     err,
			}
		}
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if err := p.handleHTTPError(resp, endpoint); err != nil {
		return err
	}

	// Tee the head of the body so a decode failure can report what the
	// upstream actually sent; the decoder consumes the stream.
	var head bytes.Buffer
	body := io.MultiReader(io.TeeReader(io.LimitReader(resp.Body, 512), &head), resp.Body)
	if err := json.NewDecoder(body).Decode(result); err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeMalformedPayload,
			Message: constants.GetErrorMessage(constants.ErrCodeMalformedPayload),
			Details: head.String(),
			Err:     err,
		}
	}

	return nil
}

// handleHTTPError converts HTTP errors to ProviderError
func (p *ADSBProvider) handleHTTPError(resp *http.Response, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	body := string(bodyBytes)

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: body,
		}
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return &ProviderError{
			Code:    constants.ErrCodeFetchTimeout,
			Message: constants.GetErrorMessage(constants.ErrCodeFetchTimeout),
			Details: body,
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodeUpstreamError,
			Message: fmt.Sprintf("HTTP %d from %s", resp.StatusCode, endpoint),
			Details: body,
		}
	}
}

// Fetch is a convenience wrapper that applies timeout as the context
// deadline for one fetch.
func (p *ADSBProvider) Fetch(ctx context.Context, timeout time.Duration) ([]models.RawAircraft, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.FetchMilitary(fetchCtx)
}
