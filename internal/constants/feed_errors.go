package constants

// Feed Error Codes
// These constants define specific failure scenarios for the upstream
// ADS-B data provider.

const (
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeFetchTimeout      = "FETCH_TIMEOUT"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeMalformedPayload  = "MALFORMED_PAYLOAD"
	ErrCodeUpstreamError     = "UPSTREAM_ERROR"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
)

// FeedErrorMessages maps error codes to human-readable messages used in
// logs and API error responses.
var FeedErrorMessages = map[string]string{
	ErrCodeNetworkError:      "Failed to reach the ADS-B feed",
	ErrCodeFetchTimeout:      "ADS-B feed did not respond within the fetch timeout",
	ErrCodeRateLimited:       "ADS-B feed is rate limiting requests",
	ErrCodeMalformedPayload:  "ADS-B feed returned a payload that could not be decoded",
	ErrCodeUpstreamError:     "ADS-B feed returned an unexpected status",
	ErrCodeInvalidDataFormat: "Request or record failed validation",
}

// GetErrorMessage returns the message for a code, or the code itself
// when no message is registered.
func GetErrorMessage(code string) string {
	if msg, ok := FeedErrorMessages[code]; ok {
		return msg
	}
	return code
}
