package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"wxcli/pkg/logger"
)

// Client handles HTTP requests to the weather provider
type Client struct {
	config     ProviderConfig
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new weather API client
func NewClient(config ProviderConfig, apiKey string, logger *logger.Logger) *Client {
	return &Client{
		config: config,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: time.Duration(config.RequestTimeoutSeconds) * time.Second,
		},
		logger: logger.Named("weather-client"),
	}
}

// FetchCurrent issues a single GET to the provider's current-weather
// endpoint for the given city. One attempt, no retries: every outcome maps
// to exactly one error category or a decoded response.
func (c *Client) FetchCurrent(ctx context.Context, city string) (*CurrentResponse, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", c.config.Units)
	requestURL := c.config.APIBaseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Fetching current weather",
		logger.String("city", city),
		logger.String("units", c.config.Units),
		logger.Int("timeout_seconds", c.config.RequestTimeoutSeconds))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		netErr := &NetworkError{Err: err, Timeout: isTimeout(err)}
		c.logger.Warn("Weather API request failed",
			logger.String("city", city),
			logger.Bool("timeout", netErr.Timeout),
			logger.Error(err))
		return nil, netErr
	}
	defer resp.Body.Close()

	c.logger.Debug("Weather API responded",
		logger.String("city", city),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("duration", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &InvalidCredentialError{StatusCode: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &CityNotFoundError{City: city}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &ProviderError{StatusCode: resp.StatusCode}
	}

	var current CurrentResponse
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		return nil, &IncompleteDataError{Err: err}
	}
	return &current, nil
}

// isTimeout reports whether a transport error was a timeout rather than a
// plain connection failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) {
		return timeoutErr.Timeout()
	}
	return false
}
