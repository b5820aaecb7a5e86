// Package airly provides a client for the Airly air-quality REST API:
// installations, measurements, indexes and measurement metadata.
package airly

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Airly API base URL.
	DefaultBaseURL = "https://airapi.airly.eu/v2"

	// apiKeyLength is the exact length of a valid Airly API key.
	apiKeyLength = 32
)

// Endpoint paths relative to the base URL.
const (
	pathInstallations        = "installations"
	pathNearestInstallations = "installations/nearest"
	pathIndexes              = "indexes"
	pathMeasurementTypes     = "measurements/types"
	pathMeasurements         = "measurements/installation"
	pathNearestMeasurements  = "measurements/nearest"
	pathPointMeasurements    = "measurements/point"
)

// ClientConfig holds configuration for the Airly client.
type ClientConfig struct {
	// APIKey is the Airly API key (required, exactly 32 characters).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional, defaults to
	// http.DefaultClient). Wrap it with the resilience or telemetry
	// packages to add retries, circuit breaking or instrumentation.
	HTTPClient HTTPDoer

	// Logger for client operations.
	Logger zerolog.Logger
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an Airly API client. It holds no mutable state and is safe for
// reuse across repeated calls.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Airly client. It fails with ErrInvalidConfig when
// the API key is not exactly 32 characters or cannot be carried as an HTTP
// header value.
func NewClient(cfg ClientConfig) (*Client, error) {
	if len(cfg.APIKey) != apiKeyLength {
		return nil, fmt.Errorf("%w: api key must be exactly %d characters, got %d",
			ErrInvalidConfig, apiKeyLength, len(cfg.APIKey))
	}
	for i := 0; i < len(cfg.APIKey); i++ {
		if b := cfg.APIKey[i]; b < 0x21 || b > 0x7e {
			return nil, fmt.Errorf("%w: api key contains characters not usable in a header value",
				ErrInvalidConfig)
		}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// GetInstallation fetches a single installation by its numeric id.
func (c *Client) GetInstallation(ctx context.Context, installationID int) (*Installation, error) {
	url := fmt.Sprintf("%s/%s/%d", c.baseURL, pathInstallations, installationID)

	var installation Installation
	if err := c.get(ctx, url, &installation); err != nil {
		return nil, fmt.Errorf("fetch installation: %w", err)
	}
	return &installation, nil
}

// GetNearestInstallations fetches installations closest to the circle's
// center, within its radius, capped at maxResults entries.
func (c *Client) GetNearestInstallations(ctx context.Context, circle GeoCircle, maxResults int) ([]Installation, error) {
	point := circle.Point()
	url := fmt.Sprintf("%s/%s?lat=%.6f&lng=%.6f&maxDistanceKM=%d&maxResults=%d",
		c.baseURL, pathNearestInstallations, point.Lat(), point.Lng(), circle.RadiusKM(), maxResults)

	var installations []Installation
	if err := c.get(ctx, url, &installations); err != nil {
		return nil, fmt.Errorf("fetch nearest installations: %w", err)
	}
	return installations, nil
}

// GetIndexTypes lists the index types the API can compute.
func (c *Client) GetIndexTypes(ctx context.Context) ([]IndexType, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, pathIndexes)

	var indexes []IndexType
	if err := c.get(ctx, url, &indexes); err != nil {
		return nil, fmt.Errorf("fetch index types: %w", err)
	}
	return indexes, nil
}

// GetMeasurementTypes lists metadata for the measurable quantities.
func (c *Client) GetMeasurementTypes(ctx context.Context) ([]MeasurementType, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, pathMeasurementTypes)

	var types []MeasurementType
	if err := c.get(ctx, url, &types); err != nil {
		return nil, fmt.Errorf("fetch measurement types: %w", err)
	}
	return types, nil
}

// GetInstallationMeasurements fetches measurements for one installation by
// id. includeWind adds wind readings to the response.
func (c *Client) GetInstallationMeasurements(ctx context.Context, installationID int, indexType IndexType, includeWind bool) (*Measurements, error) {
	name, err := requireIndexName(indexType)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?%sindexType=%s&installationId=%d",
		c.baseURL, pathMeasurements, windParam(includeWind), name, installationID)

	var measurements Measurements
	if err := c.get(ctx, url, &measurements); err != nil {
		return nil, fmt.Errorf("fetch installation measurements: %w", err)
	}
	return &measurements, nil
}

// GetNearestMeasurements fetches measurements for the installation closest
// to the circle's center.
func (c *Client) GetNearestMeasurements(ctx context.Context, indexType IndexType, circle GeoCircle) (*Measurements, error) {
	name, err := requireIndexName(indexType)
	if err != nil {
		return nil, err
	}

	point := circle.Point()
	url := fmt.Sprintf("%s/%s?indexType=%s&lat=%.6f&lng=%.6f&maxDistanceKM=%d",
		c.baseURL, pathNearestMeasurements, name, point.Lat(), point.Lng(), circle.RadiusKM())

	var measurements Measurements
	if err := c.get(ctx, url, &measurements); err != nil {
		return nil, fmt.Errorf("fetch nearest measurements: %w", err)
	}
	return &measurements, nil
}

// GetPointMeasurements fetches measurements interpolated from nearby
// installations for an arbitrary point.
func (c *Client) GetPointMeasurements(ctx context.Context, indexType IndexType, point GeoPoint) (*Measurements, error) {
	name, err := requireIndexName(indexType)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?indexType=%s&lat=%.6f&lng=%.6f",
		c.baseURL, pathPointMeasurements, name, point.Lat(), point.Lng())

	var measurements Measurements
	if err := c.get(ctx, url, &measurements); err != nil {
		return nil, fmt.Errorf("fetch point measurements: %w", err)
	}
	return &measurements, nil
}

// get executes a GET against the given URL with the fixed Airly headers and
// decodes the JSON response into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: creating request: %w", ErrTransport, err)
	}
	c.setHeaders(req)

	c.logger.Debug().Str("url", url).Msg("requesting airly endpoint")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: executing request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("airly endpoint responded")

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w (body %q)", ErrDecode, err, snippet(body))
	}
	return nil
}

// setHeaders attaches the three fixed headers every Airly request carries.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("apikey", c.apiKey)
}

// requireIndexName extracts the index name used as a query parameter.
func requireIndexName(indexType IndexType) (string, error) {
	if indexType.Name == nil || *indexType.Name == "" {
		return "", fmt.Errorf("%w: index type name is required", ErrInvalidParam)
	}
	return *indexType.Name, nil
}

// windParam renders the optional leading wind-inclusion query parameter.
func windParam(includeWind bool) string {
	if includeWind {
		return "includeWind=true&"
	}
	return ""
}

// snippet caps diagnostic body excerpts embedded in decode errors.
func snippet(body []byte) string {
	const max = 256
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
