package lookup

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"overpass-api/internal/models"
)

const defaultGeoIPURL = "https://ipwho.is"

// GeoClient resolves geographic coordinates for an IP address.
type GeoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeoClient creates a GeoClient for the given geolocation endpoint URL.
func NewGeoClient(baseURL string, httpClient *http.Client) *GeoClient {
	if baseURL == "" {
		baseURL = defaultGeoIPURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GeoClient{baseURL: baseURL, httpClient: httpClient}
}

// LocationByIP performs a single GET against the geolocation endpoint and
// returns the coordinates reported for the given IP.
//
// Failures are reported through the payload's success flag rather than the
// HTTP status code; that is the upstream contract, so no status guard is
// applied here.
func (c *GeoClient) LocationByIP(ctx context.Context, ip string) (models.Coordinates, error) {
	url := strings.TrimRight(c.baseURL, "/") + "/" + ip

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Coordinates{}, &NetworkError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Coordinates{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Coordinates{}, &NetworkError{Err: err}
	}

	var payload struct {
		Success   bool    `json:"success"`
		Message   string  `json:"message"`
		IP        string  `json:"ip"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.Coordinates{}, &ParseError{Err: err}
	}

	if !payload.Success {
		return models.Coordinates{}, &ServiceError{Message: payload.Message}
	}

	return models.Coordinates{
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
	}, nil
}
