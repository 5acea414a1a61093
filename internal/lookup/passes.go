package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"overpass-api/internal/models"
)

const defaultOverpassURL = "https://iss-flyover.herokuapp.com/json/"

// OverpassClient resolves upcoming overpass windows for a location.
type OverpassClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOverpassClient creates an OverpassClient for the given prediction
// endpoint URL.
func NewOverpassClient(baseURL string, httpClient *http.Client) *OverpassClient {
	if baseURL == "" {
		baseURL = defaultOverpassURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OverpassClient{baseURL: baseURL, httpClient: httpClient}
}

// PassesByLocation performs a single GET against the prediction endpoint,
// parameterized by latitude and longitude, and returns the upcoming passes
// in the order the endpoint reported them.
func (c *OverpassClient) PassesByLocation(ctx context.Context, coords models.Coordinates) ([]models.Pass, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		Response []models.Pass `json:"response"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ParseError{Err: err}
	}
	if payload.Response == nil {
		return nil, &ParseError{Err: errors.New("response has no passes field")}
	}

	return payload.Response, nil
}
