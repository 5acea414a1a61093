package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const defaultIPEchoURL = "https://api.ipify.org?format=json"

// IPClient resolves the caller's public IP address from an IP-echo endpoint.
type IPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPClient creates an IPClient for the given endpoint URL.
func NewIPClient(baseURL string, httpClient *http.Client) *IPClient {
	if baseURL == "" {
		baseURL = defaultIPEchoURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &IPClient{baseURL: baseURL, httpClient: httpClient}
}

// CurrentIP performs a single GET against the IP-echo endpoint and returns
// the public IP reported for this caller.
func (c *IPClient) CurrentIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &ParseError{Err: err}
	}
	if payload.IP == "" {
		return "", &ParseError{Err: errors.New("response has no ip field")}
	}

	return payload.IP, nil
}
