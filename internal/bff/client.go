// Package bff implements the frontend-facing aggregation service. It
// exposes page-based listings and forwards everything else to the domain
// API unchanged, including the gateway identity headers.
package bff

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/masterdata/backend/internal/infrastructure/config"
	"github.com/masterdata/backend/internal/interfaces/http/dto"
)

// Envelope mirrors the domain API response envelope with the payload
// left undecoded so it can be forwarded as-is.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *dto.ErrorInfo  `json:"error,omitempty"`
	Meta    *dto.Meta       `json:"meta,omitempty"`
}

// Identity carries the gateway identity headers to forward downstream.
type Identity struct {
	TenantID  string
	UserID    string
	RequestID string
}

// Client is a thin HTTP client for the domain API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a domain API client from the BFF configuration.
func NewClient(cfg config.BFFConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.DomainAPIURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// Do sends one request to the domain API and decodes the envelope. The
// HTTP status is returned alongside so callers can mirror it.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, identity Identity, body []byte) (int, *Envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build domain API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", identity.TenantID)
	req.Header.Set("X-User-ID", identity.UserID)
	if identity.RequestID != "" {
		req.Header.Set("X-Request-ID", identity.RequestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("domain API request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to decode domain API response: %w", err)
	}
	return resp.StatusCode, &envelope, nil
}
