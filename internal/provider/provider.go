// Package provider contains the remote-source adapters that supply
// launchable items: GitHub organization repositories, Jenkins jobs and
// line-oriented URL files.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shuttle/internal/domain"
)

// Provider fetches one batch of items from a single source.
type Provider interface {
	// Title names the source for logs and error messages.
	Title() string

	// Load fetches all items this provider can provide.
	Load(ctx context.Context) ([]domain.Item, error)
}

// httpClient is shared by all HTTP-backed providers.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// getJSON fetches url and decodes the response body into out. A non-2xx
// status is an error; the caller wraps it with its provider title.
func getJSON(ctx context.Context, url, bearerToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
