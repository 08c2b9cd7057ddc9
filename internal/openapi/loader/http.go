package loader

import (
	"context"
	"fmt"
	"net/http"
)

// acceptDocuments prefers JSON, the format kin-openapi parses fastest.
const acceptDocuments = "application/json, application/yaml;q=0.9, */*;q=0.5"

func fetchHTTP(client *http.Client) fetcher {
	return func(ctx context.Context, location string, limit int64) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, fmt.Errorf("openapi loader: build request: %w", err)
		}
		req.Header.Set("Accept", acceptDocuments)

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("openapi loader: fetch %s: %w", location, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("openapi loader: fetch %s: unexpected status %d", location, resp.StatusCode)
		}
		return readLimited(resp.Body, location, limit)
	}
}
