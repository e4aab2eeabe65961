package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"card-server/internal/kv"
)

const (
	catalogCacheKey = "catalog"
	catalogCacheTTL = 60 * time.Second
	// Published catalogs are small static documents; cap the read anyway.
	maxCatalogBytes = 4 * 1024 * 1024
)

// catalogHTTPClient bounds the only asynchronous boundary in the system.
// No retries; a slow or failed fetch resolves to an upstream error after
// the attempt completes.
var catalogHTTPClient = &http.Client{
	Timeout: 5 * time.Second,
}

// CatalogClient reads the published profile catalog: a static collection
// fetched by a single bulk read and filtered by username afterwards; no
// indexed query interface is assumed. Responses are cached briefly and
// concurrent fetches are deduplicated with singleflight.
type CatalogClient struct {
	url   string
	cache kv.Store
	group singleflight.Group
}

// NewCatalogClient creates a client for the catalog document at url.
// An empty url disables the published tier entirely.
func NewCatalogClient(url string, cache kv.Store) *CatalogClient {
	return &CatalogClient{url: url, cache: cache}
}

// FindProfile resolves a username against the published catalog.
// Returns (nil, nil) when the catalog has no such profile, and an
// ErrUpstreamFetch-wrapped error when the fetch itself failed.
func (c *CatalogClient) FindProfile(ctx context.Context, username string) (*Profile, error) {
	if c.url == "" {
		return nil, nil
	}

	profiles, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Username == username {
			return &profiles[i], nil
		}
	}
	return nil, nil
}

// fetchAll returns the full catalog, from cache when fresh.
func (c *CatalogClient) fetchAll(ctx context.Context) ([]Profile, error) {
	if data, found, err := c.cache.Get(ctx, catalogCacheKey); err == nil && found {
		IncrementCacheHit()
		var profiles []Profile
		if err := json.Unmarshal(data, &profiles); err == nil {
			return profiles, nil
		}
	}
	IncrementCacheMiss()

	result, err, shared := c.group.Do(catalogCacheKey, func() (interface{}, error) {
		return c.fetchDirect(ctx)
	})
	if shared {
		slog.Debug("singleflight: shared catalog fetch")
	}
	if err != nil {
		return nil, err
	}
	return result.([]Profile), nil
}

func (c *CatalogClient) fetchDirect(ctx context.Context) ([]Profile, error) {
	IncrementCatalogFetch()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := catalogHTTPClient.Do(req)
	if err != nil {
		IncrementCatalogFetchError()
		slog.Error("catalog fetch failed", "url", c.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		IncrementCatalogFetchError()
		slog.Error("catalog fetch returned non-success", "url", c.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		IncrementCatalogFetchError()
		slog.Error("catalog read failed", "url", c.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}

	var profiles []Profile
	if err := json.Unmarshal(body, &profiles); err != nil {
		IncrementCatalogFetchError()
		slog.Error("catalog decode failed", "url", c.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}

	if err := c.cache.Set(ctx, catalogCacheKey, body, catalogCacheTTL); err != nil {
		slog.Warn("catalog cache write failed", "error", err)
	}

	return profiles, nil
}
