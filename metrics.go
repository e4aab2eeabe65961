package main

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

var serverStartTime = time.Now()

// HTTP metrics
var (
	httpRequestsTotal atomic.Int64
	httpErrorsTotal   atomic.Int64
)

// Catalog metrics
var (
	catalogFetchesTotal     atomic.Int64
	catalogFetchErrorsTotal atomic.Int64
)

// Cache metrics
var (
	cacheHitsTotal   atomic.Int64
	cacheMissesTotal atomic.Int64
)

// Card metrics
var (
	cardViewsTotal   atomic.Int64
	cardsCreatedTotal atomic.Int64
)

// IncrementCacheHit increments the cache hit counter
func IncrementCacheHit() {
	cacheHitsTotal.Add(1)
}

// IncrementCacheMiss increments the cache miss counter
func IncrementCacheMiss() {
	cacheMissesTotal.Add(1)
}

// IncrementCatalogFetch counts attempts against the published catalog
func IncrementCatalogFetch() {
	catalogFetchesTotal.Add(1)
}

// IncrementCatalogFetchError counts failed catalog fetches
func IncrementCatalogFetchError() {
	catalogFetchErrorsTotal.Add(1)
}

// IncrementCardView counts rendered card pages
func IncrementCardView() {
	cardViewsTotal.Add(1)
}

// IncrementCardCreated counts successfully created profiles
func IncrementCardCreated() {
	cardsCreatedTotal.Add(1)
}

// metricsHandler serves Prometheus-compatible metrics
func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	// Build info metric
	fmt.Fprintf(w, "# HELP card_build_info Build and configuration information\n")
	fmt.Fprintf(w, "# TYPE card_build_info gauge\n")
	fmt.Fprintf(w, "card_build_info{kv_backend=%q,go_version=%q} 1\n\n", kvBackendType, runtime.Version())

	// Process metrics
	fmt.Fprintf(w, "# HELP process_start_time_seconds Unix timestamp of process start\n")
	fmt.Fprintf(w, "# TYPE process_start_time_seconds gauge\n")
	fmt.Fprintf(w, "process_start_time_seconds %d\n\n", serverStartTime.Unix())

	fmt.Fprintf(w, "# HELP process_uptime_seconds Time since process started\n")
	fmt.Fprintf(w, "# TYPE process_uptime_seconds gauge\n")
	fmt.Fprintf(w, "process_uptime_seconds %.0f\n\n", time.Since(serverStartTime).Seconds())

	// Go runtime metrics
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	fmt.Fprintf(w, "# HELP go_goroutines Number of active goroutines\n")
	fmt.Fprintf(w, "# TYPE go_goroutines gauge\n")
	fmt.Fprintf(w, "go_goroutines %d\n\n", runtime.NumGoroutine())

	fmt.Fprintf(w, "# HELP go_memstats_alloc_bytes Currently allocated memory in bytes\n")
	fmt.Fprintf(w, "# TYPE go_memstats_alloc_bytes gauge\n")
	fmt.Fprintf(w, "go_memstats_alloc_bytes %d\n\n", memStats.Alloc)

	fmt.Fprintf(w, "# HELP go_memstats_sys_bytes Total memory obtained from the OS\n")
	fmt.Fprintf(w, "# TYPE go_memstats_sys_bytes gauge\n")
	fmt.Fprintf(w, "go_memstats_sys_bytes %d\n\n", memStats.Sys)

	// HTTP metrics
	fmt.Fprintf(w, "# HELP http_requests_total Total number of HTTP requests\n")
	fmt.Fprintf(w, "# TYPE http_requests_total counter\n")
	fmt.Fprintf(w, "http_requests_total %d\n\n", httpRequestsTotal.Load())

	fmt.Fprintf(w, "# HELP http_errors_total Total number of HTTP 5xx errors\n")
	fmt.Fprintf(w, "# TYPE http_errors_total counter\n")
	fmt.Fprintf(w, "http_errors_total %d\n\n", httpErrorsTotal.Load())

	// Catalog metrics
	fmt.Fprintf(w, "# HELP card_catalog_fetches_total Published catalog fetch attempts\n")
	fmt.Fprintf(w, "# TYPE card_catalog_fetches_total counter\n")
	fmt.Fprintf(w, "card_catalog_fetches_total %d\n\n", catalogFetchesTotal.Load())

	fmt.Fprintf(w, "# HELP card_catalog_fetch_errors_total Failed published catalog fetches\n")
	fmt.Fprintf(w, "# TYPE card_catalog_fetch_errors_total counter\n")
	fmt.Fprintf(w, "card_catalog_fetch_errors_total %d\n\n", catalogFetchErrorsTotal.Load())

	// Card metrics
	fmt.Fprintf(w, "# HELP card_views_total Card pages rendered\n")
	fmt.Fprintf(w, "# TYPE card_views_total counter\n")
	fmt.Fprintf(w, "card_views_total %d\n\n", cardViewsTotal.Load())

	fmt.Fprintf(w, "# HELP card_created_total Profiles created\n")
	fmt.Fprintf(w, "# TYPE card_created_total counter\n")
	fmt.Fprintf(w, "card_created_total %d\n\n", cardsCreatedTotal.Load())

	// Cache metrics
	cacheHits := cacheHitsTotal.Load()
	cacheMisses := cacheMissesTotal.Load()

	fmt.Fprintf(w, "# HELP cache_hits_total Total cache hits\n")
	fmt.Fprintf(w, "# TYPE cache_hits_total counter\n")
	fmt.Fprintf(w, "cache_hits_total %d\n\n", cacheHits)

	fmt.Fprintf(w, "# HELP cache_misses_total Total cache misses\n")
	fmt.Fprintf(w, "# TYPE cache_misses_total counter\n")
	fmt.Fprintf(w, "cache_misses_total %d\n\n", cacheMisses)

	// Cache hit ratio (useful for alerting)
	var hitRatio float64
	if total := cacheHits + cacheMisses; total > 0 {
		hitRatio = float64(cacheHits) / float64(total)
	}
	fmt.Fprintf(w, "# HELP cache_hit_ratio Cache hit ratio (0-1)\n")
	fmt.Fprintf(w, "# TYPE cache_hit_ratio gauge\n")
	fmt.Fprintf(w, "cache_hit_ratio %.4f\n", hitRatio)
}
