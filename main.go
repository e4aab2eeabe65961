package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"card-server/internal/kv"
)

// Request body size limits
const (
	// Image uploads are capped at 2MB decoded, so 4MB covers the base64
	// multipart encoding plus the rest of the form.
	maxBodySize = 4 * 1024 * 1024
)

// Handler-level dependencies, wired once in main before the server starts.
var (
	appRepo              *ProfileRepository
	appStore             *ProfileStore
	appBaseURL           string
	appCatalogConfigured bool
	kvBackendType        string
)

// limitBody wraps an HTTP handler to limit request body size
func limitBody(next http.HandlerFunc, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next(w, r)
	}
}

// securityHeaders wraps an HTTP handler to add security headers
func securityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Content Security Policy
		// - img-src 'self' data:: cards carry inline data-URL images
		// - frame-src youtube.com: embedded card videos
		// - style-src 'unsafe-inline': theme colors land in style attributes
		csp := "default-src 'self'; " +
			"img-src 'self' data:; " +
			"frame-src https://www.youtube.com; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'"
		w.Header().Set("Content-Security-Policy", csp)

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")

		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Referrer policy - don't leak full URLs to external sites
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next(w, r)
	}
}

// initKVBackend selects the key-value backend. Redis when REDIS_URL is set
// and reachable, otherwise the in-process store.
func initKVBackend() kv.Store {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		store, err := kv.NewRedisStore(redisURL, "card:")
		if err != nil {
			slog.Warn("redis unavailable, falling back to memory store", "error", err)
		} else {
			kvBackendType = "redis"
			slog.Info("using redis store")
			return store
		}
	}
	kvBackendType = "memory"
	slog.Info("using in-memory store")
	return kv.NewMemoryStore(10000, 2*time.Minute)
}

func main() {
	InitLogger()
	initTemplates()

	backend := initKVBackend()
	defer backend.Close()

	appStore = NewProfileStore(backend)
	catalogURL := os.Getenv("CATALOG_URL")
	appCatalogConfigured = catalogURL != ""
	appRepo = NewProfileRepository(appStore, NewCatalogClient(catalogURL, backend))
	appBaseURL = os.Getenv("BASE_URL")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := http.NewServeMux()

	// Serve static files (picture catalog lives under static/profile_pics)
	fs := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/", securityHeaders(htmlHomeHandler))
	mux.HandleFunc("/card/", securityHeaders(htmlCardHandler))
	mux.HandleFunc("/create-card", securityHeaders(limitBody(htmlCreateCardHandler, maxBodySize)))
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/metrics", metricsHandler)

	handler := RequestLoggingMiddleware(mux)

	slog.Info("starting server",
		"port", port,
		"kv_backend", kvBackendType,
		"catalog_configured", appCatalogConfigured,
	)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
