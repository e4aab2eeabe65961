package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"card-server/internal/kv"
)

func newTestCatalog(t *testing.T, url string) *CatalogClient {
	t.Helper()
	backend := kv.NewMemoryStore(1000, time.Minute)
	t.Cleanup(func() { backend.Close() })
	return NewCatalogClient(url, backend)
}

func TestCatalogDisabledWithoutURL(t *testing.T) {
	c := newTestCatalog(t, "")

	p, err := c.FindProfile(context.Background(), "anyone")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCatalogFindProfile(t *testing.T) {
	srv := catalogServer(t, []Profile{
		{Username: "alice", Name: "Alice"},
		{Username: "bob", Name: "Bob"},
	})
	c := newTestCatalog(t, srv.URL)

	p, err := c.FindProfile(context.Background(), "bob")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Bob", p.Name)

	p, err = c.FindProfile(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCatalogCachesBulkFetch(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode([]Profile{{Username: "alice", Name: "Alice"}})
	}))
	t.Cleanup(srv.Close)
	c := newTestCatalog(t, srv.URL)

	for i := 0; i < 3; i++ {
		_, err := c.FindProfile(context.Background(), "alice")
		require.NoError(t, err)
	}

	// One bulk fetch serves every lookup within the cache window.
	assert.Equal(t, int64(1), hits.Load())
}

func TestCatalogUpstreamErrors(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)
		c := newTestCatalog(t, srv.URL)

		_, err := c.FindProfile(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrUpstreamFetch)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		t.Cleanup(srv.Close)
		c := newTestCatalog(t, srv.URL)

		_, err := c.FindProfile(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrUpstreamFetch)
	})

	t.Run("unreachable host", func(t *testing.T) {
		c := newTestCatalog(t, "http://127.0.0.1:1/catalog.json")

		_, err := c.FindProfile(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrUpstreamFetch)
	})
}
