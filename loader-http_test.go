package dper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPLoader(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<peers/>"))
	}))
	defer s.Close()

	b, err := NewHTTPLoader(s.URL, HTTPLoaderOptions{}).Load()
	require.NoError(t, err)
	require.Equal(t, "<peers/>", string(b))
}

func TestHTTPLoaderStatusError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer s.Close()

	// A cache doesn't help if the server responds with an error
	cache := filepath.Join(t.TempDir(), "cache.xml")
	require.NoError(t, os.WriteFile(cache, []byte("cached"), 0644))

	_, err := NewHTTPLoader(s.URL, HTTPLoaderOptions{CacheFile: cache}).Load()
	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestHTTPLoaderCache(t *testing.T) {
	var (
		requests        int
		ifModifiedSince string
	)
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		ifModifiedSince = r.Header.Get("If-Modified-Since")
		if ifModifiedSince != "" {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Write([]byte("fresh"))
	}))

	cache := filepath.Join(t.TempDir(), "cache.xml")
	l := NewHTTPLoader(s.URL, HTTPLoaderOptions{CacheFile: cache})

	// First load has no cache, the download is stored
	b, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, "fresh", string(b))
	require.Empty(t, ifModifiedSince)
	cached, err := os.ReadFile(cache)
	require.NoError(t, err)
	require.Equal(t, "fresh", string(cached))

	// Change the cache so it's clear where the content comes from
	mtime := time.Date(2020, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, os.WriteFile(cache, []byte("cached"), 0644))
	require.NoError(t, os.Chtimes(cache, mtime, mtime))

	// Second load is conditional and served from cache
	b, err = l.Load()
	require.NoError(t, err)
	require.Equal(t, "cached", string(b))
	require.Equal(t, "Fri, 01 May 2020 10:00:00 GMT", ifModifiedSince)
	require.Equal(t, 2, requests)

	// Offline doesn't contact the server
	b, err = NewHTTPLoader(s.URL, HTTPLoaderOptions{CacheFile: cache, Offline: true}).Load()
	require.NoError(t, err)
	require.Equal(t, "cached", string(b))
	require.Equal(t, 2, requests)

	// Server unreachable, fall back to the cache
	s.Close()
	b, err = l.Load()
	require.NoError(t, err)
	require.Equal(t, "cached", string(b))
}

func TestHTTPLoaderOfflineNoCache(t *testing.T) {
	_, err := NewHTTPLoader("http://127.0.0.1:1/", HTTPLoaderOptions{Offline: true}).Load()
	require.Error(t, err)
}
