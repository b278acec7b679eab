package dper

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// HTTPLoader reads a peer document from a server via HTTP(S). With a cache
// file it only downloads documents that changed since the last run, and it
// falls back to the cached copy when the server can't be reached.
type HTTPLoader struct {
	url string
	opt HTTPLoaderOptions
}

// HTTPLoaderOptions holds options for HTTP document loaders.
type HTTPLoaderOptions struct {
	// Local copy of the document, refreshed on every successful download.
	CacheFile string

	// Only read the cache file, don't contact the server.
	Offline bool

	// Request timeout. Defaults to 30 seconds.
	Timeout time.Duration

	// Defaults to http.DefaultClient.
	Client *http.Client
}

var _ Loader = &HTTPLoader{}

const defaultHTTPTimeout = 30 * time.Second

func NewHTTPLoader(url string, opt HTTPLoaderOptions) *HTTPLoader {
	if opt.Timeout == 0 {
		opt.Timeout = defaultHTTPTimeout
	}
	if opt.Client == nil {
		opt.Client = http.DefaultClient
	}
	return &HTTPLoader{url, opt}
}

func (l *HTTPLoader) Load() ([]byte, error) {
	log := Log.WithField("url", l.url)
	if l.opt.Offline && l.opt.CacheFile == "" {
		return nil, errors.Errorf("no cache for '%s' in offline mode", l.url)
	}
	if l.opt.CacheFile == "" {
		b, _, err := l.get(time.Time{}, log)
		return b, err
	}
	log = log.WithField("cache", l.opt.CacheFile)
	if l.opt.Offline {
		log.Debug("offline, using cached document")
		return l.readCache()
	}

	var modified time.Time
	if fi, err := os.Stat(l.opt.CacheFile); err == nil {
		modified = fi.ModTime()
	}

	b, notModified, err := l.get(modified, log)
	if err != nil {
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			return nil, err
		}
		log.WithError(err).Warn("failed to fetch document, reverting to cached data")
		return l.readCache()
	}
	if notModified {
		log.WithField("modified", modified).Debug("document not modified")
		return l.readCache()
	}
	if err := os.WriteFile(l.opt.CacheFile, b, 0644); err != nil {
		return nil, errors.Wrapf(err, "failed to write cache '%s'", l.opt.CacheFile)
	}
	return b, nil
}

func (l *HTTPLoader) String() string {
	return l.url
}

// Fetches the document. If modified is set, the server may respond with 304
// in which case notModified is true and no content returned.
func (l *HTTPLoader) get(modified time.Time, log *logrus.Entry) (b []byte, notModified bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.opt.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", l.url, nil)
	if err != nil {
		return nil, false, err
	}
	if !modified.IsZero() {
		req.Header.Set("If-Modified-Since", modified.UTC().Format(http.TimeFormat))
	}

	resp, err := l.opt.Client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	log.WithField("status", resp.StatusCode).Debug("GET completed")

	if resp.StatusCode == http.StatusNotModified && !modified.IsZero() {
		return nil, true, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false, &HTTPStatusError{URL: l.url, StatusCode: resp.StatusCode}
	}
	b, err = io.ReadAll(resp.Body)
	return b, false, err
}

func (l *HTTPLoader) readCache() ([]byte, error) {
	b, err := os.ReadFile(l.opt.CacheFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cache '%s'", l.opt.CacheFile)
	}
	return b, nil
}
