// ABOUTME: Snapshot fetcher that captures live page markup for URL-only requests
// ABOUTME: Uses colly to fetch the page with a realistic user agent and size cap

package snapshot

import (
	"context"
	"time"

	"github.com/gocolly/colly"

	"clipper-app-api/core/domain"
	coreerrors "clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
)

const (
	fetchUserAgent = "Mozilla/5.0 (compatible; ClipperAPI/1.0; +https://github.com/clipper-app/clipper-app-api)"
	maxBodySize    = 10 * 1024 * 1024
	defaultTimeout = 15 * time.Second
)

// Fetcher implements interfaces.SnapshotFetcher over a live HTTP fetch.
type Fetcher struct {
	timeout time.Duration
	logger  interfaces.Logger
}

// NewFetcher creates a snapshot fetcher. A non-positive timeout falls back
// to the default.
func NewFetcher(timeout time.Duration, logger interfaces.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch downloads the page at pageURL and wraps it in a PageSnapshot. The
// snapshot URL is the final URL after redirects so relative resources
// resolve against the right base.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (domain.PageSnapshot, error) {
	if pageURL == "" {
		return domain.PageSnapshot{}, &coreerrors.ValidationError{Field: "url", Message: "URL cannot be empty"}
	}

	c := colly.NewCollector(
		colly.UserAgent(fetchUserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.timeout)

	var snapshot domain.PageSnapshot
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		snapshot = domain.PageSnapshot{
			URL:  r.Request.URL.String(),
			HTML: string(r.Body),
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = &coreerrors.ExternalAPIError{
			API:        "page-fetch",
			StatusCode: status,
			Message:    err.Error(),
		}
	})

	if err := ctx.Err(); err != nil {
		return domain.PageSnapshot{}, err
	}

	if err := c.Visit(pageURL); err != nil {
		if fetchErr != nil {
			err = fetchErr
		}
		f.logDebug("page fetch failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return domain.PageSnapshot{}, err
	}
	if fetchErr != nil {
		return domain.PageSnapshot{}, fetchErr
	}
	if snapshot.HTML == "" {
		return domain.PageSnapshot{}, &coreerrors.ExternalAPIError{
			API:     "page-fetch",
			Message: "empty response body",
		}
	}
	return snapshot, nil
}

func (f *Fetcher) logDebug(msg string, fields map[string]interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, fields)
	}
}
