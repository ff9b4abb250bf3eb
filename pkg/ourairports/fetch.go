package ourairports

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single dataset download.
const DefaultTimeout = 5 * time.Minute

// DefaultUserAgent is sent with every dataset request.
const DefaultUserAgent = "ourairports-api"

// Fetcher retrieves the full body of a dataset source.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher downloads sources with a single GET per call. Every error it
// returns is a *FetchError.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher returns a fetcher whose requests time out after timeout.
// A zero timeout selects DefaultTimeout.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch performs the request and buffers the whole response body.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return body, nil
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (fn FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return fn(ctx, url)
}
