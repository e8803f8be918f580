package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound marks a 404 response. Not retryable: the document is
	// simply not there.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork marks transport failures and non-OK statuses.
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates the underlying http.Client with the package's
// standard timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Client fetches remote documents. The migration flow uses it to pull
// legacy dashboard exports by URL, but any JSON or text endpoint works.
// A nil cache disables caching; headers, when set, go on every request.
type Client struct {
	http    *http.Client
	cache   *Cache
	headers map[string]string
}

// NewClient creates a Client over the given cache and default headers,
// either of which may be nil.
func NewClient(cache *Cache, headers map[string]string) *Client {
	return &Client{http: NewHTTPClient(), cache: cache, headers: headers}
}

// Cached loads the value for key into v from the cache, or runs fetch
// under [RetryWithBackoff] and stores what it produced. refresh skips
// the cache read but still writes the fresh result back.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	if c.cache != nil && !refresh {
		if ok, _ := c.cache.Get(key, v); ok {
			return nil
		}
	}
	if err := RetryWithBackoff(ctx, fetch); err != nil {
		return err
	}
	if c.cache != nil {
		_ = c.cache.Set(key, v)
	}
	return nil
}

// Get issues a GET request and decodes the JSON response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	body, err := c.do(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

// GetText issues a GET request and returns the raw body as a string,
// for endpoints that don't serve JSON.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.do(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	return string(data), err
}

// do runs the request and classifies the response: 200 passes the body
// through, 404 is permanent, 5xx and transport failures are retryable.
func (c *Client) do(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotFound
	case resp.StatusCode >= 500:
		resp.Body.Close()
		return nil, Retryable(fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode))
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}
}
