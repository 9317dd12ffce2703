package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// browserUA mirrors a desktop browser; the upstream pages serve a different
// markup to obvious bots.
const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 10 * time.Second

// Client fetches raw HTML pages. One best-effort attempt per call, no
// retries: an unreachable page is reported as an error and the caller
// renders "no data" instead.
type Client struct {
	HTTP *http.Client
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{HTTP: &http.Client{Timeout: timeout}}
}

// GetPage issues a single GET and returns the body on a 2xx response.
func (c *Client) GetPage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpx: create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpx: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("httpx: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpx: read body: %w", err)
	}
	return body, nil
}
