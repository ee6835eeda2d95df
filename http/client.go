// Package http provides the HTTP client for the MediaWiki APIs: the REST
// summary endpoint, the action API parse endpoint, and opensearch title
// search.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mwierzba/wikiread"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for API requests. Each fetch is a
// single attempt; there are no retries, so a slow endpoint fails fast
// rather than blocking the fallback decision.
const DefaultTimeout = 10 * time.Second

// defaultUserAgent identifies the client per the Wikimedia API etiquette.
const defaultUserAgent = "wikiread/1.0 (https://github.com/mwierzba/wikiread)"

// Compile-time interface verification.
var (
	_ wikiread.SummaryService = (*Client)(nil)
	_ wikiread.PageService    = (*Client)(nil)
	_ wikiread.SearchService  = (*Client)(nil)
)

// Client talks to a MediaWiki installation for one language edition.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	userAgent  string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLanguage targets a Wikipedia language edition, e.g. "de".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.baseURL = fmt.Sprintf("https://%s.wikipedia.org", lang)
	}
}

// WithBaseURL targets an arbitrary MediaWiki installation.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit caps requests per second. Wikimedia asks bots to stay
// serial and modest; the default is 2 rps with a burst of 1.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the English Wikipedia unless configured
// otherwise.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   "https://en.wikipedia.org",
		limiter:   rate.NewLimiter(rate.Limit(2), 1),
		userAgent: defaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// summaryResponse mirrors the REST summary endpoint payload.
type summaryResponse struct {
	PageID    int64  `json:"pageid"`
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Timestamp string `json:"timestamp"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs *struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// FetchSummary fetches the plain-text summary record for a title. This is
// the one call whose failure fails the whole article fetch, so transport
// and decode errors are returned as-is.
func (c *Client) FetchSummary(ctx context.Context, title string) (*wikiread.Summary, error) {
	endpoint := c.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var sr summaryResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("decode summary response: %w", err)
	}

	summary := &wikiread.Summary{
		PageID:  sr.PageID,
		Title:   sr.Title,
		Extract: sr.Extract,
	}
	if sr.Thumbnail != nil {
		summary.ThumbnailURL = sr.Thumbnail.Source
	}
	if sr.ContentURLs != nil {
		summary.PageURL = sr.ContentURLs.Desktop.Page
	}
	if ts, err := time.Parse(time.RFC3339, sr.Timestamp); err == nil {
		summary.Timestamp = ts
	}
	return summary, nil
}

// parseResponse mirrors the action API parse payload. The rendered HTML
// lives under the legacy "*" key.
type parseResponse struct {
	Parse *struct {
		Title string            `json:"title"`
		Text  map[string]string `json:"text"`
	} `json:"parse"`
}

// FetchPageHTML fetches the rendered parse HTML for a title. A response
// without rendered text yields EUNAVAILABLE; callers treat any error here
// as "no sections available" rather than a fetch failure.
func (c *Client) FetchPageHTML(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", title)
	q.Set("format", "json")
	q.Set("prop", "text")
	q.Set("redirects", "1")
	endpoint := c.baseURL + "/w/api.php?" + q.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	var pr parseResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return "", fmt.Errorf("decode parse response: %w", err)
	}
	if pr.Parse == nil {
		return "", wikiread.Errorf(wikiread.EUNAVAILABLE, "no parse result for %q", title)
	}
	html, ok := pr.Parse.Text["*"]
	if !ok || html == "" {
		return "", wikiread.Errorf(wikiread.EUNAVAILABLE, "no rendered text for %q", title)
	}
	return html, nil
}

// get performs one rate-limited GET and returns the response body.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, wikiread.Errorf(wikiread.ENOTFOUND, "page not found")
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, endpoint)
	}

	return io.ReadAll(resp.Body)
}
