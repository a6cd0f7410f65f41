package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the document service API root.
	DefaultBaseURL = "https://api.notion.com/v1"

	apiVersion = "2022-06-28"

	// childrenPageSize is the service's per-page cap for child listings.
	childrenPageSize = 100
	// searchPageSize bounds page search results per query.
	searchPageSize = 25

	defaultTimeout = 30 * time.Second
)

// API is the slice of the external document service consumed by the
// resolver and fetcher.
type API interface {
	// ListChildren returns one page of the direct children of a block or
	// page. An empty startCursor requests the first page.
	ListChildren(ctx context.Context, blockID, startCursor string) (*ChildrenPage, error)
	// SearchPages runs a global title search restricted to pages.
	SearchPages(ctx context.Context, query string) (*SearchResult, error)
}

// Client is a minimal REST client for the document service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API root (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a document service client authenticated with token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListChildren implements API.
func (c *Client) ListChildren(ctx context.Context, blockID, startCursor string) (*ChildrenPage, error) {
	q := url.Values{}
	q.Set("page_size", strconv.Itoa(childrenPageSize))
	if startCursor != "" {
		q.Set("start_cursor", startCursor)
	}
	endpoint := fmt.Sprintf("%s/blocks/%s/children?%s", c.baseURL, url.PathEscape(blockID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build list children request: %w", err)
	}

	var page ChildrenPage
	if err := c.do(req, &page); err != nil {
		return nil, fmt.Errorf("list children of %s: %w", blockID, err)
	}
	return &page, nil
}

type searchRequest struct {
	Query    string       `json:"query"`
	Filter   searchFilter `json:"filter"`
	PageSize int          `json:"page_size"`
}

type searchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

// SearchPages implements API.
func (c *Client) SearchPages(ctx context.Context, query string) (*SearchResult, error) {
	body, err := json.Marshal(searchRequest{
		Query:    query,
		Filter:   searchFilter{Value: "page", Property: "object"},
		PageSize: searchPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result SearchResult
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("search pages %q: %w", query, err)
	}
	return &result, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Keep a bounded slice of the body for diagnostics.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
