// Package boj fetches and parses problem pages from Baekjoon Online Judge.
package boj

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bojctl/internal/problem"
)

// DefaultBaseURL is the BOJ problem page URL prefix.
const DefaultBaseURL = "https://www.acmicpc.net/problem/"

// DefaultUserAgent is sent with every request. BOJ rejects requests
// without a browser User-Agent.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client fetches problem pages from BOJ.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient creates a Client for the given problem page base URL.
// An empty baseURL selects the production BOJ URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  DefaultUserAgent,
		logger:     zap.NewNop(),
	}
}

// SetUserAgent overrides the User-Agent header.
func (c *Client) SetUserAgent(userAgent string) {
	if userAgent != "" {
		c.userAgent = userAgent
	}
}

// SetLogger attaches a logger for fetch debug lines.
func (c *Client) SetLogger(logger *zap.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// FetchProblem downloads and parses the page for the given problem ID.
func (c *Client) FetchProblem(ctx context.Context, id int) (*problem.Problem, error) {
	url := fmt.Sprintf("%s%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch problem %d: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch problem %d: unexpected status %s", id, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem %d page: %w", id, err)
	}

	c.logger.Debug("fetched problem page",
		zap.Int("problem", id),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	p, err := ParseProblem(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse problem %d page: %w", id, err)
	}
	p.ID = id
	return p, nil
}
