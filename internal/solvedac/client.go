// Package solvedac queries the solved.ac API for problem recommendations.
package solvedac

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the solved.ac API v3 endpoint.
const DefaultBaseURL = "https://solved.ac/api/v3"

// tierCodes maps tier aliases to solved.ac numeric tier codes.
var tierCodes = map[string]string{
	"b1": "5", "b2": "4", "b3": "3", "b4": "2",
	"s1": "10", "s2": "9", "s3": "8", "s4": "7",
	"g1": "15", "g2": "14", "g3": "13", "g4": "12",
	"p1": "20", "p2": "19", "p3": "18", "p4": "17",
	"d": "21", "r": "22",
}

// ValidTiers lists the accepted tier aliases, sorted.
func ValidTiers() []string {
	tiers := make([]string, 0, len(tierCodes))
	for t := range tierCodes {
		tiers = append(tiers, t)
	}
	sort.Strings(tiers)
	return tiers
}

// Recommendation is one randomly selected problem.
type Recommendation struct {
	ProblemID int
	Title     string
	Tier      string
	URL       string
}

// Client queries solved.ac.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
	pick       func(n int) int
}

// NewClient creates a Client for the given API base URL.
// An empty baseURL selects the production endpoint.
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
		logger:     zap.NewNop(),
		pick:       rand.Intn,
	}
}

// SetUserAgent overrides the User-Agent header.
func (c *Client) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

// SetLogger attaches a logger for query debug lines.
func (c *Client) SetLogger(logger *zap.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

type searchResponse struct {
	Items []struct {
		ProblemID int    `json:"problemId"`
		TitleKo   string `json:"titleKo"`
	} `json:"items"`
}

// RandomProblem returns a random problem from the given tier.
// Unknown tier aliases are rejected with the list of valid ones.
func (c *Client) RandomProblem(ctx context.Context, tier string) (*Recommendation, error) {
	code, ok := tierCodes[tier]
	if !ok {
		return nil, fmt.Errorf("invalid tier %q (valid tiers: %s)", tier, strings.Join(ValidTiers(), ", "))
	}

	url := fmt.Sprintf("%s/search/problem?query=*%%20tier:%s", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query solved.ac: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to query solved.ac: unexpected status %s", resp.Status)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("failed to decode solved.ac response: %w", err)
	}

	if len(search.Items) == 0 {
		return nil, fmt.Errorf("no problems found for tier %q", tier)
	}

	c.logger.Debug("fetched tier problems",
		zap.String("tier", tier),
		zap.Int("candidates", len(search.Items)))

	item := search.Items[c.pick(len(search.Items))]
	return &Recommendation{
		ProblemID: item.ProblemID,
		Title:     item.TitleKo,
		Tier:      tier,
		URL:       fmt.Sprintf("https://www.acmicpc.net/problem/%d", item.ProblemID),
	}, nil
}
