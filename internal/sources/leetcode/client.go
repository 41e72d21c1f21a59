// Package leetcode fetches the contest calendar through the public GraphQL
// endpoint. Failure-soft like every source adapter.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/contesthub/contesthub/internal/domain"
	"github.com/contesthub/contesthub/internal/logger"
)

const contestsQuery = `query { allContests { title startTime duration } }`

// HTTPClient allows injecting a client in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	url        string
	httpClient HTTPClient
	logger     logger.Logger
}

type Option func(*Client)

func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(url string, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type contestsResponse struct {
	Data struct {
		AllContests []struct {
			Title     string `json:"title"`
			StartTime int64  `json:"startTime"`
			Duration  int64  `json:"duration"`
		} `json:"allContests"`
	} `json:"data"`
}

// FetchContests returns the normalized contest list, or an empty slice on
// any upstream failure.
func (c *Client) FetchContests(ctx context.Context) []domain.Contest {
	var resp contestsResponse
	if err := c.post(ctx, &resp); err != nil {
		c.logger.Warn("leetcode fetch failed", logger.Error(err))
		return nil
	}

	contests := make([]domain.Contest, 0, len(resp.Data.AllContests))
	for _, raw := range resp.Data.AllContests {
		if raw.StartTime <= 0 {
			c.logger.Debug("leetcode contest without start time discarded",
				logger.String("name", raw.Title))
			continue
		}
		contests = append(contests, domain.Contest{
			Name:            raw.Title,
			Platform:        domain.PlatformLeetCode,
			StartTime:       time.Unix(raw.StartTime, 0).UTC(),
			DurationMinutes: int(raw.Duration / 60),
		})
	}

	return contests
}

func (c *Client) post(ctx context.Context, out *contestsResponse) error {
	payload, err := json.Marshal(graphqlRequest{Query: contestsQuery})
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
