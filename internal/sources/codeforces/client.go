// Package codeforces fetches the public contest list and normalizes it into
// Contest records. Like every source adapter it is failure-soft: transport or
// parse problems are logged and yield an empty slice, never an error.
package codeforces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/contesthub/contesthub/internal/domain"
	"github.com/contesthub/contesthub/internal/logger"
)

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

type contestListResponse struct {
	Status string `json:"status"`
	Result []struct {
		ID               int    `json:"id"`
		Name             string `json:"name"`
		Phase            string `json:"phase"`
		StartTimeSeconds int64  `json:"startTimeSeconds"`
		DurationSeconds  int64  `json:"durationSeconds"`
	} `json:"result"`
}

// keptPhases are the lifecycle phases worth showing; system-test and other
// transitional phases are dropped.
var keptPhases = map[string]bool{
	"BEFORE":   true,
	"CODING":   true,
	"FINISHED": true,
}

// FetchContests returns the normalized contest list, or an empty slice on
// any upstream failure.
func (c *Client) FetchContests(ctx context.Context) []domain.Contest {
	var resp contestListResponse
	if err := c.get(ctx, &resp); err != nil {
		c.logger.Warn("codeforces fetch failed", logger.Error(err))
		return nil
	}

	contests := make([]domain.Contest, 0, len(resp.Result))
	for _, raw := range resp.Result {
		if !keptPhases[raw.Phase] {
			continue
		}
		if raw.StartTimeSeconds <= 0 {
			// No usable start instant; discard rather than guess.
			c.logger.Debug("codeforces contest without start time discarded",
				logger.String("name", raw.Name))
			continue
		}
		contests = append(contests, domain.Contest{
			Name:            raw.Name,
			Platform:        domain.PlatformCodeforces,
			StartTime:       time.Unix(raw.StartTimeSeconds, 0).UTC(),
			DurationMinutes: int(raw.DurationSeconds / 60),
			SourceID:        strconv.Itoa(raw.ID),
		})
	}

	return contests
}

func (c *Client) get(ctx context.Context, out *contestListResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
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
	if out.Status != "OK" {
		return fmt.Errorf("upstream status %q", out.Status)
	}
	return nil
}
