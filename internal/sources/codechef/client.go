// Package codechef fetches the contest list endpoint, which splits contests
// into future and past collections. Failure-soft like every source adapter.
package codechef

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

// legacyDateLayout is the non-ISO start field, ex: "14 Dec 2024 20:00:00".
const legacyDateLayout = "02 Jan 2006 15:04:05"

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

type rawContest struct {
	Code         string `json:"contest_code"`
	Name         string `json:"contest_name"`
	StartDate    string `json:"contest_start_date"`
	StartDateISO string `json:"contest_start_date_iso"`
	Duration     string `json:"contest_duration"` // already minutes
}

type contestListResponse struct {
	FutureContests []rawContest `json:"future_contests"`
	PastContests   []rawContest `json:"past_contests"`
}

// FetchContests returns future contests followed by past contests, or an
// empty slice on any upstream failure.
func (c *Client) FetchContests(ctx context.Context) []domain.Contest {
	var resp contestListResponse
	if err := c.get(ctx, &resp); err != nil {
		c.logger.Warn("codechef fetch failed", logger.Error(err))
		return nil
	}

	contests := make([]domain.Contest, 0, len(resp.FutureContests)+len(resp.PastContests))
	for _, raw := range append(resp.FutureContests, resp.PastContests...) {
		start, err := parseStart(raw)
		if err != nil {
			// Unparsable start instant; discard the record instead of
			// mislabeling it as happening now.
			c.logger.Debug("codechef contest with unparsable start discarded",
				logger.String("name", raw.Name),
				logger.Error(err))
			continue
		}

		duration := 0
		if d, err := strconv.Atoi(raw.Duration); err == nil {
			duration = d
		}

		contests = append(contests, domain.Contest{
			Name:            raw.Name,
			Platform:        domain.PlatformCodeChef,
			StartTime:       start,
			DurationMinutes: duration,
			SourceID:        raw.Code,
		})
	}

	return contests
}

// parseStart prefers the ISO field and falls back to the legacy local format.
func parseStart(raw rawContest) (time.Time, error) {
	if raw.StartDateISO != "" {
		t, err := time.Parse(time.RFC3339, raw.StartDateISO)
		if err == nil {
			return t.UTC(), nil
		}
	}
	t, err := time.Parse(legacyDateLayout, raw.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("no parsable start date (%q / %q)", raw.StartDateISO, raw.StartDate)
	}
	return t.UTC(), nil
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
	return nil
}
