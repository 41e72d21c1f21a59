// Package youtube pages through a playlist on the YouTube Data API v3 and
// maps each item to a VideoEntry. One client serves every platform playlist;
// only the playlist id differs per call.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/contesthub/contesthub/internal/domain"
	"github.com/contesthub/contesthub/internal/logger"
)

const pageSize = 50

// HTTPClient allows injecting a client in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	logger     logger.Logger
}

type Option func(*Client)

func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL, apiKey string, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title      string `json:"title"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

// FetchPlaylist accumulates every item of a playlist by following the page
// token until it is absent. A page without an items array terminates
// pagination; whatever was collected so far is kept. Any transport or parse
// failure yields an empty slice.
func (c *Client) FetchPlaylist(ctx context.Context, playlistID string) []domain.VideoEntry {
	if c.apiKey == "" || playlistID == "" {
		return nil
	}

	var entries []domain.VideoEntry
	pageToken := ""

	for {
		page, err := c.fetchPage(ctx, playlistID, pageToken)
		if err != nil {
			c.logger.Warn("playlist fetch failed",
				logger.String("playlist", playlistID),
				logger.Error(err))
			return nil
		}

		if page.Items == nil {
			break
		}

		for _, item := range page.Items {
			id := item.Snippet.ResourceID.VideoID
			entries = append(entries, domain.VideoEntry{
				Title:    item.Snippet.Title,
				VideoID:  id,
				VideoURL: fmt.Sprintf("https://www.youtube.com/watch?v=%s", id),
			})
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return entries
}

func (c *Client) fetchPage(ctx context.Context, playlistID, pageToken string) (*playlistItemsResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", fmt.Sprintf("%d", pageSize))
	params.Set("playlistId", playlistID)
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var page playlistItemsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &page, nil
}
