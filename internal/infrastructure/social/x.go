package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"MarketBrief/internal/domain"
	"MarketBrief/internal/ports"
)

const defaultBaseURL = "https://api.x.com/2"

// Client fetches recent posts through the X API v2. Handles that fail to
// resolve are skipped rather than failing the whole batch.
type Client struct {
	baseURL string
	bearer  string
	maxPer  int
	http    *http.Client
}

var _ ports.TweetSource = (*Client)(nil)

// NewClient registers the bearer token; maxPerHandle defaults to 5.
func NewClient(bearer string, maxPerHandle int) *Client {
	if maxPerHandle <= 0 {
		maxPerHandle = 5
	}
	return &Client{
		baseURL: defaultBaseURL,
		bearer:  bearer,
		maxPer:  maxPerHandle,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch resolves each handle to a user id and pulls its recent posts.
func (c *Client) Fetch(ctx context.Context, handles []string) ([]domain.Tweet, error) {
	if c.bearer == "" {
		return nil, fmt.Errorf("x client misconfigured: empty bearer token")
	}

	var tweets []domain.Tweet
	for _, handle := range handles {
		userID, err := c.lookupUser(ctx, handle)
		if err != nil {
			continue
		}

		posts, err := c.recentPosts(ctx, userID)
		if err != nil {
			continue
		}

		for i, post := range posts {
			if i >= c.maxPer {
				break
			}
			tweets = append(tweets, domain.Tweet{
				Handle: handle,
				Text:   post.Text,
				URL:    fmt.Sprintf("https://x.com/%s/status/%s", handle, post.ID),
			})
		}
	}
	return tweets, nil
}

type userResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type postEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type timelineResponse struct {
	Data []postEntry `json:"data"`
}

func (c *Client) lookupUser(ctx context.Context, handle string) (string, error) {
	var resp userResponse
	url := fmt.Sprintf("%s/users/by/username/%s", c.baseURL, handle)
	if err := c.get(ctx, url, &resp); err != nil {
		return "", err
	}
	if resp.Data.ID == "" {
		return "", fmt.Errorf("no user id for handle %s", handle)
	}
	return resp.Data.ID, nil
}

func (c *Client) recentPosts(ctx context.Context, userID string) ([]postEntry, error) {
	var resp timelineResponse
	limit := c.maxPer * 2
	if limit > 100 {
		limit = 100
	}
	url := fmt.Sprintf("%s/users/%s/tweets?max_results=%d&tweet.fields=created_at", c.baseURL, userID, limit)
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("x api returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
