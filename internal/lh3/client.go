// Package lh3 is the thin client for the chat platform's transaction
// API. It only knows how to page one day of session records; all
// aggregation lives elsewhere.
package lh3

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/scholarsportal/askdata/internal/types"
)

// Client fetches daily chat transaction lists over HTTP basic auth.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a new chat platform client.
func NewClient(baseURL, username, password string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchDay returns the sessions that started on the given day. A day
// without chats is a success with an empty list, distinct from a fetch
// failure; the API signals the former with 404 on the day path.
func (c *Client) FetchDay(ctx context.Context, day time.Time) ([]types.ChatRecord, error) {
	url := fmt.Sprintf("%s/chats/%04d/%02d/%02d",
		c.baseURL, day.Year(), int(day.Month()), day.Day())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		// No transactions recorded for this day.
		return nil, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var records []types.ChatRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode day listing: %w", err)
	}
	return records, nil
}
