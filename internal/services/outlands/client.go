package outlands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	searchURL string
	client    *resty.Client
}

func NewClient(searchURL, accessToken string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")
	if accessToken != "" {
		client.SetAuthToken(accessToken)
	}

	return &Client{
		searchURL: searchURL,
		client:    client,
	}
}

// Search fetches the first page of vendor listings for term, cheapest first.
func (c *Client) Search(ctx context.Context, term string) (*SearchResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(NewSearchRequest(term)).
		Post(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("vendor search request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode vendor search response: %w", err)
	}

	return &searchResp, nil
}
