package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"castsync/internal/logger"
)

type Client struct {
	feedURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(feedURL string, logger *logger.Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// FetchRecords downloads and decodes the vendor feed document.
func (c *Client) FetchRecords() ([]Record, error) {
	c.logger.Info("Fetching vendor feed from %s", c.feedURL)

	resp, err := c.httpClient.Get(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("feed request failed: %d - %s", resp.StatusCode, string(body))
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	c.logger.Info("Fetched %d feed records", len(records))
	return records, nil
}
