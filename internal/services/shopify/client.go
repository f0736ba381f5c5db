package shopify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"castsync/internal/logger"
)

// Client talks to the storefront Admin GraphQL API.
type Client struct {
	storeDomain string
	apiVersion  string
	accessToken string
	locationID  string
	costRate    float64
	httpClient  *http.Client
	logger      *logger.Logger
}

func NewClient(storeDomain, apiVersion, accessToken, locationID string, costRate float64, logger *logger.Logger) *Client {
	return &Client{
		storeDomain: storeDomain,
		apiVersion:  apiVersion,
		accessToken: accessToken,
		locationID:  locationID,
		costRate:    costRate,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type graphqlError struct {
	Message string `json:"message"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type costExtensions struct {
	Cost struct {
		ThrottleStatus struct {
			CurrentlyAvailable    float64 `json:"currentlyAvailable"`
			SecondsUntilAvailable float64 `json:"secondsUntilAvailable"`
		} `json:"throttleStatus"`
	} `json:"cost"`
}

type graphqlResponse struct {
	Data       json.RawMessage `json:"data"`
	Errors     []graphqlError  `json:"errors"`
	Extensions *costExtensions `json:"extensions"`
}

// request executes one GraphQL operation and decodes its data payload
// into out. When the remaining query cost budget runs low it waits out
// the advertised recovery interval before returning.
func (c *Client) request(operation string, variables map[string]interface{}, out interface{}) error {
	payload := map[string]interface{}{"query": operation}
	if variables != nil {
		payload["variables"] = variables
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.storeDomain, c.apiVersion)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(raw))
	}

	var decoded graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", decoded.Errors[0].Message)
	}

	if decoded.Extensions != nil {
		status := decoded.Extensions.Cost.ThrottleStatus
		if status.CurrentlyAvailable < 100 && status.SecondsUntilAvailable > 0 {
			wait := time.Duration(status.SecondsUntilAvailable * float64(time.Second))
			c.logger.Debug("Query cost budget low, waiting %s", wait)
			time.Sleep(wait)
		}
	}

	if out != nil && decoded.Data != nil {
		if err := json.Unmarshal(decoded.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}
	return nil
}

func (c *Client) logUserErrors(operation string, errs []userError) {
	for _, e := range errs {
		c.logger.Warn("%s user error on %v: %s", operation, e.Field, e.Message)
	}
}
