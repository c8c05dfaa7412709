// Package apify is a thin client for the Apify actor platform: it starts
// actor runs synchronously (via the platform's own waitForFinish mechanism)
// and fetches run output datasets. Timeouts are delegated to the platform's
// wait parameter; nothing here retries a failed run.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ignite/linkedin-outreach/internal/config"
)

// Client is an Apify API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Apify client. The HTTP timeout must exceed the
// longest waitForFinish used by any caller, plus slack for network overhead.
func NewClient(cfg config.ApifyConfig) *Client {
	longest := cfg.CrawlWait()
	if cfg.SendWait() > longest {
		longest = cfg.SendWait()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: longest + 30*time.Second},
	}
}

// Configured reports whether an API token is present.
func (c *Client) Configured() bool { return c.token != "" }

// RunActorSync starts an actor run and blocks until the run reaches a
// terminal status or the platform's wait bound elapses. The returned Run
// carries the terminal status; callers decide whether non-success is fatal.
func (c *Client) RunActorSync(ctx context.Context, actorID string, input any, wait time.Duration) (*Run, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshaling actor input: %w", err)
	}

	url := fmt.Sprintf("%s/v2/actors/%s/runs?waitForFinish=%d", c.baseURL, actorID, int(wait.Seconds()))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing run request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading run response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("apify HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var env runEnvelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("parsing run response: %w", err)
	}
	return &env.Data, nil
}

// DatasetItems fetches a run's output dataset into out, which must be a
// pointer to a slice.
func (c *Client) DatasetItems(ctx context.Context, datasetID string, out any) error {
	url := fmt.Sprintf("%s/v2/datasets/%s/items?clean=true&format=json", c.baseURL, datasetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing dataset request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading dataset response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dataset HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parsing dataset items: %w", err)
	}
	return nil
}
