package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client forwards newsletter opt-ins to the contact relay. Callers treat
// failures as non-blocking; the user always sees their subscription
// confirmed.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) Subscribe(ctx context.Context, email string) (bool, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return false, fmt.Errorf("contact relay URL not configured")
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	raw, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return false, fmt.Errorf("serialize subscribe request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/subscribe", bytes.NewReader(raw))
	if err != nil {
		return false, fmt.Errorf("create subscribe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("execute subscribe request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("subscribe request failed with status %d", resp.StatusCode)
	}
	return true, nil
}
